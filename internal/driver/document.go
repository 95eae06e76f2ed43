package driver

import (
	"mofkit/internal/diag"
	"mofkit/internal/handler"
	"mofkit/internal/mof"
	"mofkit/internal/observ"
	"mofkit/internal/source"
)

// Document is everything extracted from one file.
type Document struct {
	Path        string               `json:"path" msgpack:"path"`
	Pragmas     []*mof.PragmaDecl    `json:"pragmas" msgpack:"pragmas"`
	Qualifiers  []*mof.QualifierDecl `json:"qualifiers" msgpack:"qualifiers"`
	Classes     []*mof.ClassDecl     `json:"classes" msgpack:"classes"`
	Instances   []*mof.InstanceDecl  `json:"instances" msgpack:"instances"`
	Includes    []string             `json:"includes,omitempty" msgpack:"includes"`
	Diagnostics []diag.Diagnostic    `json:"-" msgpack:"diagnostics"`
	Timing      observ.Report        `json:"-" msgpack:"-"`
}

// NewDocument copies the declarations gathered by h. Diagnostics come from
// bag, which already holds the extraction errors.
func NewDocument(path string, h *handler.Default, bag *diag.Bag) *Document {
	doc := &Document{
		Path:       path,
		Pragmas:    h.Pragmas,
		Qualifiers: h.Qualifiers,
		Classes:    h.Classes,
		Instances:  h.Instances,
		Includes:   h.Includes,
	}
	if bag != nil {
		doc.Diagnostics = append([]diag.Diagnostic(nil), bag.Items()...)
	}
	return doc
}

// Len is the number of declarations.
func (d *Document) Len() int {
	return len(d.Pragmas) + len(d.Qualifiers) + len(d.Classes) + len(d.Instances)
}

// remap points every diagnostic span at id. Cached documents were produced
// under whatever file id the earlier run assigned.
func (d *Document) remap(id source.FileID) {
	for i := range d.Diagnostics {
		dg := &d.Diagnostics[i]
		dg.Primary.File = id
		for j := range dg.Notes {
			dg.Notes[j].Span.File = id
		}
	}
}
