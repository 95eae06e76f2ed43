package handler

import (
	"mofkit/internal/mof"
	"mofkit/internal/parser"
)

// Default keeps every delivered declaration. Failed productions are simply
// missing from the results. With ContinueOnError unset the first error
// aborts the parse.
type Default struct {
	parser.Base

	ContinueOnError bool

	Pragmas    []*mof.PragmaDecl
	Qualifiers []*mof.QualifierDecl
	Classes    []*mof.ClassDecl
	Instances  []*mof.InstanceDecl
	Includes   []string
	Errors     []*parser.Error

	decls []mof.Declaration
}

func NewDefault(continueOnError bool) *Default {
	return &Default{ContinueOnError: continueOnError}
}

func (h *Default) CompilerDirective(d *mof.PragmaDecl) error {
	h.Pragmas = append(h.Pragmas, d)
	h.decls = append(h.decls, d)
	return nil
}

func (h *Default) QualifierDecl(d *mof.QualifierDecl) error {
	h.Qualifiers = append(h.Qualifiers, d)
	h.decls = append(h.decls, d)
	return nil
}

func (h *Default) ClassDecl(d *mof.ClassDecl) error {
	h.Classes = append(h.Classes, d)
	h.decls = append(h.decls, d)
	return nil
}

func (h *Default) InstanceDecl(d *mof.InstanceDecl) error {
	h.Instances = append(h.Instances, d)
	h.decls = append(h.decls, d)
	return nil
}

func (h *Default) Include(path string) {
	h.Includes = append(h.Includes, path)
}

func (h *Default) Error(err *parser.Error) error {
	h.Errors = append(h.Errors, err)
	if h.ContinueOnError {
		return nil
	}
	return err
}

// Declarations returns every declaration in document order.
func (h *Default) Declarations() []mof.Declaration {
	return h.decls
}

// Class finds a class by name, ignoring case.
func (h *Default) Class(name string) (*mof.ClassDecl, bool) {
	key := mof.FoldKey(name)
	for _, c := range h.Classes {
		if mof.FoldKey(c.Name) == key {
			return c, true
		}
	}
	return nil, false
}

// Instance finds an instance by alias, ignoring case.
func (h *Default) Instance(alias string) (*mof.InstanceDecl, bool) {
	key := mof.FoldKey(alias)
	for _, i := range h.Instances {
		if i.Alias != "" && mof.FoldKey(i.Alias) == key {
			return i, true
		}
	}
	return nil, false
}

// Qualifier finds a qualifier declaration by name, ignoring case.
func (h *Default) Qualifier(name string) (*mof.QualifierDecl, bool) {
	key := mof.FoldKey(name)
	for _, q := range h.Qualifiers {
		if mof.FoldKey(q.Name) == key {
			return q, true
		}
	}
	return nil, false
}
