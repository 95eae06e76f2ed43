package handler

import (
	"io"

	"mofkit/internal/mof"
	"mofkit/internal/mofgen"
)

// Generate accumulates like Default and writes the regenerated MOF of every
// declaration to W as soon as it arrives. A write failure aborts the parse.
type Generate struct {
	*Default

	W   io.Writer
	Gen *mofgen.Generator
}

func NewGenerate(w io.Writer, gen *mofgen.Generator, continueOnError bool) *Generate {
	return &Generate{Default: NewDefault(continueOnError), W: w, Gen: gen}
}

func (h *Generate) CompilerDirective(d *mof.PragmaDecl) error {
	_ = h.Default.CompilerDirective(d) //nolint:errcheck
	return h.write(h.Gen.Pragma(d))
}

func (h *Generate) QualifierDecl(d *mof.QualifierDecl) error {
	_ = h.Default.QualifierDecl(d) //nolint:errcheck
	return h.write(h.Gen.QualifierDecl(d))
}

func (h *Generate) ClassDecl(d *mof.ClassDecl) error {
	_ = h.Default.ClassDecl(d) //nolint:errcheck
	return h.write(h.Gen.Class(d))
}

func (h *Generate) InstanceDecl(d *mof.InstanceDecl) error {
	_ = h.Default.InstanceDecl(d) //nolint:errcheck
	return h.write(h.Gen.Instance(d))
}

func (h *Generate) write(text string) error {
	_, err := io.WriteString(h.W, text+"\n")
	return err
}
