package handler

import (
	"mofkit/internal/mof"
	"mofkit/internal/parser"
)

// Multi forwards every event to each handler in order. The first non-nil
// return stops the forwarding and aborts the parse. Error is offered to all
// handlers; the parse aborts if any of them re-raises.
type Multi []parser.Handler

func (m Multi) each(fn func(h parser.Handler) error) error {
	for _, h := range m {
		if err := fn(h); err != nil {
			return err
		}
	}
	return nil
}

func (m Multi) StartDocument() error {
	return m.each(func(h parser.Handler) error { return h.StartDocument() })
}

func (m Multi) EndDocument() error {
	return m.each(func(h parser.Handler) error { return h.EndDocument() })
}

func (m Multi) StartProduction(kind mof.Production) error {
	return m.each(func(h parser.Handler) error { return h.StartProduction(kind) })
}

func (m Multi) EndProduction() error {
	return m.each(func(h parser.Handler) error { return h.EndProduction() })
}

func (m Multi) StartCompilerDirective() error {
	return m.each(func(h parser.Handler) error { return h.StartCompilerDirective() })
}

func (m Multi) CompilerDirective(d *mof.PragmaDecl) error {
	return m.each(func(h parser.Handler) error { return h.CompilerDirective(d) })
}

func (m Multi) EndCompilerDirective() error {
	return m.each(func(h parser.Handler) error { return h.EndCompilerDirective() })
}

func (m Multi) StartQualifierDecl() error {
	return m.each(func(h parser.Handler) error { return h.StartQualifierDecl() })
}

func (m Multi) QualifierDecl(d *mof.QualifierDecl) error {
	return m.each(func(h parser.Handler) error { return h.QualifierDecl(d) })
}

func (m Multi) EndQualifierDecl() error {
	return m.each(func(h parser.Handler) error { return h.EndQualifierDecl() })
}

func (m Multi) StartClassDecl() error {
	return m.each(func(h parser.Handler) error { return h.StartClassDecl() })
}

func (m Multi) ClassDecl(d *mof.ClassDecl) error {
	return m.each(func(h parser.Handler) error { return h.ClassDecl(d) })
}

func (m Multi) EndClassDecl() error {
	return m.each(func(h parser.Handler) error { return h.EndClassDecl() })
}

func (m Multi) StartInstanceDecl() error {
	return m.each(func(h parser.Handler) error { return h.StartInstanceDecl() })
}

func (m Multi) InstanceDecl(d *mof.InstanceDecl) error {
	return m.each(func(h parser.Handler) error { return h.InstanceDecl(d) })
}

func (m Multi) EndInstanceDecl() error {
	return m.each(func(h parser.Handler) error { return h.EndInstanceDecl() })
}

func (m Multi) Include(path string) {
	for _, h := range m {
		h.Include(path)
	}
}

func (m Multi) Error(err *parser.Error) error {
	var first error
	for _, h := range m {
		if herr := h.Error(err); herr != nil && first == nil {
			first = herr
		}
	}
	return first
}

var _ parser.Handler = Multi(nil)
