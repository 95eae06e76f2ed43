package parser

import "mofkit/internal/mof"

// Handler receives parse notifications in document order. Every method
// except Include may stop the parse by returning a non-nil error.
type Handler interface {
	StartDocument() error
	EndDocument() error

	StartProduction(kind mof.Production) error
	EndProduction() error

	StartCompilerDirective() error
	CompilerDirective(decl *mof.PragmaDecl) error
	EndCompilerDirective() error

	StartQualifierDecl() error
	QualifierDecl(decl *mof.QualifierDecl) error
	EndQualifierDecl() error

	StartClassDecl() error
	ClassDecl(decl *mof.ClassDecl) error
	EndClassDecl() error

	StartInstanceDecl() error
	InstanceDecl(decl *mof.InstanceDecl) error
	EndInstanceDecl() error

	// Include is called after the pragma declaration for #pragma include.
	// Loading the file is up to the handler.
	Include(path string)

	// Error receives extraction and grammar failures. Return nil to skip the
	// failed production and continue.
	Error(err *Error) error
}

// Base implements Handler with no-ops. Embed it and override what you need.
// Its Error re-raises, so the first failure aborts the parse.
type Base struct{}

func (Base) StartDocument() error                    { return nil }
func (Base) EndDocument() error                      { return nil }
func (Base) StartProduction(mof.Production) error    { return nil }
func (Base) EndProduction() error                    { return nil }
func (Base) StartCompilerDirective() error           { return nil }
func (Base) CompilerDirective(*mof.PragmaDecl) error { return nil }
func (Base) EndCompilerDirective() error             { return nil }
func (Base) StartQualifierDecl() error               { return nil }
func (Base) QualifierDecl(*mof.QualifierDecl) error  { return nil }
func (Base) EndQualifierDecl() error                 { return nil }
func (Base) StartClassDecl() error                   { return nil }
func (Base) ClassDecl(*mof.ClassDecl) error          { return nil }
func (Base) EndClassDecl() error                     { return nil }
func (Base) StartInstanceDecl() error                { return nil }
func (Base) InstanceDecl(*mof.InstanceDecl) error    { return nil }
func (Base) EndInstanceDecl() error                  { return nil }
func (Base) Include(string)                          {}
func (Base) Error(err *Error) error                  { return err }

var _ Handler = Base{}
