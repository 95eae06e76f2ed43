package parser

import (
	"errors"
	"fmt"

	"mofkit/internal/diag"
	"mofkit/internal/grammar"
	"mofkit/internal/source"
)

// Error is a failure delivered to Handler.Error. Grammar failures carry a
// lexical or syntax code; extraction failures carry an Ext* code.
type Error struct {
	Code  diag.Code
	Msg   string
	Value string // offending token or name, if any
	Span  source.Span
	Cause error
}

// Sentinels for errors.Is. Matching compares codes only.
var (
	ErrUnknownProductionKind         = &Error{Code: diag.ExtUnknownProductionKind}
	ErrInvalidDirective              = &Error{Code: diag.ExtInvalidDirective}
	ErrInvalidDirectiveArgumentCount = &Error{Code: diag.ExtInvalidDirectiveArgumentCount}
	ErrInvalidClassDeclArgumentCount = &Error{Code: diag.ExtInvalidClassDeclArgumentCount}
	ErrInvalidClassName              = &Error{Code: diag.ExtInvalidClassName}
	ErrInvalidQualifierDeclArgCount  = &Error{Code: diag.ExtInvalidQualifierDeclArgCount}
	ErrInvalidQualifierName          = &Error{Code: diag.ExtInvalidQualifierName}
	ErrInvalidPropertyName           = &Error{Code: diag.ExtInvalidPropertyName}
	ErrInvalidMethodName             = &Error{Code: diag.ExtInvalidMethodName}
	ErrInvalidTypeTree               = &Error{Code: diag.ExtInvalidTypeTree}
	ErrInvalidDataType               = &Error{Code: diag.ExtInvalidDataType}
	ErrInvalidClassReference         = &Error{Code: diag.ExtInvalidClassReference}
	ErrInvalidArraySize              = &Error{Code: diag.ExtInvalidArraySize}
	ErrInvalidInstanceDecl           = &Error{Code: diag.ExtInvalidInstanceDecl}
)

func newError(code diag.Code, span source.Span, value, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...), Value: value, Span: span}
}

// fromSyntax wraps a grammar failure.
func fromSyntax(err error) *Error {
	var se *grammar.SyntaxError
	if errors.As(err, &se) {
		return &Error{Code: se.Code, Msg: se.Msg, Span: se.Span, Cause: err}
	}
	return &Error{Code: diag.SynUnexpectedToken, Msg: err.Error(), Cause: err}
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Code.Title()
	}
	if e.Cause != nil && !isSyntax(e.Cause) {
		return fmt.Sprintf("%s: %s: %v", e.Code.ID(), msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code.ID(), msg)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Diagnostic converts the error for display.
func (e *Error) Diagnostic() diag.Diagnostic {
	msg := e.Msg
	if msg == "" {
		msg = e.Code.Title()
	}
	d := diag.NewError(e.Code, e.Span, msg)
	if e.Cause != nil && !isSyntax(e.Cause) {
		d = d.WithNote(e.Span, e.Cause.Error())
	}
	return d
}

func isSyntax(err error) bool {
	var se *grammar.SyntaxError
	return errors.As(err, &se)
}
