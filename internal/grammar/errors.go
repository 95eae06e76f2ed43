package grammar

import (
	"fmt"

	"mofkit/internal/diag"
	"mofkit/internal/source"
)

// SyntaxError is the single failure a grammar run can produce.
type SyntaxError struct {
	Code diag.Code
	Span source.Span
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Code.ID(), e.Span, e.Msg)
}

// Diagnostic converts the error for display.
func (e *SyntaxError) Diagnostic() diag.Diagnostic {
	return diag.NewError(e.Code, e.Span, e.Msg)
}

// bailout unwinds the recursive descent on the first error.
type bailout struct{ err *SyntaxError }
