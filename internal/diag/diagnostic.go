package diag

import (
	"fmt"

	"mofkit/internal/source"
)

// Note points at a secondary location, or carries the cause of an
// extraction failure.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one located problem. Primary may be the zero span for
// problems with no source position, such as a file that failed to load.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, Primary: primary, Message: msg}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

// Errorf is NewError with a formatted message.
func Errorf(code Code, primary source.Span, format string, args ...any) Diagnostic {
	return New(SevError, code, primary, fmt.Sprintf(format, args...))
}

// WithNote returns a copy of d with one more note; d itself is unchanged.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	notes := make([]Note, len(d.Notes), len(d.Notes)+1)
	copy(notes, d.Notes)
	d.Notes = append(notes, Note{Span: sp, Msg: msg})
	return d
}

// Located reports whether d points into a file.
func (d Diagnostic) Located() bool {
	return d.Primary != source.Span{}
}
