package diag

import (
	"sync"

	"mofkit/internal/source"
)

// Reporter receives diagnostics as the lexer and grammar find them.
type Reporter interface {
	Report(code Code, sev Severity, primary source.Span, msg string, notes []Note)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(code Code, sev Severity, primary source.Span, msg string, notes []Note)

func (f ReporterFunc) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	f(code, sev, primary, msg, notes)
}

// BagReporter adds every report to Bag; a nil Bag discards them.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	if r.Bag != nil {
		r.Bag.Add(Diagnostic{Severity: sev, Code: code, Message: msg, Primary: primary, Notes: notes})
	}
}

// FirstError forwards to Next and keeps the first error-level diagnostic.
// The zero value is ready to use and discards what it forwards.
type FirstError struct {
	Next Reporter

	mu    sync.Mutex
	first *Diagnostic
}

func (r *FirstError) Report(code Code, sev Severity, primary source.Span, msg string, notes []Note) {
	if r.Next != nil {
		r.Next.Report(code, sev, primary, msg, notes)
	}
	if sev < SevError {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.first == nil {
		d := Diagnostic{Severity: sev, Code: code, Message: msg, Primary: primary, Notes: notes}
		r.first = &d
	}
}

// First returns the first error seen, if any.
func (r *FirstError) First() (Diagnostic, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.first == nil {
		return Diagnostic{}, false
	}
	return *r.first, true
}
