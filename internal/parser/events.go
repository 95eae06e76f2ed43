package parser

import (
	"errors"
	"iter"

	"mofkit/internal/mof"
)

// EventKind identifies an Event.
type EventKind uint8

const (
	EventStartDocument EventKind = iota + 1
	EventEndDocument
	EventStartProduction
	EventEndProduction
	EventStartDecl
	EventDecl
	EventEndDecl
	EventInclude
	EventError
)

func (k EventKind) String() string {
	switch k {
	case EventStartDocument:
		return "start-document"
	case EventEndDocument:
		return "end-document"
	case EventStartProduction:
		return "start-production"
	case EventEndProduction:
		return "end-production"
	case EventStartDecl:
		return "start-decl"
	case EventDecl:
		return "decl"
	case EventEndDecl:
		return "end-decl"
	case EventInclude:
		return "include"
	case EventError:
		return "error"
	}
	return "unknown"
}

// Event is one Handler notification in value form. Production is set for
// production and declaration events, Decl for EventDecl, Path for
// EventInclude and Err for EventError.
type Event struct {
	Kind       EventKind
	Production mof.Production
	Decl       mof.Declaration
	Path       string
	Err        *Error
}

// Events parses text lazily as the sequence is ranged over. Every range
// parses again from scratch. Errors arrive as EventError items and never end
// the sequence early; breaking out of the loop stops the parse.
func (p *Parser) Events(name, text string) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		_ = p.ParseString(name, text, &yieldHandler{yield: yield}) //nolint:errcheck
	}
}

var errStop = errors.New("parser: event consumer stopped")

// yieldHandler adapts a yield function to Handler.
type yieldHandler struct {
	yield   func(Event) bool
	kind    mof.Production
	stopped bool
}

// emit never calls yield again once it has returned false.
func (h *yieldHandler) emit(ev Event) error {
	if h.stopped {
		return errStop
	}
	if !h.yield(ev) {
		h.stopped = true
		return errStop
	}
	return nil
}

func (h *yieldHandler) decl(d mof.Declaration) error {
	return h.emit(Event{Kind: EventDecl, Production: h.kind, Decl: d})
}

func (h *yieldHandler) start() error {
	return h.emit(Event{Kind: EventStartDecl, Production: h.kind})
}

func (h *yieldHandler) end() error {
	return h.emit(Event{Kind: EventEndDecl, Production: h.kind})
}

func (h *yieldHandler) StartDocument() error { return h.emit(Event{Kind: EventStartDocument}) }
func (h *yieldHandler) EndDocument() error   { return h.emit(Event{Kind: EventEndDocument}) }

func (h *yieldHandler) StartProduction(kind mof.Production) error {
	h.kind = kind
	return h.emit(Event{Kind: EventStartProduction, Production: kind})
}

func (h *yieldHandler) EndProduction() error {
	return h.emit(Event{Kind: EventEndProduction, Production: h.kind})
}

func (h *yieldHandler) StartCompilerDirective() error { return h.start() }
func (h *yieldHandler) EndCompilerDirective() error   { return h.end() }
func (h *yieldHandler) StartQualifierDecl() error     { return h.start() }
func (h *yieldHandler) EndQualifierDecl() error       { return h.end() }
func (h *yieldHandler) StartClassDecl() error         { return h.start() }
func (h *yieldHandler) EndClassDecl() error           { return h.end() }
func (h *yieldHandler) StartInstanceDecl() error      { return h.start() }
func (h *yieldHandler) EndInstanceDecl() error        { return h.end() }

func (h *yieldHandler) CompilerDirective(d *mof.PragmaDecl) error { return h.decl(d) }
func (h *yieldHandler) QualifierDecl(d *mof.QualifierDecl) error  { return h.decl(d) }
func (h *yieldHandler) ClassDecl(d *mof.ClassDecl) error          { return h.decl(d) }
func (h *yieldHandler) InstanceDecl(d *mof.InstanceDecl) error    { return h.decl(d) }

// Include cannot stop the parse itself; the stop surfaces on the next event.
func (h *yieldHandler) Include(path string) {
	_ = h.emit(Event{Kind: EventInclude, Path: path}) //nolint:errcheck
}

func (h *yieldHandler) Error(err *Error) error {
	return h.emit(Event{Kind: EventError, Err: err})
}
