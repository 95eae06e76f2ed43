package trace

import "time"

// Kind represents the type of trace event.
type Kind uint8

const (
	// KindSpanBegin marks the start of a logical operation.
	KindSpanBegin Kind = iota + 1
	// KindSpanEnd marks the end of a logical operation.
	KindSpanEnd
	// KindPoint represents an instant event.
	KindPoint
)

func (k Kind) String() string {
	switch k {
	case KindSpanBegin:
		return "begin"
	case KindSpanEnd:
		return "end"
	case KindPoint:
		return "point"
	default:
		return "unknown"
	}
}

// Scope indicates the granularity of the event. Lower values are coarser.
type Scope uint8

const (
	ScopeDriver     Scope = iota + 1 // one CLI invocation
	ScopePass                        // read / grammar / extract
	ScopeFile                        // per-document processing
	ScopeProduction                  // one top-level production
)

func (s Scope) String() string {
	switch s {
	case ScopeDriver:
		return "driver"
	case ScopePass:
		return "pass"
	case ScopeFile:
		return "file"
	case ScopeProduction:
		return "production"
	default:
		return "unknown"
	}
}

// Attr is one key/value annotation. Attrs keep the order they were added in.
type Attr struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Event represents a single trace event.
type Event struct {
	Time     time.Time
	Seq      uint64 // global, monotonic
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 for roots
	File     string // document being processed, empty above file scope
	Name     string // "parse", "grammar", "class:CIM_ManagedElement"
	Detail   string
	Failed   bool
	Attrs    []Attr
}

// Point emits an instant event under parent.
func Point(t Tracer, scope Scope, name, detail string, parent SpanContext) {
	point(t, scope, name, detail, false, parent)
}

// Failure emits an instant event recording err. Failures pass at LevelError.
func Failure(t Tracer, scope Scope, name string, err error, parent SpanContext) {
	point(t, scope, name, err.Error(), true, parent)
}

func point(t Tracer, scope Scope, name, detail string, failed bool, parent SpanContext) {
	if t == nil || !t.Enabled() {
		return
	}
	if l := t.Level(); l != LevelError && !l.ShouldEmit(scope) {
		return
	}
	t.Emit(&Event{
		Time:     time.Now(),
		Kind:     KindPoint,
		Scope:    scope,
		ParentID: parent.SpanID,
		File:     parent.File,
		Name:     name,
		Detail:   detail,
		Failed:   failed,
	})
}
