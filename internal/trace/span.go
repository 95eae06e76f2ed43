package trace

import (
	"context"
	"sync/atomic"
	"time"
)

var (
	seqCounter  atomic.Uint64
	spanCounter atomic.Uint64
)

// NextSeq returns a monotonically increasing sequence number.
func NextSeq() uint64 {
	return seqCounter.Add(1)
}

// NextSpanID returns a unique span ID.
func NextSpanID() uint64 {
	return spanCounter.Add(1)
}

// Span tracks one begin/end pair. A file-scope span names the document its
// descendants work on.
type Span struct {
	tracer  Tracer
	id      uint64
	parent  uint64
	file    string
	scope   Scope
	name    string
	started time.Time
	attrs   []Attr
}

// Begin starts a span under parent and emits its begin event. The returned
// span is inert when the tracer would drop everything it records; its
// Context is then parent itself.
func Begin(t Tracer, scope Scope, name string, parent SpanContext) *Span {
	if t == nil || !t.Enabled() {
		return &Span{parent: parent.SpanID, file: parent.File}
	}
	level := t.Level()
	// At LevelError every span stays live so a failure can be reported.
	if !level.ShouldEmit(scope) && level != LevelError {
		return &Span{parent: parent.SpanID, file: parent.File}
	}

	s := &Span{
		tracer:  t,
		id:      NextSpanID(),
		parent:  parent.SpanID,
		file:    parent.File,
		scope:   scope,
		name:    name,
		started: time.Now(),
	}
	if scope == ScopeFile {
		s.file = name
	}
	t.Emit(s.event(KindSpanBegin, s.started, "", false))
	return s
}

// End emits the end event and returns the span duration.
func (s *Span) End(detail string) time.Duration {
	return s.finish(detail, false)
}

// Fail ends the span as failed. Failed spans pass at LevelError.
func (s *Span) Fail(err error) time.Duration {
	return s.finish("error: "+err.Error(), true)
}

func (s *Span) finish(detail string, failed bool) time.Duration {
	if s == nil || s.tracer == nil {
		return 0
	}
	now := time.Now()
	s.tracer.Emit(s.event(KindSpanEnd, now, detail, failed))
	return now.Sub(s.started)
}

func (s *Span) event(kind Kind, at time.Time, detail string, failed bool) *Event {
	ev := &Event{
		Time:     at,
		Kind:     kind,
		Scope:    s.scope,
		SpanID:   s.id,
		ParentID: s.parent,
		File:     s.file,
		Name:     s.name,
		Detail:   detail,
		Failed:   failed,
	}
	if kind == KindSpanEnd {
		ev.Attrs = s.attrs
	}
	return ev
}

// WithAttr annotates the end event. Setting a key again replaces its value.
func (s *Span) WithAttr(key, value string) *Span {
	if s == nil || s.tracer == nil {
		return s
	}
	for i := range s.attrs {
		if s.attrs[i].Key == key {
			s.attrs[i].Value = value
			return s
		}
	}
	s.attrs = append(s.attrs, Attr{Key: key, Value: value})
	return s
}

// ID returns the span ID, 0 for an inert span.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}

// Context is the span context children of s start under.
func (s *Span) Context() SpanContext {
	switch {
	case s == nil:
		return SpanContext{}
	case s.id == 0:
		return SpanContext{SpanID: s.parent, File: s.file}
	}
	return SpanContext{SpanID: s.id, File: s.file}
}

// BeginCtx starts a span using the tracer and parent span stored in ctx and
// returns a context carrying the new span.
func BeginCtx(ctx context.Context, scope Scope, name string) (*Span, context.Context) {
	parent := CurrentSpan(ctx)
	sp := Begin(FromContext(ctx), scope, name, parent)
	if sp.ID() == 0 {
		return sp, ctx
	}
	return sp, WithSpanContext(ctx, sp.Context())
}
