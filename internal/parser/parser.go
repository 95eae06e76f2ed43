package parser

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"mofkit/internal/cst"
	"mofkit/internal/diag"
	"mofkit/internal/grammar"
	"mofkit/internal/source"
	"mofkit/internal/trace"
)

type Options struct {
	// Reporter receives lexical diagnostics in addition to Handler.Error. May be nil.
	Reporter diag.Reporter
	// Tracer overrides the tracer found in the parse context. May be nil.
	Tracer trace.Tracer
}

// Parser holds only options; every call builds its own parse state, so one
// Parser may serve many goroutines.
type Parser struct {
	opts Options
}

func New(opts Options) *Parser {
	return &Parser{opts: opts}
}

// Parse reads src and reports its declarations to h.
func (p *Parser) Parse(src *source.File, h Handler) error {
	return p.ParseContext(context.Background(), src, h)
}

// ParseString parses text registered under name in a private file set.
func (p *Parser) ParseString(name, text string, h Handler) error {
	fs := source.NewFileSet()
	return p.Parse(fs.Get(fs.AddVirtual(name, []byte(text))), h)
}

// ParseReader drains r completely before parsing.
func (p *Parser) ParseReader(name string, r io.Reader, h Handler) error {
	fs := source.NewFileSet()
	id, err := fs.LoadReader(name, r)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	return p.Parse(fs.Get(id), h)
}

// ParseContext is Parse with a context carrying the tracer and parent span.
// It returns the first error a handler method returned, or nil.
func (p *Parser) ParseContext(ctx context.Context, src *source.File, h Handler) error {
	r := &run{
		h:      h,
		file:   src,
		tracer: p.opts.Tracer,
		parent: trace.CurrentSpan(ctx),
	}
	if r.tracer == nil {
		r.tracer = trace.FromContext(ctx)
	}
	return r.document(p.opts.Reporter)
}

// run is the state of one Parse call.
type run struct {
	h      Handler
	file   *source.File
	tracer trace.Tracer
	parent trace.SpanContext
}

func (r *run) document(reporter diag.Reporter) error {
	if err := r.h.StartDocument(); err != nil {
		return err
	}

	sp := trace.Begin(r.tracer, trace.ScopePass, "grammar", r.parent)
	tree, err := grammar.Parse(r.file, grammar.Options{Reporter: reporter})
	if err != nil {
		sp.Fail(err)
		if herr := r.h.Error(fromSyntax(err)); herr != nil {
			return herr
		}
		return r.h.EndDocument()
	}
	sp.WithAttr("nodes", strconv.Itoa(tree.Size())).End("")

	if err := r.productions(tree); err != nil {
		return err
	}
	return r.h.EndDocument()
}

func (r *run) productions(tree *cst.Tree) error {
	prods := tree.Productions()
	sp := trace.Begin(r.tracer, trace.ScopePass, "extract", r.parent)
	sp.WithAttr("productions", strconv.Itoa(len(prods)))

	for _, n := range prods {
		if err := r.production(n, sp.Context()); err != nil {
			sp.Fail(err)
			return err
		}
	}
	sp.End("")
	return nil
}
