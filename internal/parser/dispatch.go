package parser

import (
	"strings"

	"mofkit/internal/cst"
	"mofkit/internal/mof"
	"mofkit/internal/trace"
)

// productionKind classifies a top-level node by its label.
func productionKind(n *cst.Node) (mof.Production, bool) {
	switch {
	case n.Is(cst.LabelClass):
		return mof.ProductionClass, true
	case n.Is(cst.LabelDirective):
		return mof.ProductionCompilerDirective, true
	case n.Is(cst.LabelInstance):
		return mof.ProductionInstance, true
	case n.Is(cst.LabelQualifier):
		return mof.ProductionQualifier, true
	}
	return 0, false
}

// production brackets one extractor call with StartProduction/EndProduction.
// Unknown labels are reported and skipped without any bracket.
func (r *run) production(n *cst.Node, parent trace.SpanContext) error {
	kind, ok := productionKind(n)
	if !ok {
		return r.h.Error(newError(ErrUnknownProductionKind.Code, n.Span, n.Label, "unknown production kind %q", n.Label))
	}

	sp := trace.Begin(r.tracer, trace.ScopeProduction, kind.String()+":"+strings.Trim(n.Text(), `"`), parent)
	if err := r.h.StartProduction(kind); err != nil {
		sp.Fail(err)
		return err
	}

	var err error
	switch kind {
	case mof.ProductionCompilerDirective:
		err = deliver(r, n, sp, r.h.StartCompilerDirective, extractDirective, r.directive, r.h.EndCompilerDirective)
	case mof.ProductionQualifier:
		err = deliver(r, n, sp, r.h.StartQualifierDecl, extractQualifierDecl, r.h.QualifierDecl, r.h.EndQualifierDecl)
	case mof.ProductionClass:
		err = deliver(r, n, sp, r.h.StartClassDecl, extractClass, r.h.ClassDecl, r.h.EndClassDecl)
	case mof.ProductionInstance:
		err = deliver(r, n, sp, r.h.StartInstanceDecl, extractInstance, r.h.InstanceDecl, r.h.EndInstanceDecl)
	}
	if err != nil {
		sp.Fail(err)
		return err
	}
	sp.End("")
	return r.h.EndProduction()
}

// deliver runs start, extract, data and end in order. A failed extraction is
// reported instead of delivered; end is still called so every start has a
// matching end unless the handler aborts.
func deliver[D any](
	r *run,
	n *cst.Node,
	sp *trace.Span,
	start func() error,
	extract func(*cst.Node) (D, *Error),
	data func(D) error,
	end func() error,
) error {
	if err := start(); err != nil {
		return err
	}
	decl, xerr := extract(n)
	if xerr != nil {
		trace.Failure(r.tracer, trace.ScopeProduction, "extract", xerr, sp.Context())
		if err := r.h.Error(xerr); err != nil {
			return err
		}
	} else if err := data(decl); err != nil {
		return err
	}
	return end()
}

// directive delivers a pragma and asks the handler to include the target
// of #pragma include.
func (r *run) directive(decl *mof.PragmaDecl) error {
	if err := r.h.CompilerDirective(decl); err != nil {
		return err
	}
	if decl.Directive == mof.DirectiveInclude {
		r.h.Include(decl.Parameter)
	}
	return nil
}
