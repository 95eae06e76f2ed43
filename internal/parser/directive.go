package parser

import (
	"strings"

	"mofkit/internal/cst"
	"mofkit/internal/mof"
)

// extractDirective reads #pragma name ("parameter").
func extractDirective(n *cst.Node) (*mof.PragmaDecl, *Error) {
	name := n.Child(0)
	if name == nil {
		return nil, newError(ErrInvalidDirectiveArgumentCount.Code, n.Span, "", "compiler directive has %d children", n.ChildCount())
	}
	dir, ok := mof.ParseDirective(name.Label)
	if !ok {
		return nil, newError(ErrInvalidDirective.Code, name.Span, name.Label, "unsupported compiler directive %q", name.Label)
	}
	decl := &mof.PragmaDecl{Directive: dir}
	if param := n.Child(1); param != nil {
		decl.Parameter = stripQuotes(param.Label)
	}
	return decl, nil
}

// stripQuotes drops one leading and one trailing double quote.
func stripQuotes(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}
