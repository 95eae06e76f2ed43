package parser

import (
	"mofkit/internal/cst"
	"mofkit/internal/mof"
)

// extractQualifierDecl reads qualifier Name : type [= default], scope(...), flavor(...).
// The default value hangs off the Type node.
func extractQualifierDecl(n *cst.Node) (*mof.QualifierDecl, *Error) {
	if n.ChildCount() < 2 {
		return nil, newError(ErrInvalidQualifierDeclArgCount.Code, n.Span, "", "qualifier declaration has %d children", n.ChildCount())
	}
	name := n.Child(0)
	if name.Label == "" {
		return nil, newError(ErrInvalidQualifierName.Code, name.Span, "", "empty qualifier name")
	}
	typ, err := resolveType(n)
	if err != nil {
		return nil, err
	}

	decl := &mof.QualifierDecl{Name: name.Label, Type: typ}
	if def := n.Find(cst.LabelType).Find(cst.LabelDefault); def != nil {
		decl.DefaultValue = resolveValue(def)
	}
	if scope := n.Find(cst.LabelScope); scope != nil {
		decl.Scopes = mof.ParseScopes(labels(scope)...)
	}
	if flavor := n.Find(cst.LabelFlavor); flavor != nil {
		decl.Flavors = mof.ParseFlavors(labels(flavor)...)
	}
	return decl, nil
}
