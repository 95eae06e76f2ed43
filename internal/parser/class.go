package parser

import (
	"mofkit/internal/cst"
	"mofkit/internal/mof"
)

// extractClass reads a class production. Everything but the name hangs off
// the name node: qualifiers, the alias, the superclass, properties and
// methods.
func extractClass(n *cst.Node) (*mof.ClassDecl, *Error) {
	name := n.Child(0)
	if name == nil {
		return nil, newError(ErrInvalidClassDeclArgumentCount.Code, n.Span, "", "class declaration has %d children", n.ChildCount())
	}
	if name.Label == "" {
		return nil, newError(ErrInvalidClassName.Code, name.Span, "", "empty class name")
	}

	decl := &mof.ClassDecl{Name: name.Label}
	if alias := name.Find(cst.LabelAlias); alias != nil {
		decl.Alias = alias.Text()
	}
	if super := name.Find(cst.LabelSuperClass); super != nil {
		decl.Parent = super.Text()
	}
	for _, c := range name.Children {
		switch {
		case c.Is(cst.LabelQualifiers):
			if err := resolveQualifiers(c, &decl.Qualifiers); err != nil {
				return nil, err
			}
		case c.Is(cst.LabelProperty):
			p, err := resolveProperty(c)
			if err != nil {
				return nil, err
			}
			decl.Properties.Add(p)
		case c.Is(cst.LabelMethod):
			m, err := resolveMethod(c)
			if err != nil {
				return nil, err
			}
			decl.Methods.Add(m)
		}
	}
	return decl, nil
}

// resolveMethod reads name, return Type, optional Qualifiers and the
// Parameter children in order.
func resolveMethod(n *cst.Node) (*mof.MethodDecl, *Error) {
	name := n.Child(0)
	if name == nil || name.Label == "" {
		return nil, newError(ErrInvalidMethodName.Code, n.Span, "", "method without a name")
	}
	ret, err := resolveType(n)
	if err != nil {
		return nil, err
	}
	m := &mof.MethodDecl{Name: name.Label, ReturnType: ret}
	if err := resolveQualifiers(n.Find(cst.LabelQualifiers), &m.Qualifiers); err != nil {
		return nil, err
	}
	for _, pn := range n.FindAll(cst.LabelParameter) {
		p, err := resolveParameter(pn)
		if err != nil {
			return nil, err
		}
		m.Parameters.Add(p)
	}
	return m, nil
}

func resolveParameter(n *cst.Node) (*mof.ParameterDecl, *Error) {
	name := n.Child(0)
	if name == nil || name.Label == "" {
		return nil, newError(ErrInvalidPropertyName.Code, n.Span, "", "parameter without a name")
	}
	typ, err := resolveType(n)
	if err != nil {
		return nil, err
	}
	p := &mof.ParameterDecl{Name: name.Label, Type: typ}
	if err := resolveQualifiers(n.Find(cst.LabelQualifiers), &p.Qualifiers); err != nil {
		return nil, err
	}
	return p, nil
}
