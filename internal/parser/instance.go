package parser

import (
	"mofkit/internal/cst"
	"mofkit/internal/mof"
)

// extractInstance reads instance of Class [as $Alias] { name = value; ... }.
// The alias is optional.
func extractInstance(n *cst.Node) (*mof.InstanceDecl, *Error) {
	name := n.Child(0)
	if name == nil {
		return nil, newError(ErrInvalidInstanceDecl.Code, n.Span, "", "instance declaration without a class")
	}
	if name.Label == "" {
		return nil, newError(ErrInvalidClassName.Code, name.Span, "", "empty class name")
	}

	decl := &mof.InstanceDecl{ClassName: name.Label}
	if alias := name.Find(cst.LabelAlias); alias != nil {
		decl.Alias = alias.Text()
	}
	if err := resolveQualifiers(name.Find(cst.LabelQualifiers), &decl.Qualifiers); err != nil {
		return nil, err
	}
	for _, pn := range name.FindAll(cst.LabelProperty) {
		p, err := resolveInstanceProperty(pn)
		if err != nil {
			return nil, err
		}
		decl.Properties.Add(p)
	}
	return decl, nil
}

// resolveInstanceProperty reads name = value. The type is always string;
// more than one value makes it an array sized to the value count.
func resolveInstanceProperty(n *cst.Node) (*mof.InstancePropertyDecl, *Error) {
	name := n.Child(0)
	if name == nil || name.Label == "" {
		return nil, newError(ErrInvalidPropertyName.Code, n.Span, "", "property without a name")
	}
	p := &mof.InstancePropertyDecl{Name: name.Label, Type: mof.NewType(mof.String)}
	if v := n.Find(cst.LabelValue); v != nil {
		p.Value = resolveValue(v)
		p.Type.ArraySize = len(p.Value)
		p.Type.IsArray = len(p.Value) > 1
	}
	if err := resolveQualifiers(n.Find(cst.LabelQualifiers), &p.Qualifiers); err != nil {
		return nil, err
	}
	return p, nil
}
