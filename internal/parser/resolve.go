package parser

import (
	"strconv"
	"strings"

	"fortio.org/safecast"

	"mofkit/internal/cst"
	"mofkit/internal/mof"
	"mofkit/internal/token"
)

var unescaper = strings.NewReplacer(`\'`, `'`, `\"`, `"`, `\n`, "\n")

// resolveValue collects the literal values under n. Quotes are stripped,
// escapes resolved and null keywords dropped. Structural children such as a
// qualifier's Flavor list are not values. The result is nil when nothing is
// left.
func resolveValue(n *cst.Node) []string {
	var vals []string
	for _, c := range n.Children {
		if c.Structural() {
			continue
		}
		if c.Kind != token.StringLit && strings.EqualFold(c.Label, "null") {
			continue
		}
		vals = append(vals, cleanValue(c.Label))
	}
	return vals
}

// cleanValue strips one pair of enclosing quotes and resolves \' \" and \n.
func cleanValue(s string) string {
	if len(s) >= 2 {
		if q := s[0]; (q == '"' || q == '\'') && s[len(s)-1] == q {
			s = s[1 : len(s)-1]
		}
	}
	return unescaper.Replace(s)
}

// resolveType reads the Type child of owner: a data type leaf, optionally
// carrying an Array child, or a reference leaf naming its class.
func resolveType(owner *cst.Node) (mof.TypeDecl, *Error) {
	n := owner.Find(cst.LabelType)
	if n.ChildCount() == 0 {
		return mof.TypeDecl{}, newError(ErrInvalidTypeTree.Code, owner.Span, "", "missing type")
	}
	dt := n.Child(0)
	if dt.Label == "" {
		return mof.TypeDecl{}, newError(ErrInvalidDataType.Code, dt.Span, "", "empty data type")
	}

	if !dt.Structural() && dt.Is(cst.LabelReference) {
		class := dt.Text()
		if class == "" {
			return mof.TypeDecl{}, newError(ErrInvalidClassReference.Code, dt.Span, "", "reference without a class")
		}
		return mof.NewRefType(class), nil
	}

	typ, ok := mof.ParseDataType(dt.Label)
	if !ok || typ == mof.Reference {
		return mof.TypeDecl{}, newError(ErrInvalidDataType.Code, dt.Span, dt.Label, "unknown data type %q", dt.Label)
	}
	arr := dt.Find(cst.LabelArray)
	if arr == nil {
		return mof.NewType(typ), nil
	}
	size := -1
	if lit := arr.Child(0); lit != nil {
		n, err := arraySize(lit.Label)
		if err != nil {
			return mof.TypeDecl{}, &Error{Code: ErrInvalidArraySize.Code, Msg: "bad array size " + strconv.Quote(lit.Label), Value: lit.Label, Span: lit.Span, Cause: err}
		}
		size = n
	}
	return mof.NewArrayType(typ, size), nil
}

// arraySize decodes a MOF integer literal: decimal, 0x hex, leading-zero
// octal or b-suffixed binary.
func arraySize(lit string) (int, error) {
	var (
		v   uint64
		err error
	)
	switch {
	case len(lit) > 1 && (lit[len(lit)-1] == 'b' || lit[len(lit)-1] == 'B'):
		v, err = strconv.ParseUint(lit[:len(lit)-1], 2, 64)
	default:
		v, err = strconv.ParseUint(lit, 0, 64)
	}
	if err != nil {
		return 0, err
	}
	return safecast.Conv[int](v)
}

// resolveQualifiers reads every applied qualifier under a Qualifiers node
// into set. A nil node adds nothing.
func resolveQualifiers(n *cst.Node, set *mof.Set[*mof.Qualifier]) *Error {
	if n == nil {
		return nil
	}
	for _, q := range n.Children {
		qual, err := resolveQualifier(q)
		if err != nil {
			return err
		}
		set.Add(qual)
	}
	return nil
}

// resolveQualifier reads an applied qualifier. Its label is the name; values
// come from its children and flavors from an optional Flavor child. The type
// is left unset: nothing here looks up the qualifier declaration.
func resolveQualifier(n *cst.Node) (*mof.Qualifier, *Error) {
	if n.Label == "" {
		return nil, newError(ErrInvalidQualifierName.Code, n.Span, "", "empty qualifier name")
	}
	q := &mof.Qualifier{
		Name:  n.Label,
		Value: resolveValue(n),
	}
	if fl := n.Find(cst.LabelFlavor); fl != nil {
		q.Flavors = mof.ParseFlavors(labels(fl)...)
	}
	return q, nil
}

// resolveProperty reads a class property: name, Type, optional Default and
// optional Qualifiers.
func resolveProperty(n *cst.Node) (*mof.PropertyDecl, *Error) {
	name := n.Child(0)
	if name == nil || name.Label == "" {
		return nil, newError(ErrInvalidPropertyName.Code, n.Span, "", "property without a name")
	}
	typ, err := resolveType(n)
	if err != nil {
		return nil, err
	}
	p := &mof.PropertyDecl{Name: name.Label, Type: typ}
	if def := n.Find(cst.LabelDefault); def != nil {
		p.Value = resolveValue(def)
	}
	if err := resolveQualifiers(n.Find(cst.LabelQualifiers), &p.Qualifiers); err != nil {
		return nil, err
	}
	return p, nil
}

func labels(n *cst.Node) []string {
	out := make([]string, 0, n.ChildCount())
	for _, c := range n.Children {
		out = append(out, c.Label)
	}
	return out
}
