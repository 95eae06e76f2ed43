package mofgen

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"mofkit/internal/mof"
)

type Options struct {
	IndentWidth int // spaces per level, default 4
	UseTabs     bool
	NoHeader    bool
	Version     string           // written into the header, default "dev"
	Now         func() time.Time // header clock, default time.Now
}

func (o Options) withDefaults() Options {
	if o.IndentWidth <= 0 {
		o.IndentWidth = 4
	}
	if o.Version == "" {
		o.Version = "dev"
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Generator renders declarations. It holds no mutable state.
type Generator struct {
	opt Options
}

func New(opt Options) *Generator {
	return &Generator{opt: opt.withDefaults()}
}

// Header is the generator comment placed above every declaration, or ""
// when headers are off.
func (g *Generator) Header() string {
	if g.opt.NoHeader {
		return ""
	}
	return fmt.Sprintf("// Generated by mofkit %s on %s", g.opt.Version, g.opt.Now().Format(time.RFC3339))
}

// Generate dispatches on the declaration kind.
func (g *Generator) Generate(d mof.Declaration) (string, error) {
	switch d := d.(type) {
	case *mof.PragmaDecl:
		return g.Pragma(d), nil
	case *mof.QualifierDecl:
		return g.QualifierDecl(d), nil
	case *mof.ClassDecl:
		return g.Class(d), nil
	case *mof.InstanceDecl:
		return g.Instance(d), nil
	}
	return "", fmt.Errorf("mofgen: unsupported declaration %T", d)
}

func (g *Generator) Pragma(d *mof.PragmaDecl) string {
	s := &slots{name: d.Directive.String()}
	if d.Parameter != "" {
		s.values = []string{d.Parameter}
	}
	return g.render(mof.ProductionCompilerDirective, s)
}

func (g *Generator) QualifierDecl(d *mof.QualifierDecl) string {
	s := &slots{
		name: d.Name,
		typ:  d.Type.Name + arraySuffix(d.Type),
	}
	if d.DefaultValue != nil {
		s.values = []string{Value(d.DefaultValue, &d.Type)}
	}
	for _, sc := range d.Scopes.List() {
		s.scopes = append(s.scopes, sc.String())
	}
	for _, f := range d.Flavors.List() {
		s.flavors = append(s.flavors, f.String())
	}
	return g.render(mof.ProductionQualifier, s)
}

func (g *Generator) Class(d *mof.ClassDecl) string {
	s := &slots{
		name:       d.Name,
		alias:      d.Alias,
		parent:     d.Parent,
		qualifiers: qualifiers(d.Qualifiers),
	}
	for p := range d.Properties.All() {
		s.properties = append(s.properties, member(p.Qualifiers, property(p)))
	}
	for m := range d.Methods.All() {
		s.properties = append(s.properties, member(m.Qualifiers, method(m)))
	}
	return g.render(mof.ProductionClass, s)
}

func (g *Generator) Instance(d *mof.InstanceDecl) string {
	s := &slots{
		name:       d.ClassName,
		alias:      d.Alias,
		qualifiers: qualifiers(d.Qualifiers),
	}
	for p := range d.Properties.All() {
		line := p.Name + " = " + Value(p.Value, &p.Type) + ";"
		if q := qualifiers(p.Qualifiers); len(q) > 0 {
			line = qualifierList(q) + " " + line
		}
		s.properties = append(s.properties, line)
	}
	return g.render(mof.ProductionInstance, s)
}

// Qualifier renders one applied qualifier: Name, Name(v), Name{v, w}, each
// optionally followed by : Flavor Flavor.
func Qualifier(q *mof.Qualifier) string {
	var sb strings.Builder
	sb.WriteString(q.Name)
	if v := Value(q.Value, q.Type); v != Null {
		if strings.HasPrefix(v, "{") {
			sb.WriteString(v)
		} else {
			sb.WriteString("(" + v + ")")
		}
	}
	if q.Flavors.Len() > 0 {
		sb.WriteString(" :")
		for _, f := range q.Flavors.List() {
			sb.WriteString(" " + f.String())
		}
	}
	return sb.String()
}

func qualifiers(set mof.Set[*mof.Qualifier]) []string {
	var out []string
	for q := range set.All() {
		out = append(out, Qualifier(q))
	}
	return out
}

func qualifierList(q []string) string {
	return "[" + strings.Join(q, ", ") + "]"
}

// member puts the qualifier list of a class feature on the line above it.
func member(quals mof.Set[*mof.Qualifier], body string) string {
	if q := qualifiers(quals); len(q) > 0 {
		return qualifierList(q) + "\n" + body
	}
	return body
}

func property(p *mof.PropertyDecl) string {
	line := typedName(p.Type, p.Name)
	if p.Value != nil {
		line += " = " + defaultValue(p.Value, p.Type)
	}
	return line + ";"
}

func method(m *mof.MethodDecl) string {
	params := make([]string, 0, m.Parameters.Len())
	for p := range m.Parameters.All() {
		param := typedName(p.Type, p.Name)
		if q := qualifiers(p.Qualifiers); len(q) > 0 {
			param = qualifierList(q) + " " + param
		}
		params = append(params, param)
	}
	return typedName(m.ReturnType, m.Name) + "(" + strings.Join(params, ", ") + ");"
}

// typedName renders "type name[size]" or "Class REF name".
func typedName(t mof.TypeDecl, name string) string {
	if t.IsRef {
		return t.RefClass + " REF " + name
	}
	return t.Name + " " + name + arraySuffix(t)
}

func arraySuffix(t mof.TypeDecl) string {
	switch {
	case !t.IsArray:
		return ""
	case t.ArraySize >= 0:
		return "[" + strconv.Itoa(t.ArraySize) + "]"
	}
	return "[]"
}

// defaultValue renders a property default. Reference defaults are object
// paths or aliases, not the class name Value would produce.
func defaultValue(values []string, t mof.TypeDecl) string {
	if t.IsRef {
		str := mof.NewType(mof.String)
		if len(values) > 1 {
			str = mof.NewArrayType(mof.String, -1)
		}
		return Value(values, &str)
	}
	return Value(values, &t)
}
