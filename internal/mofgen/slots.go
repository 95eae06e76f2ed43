package mofgen

import (
	"strings"

	"mofkit/internal/mof"
)

// slots is the named-slot record filled per declaration and laid out by the
// template registered for its kind.
type slots struct {
	header     string
	name       string
	typ        string
	parent     string
	alias      string
	qualifiers []string
	properties []string // one entry per member; may span lines
	values     []string
	scopes     []string
	flavors    []string
}

type template func(w *writer, s *slots)

var templates = map[mof.Production]template{
	mof.ProductionCompilerDirective: pragmaTemplate,
	mof.ProductionQualifier:         qualifierDeclTemplate,
	mof.ProductionClass:             classTemplate,
	mof.ProductionInstance:          instanceTemplate,
}

func (g *Generator) render(kind mof.Production, s *slots) string {
	s.header = g.Header()
	w := newWriter(g.opt)
	if s.header != "" {
		w.line(s.header)
	}
	templates[kind](w, s)
	return w.String()
}

// #pragma name ("value")
func pragmaTemplate(w *writer, s *slots) {
	w.print("#pragma ", s.name)
	if len(s.values) > 0 {
		w.print(` ("`, s.values[0], `")`)
	}
	w.endLine()
}

// Qualifier name : type = value, Scope(...), Flavor(...);
func qualifierDeclTemplate(w *writer, s *slots) {
	w.print("Qualifier ", s.name, " : ", s.typ)
	if len(s.values) > 0 {
		w.print(" = ", s.values[0])
	}
	w.print(", Scope(", strings.Join(s.scopes, ", "), ")")
	if len(s.flavors) > 0 {
		w.print(", Flavor(", strings.Join(s.flavors, ", "), ")")
	}
	w.line(";")
}

// [qualifiers]
// class name as $alias : parent {
//     members
// };
func classTemplate(w *writer, s *slots) {
	if len(s.qualifiers) > 0 {
		w.line(qualifierList(s.qualifiers))
	}
	w.print("class ", s.name)
	if s.alias != "" {
		w.print(" as $", s.alias)
	}
	if s.parent != "" {
		w.print(" : ", s.parent)
	}
	body(w, s.properties)
}

// [qualifiers]
// instance of name as $alias {
//     name = value;
// };
func instanceTemplate(w *writer, s *slots) {
	if len(s.qualifiers) > 0 {
		w.line(qualifierList(s.qualifiers))
	}
	w.print("instance of ", s.name)
	if s.alias != "" {
		w.print(" as $", s.alias)
	}
	body(w, s.properties)
}

func body(w *writer, members []string) {
	w.line(" {")
	w.indented(func() {
		for _, m := range members {
			for l := range strings.SplitSeq(m, "\n") {
				w.line(l)
			}
		}
	})
	w.line("};")
}
