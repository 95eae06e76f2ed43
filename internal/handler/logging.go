package handler

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"mofkit/internal/mof"
	"mofkit/internal/parser"
)

// Logging writes one record per event, indented by nesting depth, with the
// declaration fields as key/value pairs. Errors are logged and swallowed.
type Logging struct {
	logger *log.Logger
	depth  int
}

// NewLogging wraps logger. A nil logger gets a default one on stderr.
func NewLogging(logger *log.Logger) *Logging {
	if logger == nil {
		logger = log.Default()
	}
	return &Logging{logger: logger}
}

// NewLoggingTo builds a Logging handler writing to w at level.
func NewLoggingTo(w io.Writer, level log.Level) *Logging {
	return NewLogging(log.NewWithOptions(w, log.Options{
		Prefix: "mof",
		Level:  level,
	}))
}

func (h *Logging) indent() string {
	return strings.Repeat("  ", h.depth)
}

func (h *Logging) start(what string, kv ...any) error {
	h.logger.Info(h.indent()+"START "+what, kv...)
	h.depth++
	return nil
}

func (h *Logging) end(what string) error {
	if h.depth > 0 {
		h.depth--
	}
	h.logger.Info(h.indent() + "END " + what)
	return nil
}

func (h *Logging) StartDocument() error { return h.start("document") }
func (h *Logging) EndDocument() error   { return h.end("document") }

func (h *Logging) StartProduction(kind mof.Production) error {
	return h.start("production", "kind", kind.String())
}

func (h *Logging) EndProduction() error          { return h.end("production") }
func (h *Logging) StartCompilerDirective() error { return h.start("compilerDirective") }
func (h *Logging) EndCompilerDirective() error   { return h.end("compilerDirective") }
func (h *Logging) StartQualifierDecl() error     { return h.start("qualifierDeclaration") }
func (h *Logging) EndQualifierDecl() error       { return h.end("qualifierDeclaration") }
func (h *Logging) StartClassDecl() error         { return h.start("classDeclaration") }
func (h *Logging) EndClassDecl() error           { return h.end("classDeclaration") }
func (h *Logging) StartInstanceDecl() error      { return h.start("instanceDeclaration") }
func (h *Logging) EndInstanceDecl() error        { return h.end("instanceDeclaration") }

func (h *Logging) CompilerDirective(d *mof.PragmaDecl) error {
	h.logger.Info(h.indent()+"pragma", "name", d.Directive.String(), "parameter", d.Parameter)
	return nil
}

func (h *Logging) QualifierDecl(d *mof.QualifierDecl) error {
	h.logger.Info(h.indent()+"qualifierDeclaration",
		"name", d.Name,
		"type", d.Type.Name,
		"isArray", d.Type.IsArray,
		"arraySize", d.Type.ArraySize,
		"defaultValue", d.DefaultValue,
		"scopes", d.Scopes.String(),
		"flavors", d.Flavors.String(),
	)
	return nil
}

func (h *Logging) ClassDecl(d *mof.ClassDecl) error {
	kv := []any{"name", d.Name, "parentClass", d.Parent}
	if d.Alias != "" {
		kv = append(kv, "alias", d.Alias)
	}
	h.logger.Info(h.indent()+"classDeclaration", kv...)
	for q := range d.Qualifiers.All() {
		h.qualifier("class", q)
	}
	for p := range d.Properties.All() {
		h.logger.Info(h.indent()+" property",
			"name", p.Name,
			"type", typeName(p.Type),
			"isArray", p.Type.IsArray,
			"defaultValue", p.Value,
		)
		for q := range p.Qualifiers.All() {
			h.qualifier("property", q)
		}
	}
	for m := range d.Methods.All() {
		h.logger.Info(h.indent()+" method", "name", m.Name, "returns", typeName(m.ReturnType), "parameters", m.Parameters.Len())
	}
	return nil
}

func (h *Logging) InstanceDecl(d *mof.InstanceDecl) error {
	h.logger.Info(h.indent()+"instanceDeclaration", "className", d.ClassName, "alias", d.Alias)
	for p := range d.Properties.All() {
		h.logger.Info(h.indent()+" property", "name", p.Name, "value", p.Value, "isArray", p.Type.IsArray)
	}
	return nil
}

func (h *Logging) qualifier(on string, q *mof.Qualifier) {
	h.logger.Debug(h.indent()+"  qualifier", "on", on, "name", q.Name, "value", q.Value, "flavors", q.Flavors.String())
}

func (h *Logging) Include(path string) {
	h.logger.Info(h.indent()+"include", "path", path)
}

func (h *Logging) Error(err *parser.Error) error {
	kv := []any{"code", err.Code.ID(), "message", err.Msg}
	if err.Value != "" {
		kv = append(kv, "value", err.Value)
	}
	if err.Cause != nil {
		kv = append(kv, "cause", err.Cause)
	}
	h.logger.Error(h.indent()+"error", kv...)
	return nil
}

func typeName(t mof.TypeDecl) string {
	if t.IsRef {
		return t.RefClass + " REF"
	}
	return t.Name
}

var _ parser.Handler = (*Logging)(nil)
