package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mofkit/internal/mof"
	"mofkit/internal/parser"
)

// recorder logs every notification and keeps the declarations. Its Error
// swallows failures so the parse continues.
type recorder struct {
	events     []string
	pragmas    []*mof.PragmaDecl
	qualifiers []*mof.QualifierDecl
	classes    []*mof.ClassDecl
	instances  []*mof.InstanceDecl
	includes   []string
	errs       []*parser.Error
}

func (r *recorder) log(ev string) error {
	r.events = append(r.events, ev)
	return nil
}

func (r *recorder) StartDocument() error { return r.log("startDocument") }
func (r *recorder) EndDocument() error   { return r.log("endDocument") }

func (r *recorder) StartProduction(kind mof.Production) error {
	return r.log("startProduction:" + kind.String())
}

func (r *recorder) EndProduction() error          { return r.log("endProduction") }
func (r *recorder) StartCompilerDirective() error { return r.log("startCompilerDirective") }
func (r *recorder) EndCompilerDirective() error   { return r.log("endCompilerDirective") }
func (r *recorder) StartQualifierDecl() error     { return r.log("startQualifierDecl") }
func (r *recorder) EndQualifierDecl() error       { return r.log("endQualifierDecl") }
func (r *recorder) StartClassDecl() error         { return r.log("startClassDecl") }
func (r *recorder) EndClassDecl() error           { return r.log("endClassDecl") }
func (r *recorder) StartInstanceDecl() error      { return r.log("startInstanceDecl") }
func (r *recorder) EndInstanceDecl() error        { return r.log("endInstanceDecl") }

func (r *recorder) CompilerDirective(d *mof.PragmaDecl) error {
	r.pragmas = append(r.pragmas, d)
	return r.log("compilerDirective")
}

func (r *recorder) QualifierDecl(d *mof.QualifierDecl) error {
	r.qualifiers = append(r.qualifiers, d)
	return r.log("qualifierDecl")
}

func (r *recorder) ClassDecl(d *mof.ClassDecl) error {
	r.classes = append(r.classes, d)
	return r.log("classDecl")
}

func (r *recorder) InstanceDecl(d *mof.InstanceDecl) error {
	r.instances = append(r.instances, d)
	return r.log("instanceDecl")
}

func (r *recorder) Include(path string) {
	r.includes = append(r.includes, path)
	_ = r.log("include") //nolint:errcheck
}

func (r *recorder) Error(err *parser.Error) error {
	r.errs = append(r.errs, err)
	return r.log("error:" + err.Code.ID())
}

func record(t *testing.T, input string) *recorder {
	t.Helper()
	rec := &recorder{}
	require.NoError(t, parser.New(parser.Options{}).ParseString("test.mof", input, rec))
	return rec
}

func onlyClass(t *testing.T, input string) *mof.ClassDecl {
	t.Helper()
	rec := record(t, input)
	require.Empty(t, rec.errs)
	require.Len(t, rec.classes, 1)
	return rec.classes[0]
}

func onlyInstance(t *testing.T, input string) *mof.InstanceDecl {
	t.Helper()
	rec := record(t, input)
	require.Empty(t, rec.errs)
	require.Len(t, rec.instances, 1)
	return rec.instances[0]
}
