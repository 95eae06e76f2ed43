package handler_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mofkit/internal/handler"
	"mofkit/internal/mof"
	"mofkit/internal/mofgen"
	"mofkit/internal/parser"
)

const sample = `
#pragma include ("qualifiers.mof")
Qualifier Key : boolean = false, Scope(property, reference), Flavor(DisableOverride);
[Abstract] class CIM_A { [Key] string Name; };
#pragma bogus
instance of CIM_A as $First { Name = "one"; };
`

func parse(t *testing.T, h parser.Handler) error {
	t.Helper()
	return parser.New(parser.Options{}).ParseString("sample.mof", sample, h)
}

func TestDefaultCollects(t *testing.T) {
	h := handler.NewDefault(true)
	require.NoError(t, parse(t, h))

	assert.Len(t, h.Pragmas, 1)
	assert.Len(t, h.Qualifiers, 1)
	assert.Len(t, h.Classes, 1)
	assert.Len(t, h.Instances, 1)
	assert.Equal(t, []string{"qualifiers.mof"}, h.Includes)
	require.Len(t, h.Errors, 1)
	assert.ErrorIs(t, h.Errors[0], parser.ErrInvalidDirective)

	var kinds []mof.Production
	for _, d := range h.Declarations() {
		kinds = append(kinds, d.Production())
	}
	assert.Equal(t, []mof.Production{
		mof.ProductionCompilerDirective,
		mof.ProductionQualifier,
		mof.ProductionClass,
		mof.ProductionInstance,
	}, kinds)

	c, ok := h.Class("cim_a")
	require.True(t, ok)
	assert.Equal(t, "CIM_A", c.Name)
	i, ok := h.Instance("FIRST")
	require.True(t, ok)
	assert.Equal(t, "CIM_A", i.ClassName)
	_, ok = h.Qualifier("key")
	assert.True(t, ok)
	_, ok = h.Class("missing")
	assert.False(t, ok)
}

func TestDefaultAbortsWithoutContinue(t *testing.T) {
	h := handler.NewDefault(false)
	err := parse(t, h)
	require.ErrorIs(t, err, parser.ErrInvalidDirective)
	assert.Len(t, h.Classes, 1)
	assert.Empty(t, h.Instances)
}

func TestLoggingIndentsByDepth(t *testing.T) {
	var buf bytes.Buffer
	h := handler.NewLogging(log.NewWithOptions(&buf, log.Options{
		Level:     log.DebugLevel,
		Formatter: log.JSONFormatter,
	}))
	require.NoError(t, parse(t, h))

	out := buf.String()
	assert.Contains(t, out, `"msg":"START document"`)
	assert.Contains(t, out, `"msg":"  START production"`)
	assert.Contains(t, out, `"msg":"    START classDeclaration"`)
	assert.Contains(t, out, `"name":"CIM_A"`)
	assert.Contains(t, out, `"path":"qualifiers.mof"`)
	assert.Contains(t, out, `"code":"EXT3002"`)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, lines[len(lines)-1], `"msg":"END document"`)
}

func TestLoggingText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, parse(t, handler.NewLoggingTo(&buf, log.InfoLevel)))
	assert.Contains(t, buf.String(), "START document")
	assert.NotContains(t, buf.String(), "qualifier on=")
}

func TestGenerateWritesEachDeclaration(t *testing.T) {
	var buf bytes.Buffer
	gen := mofgen.New(mofgen.Options{NoHeader: true})
	h := handler.NewGenerate(&buf, gen, true)
	require.NoError(t, parse(t, h))

	out := buf.String()
	assert.Contains(t, out, `#pragma include ("qualifiers.mof")`)
	assert.Contains(t, out, "Qualifier Key : boolean = false, Scope(property, reference), Flavor(DisableOverride);")
	assert.Contains(t, out, "class CIM_A {")
	assert.Contains(t, out, "instance of CIM_A as $First {")
	assert.Len(t, h.Classes, 1)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestGenerateWriteFailureAborts(t *testing.T) {
	gen := mofgen.New(mofgen.Options{Now: func() time.Time { return time.Unix(0, 0) }})
	err := parse(t, handler.NewGenerate(failingWriter{}, gen, true))
	assert.EqualError(t, err, "disk full")
}

type refuseClasses struct {
	parser.Base
	err error
}

func (r refuseClasses) ClassDecl(*mof.ClassDecl) error { return r.err }
func (refuseClasses) Error(*parser.Error) error        { return nil }

func TestMultiFansOut(t *testing.T) {
	a := handler.NewDefault(true)
	b := handler.NewDefault(true)
	require.NoError(t, parse(t, handler.Multi{a, b}))
	assert.Len(t, b.Classes, 1)
	assert.Len(t, a.Errors, 1)
	assert.Len(t, b.Errors, 1)

	stop := errors.New("stop")
	c := handler.NewDefault(true)
	err := parse(t, handler.Multi{refuseClasses{err: stop}, c})
	require.ErrorIs(t, err, stop)
	assert.Empty(t, c.Classes)
	assert.Len(t, c.Qualifiers, 1)
}

func TestMultiErrorAbortsIfAnyReRaises(t *testing.T) {
	lenient := handler.NewDefault(true)
	strict := handler.NewDefault(false)
	err := parse(t, handler.Multi{lenient, strict})
	require.ErrorIs(t, err, parser.ErrInvalidDirective)
	assert.Len(t, lenient.Errors, 1)
}
