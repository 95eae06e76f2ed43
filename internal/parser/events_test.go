package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mofkit/internal/mof"
	"mofkit/internal/parser"
)

const twoProductions = `#pragma include ("core.mof")
#pragma bogus
class A { };`

func kinds(seq func(func(parser.Event) bool)) []string {
	var out []string
	for ev := range seq {
		out = append(out, ev.Kind.String())
	}
	return out
}

func TestEventsSequence(t *testing.T) {
	p := parser.New(parser.Options{})
	var (
		got   []string
		decls []mof.Declaration
		errs  int
	)
	for ev := range p.Events("e.mof", twoProductions) {
		got = append(got, ev.Kind.String())
		switch ev.Kind {
		case parser.EventDecl:
			decls = append(decls, ev.Decl)
		case parser.EventInclude:
			assert.Equal(t, "core.mof", ev.Path)
		case parser.EventError:
			errs++
			assert.ErrorIs(t, ev.Err, parser.ErrInvalidDirective)
		}
	}

	assert.Equal(t, []string{
		"start-document",
		"start-production", "start-decl", "decl", "include", "end-decl", "end-production",
		"start-production", "start-decl", "error", "end-decl", "end-production",
		"start-production", "start-decl", "decl", "end-decl", "end-production",
		"end-document",
	}, got)
	assert.Equal(t, 1, errs)
	require.Len(t, decls, 2)
	assert.Equal(t, mof.ProductionCompilerDirective, decls[0].Production())
	assert.Equal(t, "A", decls[1].DeclName())
}

func TestEventsRestartable(t *testing.T) {
	seq := parser.New(parser.Options{}).Events("e.mof", twoProductions)
	first := kinds(seq)
	second := kinds(seq)
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestEventsBreakStopsParsing(t *testing.T) {
	seq := parser.New(parser.Options{}).Events("e.mof", twoProductions)
	n := 0
	for ev := range seq {
		n++
		if ev.Kind == parser.EventInclude {
			break
		}
	}
	assert.Equal(t, 5, n)
}

func TestEventsProductionKind(t *testing.T) {
	seq := parser.New(parser.Options{}).Events("e.mof", `instance of A { X = 1; };`)
	for ev := range seq {
		if ev.Kind == parser.EventDecl {
			inst, ok := ev.Decl.(*mof.InstanceDecl)
			require.True(t, ok)
			assert.Equal(t, mof.ProductionInstance, ev.Production)
			assert.Equal(t, "A", inst.ClassName)
		}
	}
}

func TestEventsGrammarFailure(t *testing.T) {
	got := kinds(parser.New(parser.Options{}).Events("e.mof", "class {"))
	assert.Equal(t, []string{"start-document", "error", "end-document"}, got)
}
