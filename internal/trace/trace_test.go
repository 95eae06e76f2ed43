package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelShouldEmit(t *testing.T) {
	assert.False(t, LevelOff.ShouldEmit(ScopeDriver))
	assert.False(t, LevelError.ShouldEmit(ScopeDriver))
	assert.True(t, LevelPhase.ShouldEmit(ScopePass))
	assert.False(t, LevelPhase.ShouldEmit(ScopeFile))
	assert.True(t, LevelDetail.ShouldEmit(ScopeFile))
	assert.False(t, LevelDetail.ShouldEmit(ScopeProduction))
	assert.True(t, LevelDebug.ShouldEmit(ScopeProduction))
}

func TestLevelAdmitsFailures(t *testing.T) {
	failed := &Event{Scope: ScopeProduction, Failed: true}
	assert.True(t, LevelError.Admits(failed))
	assert.True(t, LevelPhase.Admits(failed))
	assert.False(t, LevelOff.Admits(failed))
	assert.False(t, LevelError.Admits(&Event{Scope: ScopeDriver}))
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("DETAIL")
	require.NoError(t, err)
	assert.Equal(t, LevelDetail, lvl)

	_, err = ParseLevel("verbose")
	assert.Error(t, err)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("Ring")
	require.NoError(t, err)
	assert.Equal(t, ModeRing, m)
	assert.Equal(t, "both", ModeBoth.String())

	_, err = ParseMode("disk")
	assert.Error(t, err)
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatText)

	file := Begin(tr, ScopeFile, "core.mof", SpanContext{})
	prod := Begin(tr, ScopeProduction, "class:CIM_ManagedElement", file.Context())
	prod.WithAttr("props", "1").WithAttr("props", "2").End("ok")
	file.End("")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "[file] ")
	assert.Contains(t, lines[0], "→ core.mof")
	assert.Contains(t, lines[2], "[production] core.mof")
	assert.Contains(t, lines[2], "← class:CIM_ManagedElement (ok) {props=2}")
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDebug, FormatNDJSON)
	Point(tr, ScopeProduction, "class:CIM_ManagedElement", "", SpanContext{SpanID: 7, File: "core.mof"})

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "point", got["kind"])
	assert.Equal(t, "production", got["scope"])
	assert.Equal(t, "core.mof", got["file"])
	assert.InDelta(t, 7, got["parent_id"], 0)
	assert.NotContains(t, got, "failed")
}

func TestLevelFiltersScopes(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatText)
	sp := Begin(tr, ScopeProduction, "class:X", SpanContext{})
	sp.End("")
	assert.Zero(t, sp.ID())
	assert.Empty(t, buf.String())
}

func TestErrorLevelStreamsOnlyFailures(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelError, FormatText)

	ok := Begin(tr, ScopeFile, "good.mof", SpanContext{})
	ok.End("")
	bad := Begin(tr, ScopeFile, "bad.mof", SpanContext{})
	bad.Fail(errors.New("unexpected token"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "✗ bad.mof (error: unexpected token)")
}

func TestRingTracerWraps(t *testing.T) {
	r := NewRingTracer(3, LevelDebug)
	for i := range 5 {
		Point(r, ScopeFile, string(rune('a'+i)), "", SpanContext{})
	}
	snap := r.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, "c", snap[0].Name)
	assert.Equal(t, "e", snap[2].Name)

	var buf bytes.Buffer
	require.NoError(t, r.Dump(&buf, FormatText))
	assert.Equal(t, 3, strings.Count(buf.String(), "\n"))
}

func TestRingAtErrorLevelKeepsContext(t *testing.T) {
	r := NewRingTracer(8, LevelError)
	Point(r, ScopeDriver, "start", "", SpanContext{})
	assert.Len(t, r.Snapshot(), 1)
	assert.False(t, r.ShouldDump())

	Failure(r, ScopeFile, "extract", errors.New("boom"), SpanContext{File: "x.mof"})
	assert.True(t, r.Failed())
	assert.True(t, r.ShouldDump())
	assert.Len(t, r.Snapshot(), 2)

	assert.True(t, NewRingTracer(1, LevelDetail).ShouldDump())
}

func TestNewBothMode(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelDetail, Mode: ModeBoth, Output: &buf})
	require.NoError(t, err)
	multi, ok := tr.(*MultiTracer)
	require.True(t, ok)

	Point(tr, ScopeDriver, "start", "", SpanContext{})
	ring, ok := multi.Ring()
	require.True(t, ok)
	assert.Len(t, ring.Snapshot(), 1)
	assert.Contains(t, buf.String(), "start")
	assert.NoError(t, tr.Close())
}

func TestNewOffIsNop(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	require.NoError(t, err)
	assert.False(t, tr.Enabled())
}

func TestResolvedFormat(t *testing.T) {
	assert.Equal(t, FormatNDJSON, Config{OutputPath: "out.jsonl"}.ResolvedFormat())
	assert.Equal(t, FormatText, Config{OutputPath: "-"}.ResolvedFormat())
	assert.Equal(t, FormatNDJSON, Config{Format: FormatNDJSON, OutputPath: "t.txt"}.ResolvedFormat())
}

func TestBeginCtxCarriesFile(t *testing.T) {
	r := NewRingTracer(16, LevelDebug)
	ctx := WithTracer(context.Background(), r)

	outer, ctx := BeginCtx(ctx, ScopeFile, "a.mof")
	inner, ctx := BeginCtx(ctx, ScopeProduction, "class:A")
	assert.Equal(t, SpanContext{SpanID: inner.ID(), File: "a.mof"}, CurrentSpan(ctx))
	inner.End("")
	outer.End("")

	snap := r.Snapshot()
	require.Len(t, snap, 4)
	assert.Equal(t, outer.ID(), snap[1].ParentID)
	assert.Equal(t, "a.mof", snap[1].File)
}
