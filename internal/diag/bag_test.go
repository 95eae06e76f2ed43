package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mofkit/internal/diag"
	"mofkit/internal/source"
)

func TestBagLimitAndSeverity(t *testing.T) {
	bag := diag.NewBag(2)
	require.True(t, bag.Add(diag.New(diag.SevWarning, diag.LexBadNumber, source.Span{}, "w")))
	assert.False(t, bag.HasErrors())
	assert.True(t, bag.HasWarnings())

	require.True(t, bag.Add(diag.NewError(diag.SynUnexpectedToken, source.Span{}, "e")))
	assert.False(t, bag.Add(diag.NewError(diag.SynUnexpectedToken, source.Span{}, "dropped")))
	assert.Equal(t, 2, bag.Len())
	assert.True(t, bag.HasErrors())
}

func TestBagSortAndDedup(t *testing.T) {
	bag := diag.NewBag(10)
	r := diag.BagReporter{Bag: bag}
	r.Report(diag.SynExpectSemicolon, diag.SevError, source.Span{Start: 9, End: 10}, "b", nil)
	r.Report(diag.LexUnknownChar, diag.SevError, source.Span{Start: 1, End: 2}, "a", nil)
	r.Report(diag.LexUnknownChar, diag.SevError, source.Span{Start: 1, End: 2}, "a again", nil)

	bag.Sort()
	bag.Dedup()
	items := bag.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].Message)
	assert.Equal(t, diag.SynExpectSemicolon, items[1].Code)
}

func TestFirstErrorKeepsFirst(t *testing.T) {
	bag := diag.NewBag(10)
	r := &diag.FirstError{Next: diag.BagReporter{Bag: bag}}
	sp := source.Span{Start: 3, End: 4}
	r.Report(diag.LexBadNumber, diag.SevWarning, sp, "odd number", nil)
	_, ok := r.First()
	assert.False(t, ok)

	r.Report(diag.LexBadAlias, diag.SevError, sp, "bad alias", nil)
	r.Report(diag.LexUnknownChar, diag.SevError, sp, "later", nil)
	first, ok := r.First()
	require.True(t, ok)
	assert.Equal(t, diag.LexBadAlias, first.Code)
	assert.Equal(t, 3, bag.Len())
}

func TestWithNoteCopies(t *testing.T) {
	sp := source.Span{File: 1, Start: 0, End: 5}
	base := diag.Errorf(diag.ExtInvalidDirective, sp, "bad %s", "pragma").WithNote(sp, "one")
	a := base.WithNote(sp, "two")
	b := base.WithNote(sp, "three")
	assert.Equal(t, "bad pragma", base.Message)
	assert.Len(t, base.Notes, 1)
	assert.Equal(t, "two", a.Notes[1].Msg)
	assert.Equal(t, "three", b.Notes[1].Msg)
	assert.True(t, base.Located())
	assert.False(t, diag.NewError(diag.IOLoadFailed, source.Span{}, "x").Located())
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "WARNING", diag.SevWarning.String())
	assert.Equal(t, "UNKNOWN", diag.Severity(7).String())
}

func TestCodeID(t *testing.T) {
	assert.Equal(t, "LEX1002", diag.LexUnterminatedString.ID())
	assert.Equal(t, "SYN2001", diag.SynUnexpectedToken.ID())
	assert.Equal(t, "EXT3002", diag.ExtInvalidDirective.ID())
	assert.Equal(t, "Invalid compiler directive", diag.ExtInvalidDirective.Title())
	assert.Equal(t, "Unknown error", diag.Code(9999).Title())
}
