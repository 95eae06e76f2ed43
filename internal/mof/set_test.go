package mof_test

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"mofkit/internal/mof"
)

func TestSetKeepsFirstAndIgnoresCase(t *testing.T) {
	var s mof.Set[*mof.Qualifier]
	require.True(t, s.Add(&mof.Qualifier{Name: "Description", Value: []string{"first"}}))
	require.True(t, s.Add(&mof.Qualifier{Name: "Key"}))
	assert.False(t, s.Add(&mof.Qualifier{Name: "DESCRIPTION", Value: []string{"second"}}))

	assert.Equal(t, 2, s.Len())
	q, ok := s.Get("description")
	require.True(t, ok)
	assert.Equal(t, []string{"first"}, q.Value)
	assert.True(t, s.Has("KEY"))
	assert.False(t, s.Has("Abstract"))

	var names []string
	for q := range s.All() {
		names = append(names, q.Name)
	}
	assert.Equal(t, []string{"Description", "Key"}, names)
}

func TestSetFoldsUnicode(t *testing.T) {
	s := mof.NewSet(&mof.Qualifier{Name: "Straße"})
	assert.True(t, s.Has("STRASSE"))
}

func TestSetItemsIsACopy(t *testing.T) {
	s := mof.NewSet(&mof.Qualifier{Name: "A"}, &mof.Qualifier{Name: "B"})
	items := s.Items()
	slices.Reverse(items)
	assert.Equal(t, "A", s.Items()[0].Name)
	assert.Nil(t, mof.Set[*mof.Qualifier]{}.Items())
}

func sampleClass() *mof.ClassDecl {
	c := &mof.ClassDecl{Name: "CIM_ManagedElement", Parent: "CIM_Base"}
	c.Qualifiers.Add(&mof.Qualifier{Name: "Abstract"})
	c.Qualifiers.Add(&mof.Qualifier{Name: "Description", Value: []string{"root"}, Flavors: mof.ParseFlavors("ToSubclass", "Translatable")})
	c.Properties.Add(&mof.PropertyDecl{Name: "Caption", Type: mof.NewType(mof.String)})
	c.Properties.Add(&mof.PropertyDecl{Name: "Codes", Type: mof.NewArrayType(mof.Uint16, -1), Value: []string{"1", "2"}})
	m := &mof.MethodDecl{Name: "Reset", ReturnType: mof.NewType(mof.Uint32)}
	m.Parameters.Add(&mof.ParameterDecl{Name: "Target", Type: mof.NewRefType("CIM_X")})
	c.Methods.Add(m)
	return c
}

func TestClassSurvivesJSON(t *testing.T) {
	c := sampleClass()
	b, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"flavors":["ToSubclass","Translatable"]`)

	var back mof.ClassDecl
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, c, &back)
}

func TestClassSurvivesMsgpack(t *testing.T) {
	c := sampleClass()
	b, err := msgpack.Marshal(c)
	require.NoError(t, err)

	var back mof.ClassDecl
	require.NoError(t, msgpack.Unmarshal(b, &back))
	assert.Equal(t, c, &back)
	assert.True(t, back.Properties.Has("caption"))
}
