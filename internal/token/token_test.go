package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mofkit/internal/token"
)

func TestKeywordsAreCaseInsensitive(t *testing.T) {
	for _, w := range []string{"class", "CLASS", "Class", "Qualifier", "ToSubclass", "REF"} {
		assert.True(t, token.LookupKeyword(w), w)
	}
	for _, w := range []string{"CIM_ManagedElement", "Description", "include"} {
		assert.False(t, token.LookupKeyword(w), w)
	}
}

func TestTokenIs(t *testing.T) {
	tok := token.Token{Kind: token.Ident, Text: "INSTANCE"}
	assert.True(t, tok.Is("instance"))
	assert.False(t, tok.Is("class"))

	str := token.Token{Kind: token.StringLit, Text: `"instance"`}
	assert.False(t, str.Is("instance"))
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Token{
		{Kind: token.IntLit, Text: "42"},
		{Kind: token.RealLit, Text: "1.5"},
		{Kind: token.StringLit, Text: `"x"`},
		{Kind: token.CharLit, Text: `'x'`},
		{Kind: token.Ident, Text: "TRUE"},
		{Kind: token.Ident, Text: "Null"},
	}
	for _, tok := range lits {
		assert.True(t, tok.IsLiteral(), tok.Text)
	}
	assert.False(t, token.Token{Kind: token.Ident, Text: "Key"}.IsLiteral())
	assert.False(t, token.Token{Kind: token.Comma}.IsLiteral())
}

func TestKindDescribe(t *testing.T) {
	assert.Equal(t, "';'", token.Semicolon.Describe())
	assert.Equal(t, "identifier", token.Ident.Describe())
	assert.Equal(t, "end of file", token.EOF.Describe())
	assert.Equal(t, "RBrace", token.RBrace.String())
}
