package token

import (
	"mofkit/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token can start a constant value.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, RealLit, StringLit, CharLit:
		return true
	case Ident:
		return IsKeyword(t.Text, "true") || IsKeyword(t.Text, "false") || IsKeyword(t.Text, "null")
	default:
		return false
	}
}

// IsPunct reports whether the token is punctuation.
func (t Token) IsPunct() bool {
	_, ok := punctText[t.Kind]
	return ok
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// Is reports whether the token is the identifier kw, ignoring case.
func (t Token) Is(kw string) bool {
	return t.Kind == Ident && IsKeyword(t.Text, kw)
}
