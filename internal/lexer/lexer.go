package lexer

import (
	"mofkit/internal/diag"
	"mofkit/internal/source"
	"mofkit/internal/token"
)

// Lexer splits a MOF document into tokens. Whitespace and comments are not
// tokens; they ride along as the Leading trivia of the token that follows.
// Lexical errors are reported and come back as Invalid tokens, so a caller
// always reaches EOF.
type Lexer struct {
	cur     cursor
	opts    Options
	look    *token.Token
	pending []token.Trivia
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{cur: newCursor(file), opts: opts}
}

// Next returns the next token. After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if tok := lx.look; tok != nil {
		lx.look = nil
		return *tok
	}

	lx.trivia()
	tok := lx.scan()
	tok.Leading, lx.pending = lx.pending, nil
	return tok
}

func (lx *Lexer) scan() token.Token {
	c := &lx.cur
	b := c.at(0)
	switch {
	case c.done():
		return token.Token{Kind: token.EOF, Span: c.span(c.off)}
	case identStart(b) || nonASCII(b):
		return lx.ident()
	case startsNumber(c):
		return lx.number()
	case b == '"':
		return lx.quoted('"', token.StringLit, diag.LexUnterminatedString)
	case b == '\'':
		return lx.quoted('\'', token.CharLit, diag.LexUnterminatedChar)
	case b == '$':
		return lx.alias()
	case b == '#':
		return lx.pragma()
	}
	return lx.punct()
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	if lx.look == nil {
		tok := lx.Next()
		lx.look = &tok
	}
	return *lx.look
}

// All drains the lexer, EOF excluded.
func (lx *Lexer) All() []token.Token {
	var out []token.Token
	for tok := lx.Next(); tok.Kind != token.EOF; tok = lx.Next() {
		out = append(out, tok)
	}
	return out
}

// make builds a token of kind spanning from start to the cursor.
func (lx *Lexer) make(kind token.Kind, start uint32) token.Token {
	sp := lx.cur.span(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.cur.text(sp)}
}

// invalid reports code over start..cursor and returns the Invalid token
// covering it.
func (lx *Lexer) invalid(code diag.Code, start uint32, msg string) token.Token {
	tok := lx.make(token.Invalid, start)
	lx.report(code, tok.Span, msg)
	return tok
}
