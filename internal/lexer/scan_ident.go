package lexer

import (
	"mofkit/internal/diag"
	"mofkit/internal/token"
)

func (lx *Lexer) ident() token.Token {
	start := lx.cur.off
	if r, _ := lx.cur.peekRune(); !identStartRune(r) {
		lx.cur.nextRune()
		return lx.invalid(diag.LexUnknownChar, start, "unexpected character")
	}
	lx.identTail()
	return lx.make(token.Ident, start)
}

func (lx *Lexer) identTail() {
	c := &lx.cur
	for {
		c.skip(identByte)
		if !nonASCII(c.at(0)) {
			return
		}
		if r, _ := c.peekRune(); !identRune(r) {
			return
		}
		c.nextRune()
	}
}

// $Name
func (lx *Lexer) alias() token.Token {
	start := lx.cur.off
	lx.cur.next()
	if r, size := lx.cur.peekRune(); size == 0 || !identStartRune(r) {
		return lx.invalid(diag.LexBadAlias, start, "expected identifier after '$'")
	}
	lx.identTail()
	return lx.make(token.Alias, start)
}

// #pragma, with the keyword in any case.
func (lx *Lexer) pragma() token.Token {
	start := lx.cur.off
	lx.cur.next()
	word := lx.cur.off
	lx.identTail()
	if !token.IsKeyword(lx.cur.text(lx.cur.span(word)), "pragma") {
		return lx.invalid(diag.LexBadPragma, start, "expected 'pragma' after '#'")
	}
	return lx.make(token.Pragma, start)
}
