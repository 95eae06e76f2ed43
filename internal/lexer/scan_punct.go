package lexer

import (
	"mofkit/internal/diag"
	"mofkit/internal/token"
)

var punctuation = [256]token.Kind{
	'{': token.LBrace, '}': token.RBrace,
	'[': token.LBracket, ']': token.RBracket,
	'(': token.LParen, ')': token.RParen,
	',': token.Comma, ';': token.Semicolon, ':': token.Colon,
	'=': token.Assign, '.': token.Dot,
}

func (lx *Lexer) punct() token.Token {
	start := lx.cur.off
	if k := punctuation[lx.cur.next()]; k != token.Invalid {
		return lx.make(k, start)
	}
	return lx.invalid(diag.LexUnknownChar, start, "unexpected character")
}
