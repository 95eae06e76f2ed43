package lexer

import (
	"mofkit/internal/diag"
	"mofkit/internal/token"
)

// trivia collects whitespace and comments ahead of the next token into
// lx.pending. Runs of blanks and runs of newlines become one trivia each.
func (lx *Lexer) trivia() {
	c := &lx.cur
	for {
		start := c.off
		switch {
		case c.skip(blank) > 0:
			lx.keep(token.TriviaSpace, start)
		case c.skip(newline) > 0:
			lx.keep(token.TriviaNewline, start)
		case c.at(0) == '/' && c.at(1) == '/':
			c.skip(func(b byte) bool { return b != '\n' })
			lx.keep(token.TriviaLineComment, start)
		case c.at(0) == '/' && c.at(1) == '*':
			lx.blockComment()
			lx.keep(token.TriviaBlockComment, start)
		default:
			return
		}
	}
}

func (lx *Lexer) keep(kind token.TriviaKind, start uint32) {
	sp := lx.cur.span(start)
	lx.pending = append(lx.pending, token.Trivia{Kind: kind, Span: sp, Text: lx.cur.text(sp)})
}

// blockComment consumes /* ... */. MOF block comments do not nest.
func (lx *Lexer) blockComment() {
	c := &lx.cur
	start := c.off
	c.off += 2
	for !c.done() {
		if c.next() == '*' && c.accept('/') {
			return
		}
	}
	lx.report(diag.LexUnterminatedBlockComment, c.span(start), "unterminated block comment")
}
