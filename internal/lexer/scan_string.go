package lexer

import (
	"mofkit/internal/diag"
	"mofkit/internal/token"
)

// quoted scans a string or char literal. The token keeps its quotes and
// escapes; extraction unescapes later. A literal may not span lines.
func (lx *Lexer) quoted(quote byte, kind token.Kind, code diag.Code) token.Token {
	c := &lx.cur
	start := c.off
	c.next()
	for !c.done() {
		switch c.next() {
		case quote:
			return lx.make(kind, start)
		case '\\':
			if c.done() {
				break
			}
			c.next()
		case '\n':
			c.off--
			return lx.invalid(code, start, "newline in "+kind.Describe()+" literal")
		}
	}
	return lx.invalid(code, start, "unterminated "+kind.Describe()+" literal")
}
