package lexer

import (
	"mofkit/internal/diag"
	"mofkit/internal/token"
)

func binaryDigit(b byte) bool { return b == '0' || b == '1' }

// number scans the MOF integer and real forms, each with an optional sign:
// 0x1F, 0755, 1010b, 42, 1.5, .5, 2.0e-3. Octal needs no special case; it
// is validated when the value is used.
func (lx *Lexer) number() token.Token {
	c := &lx.cur
	start := c.off
	c.acceptAny("+-")

	if c.at(0) == '0' && (c.at(1) == 'x' || c.at(1) == 'X') {
		c.off += 2
		if c.skip(hexDigit) == 0 {
			return lx.invalid(diag.LexBadNumber, start, "expected hex digit after 0x")
		}
		return lx.endNumber(token.IntLit, start)
	}

	digits := c.off
	n := c.skip(digit)
	if n > 0 && (c.at(0) == 'b' || c.at(0) == 'B') && allBinary(c.src[digits:c.off]) {
		c.off++
		return lx.endNumber(token.IntLit, start)
	}

	kind := token.IntLit
	if c.accept('.') {
		if c.skip(digit) == 0 {
			return lx.invalid(diag.LexBadNumber, start, "expected digit after '.'")
		}
		kind = token.RealLit
	}
	if c.acceptAny("eE") {
		c.acceptAny("+-")
		if c.skip(digit) == 0 {
			return lx.invalid(diag.LexBadNumber, start, "expected digit after exponent")
		}
		kind = token.RealLit
	}
	return lx.endNumber(kind, start)
}

func allBinary(ds []byte) bool {
	for _, d := range ds {
		if !binaryDigit(d) {
			return false
		}
	}
	return true
}

// endNumber rejects a literal glued to identifier characters, as in 12abc.
func (lx *Lexer) endNumber(kind token.Kind, start uint32) token.Token {
	if lx.cur.skip(identByte) > 0 {
		return lx.invalid(diag.LexBadNumber, start, "malformed number literal")
	}
	return lx.make(kind, start)
}
