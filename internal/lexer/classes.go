package lexer

import (
	"unicode"
	"unicode/utf8"
)

// blank is intra-line whitespace. A CR that was not part of a CRLF pair
// lands here too.
func blank(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\f', '\v':
		return true
	}
	return false
}

func newline(b byte) bool { return b == '\n' }

func digit(b byte) bool { return '0' <= b && b <= '9' }

func hexDigit(b byte) bool {
	return digit(b) || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}

func identStart(b byte) bool {
	return b == '_' || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func identByte(b byte) bool { return identStart(b) || digit(b) }

// Identifiers may use any Unicode letter beyond ASCII.
func identStartRune(r rune) bool { return r == '_' || unicode.IsLetter(r) }

func identRune(r rune) bool { return identStartRune(r) || unicode.IsDigit(r) }

// startsNumber reports whether the input at c opens a numeric literal:
// 42, .5, -1, +2 or -.5.
func startsNumber(c *cursor) bool {
	b := c.at(0)
	if b == '-' || b == '+' {
		b = c.at(1)
		if b == '.' {
			return digit(c.at(2))
		}
		return digit(b)
	}
	if b == '.' {
		return digit(c.at(1))
	}
	return digit(b)
}

func nonASCII(b byte) bool { return b >= utf8.RuneSelf }
