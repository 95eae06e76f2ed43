package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"mofkit/internal/source"
)

// cursor walks the bytes of one document. Looking past the end yields 0,
// which no MOF token starts or continues with.
type cursor struct {
	src  []byte
	file source.FileID
	off  uint32
}

func newCursor(f *source.File) cursor {
	if _, err := safecast.Conv[uint32](len(f.Content)); err != nil {
		panic(fmt.Errorf("lexer: %s: %w", f.Path, err))
	}
	return cursor{src: f.Content, file: f.ID}
}

func (c *cursor) done() bool { return int(c.off) >= len(c.src) }

// at returns the byte n positions ahead.
func (c *cursor) at(n uint32) byte {
	if i := int(c.off + n); i < len(c.src) {
		return c.src[i]
	}
	return 0
}

func (c *cursor) next() byte {
	b := c.at(0)
	if !c.done() {
		c.off++
	}
	return b
}

// accept consumes b if it comes next.
func (c *cursor) accept(b byte) bool {
	if c.done() || c.src[c.off] != b {
		return false
	}
	c.off++
	return true
}

// acceptAny consumes the next byte if it is one of set.
func (c *cursor) acceptAny(set string) bool {
	for i := range len(set) {
		if c.accept(set[i]) {
			return true
		}
	}
	return false
}

// skip consumes the longest run of bytes matching ok and returns its length.
func (c *cursor) skip(ok func(byte) bool) int {
	n := 0
	for !c.done() && ok(c.src[c.off]) {
		c.off++
		n++
	}
	return n
}

// peekRune decodes the rune at the cursor; size is 0 at the end.
func (c *cursor) peekRune() (r rune, size int) {
	if c.done() {
		return utf8.RuneError, 0
	}
	if b := c.src[c.off]; b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRune(c.src[c.off:])
}

func (c *cursor) nextRune() rune {
	r, size := c.peekRune()
	c.off += uint32(size) // #nosec G115 -- size <= utf8.UTFMax
	return r
}

func (c *cursor) span(start uint32) source.Span {
	return source.Span{File: c.file, Start: start, End: c.off}
}

func (c *cursor) text(sp source.Span) string {
	return string(c.src[sp.Start:sp.End])
}
