package source

import "fmt"

// Span is the half-open byte range [Start, End) of one file.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

func (s Span) Empty() bool { return s.Start == s.End }
func (s Span) Len() uint32 { return s.End - s.Start }

// String renders file:start-end; it is used as a stable map key in tests
// and trace output, not for display.
func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover widens s to include other. A span of another file leaves s as is.
func (s Span) Cover(other Span) Span {
	if s.File == other.File {
		s.Start = min(s.Start, other.Start)
		s.End = max(s.End, other.End)
	}
	return s
}

// LineCol is a 1-based line and column; columns count bytes.
type LineCol struct {
	Line uint32
	Col  uint32
}
