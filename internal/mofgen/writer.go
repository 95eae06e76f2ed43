package mofgen

import "strings"

// writer lays out one declaration. Text written at the start of a line is
// indented to the current depth; blank lines stay empty.
type writer struct {
	sb      strings.Builder
	unit    string          // one level of indentation
	depth   int
	midLine bool
}

func newWriter(opt Options) *writer {
	unit := "\t"
	if !opt.UseTabs {
		unit = strings.Repeat(" ", opt.IndentWidth)
	}
	return &writer{unit: unit}
}

// print writes parts on the current line.
func (w *writer) print(parts ...string) {
	for _, p := range parts {
		if p == "" {
			continue
		}
		if !w.midLine {
			w.sb.WriteString(strings.Repeat(w.unit, w.depth))
			w.midLine = true
		}
		w.sb.WriteString(p)
	}
}

// line writes parts and ends the line.
func (w *writer) line(parts ...string) {
	w.print(parts...)
	w.sb.WriteByte('\n')
	w.midLine = false
}

// endLine ends the current line if anything is on it.
func (w *writer) endLine() {
	if w.midLine {
		w.line()
	}
}

// indented runs fn one level deeper.
func (w *writer) indented(fn func()) {
	w.depth++
	fn()
	w.depth--
}

func (w *writer) String() string { return w.sb.String() }
