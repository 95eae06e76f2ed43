package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"mofkit/internal/diag"
	"mofkit/internal/source"
)

type palette struct {
	err, warn, info, code, caret, gutter, note *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		code:   color.New(color.Bold),
		caret:  color.New(color.FgGreen, color.Bold),
		gutter: color.New(color.FgBlue),
		note:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.caret, p.gutter, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	}
	return p.info
}

// Pretty writes each diagnostic as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line with the span underlined ^~~~ and, with
// ShowNotes, the notes. The bag is expected to be sorted.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		if err := prettyOne(w, d, fs, opts, p); err != nil {
			return err
		}
	}
	return nil
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) error {
	sev := p.severity(d.Severity).Sprint(d.Severity.String())
	code := p.code.Sprint(d.Code.ID())
	if !d.Code.HasLocation() || !located(d.Primary, fs) {
		_, err := fmt.Fprintf(w, "%s %s: %s\n", sev, code, d.Message)
		return err
	}

	f := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)
	if _, err := fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", formatPath(f, fs, opts.PathMode), start.Line, start.Col, sev, code, d.Message); err != nil {
		return err
	}
	if err := excerpt(w, f, start, end, opts.Context, p); err != nil {
		return err
	}
	if !opts.ShowNotes {
		return nil
	}
	for _, n := range d.Notes {
		where := ""
		if located(n.Span, fs) {
			ns, _ := fs.Resolve(n.Span)
			where = fmt.Sprintf("%s:%d:%d: ", formatPath(fs.Get(n.Span.File), fs, opts.PathMode), ns.Line, ns.Col)
		}
		if _, err := fmt.Fprintf(w, "  %s %s%s\n", p.note.Sprint("note:"), where, n.Msg); err != nil {
			return err
		}
	}
	return nil
}

func excerpt(w io.Writer, f *source.File, start, end source.LineCol, context uint8, p palette) error {
	first := start.Line
	if uint32(context) < first {
		first -= uint32(context)
	} else {
		first = 1
	}
	width := len(fmt.Sprint(start.Line))
	for ln := first; ln <= start.Line; ln++ {
		gutter := p.gutter.Sprintf("%*d |", width, ln)
		if _, err := fmt.Fprintf(w, " %s %s\n", gutter, f.GetLine(ln)); err != nil {
			return err
		}
	}

	line := f.GetLine(start.Line)
	from := int(start.Col) - 1
	to := len(line)
	if end.Line == start.Line {
		to = int(end.Col) - 1
	}
	to = min(to, len(line))
	from = min(from, to)
	mark := "^" + strings.Repeat("~", max(to-from-1, 0))

	var pad strings.Builder
	for _, r := range line[:from] {
		if r == '\t' {
			pad.WriteByte('\t')
		} else {
			pad.WriteByte(' ')
		}
	}
	gutter := p.gutter.Sprint(strings.Repeat(" ", width) + " |")
	_, err := fmt.Fprintf(w, " %s %s%s\n", gutter, pad.String(), p.caret.Sprint(mark))
	return err
}
