package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"mofkit/internal/driver"
	"mofkit/internal/mof"
)

type SummaryOpts struct {
	Headers bool // print "== path ==" above every file
	Timings bool
}

// Summary prints one line per declaration of every parsed file.
func Summary(w io.Writer, results []driver.Result, opts SummaryOpts) error {
	var sb strings.Builder
	for i, r := range results {
		if opts.Headers {
			fmt.Fprintf(&sb, "== %s ==", r.Path)
			if r.Cached {
				sb.WriteString(" (cached)")
			}
			sb.WriteString("\n")
		}
		if r.Document != nil {
			writeDocument(&sb, r.Document)
			if opts.Timings && len(r.Document.Timing.Phases) > 0 {
				sb.WriteString(r.Document.Timing.Summary())
			}
		}
		if r.Err != nil {
			fmt.Fprintf(&sb, "aborted: %v\n", r.Err)
		}
		if opts.Headers && i < len(results)-1 {
			sb.WriteString("\n")
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeDocument(sb *strings.Builder, doc *driver.Document) {
	for _, p := range doc.Pragmas {
		if p.Parameter == "" {
			fmt.Fprintf(sb, "pragma %s\n", p.Directive)
			continue
		}
		fmt.Fprintf(sb, "pragma %s(%q)\n", p.Directive, p.Parameter)
	}
	for _, q := range doc.Qualifiers {
		fmt.Fprintf(sb, "qualifier %s : %s\n", q.Name, typeString(q.Type))
	}
	for _, c := range doc.Classes {
		sb.WriteString("class " + c.Name)
		if c.Parent != "" {
			sb.WriteString(" : " + c.Parent)
		}
		fmt.Fprintf(sb, " [%s, %s]\n", count(c.Properties.Len(), "property", "properties"), count(c.Methods.Len(), "method", "methods"))
	}
	for _, inst := range doc.Instances {
		sb.WriteString("instance of " + inst.ClassName)
		if inst.Alias != "" {
			sb.WriteString(" as $" + inst.Alias)
		}
		fmt.Fprintf(sb, " [%s]\n", count(inst.Properties.Len(), "property", "properties"))
	}
}

func typeString(t mof.TypeDecl) string {
	name := t.Name
	if t.IsRef {
		name = t.RefClass + " REF"
	}
	switch {
	case !t.IsArray:
		return name
	case t.ArraySize < 0:
		return name + "[]"
	}
	return fmt.Sprintf("%s[%d]", name, t.ArraySize)
}

func count(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}
