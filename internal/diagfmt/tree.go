package diagfmt

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"mofkit/internal/cst"
	"mofkit/internal/source"
)

type treeStyles struct {
	branch, leaf, kind, enum lipgloss.Style
}

func newTreeStyles(color bool) treeStyles {
	if !color {
		plain := lipgloss.NewStyle()
		return treeStyles{branch: plain, leaf: plain, kind: plain, enum: plain}
	}
	return treeStyles{
		branch: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		leaf:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		kind:   lipgloss.NewStyle().Faint(true),
		enum:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Tree prints every production of t as a box-drawn tree. Structural nodes
// show their label; leaves show their text and token kind.
func Tree(w io.Writer, t *cst.Tree, fs *source.FileSet, opts TreeOpts) error {
	st := newTreeStyles(opts.Color)
	for _, prod := range t.Productions() {
		root := buildTree(prod, fs, opts, st)
		if _, err := fmt.Fprintln(w, root.String()); err != nil {
			return err
		}
	}
	return nil
}

func buildTree(n *cst.Node, fs *source.FileSet, opts TreeOpts, st treeStyles) *tree.Tree {
	t := tree.Root(nodeLabel(n, fs, opts, st)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(st.enum)
	for _, c := range n.Children {
		if len(c.Children) == 0 {
			t.Child(nodeLabel(c, fs, opts, st))
			continue
		}
		t.Child(buildTree(c, fs, opts, st))
	}
	return t
}

func nodeLabel(n *cst.Node, fs *source.FileSet, opts TreeOpts, st treeStyles) string {
	var label string
	if n.Structural() {
		label = st.branch.Render(n.Label)
	} else {
		label = st.leaf.Render(n.Label) + " " + st.kind.Render("<"+n.Kind.String()+">")
	}
	if opts.Spans && located(n.Span, fs) {
		start, _ := fs.Resolve(n.Span)
		label += st.kind.Render(fmt.Sprintf(" @%d:%d", start.Line, start.Col))
	}
	return label
}
