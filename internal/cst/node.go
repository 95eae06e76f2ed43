package cst

import (
	"strings"

	"mofkit/internal/source"
	"mofkit/internal/token"
)

type Node struct {
	Label    string
	Kind     token.Kind // token kind for leaves, token.Invalid for structural nodes
	Span     source.Span
	Children []*Node
}

// Is reports whether the node label equals label ignoring case.
func (n *Node) Is(label string) bool {
	return n != nil && strings.EqualFold(n.Label, label)
}

// Structural reports whether n was built by the grammar rather than taken
// from a token.
func (n *Node) Structural() bool {
	return n != nil && n.Kind == token.Invalid
}

func (n *Node) ChildCount() int {
	if n == nil {
		return 0
	}
	return len(n.Children)
}

// Child returns the i-th child or nil.
func (n *Node) Child(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// Find returns the first structural child labeled label. Leaves are
// skipped: a property called Type is not a Type node.
func (n *Node) Find(label string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c.Structural() && c.Is(label) {
			return c
		}
	}
	return nil
}

// FindAll returns every structural child labeled label, in order.
func (n *Node) FindAll(label string) []*Node {
	if n == nil {
		return nil
	}
	var out []*Node
	for _, c := range n.Children {
		if c.Structural() && c.Is(label) {
			out = append(out, c)
		}
	}
	return out
}

// Text is the label of the first child, or "" when there is none.
func (n *Node) Text() string {
	if c := n.Child(0); c != nil {
		return c.Label
	}
	return ""
}

func (n *Node) Add(children ...*Node) {
	for _, c := range children {
		if c == nil {
			continue
		}
		n.Children = append(n.Children, c)
		n.Span = n.Span.Cover(c.Span)
	}
}

// Walk visits n and its descendants depth first. Returning false skips the subtree.
func (n *Node) Walk(fn func(n *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(n *Node, depth int) bool, depth int) {
	if n == nil || !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}

// String renders the subtree as an s-expression: (label child child).
func (n *Node) String() string {
	var sb strings.Builder
	n.writeTo(&sb)
	return sb.String()
}

func (n *Node) writeTo(sb *strings.Builder) {
	if n == nil {
		sb.WriteString("<nil>")
		return
	}
	if len(n.Children) == 0 {
		sb.WriteString(n.Label)
		return
	}
	sb.WriteByte('(')
	sb.WriteString(n.Label)
	for _, c := range n.Children {
		sb.WriteByte(' ')
		c.writeTo(sb)
	}
	sb.WriteByte(')')
}
