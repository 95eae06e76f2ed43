package cst

import (
	"mofkit/internal/source"
	"mofkit/internal/token"
)

const chunkSize = 256

// Arena hands out nodes from fixed-size chunks so pointers stay valid.
type Arena struct {
	chunks [][]Node
	used   int // nodes used in the last chunk
}

func NewArena() *Arena {
	return &Arena{}
}

func (a *Arena) alloc() *Node {
	if len(a.chunks) == 0 || a.used == chunkSize {
		a.chunks = append(a.chunks, make([]Node, chunkSize))
		a.used = 0
	}
	n := &a.chunks[len(a.chunks)-1][a.used]
	a.used++
	return n
}

// Branch allocates a structural node.
func (a *Arena) Branch(label string, span source.Span, children ...*Node) *Node {
	n := a.alloc()
	n.Label = label
	n.Kind = token.Invalid
	n.Span = span
	n.Add(children...)
	return n
}

// Leaf allocates a node labeled with text.
func (a *Arena) Leaf(text string, kind token.Kind, span source.Span) *Node {
	n := a.alloc()
	n.Label = text
	n.Kind = kind
	n.Span = span
	return n
}

// Len reports how many nodes were allocated.
func (a *Arena) Len() int {
	if len(a.chunks) == 0 {
		return 0
	}
	return (len(a.chunks)-1)*chunkSize + a.used
}
