package cst

import "mofkit/internal/source"

// Tree is the result of one grammar run.
type Tree struct {
	Root  *Node
	File  source.FileID
	arena *Arena
}

func NewTree(root *Node, file source.FileID, arena *Arena) *Tree {
	return &Tree{Root: root, File: file, arena: arena}
}

// Wrapped reports whether Root is the multi-production wrapper.
func (t *Tree) Wrapped() bool {
	return t.Root.Is(LabelWrapper)
}

// Productions lists the top-level productions in document order.
func (t *Tree) Productions() []*Node {
	if t == nil || t.Root == nil {
		return nil
	}
	if t.Wrapped() {
		return t.Root.Children
	}
	return []*Node{t.Root}
}

// Size reports how many nodes the tree allocated.
func (t *Tree) Size() int {
	if t.arena == nil {
		return 0
	}
	return t.arena.Len()
}
