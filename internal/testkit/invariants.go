// Package testkit holds checks shared by the front-end tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"mofkit/internal/cst"
	"mofkit/internal/source"
)

// CheckTreeInvariants runs a minimal set of structural checks on a grammar tree:
// 1) the tree and every node point at sf
// 2) every span lies within the file content
// 3) structural nodes are labeled and leaves cover at least one byte
// 4) the node count matches what the arena allocated for reachable nodes
func CheckTreeInvariants(t *cst.Tree, sf *source.File) error {
	if t == nil || sf == nil {
		return fmt.Errorf("nil tree or file")
	}
	if t.Root == nil {
		return fmt.Errorf("tree has no root")
	}
	if t.File != sf.ID {
		return fmt.Errorf("tree points to different file id: got=%d want=%d", t.File, sf.ID)
	}
	size, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("file too large: %w", err)
	}

	var (
		visited int
		bad     error
	)
	t.Root.Walk(func(n *cst.Node, depth int) bool {
		visited++
		sp := n.Span
		switch {
		case sp.File != sf.ID:
			bad = fmt.Errorf("node %q at depth %d points to file %d", n.Label, depth, sp.File)
		case sp.Start > sp.End || sp.End > size:
			bad = fmt.Errorf("node %q span %d..%d outside file of %d bytes", n.Label, sp.Start, sp.End, size)
		case n.Structural() && n.Label == "":
			bad = fmt.Errorf("unlabeled structural node at depth %d", depth)
		case !n.Structural() && sp.Empty():
			bad = fmt.Errorf("leaf %q has an empty span", n.Label)
		}
		return bad == nil
	})
	if bad != nil {
		return bad
	}
	if visited > t.Size() {
		return fmt.Errorf("walked %d nodes but the tree holds %d", visited, t.Size())
	}
	return nil
}
