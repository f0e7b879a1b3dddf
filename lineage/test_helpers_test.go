package lineage_test

import (
	"fmt"

	"github.com/katalvlaran/lvldata/core"
	"github.com/katalvlaran/lvldata/source"
)

// stringsBackend is a minimal random-access backend over a string slice.
type stringsBackend struct {
	items []string
}

func (b *stringsBackend) Len() int {
	return len(b.items)
}

func (b *stringsBackend) At(position int) (string, error) {
	return b.items[position], nil
}

func (b *stringsBackend) String() string {
	return fmt.Sprintf("strings(n=%d)", len(b.items))
}

// newLeaf returns a counting source leaf: hook firings accumulate in
// *fired.
func newLeaf(fired *int, items ...string) *source.Dataset[string] {
	return source.Wrap[string](
		&stringsBackend{items: items},
		source.WithOnLineage(func() { *fired++ }),
	)
}

// combineNode stands in for a composed transformation: it only knows
// its children, like any non-leaf node the traversal may meet.
type combineNode struct {
	name string
	kids []core.Node
}

func (c *combineNode) Children() []core.Node {
	return c.kids
}

func (c *combineNode) String() string {
	return c.name
}

// opaqueNode exposes neither children nor a lineage hook: a structural
// contract violation when reached by traversal.
type opaqueNode struct{}

func (opaqueNode) String() string {
	return "opaque"
}

// buildChain nests n leaves into a right-leaning chain:
// combine(leaf, combine(leaf, …)).
func buildChain(n int, fired *int) core.Node {
	var node core.Node = newLeaf(fired, "x")
	for i := 1; i < n; i++ {
		node = &combineNode{
			name: fmt.Sprintf("chain-%d", i),
			kids: []core.Node{newLeaf(fired, "x"), node},
		}
	}
	return node
}

// buildBalanced builds a complete binary tree with n leaves (n a power
// of two).
func buildBalanced(n int, fired *int) core.Node {
	if n == 1 {
		return newLeaf(fired, "x")
	}
	return &combineNode{
		name: fmt.Sprintf("balanced-%d", n),
		kids: []core.Node{buildBalanced(n/2, fired), buildBalanced(n/2, fired)},
	}
}
