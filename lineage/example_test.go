package lineage_test

import (
	"fmt"

	"github.com/katalvlaran/lvldata/core"
	"github.com/katalvlaran/lvldata/lineage"
	"github.com/katalvlaran/lvldata/source"
)

// ExampleTraverse audits a small pipeline: two wrapped backends under
// one composed node, one of them viewed through a slice.
func ExampleTraverse() {
	left := source.Wrap[string](&stringsBackend{items: []string{"a", "b", "c"}})
	right := source.Wrap[string](&stringsBackend{items: []string{"x", "y"}})

	root := &combineNode{
		name: "Combine",
		kids: []core.Node{left.Slice(core.NewSpan(0, 2)), right},
	}

	res, err := lineage.Traverse(root, lineage.WithOnSource(func(leaf core.Node) error {
		fmt.Println("recorded:", leaf)
		return nil
	}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("sources:", len(res.Sources), "max depth:", res.Depth)

	// Output:
	// recorded: Source(strings(n=3))
	// recorded: Source(strings(n=2))
	// sources: 2 max depth: 2
}
