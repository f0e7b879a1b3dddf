package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvldata/core"
)

// memDataset is a minimal in-test node over an int slice, honoring the
// uniform wraparound contract via core.WrapPosition.
type memDataset struct {
	items []int
}

func newMemDataset(items ...int) *memDataset {
	return &memDataset{items: items}
}

func (m *memDataset) Len() int {
	return len(m.items)
}

func (m *memDataset) At(position int) (int, error) {
	p, err := core.WrapPosition(position, len(m.items))
	if err != nil {
		return 0, err
	}
	return m.items[p], nil
}

func (m *memDataset) Slice(span core.Span) core.MapDataset[int] {
	return core.NewSlice[int](m, span)
}

func (m *memDataset) String() string {
	return fmt.Sprintf("mem(n=%d)", len(m.items))
}

var _ core.MapDataset[int] = (*memDataset)(nil)

// collect materializes a node's full conceptual sequence for equality
// checks against expected slicing results.
func collect(d core.MapDataset[int]) ([]int, error) {
	out := make([]int, 0, d.Len())
	for i := 0; i < d.Len(); i++ {
		v, err := d.At(i)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
