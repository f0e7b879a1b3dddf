package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldata/core"
)

// TestWrapPosition_Normalization covers the documented modulo contract:
// ((i mod L)+L) mod L for every integer i.
func TestWrapPosition_Normalization(t *testing.T) {
	cases := []struct {
		position, length, want int
	}{
		{0, 3, 0},
		{1, 3, 1},
		{2, 3, 2},
		{3, 3, 0},
		{5, 3, 2},
		{-1, 3, 2},
		{-3, 3, 0},
		{-4, 3, 2},
		{7, 1, 0},
	}
	for _, tc := range cases {
		got, err := core.WrapPosition(tc.position, tc.length)
		assert.NoError(t, err)
		assert.Equal(t, tc.want, got, "WrapPosition(%d, %d)", tc.position, tc.length)
	}
}

// TestWrapPosition_EmptySource checks the one defined failure mode.
func TestWrapPosition_EmptySource(t *testing.T) {
	for _, position := range []int{0, 1, -1, 42} {
		_, err := core.WrapPosition(position, 0)
		assert.ErrorIs(t, err, core.ErrEmptySource)
	}
}

// TestResolve_Position dispatches the integer variant to At, with
// wraparound applied by the node.
func TestResolve_Position(t *testing.T) {
	d := newMemDataset(10, 20, 30)

	res, err := core.Resolve[int](d, core.Position(4))
	require.NoError(t, err)
	assert.False(t, res.IsView())
	assert.Equal(t, 20, res.Elem)
}

// TestResolve_Span dispatches the slice variant to Slice, yielding a
// view node rather than an element.
func TestResolve_Span(t *testing.T) {
	d := newMemDataset(10, 20, 30, 40)

	res, err := core.Resolve[int](d, core.NewSpan(1, 3))
	require.NoError(t, err)
	require.True(t, res.IsView())

	got, err := collect(res.View)
	require.NoError(t, err)
	assert.Equal(t, []int{20, 30}, got)
}

// TestResolve_NilIndex rejects anything outside the closed sum.
func TestResolve_NilIndex(t *testing.T) {
	d := newMemDataset(10)

	_, err := core.Resolve[int](d, nil)
	assert.ErrorIs(t, err, core.ErrUnsupportedIndex)
}

// TestResolve_EmptyDataset surfaces ErrEmptySource through dispatch.
func TestResolve_EmptyDataset(t *testing.T) {
	d := newMemDataset()

	_, err := core.Resolve[int](d, core.Position(0))
	assert.ErrorIs(t, err, core.ErrEmptySource)
}
