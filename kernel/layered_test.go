package kernel_test

import (
	"math"
	"testing"

	"github.com/camnca/engine/array2d"
	"github.com/camnca/engine/kernel"
	"github.com/stretchr/testify/require"
)

func TestCalculateOrderFromWidth_ValidWidths(t *testing.T) {
	t.Parallel()

	cases := map[int]int{3: 1, 5: 2, 9: 3, 17: 4, 33: 5}
	for width, want := range cases {
		require.Equal(t, want, kernel.CalculateOrderFromWidth(width))
	}
}

func TestCalculateOrderFromWidth_InvalidWidthsPanic(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { kernel.CalculateOrderFromWidth(1) })
	require.Panics(t, func() { kernel.CalculateOrderFromWidth(8) })
	require.Panics(t, func() { kernel.CalculateOrderFromWidth(math.MaxInt) })
}

func TestNewLayered_EmptyLayersPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { kernel.NewLayered(nil, nil) })
}

func TestNewLayered_MismatchedDimensionsPanics(t *testing.T) {
	t.Parallel()

	a := array2d.New[bool](3, 3)
	b := array2d.New[bool](5, 5)
	require.Panics(t, func() {
		kernel.NewLayered(func(bool, []uint16) bool { return false }, []array2d.Array[bool]{a, b})
	})
}

func TestLayered_OrderMatchesMaskWidth(t *testing.T) {
	t.Parallel()

	l := kernel.Life()
	require.Equal(t, 1, l.Order())

	mnca := kernel.MNCA()
	require.Equal(t, 4, mnca.Order())
}

func TestLife_Exec_EmptyStaysEmpty(t *testing.T) {
	t.Parallel()

	l := kernel.Life()
	empty := array2d.New[bool](2, 2)
	in := [4]kernel.Block{empty.Clone(), empty.Clone(), empty.Clone(), empty.Clone()}

	out, tag := l.Exec(in)
	require.Equal(t, kernel.NewBlock, tag)
	for _, v := range out.Data() {
		require.False(t, v)
	}
}

func TestLife_Exec_CentralBlockIsStable(t *testing.T) {
	t.Parallel()

	// Place a single alive cell at each of the four corners that meet at
	// the buffer's center, forming a 2x2 block straddling all four input
	// blocks — the classic still life. Every output cell in the central
	// region should remain alive (each has exactly 3 live neighbors).
	l := kernel.Life()
	nw := array2d.New[bool](2, 2)
	nw.Set(1, 1, true)
	ne := array2d.New[bool](2, 2)
	ne.Set(0, 1, true)
	sw := array2d.New[bool](2, 2)
	sw.Set(1, 0, true)
	se := array2d.New[bool](2, 2)
	se.Set(0, 0, true)

	out, _ := l.Exec([4]kernel.Block{nw, ne, sw, se})
	require.True(t, out.At(0, 0))
	require.True(t, out.At(1, 0))
	require.True(t, out.At(0, 1))
	require.True(t, out.At(1, 1))
}
