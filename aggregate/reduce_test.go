package aggregate

import (
	"testing"

	"github.com/gernest/ewah/bitmaps"
	"github.com/stretchr/testify/require"
)

// named records the order in which operands are combined.
type named struct {
	name string
	size int
}

func (n named) SizeInBytes() int { return n.size }

func (n named) Combine(o named, _ bitmaps.Op) named {
	return named{name: "(" + n.name + " " + o.name + ")", size: n.size + o.size}
}

func TestReduceOrder(t *testing.T) {
	t.Run("cheapest first", func(t *testing.T) {
		got, err := Reduce(bitmaps.OR,
			named{"a", 5}, named{"b", 1}, named{"c", 2}, named{"d", 10},
		)
		require.NoError(t, err)
		require.Equal(t, "(((b c) a) d)", got.name)
		require.Equal(t, 18, got.size)
	})
	t.Run("ties", func(t *testing.T) {
		got, err := Reduce(bitmaps.OR,
			named{"a", 1}, named{"b", 1}, named{"c", 1}, named{"d", 1},
		)
		require.NoError(t, err)
		require.Equal(t, "((a b) (c d))", got.name)
	})
}

func TestReduceEdges(t *testing.T) {
	_, err := Reduce[named](bitmaps.OR)
	require.ErrorIs(t, err, ErrNoOperands)

	_, err = And[*bitmaps.Bitmap]()
	require.ErrorIs(t, err, ErrNoOperands)

	b := bitmaps.Of(1, 2)
	for _, f := range []func(...*bitmaps.Bitmap) (*bitmaps.Bitmap, error){
		And[*bitmaps.Bitmap], Or[*bitmaps.Bitmap], Xor[*bitmaps.Bitmap],
	} {
		got, err := f(b)
		require.NoError(t, err)
		require.Same(t, b, got)
	}
}

func TestReduceDoesNotModify(t *testing.T) {
	a, b, c := bitmaps.Of(1, 3), bitmaps.Of(0, 2), bitmaps.Of(2, 3)
	_, err := Xor(a, b, c)
	require.NoError(t, err)
	require.Equal(t, []int{1, 3}, a.Positions())
	require.Equal(t, []int{0, 2}, b.Positions())
	require.Equal(t, []int{2, 3}, c.Positions())
}
