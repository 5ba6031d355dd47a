package bitmaps

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	b := Of(64, 1, 63, 0, 1000, 200, 1)
	require.Equal(t, []int{0, 1, 63, 64, 200, 1000}, b.Positions())
	require.Equal(t, 1001, b.SizeInBits())
	require.False(t, b.Set(999), "out of order")
	require.False(t, b.Set(-1))
	require.True(t, b.Set(1001))

	for _, i := range []int{0, 1, 63, 64, 200, 1000, 1001} {
		require.True(t, b.Get(i), i)
	}
	for _, i := range []int{-1, 2, 62, 65, 199, 999, 1002, 5000} {
		require.False(t, b.Get(i), i)
	}
}

func TestSetZeroValue(t *testing.T) {
	var b Bitmap
	require.Nil(t, b.Positions())
	require.True(t, b.Set(3))
	require.Equal(t, []int{3}, b.Positions())
	require.Equal(t, 4, b.SizeInBits())
}

func TestSetFullWordsBecomeRuns(t *testing.T) {
	b := New()
	for i := range 128 {
		require.True(t, b.Set(i))
	}
	// a single marker: two words of ones.
	require.Equal(t, 8, b.SizeInBytes())
	require.Equal(t, 128, b.Cardinality())
	require.True(t, b.Get(127))

	b.Set(200)
	require.Equal(t, 24, b.SizeInBytes())
	require.Equal(t, 129, b.Cardinality())
	require.False(t, b.Get(128))
	require.True(t, b.Get(200))
}

func TestStorage(t *testing.T) {
	b := New()
	b.AddWord(0)
	b.AddWord(^uint64(0))
	b.AddWord(0b1010)
	b.AddRun(false, 3)
	b.AddRun(true, 0)
	b.AddLiterals([]uint64{5})
	b.AddLiterals(nil)

	var want []int
	for i := 64; i < 128; i++ {
		want = append(want, i)
	}
	want = append(want, 129, 131, 384, 386)
	require.Equal(t, want, b.Positions())
	require.Equal(t, 7*WordBits, b.SizeInBits())
	require.Equal(t, 68, b.Cardinality())
}

func TestLongRuns(t *testing.T) {
	b := New()
	b.AddRun(false, LargestRunningLength+5)
	b.AddWord(1)
	require.Equal(t, 24, b.SizeInBytes())
	require.Equal(t, 1, b.Cardinality())

	c := b.Cursor()
	require.Equal(t, LargestRunningLength, c.Size())
	require.Equal(t, 0, c.Literals())
	c.Advance(LargestRunningLength)
	require.Equal(t, 6, c.Size())
	require.Equal(t, 5, c.RunLength())
	require.Equal(t, uint64(1), c.LiteralAt(0))
}

func TestString(t *testing.T) {
	require.Equal(t, "{}", New().String())
	require.Equal(t, "{1,3,5}", Of(1, 3, 5).String())
}

func TestEqual(t *testing.T) {
	require.True(t, Of(1, 2).Equal(Of(2, 1)))
	require.False(t, Of(1, 2).Equal(Of(1, 3)))
	require.False(t, Of(1).Equal(Of(1, 2)))

	a, b := Of(1), Of(1)
	b.SetSizeInBits(10)
	require.False(t, a.Equal(b), "sizes differ")

	// same bits through different encodings.
	x := New()
	x.AddLiterals([]uint64{0, ^uint64(0), 5})
	y := New()
	y.AddWord(0)
	y.AddWord(^uint64(0))
	y.AddWord(5)
	require.NotEqual(t, x.SizeInBytes(), y.SizeInBytes())
	require.True(t, x.Equal(y))
}

func TestCloneReset(t *testing.T) {
	a := Of(1, 70)
	c := a.Clone()
	c.Set(1000)
	require.False(t, a.Get(1000))
	require.True(t, c.Get(1000))

	c.Reset()
	require.Equal(t, 0, c.SizeInBits())
	require.Nil(t, c.Positions())
	c.Set(5)
	require.Equal(t, []int{5}, c.Positions())
	require.Equal(t, []int{1, 70}, a.Positions())
}

func TestChecksum(t *testing.T) {
	x := New()
	x.AddLiterals([]uint64{0, ^uint64(0), 5})
	y := New()
	y.AddWord(0)
	y.AddWord(^uint64(0))
	y.AddWord(5)
	require.Equal(t, x.Checksum(), y.Checksum())

	z := y.Clone()
	z.AddRun(false, 2)
	z.SetSizeInBits(y.SizeInBits())
	require.True(t, z.Equal(y))
	require.Equal(t, y.Checksum(), z.Checksum(), "trailing zero words")

	z.SetSizeInBits(y.SizeInBits() + 1)
	require.NotEqual(t, y.Checksum(), z.Checksum())
	require.NotEqual(t, Of(1).Checksum(), Of(2).Checksum())
}

func TestCounter(t *testing.T) {
	var c Counter
	Of(1, 2, 3, 64, 500).CombineTo(New(), OR, &c)
	require.Equal(t, 5, c.Count())
	require.Equal(t, 501, c.SizeInBits())
	c.Reset()
	require.Equal(t, 0, c.Count())
}
