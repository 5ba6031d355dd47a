package bitmaps

import "github.com/gernest/roaring"

// ToRoaring returns a [roaring.Bitmap] with the same set bits as b.
func (b *Bitmap) ToRoaring() *roaring.Bitmap {
	ra := roaring.NewBitmap()
	for i := range b.Range() {
		ra.DirectAdd(uint64(i))
	}
	return ra
}

// FromRoaring builds a compressed bitmap from ra. The size of the result is one past
// the highest set bit.
func FromRoaring(ra *roaring.Bitmap) *Bitmap {
	b := New()
	for v := range ra.RangeAll() {
		b.Set(int(v))
	}
	return b
}
