// Package randgen builds random compressed bitmaps for tests and benchmarks.
package randgen

import (
	"math/rand/v2"

	"github.com/gernest/ewah/bitmaps"
)

// Words returns a bitmap of exactly words words made of a random mix of zero runs,
// one runs and literal words.
func Words(r *rand.Rand, words int) *bitmaps.Bitmap {
	b := bitmaps.New()
	for w := 0; w < words; {
		n := 1 + r.IntN(min(64, words-w))
		switch typ := r.IntN(100); {
		case typ < 25:
			b.AddRun(false, n)
		case typ < 40:
			b.AddRun(true, n)
		default:
			n = min(n, 12)
			for range n {
				b.AddWord(r.Uint64() & r.Uint64())
			}
		}
		w += n
	}
	return b
}

// Sparse returns a bitmap with roughly density*size set bits below size. The size of
// the result is one past the highest set bit.
func Sparse(r *rand.Rand, size int, density float64) *bitmaps.Bitmap {
	b := bitmaps.New()
	for i := range size {
		if r.Float64() < density {
			b.Set(i)
		}
	}
	return b
}

// Mixed returns n bitmaps of varying sizes and encodings, up to words words each.
func Mixed(r *rand.Rand, n, words int) []*bitmaps.Bitmap {
	o := make([]*bitmaps.Bitmap, n)
	for i := range o {
		switch r.IntN(3) {
		case 0:
			o[i] = Sparse(r, 1+r.IntN(words*bitmaps.WordBits), r.Float64()*0.05)
		default:
			o[i] = Words(r, 1+r.IntN(words))
		}
	}
	return o
}
