package bitmaps

import "github.com/gernest/ewah/internal/checksum"

// Checksum returns a digest of the logical content of b. Bitmaps with equal set bits
// and size have equal checksums regardless of how they are encoded.
func (b *Bitmap) Checksum() uint64 {
	d := checksum.New()
	b.Cursor().Discharge(d)
	d.SetSizeInBits(b.sizeInBits)
	return d.Sum64()
}
