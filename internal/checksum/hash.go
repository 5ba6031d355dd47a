package checksum

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Digest computes xxhash checksum of a logical word stream. It has the method set of
// bitmaps.Storage so any merge can write straight into it.
//
// Zero words are only hashed once a non zero word follows them, trailing zero words
// never change the sum. Two encodings of the same bits yield the same sum.
type Digest struct {
	h     *xxhash.Digest
	zeros int
	buf   [8]byte
}

// New returns a ready to use Digest.
func New() *Digest {
	return &Digest{h: xxhash.New()}
}

// Reset clears d for reuse.
func (d *Digest) Reset() {
	d.h.Reset()
	d.zeros = 0
}

// AddWord hashes a single word.
func (d *Digest) AddWord(w uint64) {
	if w == 0 {
		d.zeros++
		return
	}
	d.flush()
	d.write(w)
}

// AddRun hashes n uniform words.
func (d *Digest) AddRun(bit bool, n int) {
	if !bit {
		d.zeros += n
		return
	}
	d.flush()
	for range n {
		d.write(^uint64(0))
	}
}

// AddLiterals hashes words.
func (d *Digest) AddLiterals(words []uint64) {
	for _, w := range words {
		d.AddWord(w)
	}
}

// SetSizeInBits mixes the logical size into the sum. It must be called last.
func (d *Digest) SetSizeInBits(n int) {
	d.write(uint64(n))
}

// Sum64 returns the current sum.
func (d *Digest) Sum64() uint64 {
	return d.h.Sum64()
}

func (d *Digest) flush() {
	for ; d.zeros > 0; d.zeros-- {
		d.write(0)
	}
}

func (d *Digest) write(w uint64) {
	binary.LittleEndian.PutUint64(d.buf[:], w)
	d.h.Write(d.buf[:])
}
