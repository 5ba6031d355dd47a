package bitmaps

import "math/bits"

// Storage receives encoded output of merges. Words are appended in logical order and
// SetSizeInBits is called exactly once after all content has been appended.
type Storage interface {
	// AddWord appends a single word. Uniform words may be folded into runs.
	AddWord(w uint64)

	// AddRun appends n words all equal to bit.
	AddRun(bit bool, n int)

	// AddLiterals appends words verbatim as literal words.
	AddLiterals(words []uint64)

	// SetSizeInBits sets the logical number of bits.
	SetSizeInBits(n int)
}

var (
	_ Storage = (*Bitmap)(nil)
	_ Storage = (*Counter)(nil)
)

// Counter is a Storage that only counts set bits. It is used to compute the
// cardinality of an aggregate without materializing it.
type Counter struct {
	count int
	size  int
}

// AddWord implements Storage.
func (c *Counter) AddWord(w uint64) {
	c.count += bits.OnesCount64(w)
}

// AddRun implements Storage.
func (c *Counter) AddRun(bit bool, n int) {
	if bit {
		c.count += n * WordBits
	}
}

// AddLiterals implements Storage.
func (c *Counter) AddLiterals(words []uint64) {
	for i := range words {
		c.count += bits.OnesCount64(words[i])
	}
}

// SetSizeInBits implements Storage.
func (c *Counter) SetSizeInBits(n int) {
	c.size = n
}

// Count returns the number of set bits observed.
func (c *Counter) Count() int {
	return c.count
}

// SizeInBits returns the size recorded with SetSizeInBits.
func (c *Counter) SizeInBits() int {
	return c.size
}

// Reset clears c for reuse.
func (c *Counter) Reset() {
	*c = Counter{}
}
