package bitmaps

import (
	"iter"
	"math/bits"
	"slices"
	"strconv"
)

// Bitmap is a compressed bitmap. The zero value is an empty bitmap ready to use.
//
// Bits are set in increasing order with Set, or appended word by word through the
// Storage methods which is how merges produce their results.
type Bitmap struct {
	buffer     []uint64
	rlw        int
	sizeInBits int
}

// New returns an empty bitmap.
func New() *Bitmap {
	return &Bitmap{buffer: []uint64{0}}
}

// Of returns a bitmap with all positions in bits set. Negative positions are ignored.
func Of(bits ...int) *Bitmap {
	b := New()
	sorted := slices.Clone(bits)
	slices.Sort(sorted)
	for _, i := range slices.Compact(sorted) {
		b.Set(i)
	}
	return b
}

func (b *Bitmap) init() {
	if len(b.buffer) == 0 {
		b.buffer = append(b.buffer, 0)
		b.rlw = 0
	}
}

// Set sets bit i. Bits must be set in strictly increasing order, Set returns false
// without modifying b when i is smaller than SizeInBits or negative.
func (b *Bitmap) Set(i int) bool {
	if i < 0 || i < b.sizeInBits {
		return false
	}
	b.init()
	dist := (i+WordBits)/WordBits - (b.sizeInBits+WordBits-1)/WordBits
	b.sizeInBits = i + 1
	if dist > 0 {
		if dist > 1 {
			b.addRun(false, dist-1)
		}
		b.addLiteral(uint64(1) << (i % WordBits))
		return true
	}
	rlw := b.buffer[b.rlw]
	if literalCount(rlw) == 0 {
		// the last word belongs to the run of the current marker.
		if runningBit(rlw) {
			return true
		}
		b.buffer[b.rlw] = setRunningLength(rlw, runningLength(rlw)-1)
		b.addLiteral(uint64(1) << (i % WordBits))
		return true
	}
	last := len(b.buffer) - 1
	b.buffer[last] |= uint64(1) << (i % WordBits)
	if b.buffer[last] == oneWord {
		b.buffer = b.buffer[:last]
		b.buffer[b.rlw] = setLiteralCount(rlw, literalCount(rlw)-1)
		b.addEmptyWord(true)
	}
	return true
}

// Get returns true if bit i is set.
func (b *Bitmap) Get(i int) bool {
	if i < 0 || i >= b.sizeInBits {
		return false
	}
	word := i / WordBits
	var c Cursor
	c.Reset(b)
	for c.Size() > 0 {
		if word < c.run {
			return c.bit
		}
		word -= c.run
		if word < c.nlit {
			return c.buf[c.lit+word]&(uint64(1)<<(i%WordBits)) != 0
		}
		word -= c.nlit
		c.nextGroup()
	}
	return false
}

// AddWord implements Storage.
func (b *Bitmap) AddWord(w uint64) {
	b.init()
	b.sizeInBits += WordBits
	switch w {
	case zeroWord:
		b.addEmptyWord(false)
	case oneWord:
		b.addEmptyWord(true)
	default:
		b.addLiteral(w)
	}
}

// AddRun implements Storage.
func (b *Bitmap) AddRun(bit bool, n int) {
	if n <= 0 {
		return
	}
	b.init()
	b.sizeInBits += n * WordBits
	b.addRun(bit, n)
}

// AddLiterals implements Storage.
func (b *Bitmap) AddLiterals(words []uint64) {
	if len(words) == 0 {
		return
	}
	b.init()
	b.sizeInBits += len(words) * WordBits
	for len(words) > 0 {
		rlw := b.buffer[b.rlw]
		n := literalCount(rlw)
		if n >= LargestLiteralCount {
			b.pushMarker(0)
			continue
		}
		add := min(len(words), LargestLiteralCount-n)
		b.buffer[b.rlw] = setLiteralCount(rlw, n+add)
		b.buffer = append(b.buffer, words[:add]...)
		words = words[add:]
	}
}

// SetSizeInBits implements Storage.
func (b *Bitmap) SetSizeInBits(n int) {
	b.sizeInBits = n
}

func (b *Bitmap) pushMarker(rlw uint64) {
	b.buffer = append(b.buffer, rlw)
	b.rlw = len(b.buffer) - 1
}

func (b *Bitmap) addEmptyWord(bit bool) {
	rlw := b.buffer[b.rlw]
	noLiterals := literalCount(rlw) == 0
	rl := runningLength(rlw)
	if noLiterals && rl == 0 {
		rlw = setRunningBit(rlw, bit)
	}
	if noLiterals && runningBit(rlw) == bit && rl < LargestRunningLength {
		b.buffer[b.rlw] = setRunningLength(rlw, rl+1)
		return
	}
	b.pushMarker(setRunningLength(setRunningBit(0, bit), 1))
}

func (b *Bitmap) addLiteral(w uint64) {
	rlw := b.buffer[b.rlw]
	n := literalCount(rlw)
	if n >= LargestLiteralCount {
		b.pushMarker(setLiteralCount(0, 1))
	} else {
		b.buffer[b.rlw] = setLiteralCount(rlw, n+1)
	}
	b.buffer = append(b.buffer, w)
}

func (b *Bitmap) addRun(bit bool, n int) {
	rlw := b.buffer[b.rlw]
	switch {
	case literalCount(rlw) == 0 && runningLength(rlw) == 0:
		rlw = setRunningBit(rlw, bit)
	case literalCount(rlw) != 0 || runningBit(rlw) != bit:
		b.pushMarker(setRunningBit(0, bit))
		rlw = b.buffer[b.rlw]
	}
	rl := runningLength(rlw)
	add := min(n, LargestRunningLength-rl)
	b.buffer[b.rlw] = setRunningLength(rlw, rl+add)
	n -= add
	for n > 0 {
		add = min(n, LargestRunningLength)
		b.pushMarker(setRunningLength(setRunningBit(0, bit), add))
		n -= add
	}
}

// SizeInBits returns the logical number of bits.
func (b *Bitmap) SizeInBits() int {
	return b.sizeInBits
}

// SizeInBytes returns the size of the compressed representation in bytes.
func (b *Bitmap) SizeInBytes() int {
	return len(b.buffer) * 8
}

// Cardinality returns the number of set bits.
func (b *Bitmap) Cardinality() int {
	var c Counter
	b.Cursor().Discharge(&c)
	return c.Count()
}

// Cursor returns a new cursor positioned at the first word of b.
func (b *Bitmap) Cursor() *Cursor {
	c := new(Cursor)
	c.Reset(b)
	return c
}

// Range iterates over positions of all set bits in increasing order.
func (b *Bitmap) Range() iter.Seq[int] {
	return func(yield func(int) bool) {
		var c Cursor
		c.Reset(b)
		var pos int
		for c.Size() > 0 {
			if c.bit {
				end := min(pos+c.run*WordBits, b.sizeInBits)
				for i := pos; i < end; i++ {
					if !yield(i) {
						return
					}
				}
			}
			pos += c.run * WordBits
			for _, w := range c.LiteralWords() {
				for w != 0 {
					i := pos + bits.TrailingZeros64(w)
					if i >= b.sizeInBits {
						return
					}
					if !yield(i) {
						return
					}
					w &= w - 1
				}
				pos += WordBits
			}
			c.nextGroup()
		}
	}
}

// Positions returns all set bits.
func (b *Bitmap) Positions() []int {
	return slices.Collect(b.Range())
}

// Equal returns true if b and other have the same size and set bits, regardless of how
// they are encoded.
func (b *Bitmap) Equal(other *Bitmap) bool {
	if b.sizeInBits != other.sizeInBits {
		return false
	}
	next, stop := iter.Pull(other.Range())
	defer stop()
	for i := range b.Range() {
		j, ok := next()
		if !ok || i != j {
			return false
		}
	}
	_, ok := next()
	return !ok
}

// Clone returns a deep copy of b.
func (b *Bitmap) Clone() *Bitmap {
	return &Bitmap{
		buffer:     slices.Clone(b.buffer),
		rlw:        b.rlw,
		sizeInBits: b.sizeInBits,
	}
}

// Reset clears b and retains its capacity.
func (b *Bitmap) Reset() {
	b.buffer = append(b.buffer[:0], 0)
	b.rlw = 0
	b.sizeInBits = 0
}

func (b *Bitmap) String() string {
	o := []byte{'{'}
	var n int
	for i := range b.Range() {
		if n > 0 {
			o = append(o, ',')
		}
		o = strconv.AppendInt(o, int64(i), 10)
		n++
	}
	return string(append(o, '}'))
}
