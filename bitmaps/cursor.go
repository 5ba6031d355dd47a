package bitmaps

import "fmt"

// Cursor walks the run length words of a single bitmap. Positions are relative to the
// current group: a run of RunLength uniform words followed by Literals literal words.
//
// Groups with no words are skipped, so Size returns 0 only when the stream is
// exhausted. A cursor never modifies the bitmap it reads.
type Cursor struct {
	buf  []uint64
	next int // index of the next marker word
	bit  bool
	run  int
	lit  int // index of the first remaining literal word
	nlit int
}

// Reset positions c at the first word of b.
func (c *Cursor) Reset(b *Bitmap) {
	*c = Cursor{buf: b.buffer}
	c.nextGroup()
}

func (c *Cursor) nextGroup() {
	for c.next < len(c.buf) {
		rlw := c.buf[c.next]
		c.bit = runningBit(rlw)
		c.run = runningLength(rlw)
		c.nlit = literalCount(rlw)
		c.lit = c.next + 1
		c.next = c.lit + c.nlit
		if c.next > len(c.buf) {
			panic(fmt.Sprintf("bitmaps: marker at %d claims %d literal words, only %d available",
				c.lit-1, c.nlit, len(c.buf)-c.lit))
		}
		if c.run+c.nlit > 0 {
			return
		}
	}
	c.bit = false
	c.run = 0
	c.nlit = 0
}

// Size returns the number of words remaining in the current group.
func (c *Cursor) Size() int {
	return c.run + c.nlit
}

// RunBit returns the value of the current run.
func (c *Cursor) RunBit() bool {
	return c.bit
}

// RunLength returns the number of uniform words remaining in the current run.
func (c *Cursor) RunLength() int {
	return c.run
}

// Literals returns the number of literal words remaining in the current group.
func (c *Cursor) Literals() int {
	return c.nlit
}

// LiteralAt returns the literal word at offset i from the end of the current run.
func (c *Cursor) LiteralAt(i int) uint64 {
	if i < 0 || i >= c.nlit {
		panic(fmt.Sprintf("bitmaps: literal offset %d out of range [0, %d)", i, c.nlit))
	}
	return c.buf[c.lit+i]
}

// LiteralWords returns the remaining literal words of the current group. The returned
// slice aliases the bitmap and must not be modified.
func (c *Cursor) LiteralWords() []uint64 {
	return c.buf[c.lit : c.lit+c.nlit : c.lit+c.nlit]
}

// Advance consumes n words, moving across run, literal and group boundaries. Advancing
// past the end of the stream exhausts c.
func (c *Cursor) Advance(n int) {
	for n > 0 && c.Size() > 0 {
		if c.run > n {
			c.run -= n
			return
		}
		n -= c.run
		c.run = 0
		k := min(n, c.nlit)
		c.lit += k
		c.nlit -= k
		n -= k
		if c.nlit == 0 {
			c.nextGroup()
		}
	}
}

// WriteLiterals appends the first n literal words of the current group to out. It does
// not move c.
func (c *Cursor) WriteLiterals(n int, out Storage) {
	if n < 0 || n > c.nlit {
		panic(fmt.Sprintf("bitmaps: writing %d literal words, only %d available", n, c.nlit))
	}
	out.AddLiterals(c.buf[c.lit : c.lit+n])
}

// Discharge writes all remaining words of c to out, preserving the compressed form.
func (c *Cursor) Discharge(out Storage) {
	for c.Size() > 0 {
		out.AddRun(c.bit, c.run)
		out.AddLiterals(c.LiteralWords())
		c.nextGroup()
	}
}

// dischargeZeros consumes the remainder of c writing zero runs of the same length.
func (c *Cursor) dischargeZeros(out Storage) {
	for c.Size() > 0 {
		out.AddRun(false, c.Size())
		c.nextGroup()
	}
}

// OrInto ORs the next len(buf) decompressed words of c into buf and advances c past
// them. Returns the number of words touched, which is less than len(buf) only when c
// is exhausted.
func (c *Cursor) OrInto(buf []uint64) int {
	var pos int
	for pos < len(buf) && c.Size() > 0 {
		n := min(c.run, len(buf)-pos)
		if c.bit {
			for i := pos; i < pos+n; i++ {
				buf[i] = oneWord
			}
		}
		pos += n
		k := min(c.nlit, len(buf)-pos)
		lits := c.buf[c.lit : c.lit+k]
		for i := range lits {
			buf[pos+i] |= lits[i]
		}
		pos += k
		c.Advance(n + k)
	}
	return pos
}
