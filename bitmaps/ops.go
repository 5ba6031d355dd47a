package bitmaps

import "fmt"

// Op defines a binary logical operation on bitmaps.
type Op byte

// Supported operations.
const (
	AND Op = 1 + iota
	OR
	XOR
)

func (o Op) String() string {
	switch o {
	case AND:
		return "and"
	case OR:
		return "or"
	case XOR:
		return "xor"
	default:
		return fmt.Sprintf("Op(%d)", byte(o))
	}
}

func (o Op) word(a, b uint64) uint64 {
	switch o {
	case AND:
		return a & b
	case OR:
		return a | b
	case XOR:
		return a ^ b
	default:
		panic(fmt.Sprintf("bitmaps: unknown op %v", o))
	}
}

func (o Op) bit(a, b bool) bool {
	switch o {
	case AND:
		return a && b
	case OR:
		return a || b
	case XOR:
		return a != b
	default:
		panic(fmt.Sprintf("bitmaps: unknown op %v", o))
	}
}

// Combine returns the result of applying op to b and other. The result size is the
// larger of the two sizes. Neither input is modified.
func (b *Bitmap) Combine(other *Bitmap, op Op) *Bitmap {
	o := New()
	b.CombineTo(other, op, o)
	return o
}

// CombineTo writes the result of applying op to b and other into out.
func (b *Bitmap) CombineTo(other *Bitmap, op Op, out Storage) {
	var x, y Cursor
	x.Reset(b)
	y.Reset(other)
	merge(op, &x, &y, out)
	out.SetSizeInBits(max(b.sizeInBits, other.sizeInBits))
}

// And returns the intersection of b and other.
func (b *Bitmap) And(other *Bitmap) *Bitmap { return b.Combine(other, AND) }

// Or returns the union of b and other.
func (b *Bitmap) Or(other *Bitmap) *Bitmap { return b.Combine(other, OR) }

// Xor returns the symmetric difference of b and other.
func (b *Bitmap) Xor(other *Bitmap) *Bitmap { return b.Combine(other, XOR) }

// AndTo writes the intersection of b and other into out.
func (b *Bitmap) AndTo(other *Bitmap, out Storage) { b.CombineTo(other, AND, out) }

// OrTo writes the union of b and other into out.
func (b *Bitmap) OrTo(other *Bitmap, out Storage) { b.CombineTo(other, OR, out) }

// XorTo writes the symmetric difference of b and other into out.
func (b *Bitmap) XorTo(other *Bitmap, out Storage) { b.CombineTo(other, XOR, out) }

// merge walks x and y in lockstep. Spans where both cursors are inside runs are emitted
// as runs, a run against literals is resolved per op and only literal against literal
// spans are combined word by word.
func merge(op Op, x, y *Cursor, out Storage) {
	for x.Size() > 0 && y.Size() > 0 {
		var n int
		switch {
		case x.run > 0 && y.run > 0:
			n = min(x.run, y.run)
			out.AddRun(op.bit(x.bit, y.bit), n)
		case x.run > 0:
			n = min(x.run, y.nlit)
			mergeRun(op, x.bit, y.buf[y.lit:y.lit+n], out)
		case y.run > 0:
			n = min(y.run, x.nlit)
			mergeRun(op, y.bit, x.buf[x.lit:x.lit+n], out)
		default:
			n = min(x.nlit, y.nlit)
			a, b := x.buf[x.lit:x.lit+n], y.buf[y.lit:y.lit+n]
			for i := range a {
				out.AddWord(op.word(a[i], b[i]))
			}
		}
		x.Advance(n)
		y.Advance(n)
	}
	rest := x
	if y.Size() > 0 {
		rest = y
	}
	if op == AND {
		// keep the word count of the longer input.
		rest.dischargeZeros(out)
		return
	}
	rest.Discharge(out)
}

func mergeRun(op Op, bit bool, literals []uint64, out Storage) {
	switch {
	case op == OR && bit, op == AND && !bit:
		out.AddRun(bit, len(literals))
	case op == XOR && bit:
		for _, w := range literals {
			out.AddWord(^w)
		}
	default:
		out.AddLiterals(literals)
	}
}
