package aggregate

import (
	"github.com/gernest/ewah/bitmaps"
	"github.com/google/btree"
	"github.com/pkg/errors"
)

// ErrNoOperands is returned when reducing an empty list of operands.
var ErrNoOperands = errors.New("aggregate: no operands")

// Operand is a value that can be combined pairwise with a logical operation. Its
// serialized size is used as the cost of merging it.
type Operand[T any] interface {
	SizeInBytes() int
	Combine(other T, op bitmaps.Op) T
}

var _ Operand[*bitmaps.Bitmap] = (*bitmaps.Bitmap)(nil)

type costItem[T any] struct {
	cost int
	seq  int
	v    T
}

func lessCost[T any](a, b costItem[T]) bool {
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	return a.seq < b.seq
}

// Reduce combines all operands with op and returns the result.
//
// The two cheapest operands are always merged first and the result is put back with
// the rest, so a large accumulator is not repeatedly merged against small operands.
// Ties are broken by insertion order which makes the merge order deterministic.
//
// A single operand is returned as is. Operands are never modified.
func Reduce[T Operand[T]](op bitmaps.Op, operands ...T) (T, error) {
	switch len(operands) {
	case 0:
		var zero T
		return zero, ErrNoOperands
	case 1:
		return operands[0], nil
	}
	q := btree.NewG(8, lessCost[T])
	for i, v := range operands {
		q.ReplaceOrInsert(costItem[T]{cost: v.SizeInBytes(), seq: i, v: v})
	}
	seq := len(operands)
	for q.Len() > 1 {
		x, _ := q.DeleteMin()
		y, _ := q.DeleteMin()
		v := x.v.Combine(y.v, op)
		q.ReplaceOrInsert(costItem[T]{cost: v.SizeInBytes(), seq: seq, v: v})
		seq++
	}
	last, _ := q.DeleteMin()
	return last.v, nil
}

// And returns the intersection of all operands.
func And[T Operand[T]](operands ...T) (T, error) {
	return Reduce(bitmaps.AND, operands...)
}

// Or returns the union of all operands.
func Or[T Operand[T]](operands ...T) (T, error) {
	return Reduce(bitmaps.OR, operands...)
}

// Xor returns the symmetric difference of all operands.
func Xor[T Operand[T]](operands ...T) (T, error) {
	return Reduce(bitmaps.XOR, operands...)
}
