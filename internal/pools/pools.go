// Package pools provides typed wrappers around sync.Pool.
package pools

import "sync"

// PooledItem creates and recycles values of T.
type PooledItem[T any] interface {
	Init() T
	Reset(T) T
}

// Pool is a typed sync.Pool. Values are passed through Init.Reset before they are
// returned to the pool.
type Pool[T any] struct {
	Init PooledItem[T]
	base sync.Pool
}

func (p *Pool[T]) Get() T {
	if v := p.base.Get(); v != nil {
		return v.(T)
	}
	return p.Init.Init()
}

func (p *Pool[T]) Put(v T) {
	p.base.Put(p.Init.Reset(v))
}

// Words recycles fixed capacity word buffers. Buffers are cleared when put back.
type Words struct {
	Size int
}

var _ PooledItem[*[]uint64] = Words{}

// Init allocates a zeroed buffer of w.Size words.
func (w Words) Init() *[]uint64 {
	b := make([]uint64, w.Size)
	return &b
}

// Reset zeroes all words of b.
func (Words) Reset(b *[]uint64) *[]uint64 {
	clear(*b)
	return b
}
