package aggregate

import (
	"cmp"
	"log/slog"
	"slices"
	"sync"

	"github.com/gernest/ewah/bitmaps"
	"github.com/gernest/ewah/internal/pools"
)

// DefaultBufferWords is the default capacity, in words, of the scratch buffer used by
// buffered merges.
const DefaultBufferWords = 1 << 16

// Config configures an Aggregator.
type Config struct {
	// BufferWords is the capacity in words of the scratch buffer used by BufferedOr.
	// Values <= 0 select DefaultBufferWords.
	BufferWords int

	// Logger receives debug summaries of merges. Defaults to slog.Default().
	Logger *slog.Logger
}

// NewDefaultConfig returns Config with default values.
func NewDefaultConfig() *Config {
	return &Config{BufferWords: DefaultBufferWords}
}

// Aggregator runs multi way merges. It is safe for concurrent use as long as each
// merge writes to its own Storage.
type Aggregator struct {
	bufferWords int
	lo          *slog.Logger
	scratch     pools.Pool[*[]uint64]
}

// New returns an Aggregator configured with cfg. A nil cfg uses NewDefaultConfig.
func New(cfg *Config) *Aggregator {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	a := &Aggregator{
		bufferWords: cfg.BufferWords,
		lo:          cfg.Logger,
	}
	if a.bufferWords <= 0 {
		a.bufferWords = DefaultBufferWords
	}
	if a.lo == nil {
		a.lo = slog.Default()
	}
	a.lo = a.lo.With("component", "aggregate")
	a.scratch.Init = pools.Words{Size: a.bufferWords}
	return a
}

// BufferWords returns the scratch buffer capacity used by a.
func (a *Aggregator) BufferWords() int {
	return a.bufferWords
}

var std = sync.OnceValue(func() *Aggregator {
	return New(nil)
})

// BufferedOr returns the union of bms computed with [Aggregator.BufferedOr] using the
// default configuration.
func BufferedOr(bms ...*bitmaps.Bitmap) *bitmaps.Bitmap {
	o := bitmaps.New()
	std().BufferedOr(o, bms...)
	return o
}

// StreamingOr returns the union of bms computed with [Aggregator.StreamingOr] using the
// default configuration.
func StreamingOr(bms ...*bitmaps.Bitmap) *bitmaps.Bitmap {
	o := bitmaps.New()
	std().StreamingOr(o, bms...)
	return o
}

// OrCardinality returns the number of bits set in the union of bms without
// materializing it.
func OrCardinality(bms ...*bitmaps.Bitmap) int {
	var c bitmaps.Counter
	std().StreamingOr(&c, bms...)
	return c.Count()
}

// bySize returns a copy of bms sorted by descending size in bits. Ties keep input order.
func bySize(bms []*bitmaps.Bitmap) []*bitmaps.Bitmap {
	sorted := slices.Clone(bms)
	slices.SortStableFunc(sorted, func(a, b *bitmaps.Bitmap) int {
		return cmp.Compare(b.SizeInBits(), a.SizeInBits())
	})
	return sorted
}

// prune drops exhausted cursors from cursors[:live] keeping the order of the rest and
// returns the new live count.
func prune(cursors []bitmaps.Cursor, live int) int {
	var n int
	for i := range cursors[:live] {
		if cursors[i].Size() == 0 {
			continue
		}
		if n != i {
			cursors[n] = cursors[i]
		}
		n++
	}
	return n
}

func advance(cursors []bitmaps.Cursor, n int) {
	for i := range cursors {
		cursors[i].Advance(n)
	}
}
