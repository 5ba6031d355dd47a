package aggregate

import "github.com/gernest/ewah/bitmaps"

// BufferedOr writes the union of bms into out.
//
// All inputs are consumed in lockstep, one chunk of BufferWords words per round. Each
// live input ORs its next chunk into a shared scratch buffer which is then compressed
// into out. Auxiliary memory is bounded by the buffer size regardless of the size of
// the inputs.
//
// The size of the result is the largest input size. An empty bms yields an empty
// result of size 0.
func (a *Aggregator) BufferedOr(out bitmaps.Storage, bms ...*bitmaps.Bitmap) {
	// Larger bitmaps stay live the longest, exhausted ones collect at the tail.
	sorted := bySize(bms)
	var size int
	cursors := make([]bitmaps.Cursor, len(sorted))
	for i := range sorted {
		size = max(size, sorted[i].SizeInBits())
		cursors[i].Reset(sorted[i])
	}

	buf := a.scratch.Get()
	defer a.scratch.Put(buf)
	scratch := *buf

	var rounds, words int
	live := len(cursors)
	for {
		live = prune(cursors, live)
		if live == 0 {
			break
		}
		var effective int
		for i := range cursors[:live] {
			effective = max(effective, cursors[i].OrInto(scratch))
		}
		for _, w := range scratch[:effective] {
			out.AddWord(w)
		}
		// words past effective were not touched this round.
		clear(scratch[:effective])
		rounds++
		words += effective
	}
	out.SetSizeInBits(size)
	a.lo.Debug("buffered or", "inputs", len(bms), "rounds", rounds, "words", words, "size", size)
}
