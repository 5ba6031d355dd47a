package aggregate

import (
	"math"

	"github.com/gernest/ewah/bitmaps"
)

// roundStats summarizes the live cursors at the start of a streaming round.
type roundStats struct {
	// smallest number of words left in the current group of any cursor.
	minSize int
	// longest run of ones.
	maxOneRl int
	// shortest run of zeros. Zero when any cursor has a running bit of one.
	minZeroRl int
	// cursors positioned on literal words.
	numEmptyRl int
}

func collectStats(cursors []bitmaps.Cursor) roundStats {
	s := roundStats{
		minSize:   math.MaxInt,
		minZeroRl: math.MaxInt,
	}
	for i := range cursors {
		c := &cursors[i]
		s.minSize = min(s.minSize, c.Size())
		rl := c.RunLength()
		if c.RunBit() {
			s.maxOneRl = max(s.maxOneRl, rl)
			s.minZeroRl = 0
		} else {
			s.minZeroRl = min(s.minZeroRl, rl)
		}
		if rl == 0 {
			s.numEmptyRl++
		}
	}
	return s
}

// StreamingOr writes the union of bms into out working on run metadata.
//
// Runs of ones absorb everything and runs of zeros are the identity for OR, so spans
// covered by them are emitted as runs without looking at any other input. Words are
// only combined one by one over spans where some input holds literal words, and only
// up to the nearest group boundary.
//
// Two inputs are merged with [bitmaps.Bitmap.OrTo]. The size of the result is the
// largest input size.
func (a *Aggregator) StreamingOr(out bitmaps.Storage, bms ...*bitmaps.Bitmap) {
	switch len(bms) {
	case 0:
		out.SetSizeInBits(0)
		return
	case 2:
		bms[0].OrTo(bms[1], out)
		return
	}
	sorted := bySize(bms)
	size := sorted[0].SizeInBits()

	cursors := make([]bitmaps.Cursor, len(sorted))
	for i := range sorted {
		cursors[i].Reset(sorted[i])
	}

	var rounds int
	live := len(cursors)
	for {
		live = prune(cursors, live)
		if live == 0 {
			break
		}
		if live == 1 {
			cursors[0].Discharge(out)
			break
		}
		rounds++
		set := cursors[:live]
		s := collectStats(set)
		switch {
		case s.maxOneRl > 0:
			out.AddRun(true, s.maxOneRl)
			advance(set, s.maxOneRl)
		case s.minZeroRl > 0:
			out.AddRun(false, s.minZeroRl)
			advance(set, s.minZeroRl)
		default:
			orLiterals(set, &s, out)
			advance(set, s.minSize)
		}
	}
	out.SetSizeInBits(size)
	a.lo.Debug("streaming or", "inputs", len(bms), "rounds", rounds, "size", size)
}

// orLiterals writes s.minSize words where at least one cursor is on literal words.
// Every cursor with a non zero run is inside a run of zeros at this point.
func orLiterals(set []bitmaps.Cursor, s *roundStats, out bitmaps.Storage) {
	var index int
	if s.numEmptyRl == 1 {
		// Only one cursor has literals until the shortest zero run ends, copy them as is.
		var lone *bitmaps.Cursor
		minRl := math.MaxInt
		for i := range set {
			if rl := set[i].RunLength(); rl == 0 {
				lone = &set[i]
			} else {
				minRl = min(minRl, rl)
			}
		}
		index = min(minRl, s.minSize)
		lone.WriteLiterals(index, out)
	}
	for ; index < s.minSize; index++ {
		var w uint64
		for i := range set {
			c := &set[i]
			if rl := c.RunLength(); rl <= index {
				w |= c.LiteralAt(index - rl)
			}
		}
		out.AddWord(w)
	}
}
