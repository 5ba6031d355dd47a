package bitmaps

// WordBits is the number of bits in a word.
const WordBits = 64

const (
	runningLengthBits = 32
	literalBits       = WordBits - 1 - runningLengthBits

	// LargestRunningLength is the longest run a single marker word can describe.
	LargestRunningLength = (1 << runningLengthBits) - 1

	// LargestLiteralCount is the maximum number of literal words following a marker.
	LargestLiteralCount = (1 << literalBits) - 1

	runningLengthShift = 1
	literalShift       = 1 + runningLengthBits

	runningLengthMask = uint64(LargestRunningLength) << runningLengthShift
	literalMask       = uint64(LargestLiteralCount) << literalShift
)

const (
	zeroWord = uint64(0)
	oneWord  = ^uint64(0)
)

// marker word accessors. A marker word packs the running bit (bit 0), the running
// length (bits 1..32) and the number of literal words that follow (bits 33..63).

func runningBit(rlw uint64) bool {
	return rlw&1 != 0
}

func runningLength(rlw uint64) int {
	return int((rlw & runningLengthMask) >> runningLengthShift)
}

func literalCount(rlw uint64) int {
	return int((rlw & literalMask) >> literalShift)
}

func setRunningBit(rlw uint64, bit bool) uint64 {
	if bit {
		return rlw | 1
	}
	return rlw &^ 1
}

func setRunningLength(rlw uint64, n int) uint64 {
	return (rlw &^ runningLengthMask) | (uint64(n) << runningLengthShift)
}

func setLiteralCount(rlw uint64, n int) uint64 {
	return (rlw &^ literalMask) | (uint64(n) << literalShift)
}
