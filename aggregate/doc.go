// Package aggregate computes AND, OR and XOR aggregates over many compressed bitmaps.
//
// Three strategies are provided. [Reduce] combines operands pairwise, always merging the
// two cheapest operands first. [Aggregator.BufferedOr] decompresses bounded chunks of
// every input into a scratch buffer and compresses the union back. [Aggregator.StreamingOr]
// works on run metadata directly and only touches literal words where inputs disagree.
package aggregate
