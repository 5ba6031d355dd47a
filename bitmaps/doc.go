// Package bitmaps exposes APIs for working with word aligned hybrid (EWAH) compressed
// bitmaps using 64 bit words.
//
// A bitmap is a sequence of groups. Each group starts with a marker word describing a
// run of uniform words (all zeros or all ones) followed by a number of literal words
// stored verbatim. Routines here consume bitmaps through [Cursor] and produce them
// through [Storage], which lets merges write straight into any sink.
package bitmaps
