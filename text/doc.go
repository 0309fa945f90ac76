// Package text implements the flat Unicode text layer: owned and borrowed
// byte-sequence variants, grapheme-cluster iteration, and the FCC
// normalization invariant that every edit at a grapheme boundary must
// preserve.
//
// # Variants
//
// Text owns its storage. View borrows a string without claiming ownership
// of it — in Go both are backed by the language's own immutable, zero-copy
// string type, so the distinction is one of intent (documented at the call
// site) rather than of memory-safety mechanism; the source library's
// text_view needed to track the lifetime of externally owned storage in a
// way Go's garbage collector already guarantees. RepeatedView represents a
// single unit string repeated a count of times without materializing the
// repetition until it is read.
//
// # Grapheme cluster edits
//
// Every insertion, erasure, or replacement that Insert, Erase, and Replace
// perform is
// defined at grapheme-cluster boundaries (github.com/rivo/uniseg) and
// renormalizes the narrowest enclosing FCC-safe window around the edit
// (internal/fcc) rather than the whole text, so that composing or
// decomposing sequences that straddle the edit point end up in a single
// canonical form afterward.
package text
