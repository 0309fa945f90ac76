// Package rope provides a persistent, structurally shared B-tree rope over
// Unicode text, built on the grapheme and FCC-normalization semantics in
// package text.
//
// A Rope is a tree of reference-counted, copy-on-write nodes. FromString,
// Concat, and the join step inside Insert and Erase assemble it as a
// balanced B-tree of order 8..16; Insert then splices its new leaves in
// without rebalancing, so an interior node on the edited path can hold
// fewer than 8 or more than 16 children, and the leaves under it can sit
// one level deeper than the rest. Every leaf holds exactly one of four
// payload variants: an Owned
// chunk of text the leaf exclusively holds, a View borrowing a caller's
// string without copying it, a RepeatedView representing a unit string
// repeated n times without materializing the repetition, or a Ref window
// into another Owned leaf's storage. All four are held in the same leaf
// struct and read through its methods (size, byteAt, appendRange, slice),
// so the split and join algorithms never need to know which variant they
// are walking.
//
// # Basic usage
//
//	r, err := rope.FromString("hello world", rope.WithMode(utf.ModeStrict))
//	r, err = r.Insert(5, ",")        // "hello, world"
//	r, err = r.Erase(0, 7)           // "world"
//	r, err = r.Replace(0, 5, "planet")
//	s := r.String()
//	sub := r.Slice(0, 4)
//
// # Immutability and structural sharing
//
// Insert, Erase, Replace, Concat, and Slice all return a new Rope and
// leave the receiver untouched. Leaves untouched by an edit are shared
// between the old and new Rope rather than copied. Interior nodes are
// shared only by Slice: Concat, and the join step that Insert, Erase, and
// Replace use to cut out the edit window, rebuild every interior node of
// the result from its leaves, which costs time linear in the leaf count.
// This sharing is the copy-on-write discipline NodePtr implements — see its
// doc comment in node.go for how that interacts with Go's garbage
// collector.
//
// # Grapheme and normalization boundaries
//
// Insert, Erase, and Replace require their byte offsets to fall on
// grapheme cluster boundaries (as package text defines them) and
// renormalize the affected splice to FCC canonical composition; violating
// a boundary returns PreconditionViolation rather than silently slicing a
// cluster in half. Rope.IsGraphemeBoundary and Cursor.AtGraphemeBoundary
// let a caller check before editing.
//
// # Cursors and iteration
//
// Cursor provides bidirectional navigation by byte or by grapheme
// cluster. LeafIterator and Walk traverse a Rope's leaves in order without
// materializing the whole text, useful for streaming a Rope's content out
// without an intermediate allocation the size of the rope.
//
// # Building ropes efficiently
//
// Builder buffers writes and defers chunking and tree assembly to Build,
// which is more efficient than repeated Insert calls when assembling a
// Rope from many small pieces. FromLines, JoinRopes, RepeatString, and
// BuildNormalized cover common construction patterns.
package rope
