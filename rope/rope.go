package rope

import (
	"github.com/dshills/unitext/text"
	"github.com/dshills/unitext/utf"
)

// Rope is a persistent, structurally shared sequence of bytes backed by a
// B-tree of reference-counted nodes (see NodePtr). Every operation that
// looks like a mutation — Insert, Erase, Replace, Concat — returns a new
// Rope and leaves its receiver untouched; leaves untouched by an edit are
// shared between the old and new versions rather than copied (Concat,
// Insert, and Erase rebuild the interior nodes; see join).
type Rope struct {
	root NodePtr
}

// boundaryContext bounds how much surrounding text Insert/Erase/Replace
// materialize to check a grapheme-cluster boundary and compute the FCC
// renormalization window. It is large enough for any grapheme cluster
// found in ordinary text; a pathological cluster longer than this (an
// extreme ZWJ chain, say) would be misjudged at the window edge — a
// documented limitation, not silently miscounted as a crash.
const boundaryContext = 64

// New returns an empty Rope.
func New() Rope { return Rope{} }

// FromString validates s per opts and builds a Rope from it, chunked into
// Owned leaves no larger than MaxLeafSize.
func FromString(s string, opts ...Option) (Rope, error) {
	c := newConfig(opts)
	t, err := text.NewText(s, c.mode)
	if err != nil {
		return Rope{}, err
	}
	return FromText(t), nil
}

// FromText builds a Rope directly from an already-validated Text.
func FromText(t text.Text) Rope {
	return Rope{root: buildBalanced(leafNodesFromString(t.String()))}
}

func leafNodesFromString(s string) []NodePtr {
	leaves := chunkOwnedText(s)
	nodes := make([]NodePtr, len(leaves))
	for i, l := range leaves {
		nodes[i] = nodePtr(newLeafNode(l))
	}
	return nodes
}

// FromView builds a Rope that borrows s's storage as a single View leaf,
// without copying it.
func FromView(s string) Rope {
	return Rope{root: nodePtr(newLeafNode(viewLeaf(text.NewView(s))))}
}

// FromRepeated builds a Rope representing unit repeated n times without
// materializing the repetition.
func FromRepeated(unit string, n int) Rope {
	if n <= 0 || unit == "" {
		return Rope{}
	}
	return Rope{root: nodePtr(newLeafNode(repeatedLeaf(unit, n)))}
}

// Len returns the rope's length in bytes.
func (r Rope) Len() int { return r.root.size() }

// IsEmpty reports whether the rope is empty.
func (r Rope) IsEmpty() bool { return r.Len() == 0 }

// String materializes the entire rope as a string.
func (r Rope) String() string { return string(r.Bytes()) }

// Bytes materializes the entire rope as a byte slice.
func (r Rope) Bytes() []byte {
	buf := make([]byte, 0, r.Len())
	appendSubtree(&buf, r.root)
	return buf
}

func appendSubtree(dst *[]byte, np NodePtr) {
	if np.n == nil {
		return
	}
	if np.n.isLeaf {
		*dst = np.n.leaf.appendRange(*dst, 0, np.n.leaf.size())
		return
	}
	for _, c := range np.n.children {
		appendSubtree(dst, c)
	}
}

// ByteAt returns the byte at offset i.
func (r Rope) ByteAt(i int) byte {
	np := r.root
	for !np.n.isLeaf {
		idx, rel := np.n.locate(i)
		np = np.n.children[idx]
		i = rel
	}
	return np.n.leaf.byteAt(i)
}

// Slice returns the byte range [lo,hi) as a new Rope, sharing storage with
// the receiver wherever possible.
func (r Rope) Slice(lo, hi int) Rope {
	if lo < 0 || hi > r.Len() || lo > hi {
		return Rope{}
	}
	_, right := split(r.root, lo)
	left, _ := split(right, hi-lo)
	return Rope{root: left}
}

// Concat returns a new Rope holding the receiver's bytes followed by
// other's.
func (r Rope) Concat(other Rope) Rope {
	return Rope{root: join(r.root, other.root)}
}

// IsGraphemeBoundary reports whether byte offset at falls on a grapheme
// cluster boundary, using a bounded window of surrounding context (see
// boundaryContext) rather than materializing the whole rope.
func (r Rope) IsGraphemeBoundary(at int) bool {
	if at == 0 || at == r.Len() {
		return true
	}
	ctxLo, ctxHi := contextWindow(r, at, at)
	context := r.Slice(ctxLo, ctxHi).String()
	return text.IsGraphemeBoundary(context, at-ctxLo)
}

func contextWindow(r Rope, lo, hi int) (int, int) {
	ctxLo := lo - boundaryContext
	if ctxLo < 0 {
		ctxLo = 0
	}
	ctxHi := hi + boundaryContext
	if ctxHi > r.Len() {
		ctxHi = r.Len()
	}
	return ctxLo, ctxHi
}

// Insert splices s into the rope at byte offset pos, which must fall on a
// grapheme cluster boundary; the inserted text, together with the
// grapheme cluster(s) straddling pos, is renormalized to FCC canonical
// composition.
func (r Rope) Insert(pos int, s string) (Rope, error) {
	if s == "" {
		return r, nil
	}
	if pos < 0 || pos > r.Len() {
		return Rope{}, PreconditionViolation
	}

	ctxLo, ctxHi := contextWindow(r, pos, pos)
	context := r.Slice(ctxLo, ctxHi).String()
	localPos := pos - ctxLo

	if !text.IsGraphemeBoundary(context, localPos) {
		return Rope{}, PreconditionViolation
	}

	edited, err := text.Insert(text.NewTextUnchecked(context), localPos, s)
	if err != nil {
		return Rope{}, err
	}

	rest := replaceRange(r, ctxLo, ctxHi)
	return Rope{root: insertLeaves(rest.root, ctxLo, leafNodesFromString(edited.String()))}, nil
}

// Erase removes the byte range [lo,hi), which must fall on grapheme
// cluster boundaries, renormalizing the join left behind.
func (r Rope) Erase(lo, hi int) (Rope, error) {
	if lo < 0 || hi > r.Len() || lo > hi {
		return Rope{}, PreconditionViolation
	}
	if lo == hi {
		return r, nil
	}

	ctxLo, ctxHi := contextWindow(r, lo, hi)
	context := r.Slice(ctxLo, ctxHi).String()
	localLo, localHi := lo-ctxLo, hi-ctxLo

	if !text.IsGraphemeBoundary(context, localLo) || !text.IsGraphemeBoundary(context, localHi) {
		return Rope{}, PreconditionViolation
	}

	edited, err := text.Erase(text.NewTextUnchecked(context), localLo, localHi)
	if err != nil {
		return Rope{}, err
	}

	rest := replaceRange(r, ctxLo, ctxHi)
	return Rope{root: insertLeaves(rest.root, ctxLo, leafNodesFromString(edited.String()))}, nil
}

// Replace erases [lo,hi) and inserts s in its place, renormalizing both
// edges of the edit.
func (r Rope) Replace(lo, hi int, s string) (Rope, error) {
	erased, err := r.Erase(lo, hi)
	if err != nil {
		return Rope{}, err
	}
	return erased.Insert(lo, s)
}

// replaceRange removes [lo,hi) from r via two structural splits and a
// join, without materializing the parts that are kept.
func replaceRange(r Rope, lo, hi int) Rope {
	left, rest := split(r.root, lo)
	_, right := split(rest, hi-lo)
	return Rope{root: join(left, right)}
}

// ValidateUTF8 reports whether s is well-formed UTF-8, matching the check
// ModeStrict construction performs.
func ValidateUTF8(s string) bool {
	_, err := text.NewText(s, utf.ModeStrict)
	return err == nil
}
