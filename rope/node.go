package rope

import (
	"sync/atomic"

	"github.com/dshills/unitext/text"
)

// MinChildren and MaxChildren bound the fan-out buildBalanced gives each
// interior node it assembles. insertIntoNode splits a node in two once a
// child's split pushes it past MaxChildren; Erase does no rebalancing of
// its own, since it removes ranges through split and join.
const (
	MinChildren = 8
	MaxChildren = 16
)

// MinLeafSize and MaxLeafSize bound how large a single Owned leaf's text is
// allowed to grow before a long insertion is chunked into multiple leaves,
// the way the teacher's chunk.go bounds a single Chunk.
const (
	MinLeafSize    = 128
	MaxLeafSize    = 256
	TargetLeafSize = 192
)

type leafKind uint8

const (
	leafOwned leafKind = iota
	leafView
	leafRepeated
	leafRef
)

// leaf holds exactly one payload variant, selected by kind. This is Go's
// idiom for the source interface's placement-new tagged union: a plain
// struct with an explicit kind field keeps every leaf's payload in one
// allocation alongside the node that holds it, rather than boxing it
// behind an interface value.
type leaf struct {
	kind     leafKind
	owned    text.Text
	view     text.View
	repeated text.RepeatedView
	ref      refWindow
}

// refWindow is a window [lo,hi) into the text owned by an Owned leaf node.
// It is always flattened to point directly at that Owned node: building a
// Ref of a Ref rewrites the window in terms of the original Owned node
// instead of chaining, so a Ref never dereferences through another Ref to
// read its bytes.
type refWindow struct {
	base   NodePtr // a leaf node with kind == leafOwned
	lo, hi int
}

func (l leaf) size() int {
	switch l.kind {
	case leafOwned:
		return l.owned.Len()
	case leafView:
		return l.view.Len()
	case leafRepeated:
		return l.repeated.Len()
	case leafRef:
		return l.ref.hi - l.ref.lo
	default:
		return 0
	}
}

// byteAt returns the byte at offset i within the leaf's logical content.
func (l leaf) byteAt(i int) byte {
	switch l.kind {
	case leafOwned:
		return l.owned.Bytes()[i]
	case leafView:
		return l.view.Bytes()[i]
	case leafRepeated:
		return l.repeated.ByteAt(i)
	case leafRef:
		return l.ref.base.n.leaf.byteAt(l.ref.lo + i)
	default:
		return 0
	}
}

// appendRange appends the leaf's [lo,hi) byte range to dst.
func (l leaf) appendRange(dst []byte, lo, hi int) []byte {
	switch l.kind {
	case leafOwned:
		return append(dst, l.owned.Bytes()[lo:hi]...)
	case leafView:
		return append(dst, l.view.Bytes()[lo:hi]...)
	case leafRepeated:
		for i := lo; i < hi; i++ {
			dst = append(dst, l.repeated.ByteAt(i))
		}
		return dst
	case leafRef:
		return l.ref.base.n.leaf.appendRange(dst, l.ref.lo+lo, l.ref.lo+hi)
	default:
		return dst
	}
}

// slice returns a new leaf value holding the [lo,hi) sub-range of l,
// preserving l's variant where that is representable without copying, and
// falling back to materializing an Owned leaf otherwise (only a
// leafRepeated cut that doesn't land on a unit boundary needs this).
func (l leaf) slice(lo, hi int) leaf {
	switch l.kind {
	case leafOwned:
		return ownedLeaf(l.owned.Slice(lo, hi))
	case leafView:
		return viewLeaf(l.view.Slice(lo, hi))
	case leafRef:
		return refLeaf(l.ref.base, l.ref.lo+lo, l.ref.lo+hi)
	case leafRepeated:
		unit := len(l.repeated.Unit())
		if unit > 0 && lo%unit == 0 && hi%unit == 0 {
			return repeatedLeaf(l.repeated.Unit(), (hi-lo)/unit)
		}
		buf := l.appendRange(make([]byte, 0, hi-lo), lo, hi)
		return ownedLeaf(text.NewTextUnchecked(string(buf)))
	default:
		return leaf{}
	}
}

func ownedLeaf(t text.Text) leaf { return leaf{kind: leafOwned, owned: t} }
func viewLeaf(v text.View) leaf  { return leaf{kind: leafView, view: v} }
func repeatedLeaf(unit string, n int) leaf {
	return leaf{kind: leafRepeated, repeated: text.NewRepeatedView(unit, n)}
}
func refLeaf(base NodePtr, lo, hi int) leaf {
	if base.n.leaf.kind == leafRef {
		inner := base.n.leaf.ref
		return leaf{kind: leafRef, ref: refWindow{base: inner.base, lo: inner.lo + lo, hi: inner.lo + hi}}
	}
	return leaf{kind: leafRef, ref: refWindow{base: base, lo: lo, hi: hi}}
}

// node is either a leaf (holding one payload variant) or an interior node
// (holding MinChildren..MaxChildren children when built by buildBalanced;
// the root, and the nodes splitLeafForInsert and insertIntoNode create,
// can hold fewer or more, and splitLeafForInsert puts an interior node
// where a leaf was, so leaves need not all sit at the same depth). cum[i]
// is the cumulative
// size of children[0..i] inclusive, enabling an O(log MaxChildren)
// positional lookup within the node via binary search instead of a linear
// scan across children.
type node struct {
	refcount int32 // atomic; number of NodePtr values aliasing this node

	isLeaf   bool
	leaf     leaf
	children []NodePtr
	cum      []int
}

func (n *node) size() int {
	if n.isLeaf {
		return n.leaf.size()
	}
	if len(n.cum) == 0 {
		return 0
	}
	return n.cum[len(n.cum)-1]
}

// childOffset returns the cumulative size of children[:i].
func (n *node) childOffset(i int) int {
	if i == 0 {
		return 0
	}
	return n.cum[i-1]
}

// locate returns the index of the child containing byte offset pos, and
// the offset of pos relative to the start of that child. pos must be in
// [0, n.size()]; pos == n.size() locates the last child, at its size.
func (n *node) locate(pos int) (idx, rel int) {
	if len(n.children) == 0 {
		return 0, pos
	}
	lo, hi := 0, len(n.cum)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if n.cum[mid] > pos {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	idx = lo
	rel = pos - n.childOffset(idx)
	return idx, rel
}

func (n *node) recompute() {
	n.cum = n.cum[:0]
	sum := 0
	for _, c := range n.children {
		sum += c.n.size()
		n.cum = append(n.cum, sum)
	}
}

func newLeafNode(l leaf) *node {
	return &node{refcount: 1, isLeaf: true, leaf: l}
}

func newInteriorNode(children []NodePtr) *node {
	n := &node{refcount: 1, children: children}
	n.recompute()
	return n
}

// NodePtr is a reference-counted, copy-on-write pointer to a node. Cloning
// a NodePtr (via clone) bumps the refcount rather than copying the node,
// so a Rope version and the version derived from editing it can share
// untouched subtrees. write gives a caller about to mutate a node
// exclusive access to it, copying only when the refcount shows the node is
// still shared.
//
// Go's garbage collector, not this refcount, is what frees a node's
// memory: the count only gates the copy-on-write fast path. A NodePtr
// dropped without its count being decremented just means a future write
// takes the copying path once more than strictly necessary; it can never
// cause a use-after-free or a leak, since nothing here calls free. This is
// a deliberate simplification from the source interface's manual
// intrusive_ptr destructor accounting, which Go's lack of destructors
// makes impractical to replicate exactly; see DESIGN.md.
type NodePtr struct {
	n *node
}

func nodePtr(n *node) NodePtr { return NodePtr{n: n} }

// clone returns a NodePtr aliasing the same node, after recording the new
// reference.
func (p NodePtr) clone() NodePtr {
	if p.n != nil {
		atomic.AddInt32(&p.n.refcount, 1)
	}
	return p
}

// release records that a NodePtr derived from p is no longer held. It does
// not free anything; see the NodePtr doc comment.
func (p NodePtr) release() {
	if p.n != nil {
		atomic.AddInt32(&p.n.refcount, -1)
	}
}

func (p NodePtr) uniquelyOwned() bool {
	return p.n != nil && atomic.LoadInt32(&p.n.refcount) == 1
}

// write returns a NodePtr safe to mutate in place: p itself if p is
// uniquely owned, or a shallow copy (with all children re-cloned) with a
// fresh refcount of 1 otherwise.
func (p NodePtr) write() NodePtr {
	if p.uniquelyOwned() {
		return p
	}
	cp := &node{isLeaf: p.n.isLeaf, leaf: p.n.leaf, refcount: 1}
	if !p.n.isLeaf {
		cp.children = make([]NodePtr, len(p.n.children))
		for i, c := range p.n.children {
			cp.children[i] = c.clone()
		}
		cp.cum = append([]int(nil), p.n.cum...)
	}
	return nodePtr(cp)
}

func (p NodePtr) size() int {
	if p.n == nil {
		return 0
	}
	return p.n.size()
}
