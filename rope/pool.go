package rope

import (
	"sync"

	"github.com/dshills/unitext/text"
)

// scratchPool supplies reusable byte buffers for assembling a leaf's new
// content, adapted from the teacher's pool.go sync.Pool-based NodePool.
// That pool recycled *Node values themselves; this one never does, since a
// *node can be reachable from more than one Rope version and handing it
// back to a pool for reuse would let an unrelated caller overwrite bytes
// another version is still reading. What it pools instead is throwaway
// []byte scratch, used only by tryInPlaceLeafInsert below while mutating a
// leaf it has confirmed is uniquely owned.
var scratchPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, 0, MaxLeafSize)
		return &buf
	},
}

func getScratch(capacity int) *[]byte {
	p := scratchPool.Get().(*[]byte)
	if cap(*p) < capacity {
		*p = make([]byte, 0, capacity)
	} else {
		*p = (*p)[:0]
	}
	return p
}

func putScratch(p *[]byte) {
	if p == nil {
		return
	}
	if cap(*p) > 4*MaxLeafSize {
		// Drop oversized buffers instead of pinning their backing array in
		// the pool indefinitely.
		return
	}
	*p = (*p)[:0]
	scratchPool.Put(p)
}

// tryInPlaceLeafInsert is the fast path for the common case of splicing a
// single small Owned leaf's worth of text into np: when np is the only
// NodePtr referencing its node and the combined content still fits within
// one leaf, it overwrites np's leaf content directly, using a pooled
// scratch buffer to assemble the merged bytes, instead of allocating three
// sibling nodes (prefix, insertion, suffix) for what is, in the common
// case, a single keystroke or small paste.
//
// This is only safe because uniquelyOwned reports true: np.n is then not
// reachable from any other Rope value, so overwriting its leaf field
// cannot be observed by anyone else. Every place that shares a NodePtr
// into more than one tree (write's child-cloning, split and collectLeaves
// in btree.go) calls clone to keep that count accurate; see the NodePtr
// doc comment in node.go for why an occasional missed release is
// harmless but a missed clone here would not be.
func tryInPlaceLeafInsert(np NodePtr, pos int, newLeaves []NodePtr) (NodePtr, bool) {
	if np.n == nil || !np.n.isLeaf || np.n.leaf.kind != leafOwned || !np.uniquelyOwned() {
		return NodePtr{}, false
	}
	if len(newLeaves) != 1 || newLeaves[0].n == nil || !newLeaves[0].n.isLeaf || newLeaves[0].n.leaf.kind != leafOwned {
		return NodePtr{}, false
	}

	size := np.n.leaf.size()
	insSize := newLeaves[0].n.leaf.size()
	if size+insSize > MaxLeafSize {
		return NodePtr{}, false
	}

	scratch := getScratch(size + insSize)
	defer putScratch(scratch)

	*scratch = np.n.leaf.appendRange(*scratch, 0, pos)
	*scratch = newLeaves[0].n.leaf.appendRange(*scratch, 0, insSize)
	*scratch = np.n.leaf.appendRange(*scratch, pos, size)

	merged := make([]byte, len(*scratch))
	copy(merged, *scratch)

	np.n.leaf = ownedLeaf(text.NewTextUnchecked(string(merged)))
	return np, true
}
