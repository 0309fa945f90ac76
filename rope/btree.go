package rope

import "github.com/dshills/unitext/text"

// buildBalanced assembles an ordered list of leaf nodes into a balanced
// B-tree bottom-up, grouping MinChildren..MaxChildren leaves per interior
// node at each level until a single root remains. Grounded on the
// teacher's builder.go buildFromChunks, generalized from a flat
// Chunk-per-leaf model to this package's one-payload-per-leaf model.
func buildBalanced(level []NodePtr) NodePtr {
	if len(level) == 0 {
		return NodePtr{}
	}
	for len(level) > 1 {
		next := make([]NodePtr, 0, (len(level)+MaxChildren-1)/MaxChildren)
		i := 0
		for i < len(level) {
			remaining := len(level) - i
			groupSize := remaining
			switch {
			case remaining > MaxChildren && remaining < MaxChildren+MinChildren:
				// Avoid stranding a final group below MinChildren: split
				// the remainder evenly across two groups instead.
				groupSize = remaining / 2
			case remaining > MaxChildren:
				groupSize = MaxChildren
			}
			group := append([]NodePtr(nil), level[i:i+groupSize]...)
			next = append(next, nodePtr(newInteriorNode(group)))
			i += groupSize
		}
		level = next
	}
	return level[0]
}

// collectLeaves appends every leaf node in root's subtree, in order, to
// dst, cloning each one: root's own tree may still be in use (join's
// caller, Rope.Concat, hands back its receiver unchanged), so the leaves
// end up referenced by both the original tree and whatever buildBalanced
// assembles from dst, and the clone is what keeps that sharing visible to
// a later write()'s uniquelyOwned check.
func collectLeaves(root NodePtr, dst []NodePtr) []NodePtr {
	if root.n == nil {
		return dst
	}
	if root.n.isLeaf {
		return append(dst, root.clone())
	}
	for _, c := range root.n.children {
		dst = collectLeaves(c, dst)
	}
	return dst
}

// chunkOwnedText splits s into Owned leaves no larger than MaxLeafSize,
// breaking only on UTF-8 rune boundaries, following the teacher's
// chunk.go splitIntoChunks/findUTF8Boundary.
func chunkOwnedText(s string) []leaf {
	if len(s) == 0 {
		return nil
	}
	if len(s) <= MaxLeafSize {
		return []leaf{ownedLeaf(text.NewTextUnchecked(s))}
	}

	var out []leaf
	for len(s) > 0 {
		n := TargetLeafSize
		if n > len(s) {
			n = len(s)
		} else {
			n = findUTF8Boundary(s, n)
		}
		out = append(out, ownedLeaf(text.NewTextUnchecked(s[:n])))
		s = s[n:]
	}
	return out
}

// findUTF8Boundary returns the largest index <= n that does not split a
// UTF-8 multi-byte sequence.
func findUTF8Boundary(s string, n int) int {
	if n >= len(s) {
		return len(s)
	}
	for n > 0 && isContinuationByte(s[n]) {
		n--
	}
	if n == 0 {
		// A single rune longer than the target; advance past it instead
		// of producing a zero-length chunk.
		n = 1
		for n < len(s) && isContinuationByte(s[n]) {
			n++
		}
	}
	return n
}

func isContinuationByte(b byte) bool {
	return b&0xC0 == 0x80
}

// insertLeaves splices newLeaves into the tree rooted at root at byte
// offset pos. root may be the zero NodePtr, meaning an empty tree.
func insertLeaves(root NodePtr, pos int, newLeaves []NodePtr) NodePtr {
	if root.n == nil {
		return buildBalanced(newLeaves)
	}
	left, right, split := insertIntoNode(root, pos, newLeaves)
	if !split {
		return left
	}
	return nodePtr(newInteriorNode([]NodePtr{left, right}))
}

// insertIntoNode performs the recursive half of insertLeaves: it returns
// either a single replacement node (split == false) or two sibling nodes
// the caller must absorb as two children in place of the original one
// (split == true), which is how an overflow at one level is pushed up to
// its parent — the same propagate-a-split-upward shape as CLRS's
// preemptive top-down split, expressed here as the node returns from the
// recursive call instead of being precomputed on the way down, which
// composes more naturally with the copy-on-write node model.
func insertIntoNode(np NodePtr, pos int, newLeaves []NodePtr) (left, right NodePtr, split bool) {
	if np.n.isLeaf {
		return splitLeafForInsert(np, pos, newLeaves)
	}

	idx, rel := np.n.locate(pos)
	childLeft, childRight, childSplit := insertIntoNode(np.n.children[idx], rel, newLeaves)

	w := np.write()
	if !childSplit {
		w.n.children[idx] = childLeft
		w.n.recompute()
		return w, NodePtr{}, false
	}

	merged := make([]NodePtr, 0, len(w.n.children)+1)
	merged = append(merged, w.n.children[:idx]...)
	merged = append(merged, childLeft, childRight)
	merged = append(merged, w.n.children[idx+1:]...)

	if len(merged) <= MaxChildren {
		return nodePtr(newInteriorNode(merged)), NodePtr{}, false
	}

	mid := len(merged) / 2
	l := nodePtr(newInteriorNode(append([]NodePtr(nil), merged[:mid]...)))
	r := nodePtr(newInteriorNode(append([]NodePtr(nil), merged[mid:]...)))
	return l, r, true
}

// splitLeafForInsert cuts the leaf held by np at byte offset pos and
// interleaves newLeaves between the two halves, producing either a single
// node (no overflow) or two sibling nodes (overflow, split == true).
func splitLeafForInsert(np NodePtr, pos int, newLeaves []NodePtr) (left, right NodePtr, split bool) {
	if merged, ok := tryInPlaceLeafInsert(np, pos, newLeaves); ok {
		return merged, NodePtr{}, false
	}

	size := np.n.leaf.size()
	children := make([]NodePtr, 0, len(newLeaves)+2)
	if pos > 0 {
		children = append(children, nodePtr(newLeafNode(np.n.leaf.slice(0, pos))))
	}
	children = append(children, newLeaves...)
	if pos < size {
		children = append(children, nodePtr(newLeafNode(np.n.leaf.slice(pos, size))))
	}

	if len(children) == 0 {
		// Inserting nothing into an empty leaf; shouldn't normally
		// happen, but return an equivalent empty leaf rather than a nil
		// NodePtr so callers always get a valid node back.
		return np, NodePtr{}, false
	}
	if len(children) == 1 {
		return children[0], NodePtr{}, false
	}
	if len(children) <= MaxChildren {
		return nodePtr(newInteriorNode(children)), NodePtr{}, false
	}

	mid := len(children) / 2
	l := nodePtr(newInteriorNode(append([]NodePtr(nil), children[:mid]...)))
	r := nodePtr(newInteriorNode(append([]NodePtr(nil), children[mid:]...)))
	return l, r, true
}

// split divides the tree rooted at root into two trees holding [0,pos) and
// [pos,size). Either half may come back as the zero NodePtr if empty.
func split(root NodePtr, pos int) (NodePtr, NodePtr) {
	if root.n == nil {
		return NodePtr{}, NodePtr{}
	}
	if root.n.isLeaf {
		size := root.n.leaf.size()
		var l, r NodePtr
		if pos > 0 {
			l = nodePtr(newLeafNode(root.n.leaf.slice(0, pos)))
		}
		if pos < size {
			r = nodePtr(newLeafNode(root.n.leaf.slice(pos, size)))
		}
		return l, r
	}

	idx, rel := root.n.locate(pos)
	childL, childR := split(root.n.children[idx], rel)

	// children[:idx] and children[idx+1:] are untouched by the split and
	// carried over whole into the two results below, but root itself
	// remains valid and keeps its own references to them — clone so that
	// sharing is reflected in the refcount, the same way write() does
	// when it copies a node's children.
	var leftChildren, rightChildren []NodePtr
	leftChildren = append(leftChildren, cloneAll(root.n.children[:idx])...)
	if childL.n != nil {
		leftChildren = append(leftChildren, childL)
	}
	if childR.n != nil {
		rightChildren = append(rightChildren, childR)
	}
	rightChildren = append(rightChildren, cloneAll(root.n.children[idx+1:])...)

	return wrapChildren(leftChildren), wrapChildren(rightChildren)
}

func cloneAll(children []NodePtr) []NodePtr {
	out := make([]NodePtr, len(children))
	for i, c := range children {
		out[i] = c.clone()
	}
	return out
}

func wrapChildren(children []NodePtr) NodePtr {
	switch len(children) {
	case 0:
		return NodePtr{}
	case 1:
		return children[0]
	default:
		return nodePtr(newInteriorNode(children))
	}
}

// join concatenates two trees into one, rebuilding a balanced tree from
// their combined leaves. This trades the asymptotically optimal
// logarithmic-height join of a from-scratch B-tree implementation for a
// simple, obviously-correct one; see DESIGN.md's Open Questions for the
// rationale. Rope.Insert splices its new leaves in with insertLeaves, but
// it first cuts out the edit window with replaceRange, which calls join,
// so Insert and Erase pay this linear cost too.
func join(a, b NodePtr) NodePtr {
	if a.n == nil {
		return b
	}
	if b.n == nil {
		return a
	}
	leaves := collectLeaves(a, nil)
	leaves = collectLeaves(b, leaves)
	return buildBalanced(leaves)
}
