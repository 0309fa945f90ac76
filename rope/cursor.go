package rope

import "github.com/dshills/unitext/text"

// Cursor is a bidirectional byte-position cursor over a Rope, carried from
// the teacher's cursor.go and adapted to this package's node model: a
// path stack, one frame per tree level from the root to the leaf holding
// the current position, records which child was descended into at each
// level. Line and column tracking is dropped — the source interface's
// rope has no line concept, and this package's cursor is scoped to byte
// and grapheme-cluster positions only.
type Cursor struct {
	r   Rope
	pos int

	// path holds one cursorFrame per tree level from the root down to the
	// leaf containing pos.
	path []cursorFrame
}

type cursorFrame struct {
	np  NodePtr
	idx int // index of the child on path that contains pos
}

// NewCursor returns a cursor positioned at byte offset pos in r.
func NewCursor(r Rope, pos int) *Cursor {
	c := &Cursor{r: r}
	c.seek(pos)
	return c
}

// Pos returns the cursor's current byte offset.
func (c *Cursor) Pos() int { return c.pos }

// seek rebuilds the path from the root to pos. Seek, NextByte, PrevByte,
// and the grapheme moves all go through it; none of them step along the
// cached path.
func (c *Cursor) seek(pos int) {
	c.path = c.path[:0]
	np := c.r.root
	rel := pos
	for np.n != nil && !np.n.isLeaf {
		idx, r := np.n.locate(rel)
		c.path = append(c.path, cursorFrame{np: np, idx: idx})
		np = np.n.children[idx]
		rel = r
	}
	if np.n != nil {
		c.path = append(c.path, cursorFrame{np: np})
	}
	c.pos = pos
}

// Seek moves the cursor to byte offset pos.
func (c *Cursor) Seek(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > c.r.Len() {
		pos = c.r.Len()
	}
	c.seek(pos)
}

// ByteAt returns the byte at the cursor's current position.
func (c *Cursor) ByteAt() (byte, bool) {
	if c.pos >= c.r.Len() || len(c.path) == 0 {
		return 0, false
	}
	leafFrame := c.path[len(c.path)-1]
	offsetInLeaf := c.pos - leafOffset(c)
	return leafFrame.np.n.leaf.byteAt(offsetInLeaf), true
}

// leafOffset returns the byte offset of the start of the cursor's current
// leaf within the whole rope.
func leafOffset(c *Cursor) int {
	offset := 0
	for _, f := range c.path[:len(c.path)-1] {
		offset += f.np.n.childOffset(f.idx)
	}
	return offset
}

// NextByte advances the cursor by one byte and reports whether it moved.
func (c *Cursor) NextByte() bool {
	if c.pos >= c.r.Len() {
		return false
	}
	c.seek(c.pos + 1)
	return true
}

// PrevByte retreats the cursor by one byte and reports whether it moved.
func (c *Cursor) PrevByte() bool {
	if c.pos <= 0 {
		return false
	}
	c.seek(c.pos - 1)
	return true
}

// AtGraphemeBoundary reports whether the cursor sits on a grapheme cluster
// boundary.
func (c *Cursor) AtGraphemeBoundary() bool {
	return c.r.IsGraphemeBoundary(c.pos)
}

// NextGrapheme advances the cursor to the start of the following grapheme
// cluster and reports whether it moved.
func (c *Cursor) NextGrapheme() bool {
	if c.pos >= c.r.Len() {
		return false
	}
	ctxLo, ctxHi := contextWindow(c.r, c.pos, c.pos)
	context := c.r.Slice(ctxLo, ctxHi).String()
	g := text.NewGraphemeIter(context)
	localPos := c.pos - ctxLo
	for g.Next() {
		if g.Pos() >= localPos {
			next := ctxLo + g.Pos() + len(g.Cluster())
			c.Seek(next)
			return true
		}
	}
	c.Seek(c.r.Len())
	return true
}

// PrevGrapheme retreats the cursor to the start of the preceding grapheme
// cluster and reports whether it moved.
func (c *Cursor) PrevGrapheme() bool {
	if c.pos <= 0 {
		return false
	}
	ctxLo, ctxHi := contextWindow(c.r, c.pos, c.pos)
	context := c.r.Slice(ctxLo, ctxHi).String()
	localPos := c.pos - ctxLo

	g := text.NewGraphemeIter(context)
	prevStart := 0
	for g.Next() {
		if g.Pos() >= localPos {
			break
		}
		prevStart = g.Pos()
	}
	c.Seek(ctxLo + prevStart)
	return true
}
