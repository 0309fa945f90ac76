package utf

// transcoder is the shared bidirectional cursor behind the six exported
// Iter* adapters. It decodes one source code point at a time through
// decodeFwd/decodeBwd, re-encodes it into the destination unit type with
// encode, and caches the resulting units so that Next/Prev can step through
// a multi-unit code point (e.g. a 4-byte UTF-8 sequence, or a UTF-16
// surrogate pair) without re-decoding on every step.
type transcoder[U any] struct {
	mode      Mode
	srcLen    int
	decodeFwd func(i int) (rune, int, error)
	decodeBwd func(i int) (rune, int, error)
	encode    func(dst []U, r rune) []U

	pos       int // source index of the start of the cached code point
	size      int // source units spanned by the cached code point
	units     []U
	idx       int
	err       error
	exhausted bool // true past the last unit of the last code point, or on an empty source
}

func newTranscoder[U any](srcLen int, decodeFwd, decodeBwd func(int) (rune, int, error), encode func([]U, rune) []U, mode Mode) *transcoder[U] {
	t := &transcoder[U]{
		mode:      mode,
		srcLen:    srcLen,
		decodeFwd: decodeFwd,
		decodeBwd: decodeBwd,
		encode:    encode,
		exhausted: srcLen == 0,
	}
	if srcLen > 0 {
		t.fill(0)
	}
	return t
}

func (t *transcoder[U]) fill(pos int) {
	r, size, err := t.decodeFwd(pos)
	t.pos = pos
	t.size = size
	t.err = err
	t.units = t.units[:0]
	if size > 0 {
		t.units = t.encode(t.units, r)
	}
	t.idx = 0
	t.exhausted = false
}

// AtStart reports whether the cursor is positioned at the first destination
// unit of the first source code point.
func (t *transcoder[U]) AtStart() bool {
	return t.pos == 0 && t.idx == 0 && !t.exhausted
}

// AtEnd reports whether the cursor has no more destination units: either
// the source was empty, or Next has stepped past the last unit of the last
// code point.
func (t *transcoder[U]) AtEnd() bool {
	return t.exhausted
}

// Value returns the destination unit at the cursor and whether one exists.
func (t *transcoder[U]) Value() (U, bool) {
	var zero U
	if t.idx < 0 || t.idx >= len(t.units) {
		return zero, false
	}
	return t.units[t.idx], true
}

// Next advances to the following destination unit, decoding the next source
// code point when the cached unit run is exhausted. It returns false and
// leaves the cursor unmoved when already at the end.
func (t *transcoder[U]) Next() bool {
	if t.idx+1 < len(t.units) {
		t.idx++
		return true
	}
	next := t.pos + t.size
	if next >= t.srcLen {
		t.exhausted = true
		return false
	}
	t.fill(next)
	return len(t.units) > 0
}

// Prev retreats to the preceding destination unit, decoding the previous
// source code point when the cursor is at the start of the cached run.
func (t *transcoder[U]) Prev() bool {
	if t.idx > 0 {
		t.idx--
		t.exhausted = false
		return true
	}
	if t.pos <= 0 {
		return false
	}
	r, size, err := t.decodeBwd(t.pos)
	if size == 0 {
		return false
	}
	t.pos -= size
	t.size = size
	t.err = err
	t.units = t.units[:0]
	t.units = t.encode(t.units, r)
	t.idx = len(t.units) - 1
	t.exhausted = false
	return true
}

// Pos returns the source index of the start of the code point the cursor is
// currently inside.
func (t *transcoder[U]) Pos() int {
	return t.pos
}

// Err returns the error from the most recent decode (ModeStrict only).
func (t *transcoder[U]) Err() error {
	return t.err
}

// Equal reports whether two cursors over the same source denote the same
// logical position. Two cursors that both sit past the final code point
// compare equal regardless of how they got there (stepped off the end vs.
// constructed past an empty source), matching the "end" equivalence the
// source library's iterator adapters provide.
func (t *transcoder[U]) Equal(o *transcoder[U]) bool {
	if t.AtEnd() && o.AtEnd() {
		return true
	}
	return t.pos == o.pos && t.idx == o.idx
}

// Iter8To16 is a bidirectional cursor that decodes UTF-8 and presents the
// code points as UTF-16 code units.
type Iter8To16 struct{ t *transcoder[uint16] }

// NewIter8To16 constructs an iterator over src starting at its first code
// point.
func NewIter8To16(src []byte, mode Mode) *Iter8To16 {
	return &Iter8To16{t: newTranscoder(len(src),
		func(i int) (rune, int, error) { return DecodeRune8(src, i, mode) },
		func(i int) (rune, int, error) { return DecodeLastRune8(src, i, mode) },
		AppendRune16, mode)}
}

func (it *Iter8To16) Value() (uint16, bool) { return it.t.Value() }
func (it *Iter8To16) Next() bool            { return it.t.Next() }
func (it *Iter8To16) Prev() bool            { return it.t.Prev() }
func (it *Iter8To16) AtStart() bool         { return it.t.AtStart() }
func (it *Iter8To16) AtEnd() bool           { return it.t.AtEnd() }
func (it *Iter8To16) Pos() int              { return it.t.Pos() }
func (it *Iter8To16) Err() error            { return it.t.Err() }
func (it *Iter8To16) Equal(o *Iter8To16) bool { return it.t.Equal(o.t) }

// Iter8To32 is a bidirectional cursor that decodes UTF-8 and presents the
// code points as UTF-32 (rune) units.
type Iter8To32 struct{ t *transcoder[rune] }

func NewIter8To32(src []byte, mode Mode) *Iter8To32 {
	return &Iter8To32{t: newTranscoder(len(src),
		func(i int) (rune, int, error) { return DecodeRune8(src, i, mode) },
		func(i int) (rune, int, error) { return DecodeLastRune8(src, i, mode) },
		AppendRune32, mode)}
}

func (it *Iter8To32) Value() (rune, bool) { return it.t.Value() }
func (it *Iter8To32) Next() bool          { return it.t.Next() }
func (it *Iter8To32) Prev() bool          { return it.t.Prev() }
func (it *Iter8To32) AtStart() bool       { return it.t.AtStart() }
func (it *Iter8To32) AtEnd() bool         { return it.t.AtEnd() }
func (it *Iter8To32) Pos() int            { return it.t.Pos() }
func (it *Iter8To32) Err() error          { return it.t.Err() }
func (it *Iter8To32) Equal(o *Iter8To32) bool { return it.t.Equal(o.t) }

// Iter16To8 is a bidirectional cursor that decodes UTF-16 and presents the
// code points as UTF-8 bytes.
type Iter16To8 struct{ t *transcoder[byte] }

func NewIter16To8(src []uint16, mode Mode) *Iter16To8 {
	return &Iter16To8{t: newTranscoder(len(src),
		func(i int) (rune, int, error) { return DecodeRune16(src, i, mode) },
		func(i int) (rune, int, error) { return DecodeLastRune16(src, i, mode) },
		AppendRune8, mode)}
}

func (it *Iter16To8) Value() (byte, bool) { return it.t.Value() }
func (it *Iter16To8) Next() bool          { return it.t.Next() }
func (it *Iter16To8) Prev() bool          { return it.t.Prev() }
func (it *Iter16To8) AtStart() bool       { return it.t.AtStart() }
func (it *Iter16To8) AtEnd() bool         { return it.t.AtEnd() }
func (it *Iter16To8) Pos() int            { return it.t.Pos() }
func (it *Iter16To8) Err() error          { return it.t.Err() }
func (it *Iter16To8) Equal(o *Iter16To8) bool { return it.t.Equal(o.t) }

// Iter16To32 is a bidirectional cursor that decodes UTF-16 and presents the
// code points as UTF-32 (rune) units.
type Iter16To32 struct{ t *transcoder[rune] }

func NewIter16To32(src []uint16, mode Mode) *Iter16To32 {
	return &Iter16To32{t: newTranscoder(len(src),
		func(i int) (rune, int, error) { return DecodeRune16(src, i, mode) },
		func(i int) (rune, int, error) { return DecodeLastRune16(src, i, mode) },
		AppendRune32, mode)}
}

func (it *Iter16To32) Value() (rune, bool) { return it.t.Value() }
func (it *Iter16To32) Next() bool          { return it.t.Next() }
func (it *Iter16To32) Prev() bool          { return it.t.Prev() }
func (it *Iter16To32) AtStart() bool       { return it.t.AtStart() }
func (it *Iter16To32) AtEnd() bool         { return it.t.AtEnd() }
func (it *Iter16To32) Pos() int            { return it.t.Pos() }
func (it *Iter16To32) Err() error          { return it.t.Err() }
func (it *Iter16To32) Equal(o *Iter16To32) bool { return it.t.Equal(o.t) }

// Iter32To8 is a bidirectional cursor that validates UTF-32 and presents
// the code points as UTF-8 bytes.
type Iter32To8 struct{ t *transcoder[byte] }

func NewIter32To8(src []rune, mode Mode) *Iter32To8 {
	return &Iter32To8{t: newTranscoder(len(src),
		func(i int) (rune, int, error) { return DecodeRune32(src, i, mode) },
		func(i int) (rune, int, error) { return DecodeLastRune32(src, i, mode) },
		AppendRune8, mode)}
}

func (it *Iter32To8) Value() (byte, bool) { return it.t.Value() }
func (it *Iter32To8) Next() bool          { return it.t.Next() }
func (it *Iter32To8) Prev() bool          { return it.t.Prev() }
func (it *Iter32To8) AtStart() bool       { return it.t.AtStart() }
func (it *Iter32To8) AtEnd() bool         { return it.t.AtEnd() }
func (it *Iter32To8) Pos() int            { return it.t.Pos() }
func (it *Iter32To8) Err() error          { return it.t.Err() }
func (it *Iter32To8) Equal(o *Iter32To8) bool { return it.t.Equal(o.t) }

// Iter32To16 is a bidirectional cursor that validates UTF-32 and presents
// the code points as UTF-16 code units.
type Iter32To16 struct{ t *transcoder[uint16] }

func NewIter32To16(src []rune, mode Mode) *Iter32To16 {
	return &Iter32To16{t: newTranscoder(len(src),
		func(i int) (rune, int, error) { return DecodeRune32(src, i, mode) },
		func(i int) (rune, int, error) { return DecodeLastRune32(src, i, mode) },
		AppendRune16, mode)}
}

func (it *Iter32To16) Value() (uint16, bool) { return it.t.Value() }
func (it *Iter32To16) Next() bool            { return it.t.Next() }
func (it *Iter32To16) Prev() bool            { return it.t.Prev() }
func (it *Iter32To16) AtStart() bool         { return it.t.AtStart() }
func (it *Iter32To16) AtEnd() bool           { return it.t.AtEnd() }
func (it *Iter32To16) Pos() int              { return it.t.Pos() }
func (it *Iter32To16) Err() error            { return it.t.Err() }
func (it *Iter32To16) Equal(o *Iter32To16) bool { return it.t.Equal(o.t) }
