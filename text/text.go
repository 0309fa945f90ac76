package text

import "github.com/dshills/unitext/utf"

// Text owns a contiguous, well-formed UTF-8 byte sequence.
type Text struct {
	s string
}

// NewText validates s as UTF-8 per mode and wraps it as an owned Text.
// ModeReplacement (the default zero Mode) never fails; ModeStrict returns
// InvalidEncoding on the first ill-formed byte sequence.
func NewText(s string, mode utf.Mode) (Text, error) {
	clean, err := sanitize(s, mode)
	if err != nil {
		return Text{}, err
	}
	return Text{s: clean}, nil
}

// NewTextUnchecked wraps s as a Text without validating it. Callers must
// already know s is well-formed UTF-8 (e.g. a Go string literal, or output
// already produced by this package).
func NewTextUnchecked(s string) Text { return Text{s: s} }

func (t Text) Len() int        { return len(t.s) }
func (t Text) IsEmpty() bool    { return len(t.s) == 0 }
func (t Text) String() string  { return t.s }
func (t Text) Bytes() []byte   { return []byte(t.s) }

// Slice returns the byte range [lo,hi) as a new Text. Callers are
// responsible for ensuring lo and hi fall on rune boundaries; Slice does
// not renormalize, so callers that cut through a combining sequence get
// back exactly the bytes they asked for.
func (t Text) Slice(lo, hi int) Text { return Text{s: t.s[lo:hi]} }

// View borrows a string without claiming ownership of its storage. The
// distinction from Text is one of documented intent: a View is understood
// by convention to be backed by someone else's buffer that this package
// will not outlive, matching the source interface's text_view. Go's string
// type makes this safe regardless, since strings are immutable and
// garbage-collected.
type View struct {
	s string
}

// NewView wraps s as a View. It does not copy s.
func NewView(s string) View { return View{s: s} }

func (v View) Len() int       { return len(v.s) }
func (v View) IsEmpty() bool  { return len(v.s) == 0 }
func (v View) String() string { return v.s }
func (v View) Bytes() []byte  { return []byte(v.s) }
func (v View) Slice(lo, hi int) View { return View{s: v.s[lo:hi]} }

// ToText returns the view's bytes as an owned Text. Go strings are
// immutable, so the bytes are shared, not copied.
func (v View) ToText() Text { return Text{s: v.s} }

// RepeatedView represents unit repeated count times without materializing
// the repetition. It is the variant a rope leaf holds for patterns like
// "\n"*height or " "*indent, where the unit is short and the repeat count
// can be large.
type RepeatedView struct {
	unit  string
	count int
}

// NewRepeatedView returns a RepeatedView of unit repeated count times.
// count must be >= 0.
func NewRepeatedView(unit string, count int) RepeatedView {
	if count < 0 {
		count = 0
	}
	return RepeatedView{unit: unit, count: count}
}

func (r RepeatedView) Unit() string { return r.unit }
func (r RepeatedView) Count() int   { return r.count }
func (r RepeatedView) Len() int     { return len(r.unit) * r.count }
func (r RepeatedView) IsEmpty() bool { return r.Len() == 0 }

// String materializes the full repeated sequence.
func (r RepeatedView) String() string {
	if r.count == 0 || r.unit == "" {
		return ""
	}
	buf := make([]byte, 0, r.Len())
	for i := 0; i < r.count; i++ {
		buf = append(buf, r.unit...)
	}
	return string(buf)
}

// Bytes materializes the full repeated sequence.
func (r RepeatedView) Bytes() []byte { return []byte(r.String()) }

// ByteAt returns the byte at position i of the materialized sequence
// without materializing it.
func (r RepeatedView) ByteAt(i int) byte {
	return r.unit[i%len(r.unit)]
}

func sanitize(s string, mode utf.Mode) (string, error) {
	b := []byte(s)
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); {
		r, size, err := utf.DecodeRune8(b, i, mode)
		if err != nil {
			return "", err
		}
		out = utf.AppendRune8(out, r)
		i += size
	}
	return string(out), nil
}
