package text

import "github.com/dshills/unitext/internal/fcc"

// Insert splices insertion into base at byte offset at, which must fall on
// a grapheme cluster boundary, then renormalizes the narrowest FCC-safe
// window around the splice point so that any combining sequence straddling
// the edit ends up in canonical composition.
func Insert(base Text, at int, insertion string) (Text, error) {
	if !IsGraphemeBoundary(base.s, at) {
		return Text{}, PreconditionViolation
	}

	spliced := base.s[:at] + insertion + base.s[at:]
	return Text{s: renormalizeAround(spliced, at, at+len(insertion))}, nil
}

// Erase removes the byte range [lo,hi) from base, which must fall on
// grapheme cluster boundaries, then renormalizes the FCC-safe window left
// behind by the join.
func Erase(base Text, lo, hi int) (Text, error) {
	if lo < 0 || hi > len(base.s) || lo > hi {
		return Text{}, PreconditionViolation
	}
	if !IsGraphemeBoundary(base.s, lo) || !IsGraphemeBoundary(base.s, hi) {
		return Text{}, PreconditionViolation
	}

	spliced := base.s[:lo] + base.s[hi:]
	return Text{s: renormalizeAround(spliced, lo, lo)}, nil
}

// Replace erases [lo,hi) from base and inserts replacement in its place,
// renormalizing the FCC-safe window spanning both edges of the edit.
func Replace(base Text, lo, hi int, replacement string) (Text, error) {
	if lo < 0 || hi > len(base.s) || lo > hi {
		return Text{}, PreconditionViolation
	}
	if !IsGraphemeBoundary(base.s, lo) || !IsGraphemeBoundary(base.s, hi) {
		return Text{}, PreconditionViolation
	}

	spliced := base.s[:lo] + replacement + base.s[hi:]
	return Text{s: renormalizeAround(spliced, lo, lo+len(replacement))}, nil
}

// renormalizeAround expands [lo,hi) in spliced to the nearest enclosing
// normalization boundaries and renormalizes just that window in place,
// leaving the rest of spliced untouched.
func renormalizeAround(spliced string, lo, hi int) string {
	buf := []byte(spliced)
	w := fcc.ExpandWindow(buf, lo, hi)
	if w.Len() == 0 {
		return spliced
	}
	if fcc.IsNormalized(buf[w.Lo:w.Hi]) {
		return spliced
	}

	normalized := fcc.Normalize(nil, buf[w.Lo:w.Hi])
	out := make([]byte, 0, len(buf)-w.Len()+len(normalized))
	out = append(out, buf[:w.Lo]...)
	out = append(out, normalized...)
	out = append(out, buf[w.Hi:]...)
	return string(out)
}
