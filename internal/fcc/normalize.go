package fcc

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Window identifies a byte range [Lo,Hi) within a larger buffer that is
// safe to renormalize in isolation: both Lo and Hi fall on a normalization
// boundary, so no byte outside the window can combine with any byte
// inside it.
type Window struct {
	Lo, Hi int
}

// Len reports the window's width in bytes.
func (w Window) Len() int { return w.Hi - w.Lo }

// ExpandWindow grows [lo,hi) within buf outward, one code point at a time,
// until both edges land on a normalization boundary reported by
// golang.org/x/text/unicode/norm. Callers pass the byte range touched by an
// edit (typically the grapheme cluster(s) straddling an insertion or
// deletion point); the returned window is what must be renormalized for
// the edit to preserve the canonical-composition invariant.
func ExpandWindow(buf []byte, lo, hi int) Window {
	for lo > 0 {
		if norm.NFC.FirstBoundary(buf[lo:]) == 0 {
			break
		}
		_, size := utf8.DecodeLastRune(buf[:lo])
		if size == 0 {
			break
		}
		lo -= size
	}
	for hi < len(buf) {
		b := norm.NFC.FirstBoundary(buf[hi:])
		if b == 0 {
			break
		}
		_, size := utf8.DecodeRune(buf[hi:])
		if size == 0 {
			break
		}
		hi += size
	}
	return Window{Lo: lo, Hi: hi}
}

// Normalize renormalizes src to FCC (approximated as NFD-then-NFC, see
// package doc) and appends the result to dst.
func Normalize(dst, src []byte) []byte {
	decomposed := norm.NFD.Append(nil, src...)
	return norm.NFC.Append(dst, decomposed...)
}

// IsNormalized reports whether src is already canonically composed, i.e.
// whether Normalize would leave it unchanged.
func IsNormalized(src []byte) bool {
	return norm.NFC.IsNormal(src)
}
