package utf

// DecodeRune16 decodes one code point from a UTF-16 code-unit sequence
// starting at index i. It returns the rune, the number of code units
// consumed (1 or 2), and an error (ModeStrict only). A lone surrogate maps
// to ReplacementChar (size 1) in ModeReplacement.
func DecodeRune16(s []uint16, i int, mode Mode) (rune, int, error) {
	if i >= len(s) {
		return 0, 0, nil
	}

	u := rune(s[i])
	switch {
	case IsHighSurrogate(u):
		if i+1 < len(s) && IsLowSurrogate(rune(s[i+1])) {
			r := CombineSurrogates(u, rune(s[i+1]))
			if mode == ModeStrict && !ValidScalar(r) {
				return 0, 0, InvalidEncoding
			}
			return r, 2, nil
		}
		if mode == ModeStrict {
			return 0, 0, InvalidEncoding
		}
		return ReplacementChar, 1, nil
	case IsLowSurrogate(u):
		// A low surrogate with no preceding high surrogate is itself a
		// maximal ill-formed subpart of length 1.
		if mode == ModeStrict {
			return 0, 0, InvalidEncoding
		}
		return ReplacementChar, 1, nil
	default:
		if mode == ModeStrict && !ValidScalar(u) {
			return 0, 0, InvalidEncoding
		}
		return u, 1, nil
	}
}

// DecodeLastRune16 decodes the code point ending at s[:i], backing up
// across a low surrogate to find its paired high surrogate first.
func DecodeLastRune16(s []uint16, i int, mode Mode) (rune, int, error) {
	if i <= 0 {
		return 0, 0, nil
	}
	if i >= 2 && IsLowSurrogate(rune(s[i-1])) && IsHighSurrogate(rune(s[i-2])) {
		return DecodeRune16(s, i-2, mode)
	}
	return DecodeRune16(s, i-1, mode)
}

// AppendRune16 appends the UTF-16 encoding of r (1 or 2 code units) to dst.
func AppendRune16(dst []uint16, r rune) []uint16 {
	if r <= 0xFFFF {
		return append(dst, uint16(r))
	}
	high, low := SplitSurrogates(r)
	return append(dst, uint16(high), uint16(low))
}

// RuneLen16 returns the number of UTF-16 code units needed to encode r.
func RuneLen16(r rune) int {
	if r <= 0xFFFF {
		return 1
	}
	return 2
}
