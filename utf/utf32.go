package utf

// DecodeRune32 validates a single UTF-32 code unit as a code point. UTF-32
// is already one code unit per code point, so there is no multi-unit
// malformed subpart to recover from: an invalid unit is itself the maximal
// ill-formed subpart, of length 1.
func DecodeRune32(s []rune, i int, mode Mode) (rune, int, error) {
	if i >= len(s) {
		return 0, 0, nil
	}
	r := s[i]
	if !ValidScalar(r) {
		if mode == ModeStrict {
			return 0, 0, InvalidEncoding
		}
		return ReplacementChar, 1, nil
	}
	return r, 1, nil
}

// DecodeLastRune32 decodes the code point ending at s[:i].
func DecodeLastRune32(s []rune, i int, mode Mode) (rune, int, error) {
	if i <= 0 {
		return 0, 0, nil
	}
	return DecodeRune32(s, i-1, mode)
}

// AppendRune32 appends r to dst unchanged.
func AppendRune32(dst []rune, r rune) []rune {
	return append(dst, r)
}

// RuneLen32 is always 1: every code point occupies exactly one UTF-32 unit.
func RuneLen32(r rune) int {
	return 1
}
