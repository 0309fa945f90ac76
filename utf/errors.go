package utf

import "errors"

// Mode selects how a decoder reacts to ill-formed input.
type Mode uint8

const (
	// ModeReplacement substitutes U+FFFD for each maximal ill-formed
	// subpart and never fails. This is the default mode.
	ModeReplacement Mode = iota

	// ModeStrict returns InvalidEncoding on any ill-formed sequence, lone
	// surrogate, reserved noncharacter, or value above U+10FFFF.
	ModeStrict
)

// ReplacementChar is substituted for malformed input in ModeReplacement.
const ReplacementChar rune = 0xFFFD

// InvalidEncoding is returned by ModeStrict decoders when the input is not
// well-formed in the claimed encoding, or decodes to a surrogate, a
// reserved noncharacter, or a value above U+10FFFF.
var InvalidEncoding = errors.New("utf: invalid encoding")
