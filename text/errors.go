package text

import (
	"errors"

	"github.com/dshills/unitext/utf"
)

// InvalidEncoding is returned when constructing a Text or View from bytes
// that are not well-formed UTF-8. It is the same sentinel utf's ModeStrict
// decoders return, so callers can errors.Is against a single value
// regardless of which layer rejected the input.
var InvalidEncoding = utf.InvalidEncoding

// PreconditionViolation is returned when an operation is given a byte
// offset that does not fall on a grapheme-cluster boundary, or that falls
// outside the text's length.
var PreconditionViolation = errors.New("text: precondition violation")

// AllocationFailure models the source interface's out-of-memory signal.
// Go's runtime panics rather than returning an error from a failed make or
// append, so nothing in this package can actually produce this value; it
// is declared for interface completeness and documented in DESIGN.md, not
// wired to any return path.
var AllocationFailure = errors.New("text: allocation failure")
