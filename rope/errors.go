package rope

import "github.com/dshills/unitext/text"

// InvalidEncoding is returned when constructing a Rope from bytes that are
// not well-formed UTF-8 under ModeStrict.
var InvalidEncoding = text.InvalidEncoding

// PreconditionViolation is returned when an operation is given a byte
// offset or range that does not fall on a grapheme-cluster boundary, or
// that falls outside the rope's length.
var PreconditionViolation = text.PreconditionViolation

// AllocationFailure models the source interface's out-of-memory signal.
// Nothing in this package can return it: see text.AllocationFailure, whose
// doc comment this mirrors.
var AllocationFailure = text.AllocationFailure
