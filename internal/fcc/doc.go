// Package fcc provides the normalization oracle consumed across grapheme
// edit boundaries: given a byte window that an edit has touched, it expands
// the window to the nearest enclosing normalization-safe boundaries and
// renormalizes it in isolation.
//
// golang.org/x/text/unicode/norm does not expose a literal FCC ("Fast C or
// D") form, only NFC/NFD/NFKC/NFKD. This package approximates FCC as
// decompose-with-NFD followed by canonical recomposition with NFC, which
// agrees with true FCC except for a narrow reordering case across
// already-non-canonically-ordered combining mark sequences — a case that
// does not arise from freshly typed or freshly pasted text. See DESIGN.md
// for the full justification.
package fcc
