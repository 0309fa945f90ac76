package text

import "github.com/rivo/uniseg"

// GraphemeIter walks a string one extended grapheme cluster at a time,
// following Unicode's default grapheme cluster segmentation
// (github.com/rivo/uniseg implements UAX #29, which this package consumes
// as an external oracle rather than implementing itself).
type GraphemeIter struct {
	rest    string
	cluster string
	pos     int
	state   int
	started bool
}

// NewGraphemeIter returns an iterator positioned before the first cluster
// of s.
func NewGraphemeIter(s string) *GraphemeIter {
	return &GraphemeIter{rest: s, state: -1}
}

// Next advances to the next grapheme cluster and reports whether one was
// found.
func (g *GraphemeIter) Next() bool {
	if g.rest == "" {
		if g.started {
			g.pos += len(g.cluster)
		}
		g.cluster = ""
		return false
	}
	if g.started {
		g.pos += len(g.cluster)
	}
	cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(g.rest, g.state)
	g.cluster = cluster
	g.rest = rest
	g.state = newState
	g.started = true
	return cluster != ""
}

// Cluster returns the current grapheme cluster.
func (g *GraphemeIter) Cluster() string { return g.cluster }

// Pos returns the byte offset of the current cluster within the original
// string.
func (g *GraphemeIter) Pos() int { return g.pos }

// CountGraphemes returns the number of extended grapheme clusters in s.
func CountGraphemes(s string) int {
	n := 0
	g := NewGraphemeIter(s)
	for g.Next() {
		n++
	}
	return n
}

// IsGraphemeBoundary reports whether byte offset at falls on a grapheme
// cluster boundary within s (0 and len(s) always qualify).
func IsGraphemeBoundary(s string, at int) bool {
	if at == 0 || at == len(s) {
		return true
	}
	if at < 0 || at > len(s) {
		return false
	}
	g := NewGraphemeIter(s)
	for g.Next() {
		if g.Pos() == at {
			return true
		}
		if g.Pos() > at {
			return false
		}
	}
	return false
}

// GraphemeOffsets returns the byte offset of each grapheme cluster
// boundary in s, including 0 and len(s).
func GraphemeOffsets(s string) []int {
	offsets := []int{0}
	g := NewGraphemeIter(s)
	for g.Next() {
		offsets = append(offsets, g.Pos()+len(g.Cluster()))
	}
	return offsets
}
