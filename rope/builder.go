package rope

import (
	"strings"

	"github.com/dshills/unitext/text"
	"github.com/dshills/unitext/utf"
)

// Builder provides efficient incremental construction of a Rope. It
// buffers writes and defers chunking and tree assembly to Build, the way
// the teacher's builder.go buffers into a strings.Builder before splitting
// into Chunks.
type Builder struct {
	buf strings.Builder
}

// WriteString appends s to the builder.
func (b *Builder) WriteString(s string) (int, error) {
	return b.buf.WriteString(s)
}

// Write implements io.Writer.
func (b *Builder) Write(p []byte) (int, error) {
	return b.buf.Write(p)
}

// WriteByte appends a single byte.
func (b *Builder) WriteByte(c byte) error {
	return b.buf.WriteByte(c)
}

// Len returns the number of bytes written so far.
func (b *Builder) Len() int { return b.buf.Len() }

// Reset clears the builder for reuse.
func (b *Builder) Reset() { b.buf.Reset() }

// Build assembles the accumulated bytes into a balanced Rope and resets
// the builder. It does not validate or normalize its input — callers that
// need that should build a text.Text (via text.NewText or a text.Builder)
// first and pass its String() to WriteString.
func (b *Builder) Build() Rope {
	s := b.buf.String()
	b.Reset()
	if s == "" {
		return Rope{}
	}
	return Rope{root: buildBalanced(leafNodesFromString(s))}
}

// FromLines builds a Rope from lines joined by "\n", with no trailing
// newline after the last line.
func FromLines(lines []string) Rope {
	var b Builder
	for i, line := range lines {
		b.WriteString(line)
		if i < len(lines)-1 {
			b.WriteByte('\n')
		}
	}
	return b.Build()
}

// JoinRopes concatenates ropes with sep between each element.
func JoinRopes(ropes []Rope, sep string) Rope {
	if len(ropes) == 0 {
		return Rope{}
	}
	result := ropes[0]
	for i := 1; i < len(ropes); i++ {
		if sep != "" {
			result = result.Concat(FromView(sep))
		}
		result = result.Concat(ropes[i])
	}
	return result
}

// RepeatString builds a Rope by repeating s n times. The repetition is
// materialized through a Builder; this does not use FromRepeated, since callers reaching
// for RepeatString want an editable, chunked owned rope rather than the
// compact RepeatedView leaf — use FromRepeated directly for that.
func RepeatString(s string, n int) Rope {
	if n <= 0 || s == "" {
		return Rope{}
	}
	var b Builder
	for i := 0; i < n; i++ {
		b.WriteString(s)
	}
	return b.Build()
}

// BuildNormalized is a convenience that validates and FCC-normalizes s
// (via the text package) before building the Rope, for callers assembling
// a Rope from untrusted or unnormalized input in one step.
func BuildNormalized(s string) (Rope, error) {
	t, err := text.NewText(s, utf.ModeReplacement)
	if err != nil {
		return Rope{}, err
	}
	var tb text.Builder
	tb.WriteString(t.String())
	return FromText(tb.Build()), nil
}
