package text

import (
	"strings"

	"github.com/dshills/unitext/internal/fcc"
)

// Builder provides efficient incremental construction of a Text. It
// buffers writes and enforces the FCC canonical-composition invariant once,
// on Build, rather than after every write.
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

// WriteRune appends a single rune, UTF-8 encoded.
func (b *Builder) WriteRune(r rune) (int, error) {
	return b.buf.WriteRune(r)
}

// Len returns the number of bytes written so far, before normalization.
func (b *Builder) Len() int { return b.buf.Len() }

// Reset clears the builder for reuse.
func (b *Builder) Reset() { b.buf.Reset() }

// Build renormalizes the accumulated bytes to FCC and returns the result
// as an owned Text. The builder is reset.
func (b *Builder) Build() Text {
	s := b.buf.String()
	b.Reset()
	if fcc.IsNormalized([]byte(s)) {
		return Text{s: s}
	}
	return Text{s: string(fcc.Normalize(nil, []byte(s)))}
}

// Join concatenates ts with sep between each element and renormalizes the
// result once.
func Join(ts []Text, sep string) Text {
	if len(ts) == 0 {
		return Text{}
	}
	strs := make([]string, len(ts))
	for i, t := range ts {
		strs[i] = t.s
	}
	var b Builder
	b.WriteString(strings.Join(strs, sep))
	return b.Build()
}

// Repeat returns unit repeated n times as a renormalized Text. Prefer
// RepeatedView when the repetition is large and should not be
// materialized eagerly.
func Repeat(unit string, n int) Text {
	if n <= 0 || unit == "" {
		return Text{}
	}
	var b Builder
	b.WriteString(strings.Repeat(unit, n))
	return b.Build()
}
