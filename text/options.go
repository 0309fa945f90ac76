package text

import "github.com/dshills/unitext/utf"

// Option configures the behavior of the validating constructors.
type Option func(*config)

type config struct {
	mode utf.Mode
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithMode selects how malformed UTF-8 is handled: ModeReplacement
// (the default) substitutes U+FFFD and never fails; ModeStrict returns
// InvalidEncoding.
func WithMode(mode utf.Mode) Option {
	return func(c *config) { c.mode = mode }
}

// FromString validates s per opts and wraps it as an owned Text.
func FromString(s string, opts ...Option) (Text, error) {
	c := newConfig(opts)
	return NewText(s, c.mode)
}
