package rope

import "github.com/dshills/unitext/utf"

// Option configures how a Rope is constructed or validated.
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

// WithMode selects how malformed UTF-8 is handled when constructing a Rope
// from a string: ModeReplacement (the default) substitutes U+FFFD and
// never fails; ModeStrict returns InvalidEncoding.
func WithMode(mode utf.Mode) Option {
	return func(c *config) { c.mode = mode }
}
