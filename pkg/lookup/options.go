package lookup

import (
	"github.com/rs/zerolog"

	"github.com/reef-lang/reef/pkg/source"
)

// Option configures a lookup.
type Option func(*options)

type options struct {
	logger zerolog.Logger
	pos    source.Pos
}

func newOptions(opts []Option) *options {
	o := &options{
		logger: zerolog.Nop(),
		pos:    source.NoPos,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger used to record invariant violations and debug
// traces.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithPosition makes an unqualified lookup position-sensitive: local bindings
// are only visible at statements whose source range contains pos.
func WithPosition(pos source.Pos) Option {
	return func(o *options) {
		o.pos = pos
	}
}
