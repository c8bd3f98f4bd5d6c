package testutil

import (
	"testing"

	"github.com/rs/zerolog"
)

// NewTestLogger returns a zerolog logger that forwards log events to t.Log,
// so engine traces show up interleaved with test output.
func NewTestLogger(t *testing.T) zerolog.Logger {
	return zerolog.New(zerolog.NewTestWriter(t))
}
