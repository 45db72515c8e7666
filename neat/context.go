package neat

import (
	"context"

	"github.com/pkg/errors"
)

// ErrOptionsNotFound is available for callers that want an error (rather
// than FromContext's ok-bool) when no Options value was ever attached.
var ErrOptionsNotFound = errors.New("NEAT options not found in context")

// key is unexported so it cannot collide with keys defined in other packages.
type key int

var optionsKey key

// NewContext returns a copy of ctx carrying opts, retrievable with FromContext.
func NewContext(ctx context.Context, opts *Options) context.Context {
	return context.WithValue(ctx, optionsKey, opts)
}

// FromContext returns the Options value stored in ctx, if any.
func FromContext(ctx context.Context) (*Options, bool) {
	opts, ok := ctx.Value(optionsKey).(*Options)
	return opts, ok
}
