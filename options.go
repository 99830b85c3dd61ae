package gg

import (
	"log/slog"

	"github.com/gogpu/gg/internal/pathflatten"
)

// ContextOption configures a Context during creation.
//
// Example:
//
//	dc, err := gg.NewContext(800, 600, gg.WithLogger(slog.Default()))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	surface          *Surface
	logger           *slog.Logger
	flattenTolerance float64
}

func defaultOptions() contextOptions {
	return contextOptions{flattenTolerance: pathflatten.Tolerance}
}

// WithSurface supplies a caller-owned Surface for the Context to draw
// into, instead of allocating a fresh one. Its dimensions must match the
// width and height passed to NewContext.
func WithSurface(s *Surface) ContextOption {
	return func(o *contextOptions) {
		o.surface = s
	}
}

// WithLogger sets a logger scoped to this Context's operations, without
// affecting the package-wide logger SetLogger configures.
func WithLogger(l *slog.Logger) ContextOption {
	return func(o *contextOptions) {
		o.logger = l
	}
}

// WithFlattenTolerance overrides the curve/arc flattening tolerance used
// by this Context. Test-only escape hatch: production code should rely
// on the spec's fixed tolerance (pathflatten.Tolerance) and never call
// this outside tests that specifically probe tolerance sensitivity.
func WithFlattenTolerance(tolerance float64) ContextOption {
	return func(o *contextOptions) {
		o.flattenTolerance = tolerance
	}
}
