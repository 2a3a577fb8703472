package cdt

import "github.com/rs/zerolog"

// BuildOptions configures a Triangulate call.
type BuildOptions struct {
	Logger        zerolog.Logger
	MergeVertices bool
	MergeDistance float64
}

// Option configures a BuildOptions during construction, in the style of
// mesh.Option in the teacher repo.
type Option func(*BuildOptions)

// WithLogger sets the structured logger used for non-fatal diagnostics
// (a warning per zero-length hole edge) and a debug summary of the built
// triangulation. Already-present constraint edges are skipped without a log
// event. The default is a disabled logger, so the engine stays silent unless
// a caller opts in.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *BuildOptions) {
		o.Logger = logger
	}
}

// WithMergeVertices enables a pre-pass that snaps input points within
// MergeDistance of each other to a single representative before
// triangulation, so noisy real-world input doesn't produce sliver
// triangles at coordinates that were meant to coincide.
func WithMergeVertices(enable bool) Option {
	return func(o *BuildOptions) {
		o.MergeVertices = enable
	}
}

// WithMergeDistance sets the radius used by the vertex-merging pre-pass.
// It has no effect unless WithMergeVertices(true) is also set.
func WithMergeDistance(distance float64) Option {
	return func(o *BuildOptions) {
		o.MergeDistance = distance
	}
}

func defaultOptions() BuildOptions {
	return BuildOptions{Logger: zerolog.Nop()}
}
