package amdb

import (
	"log/slog"
	"runtime"
)

// ParseOptions configures parsing behavior.
type ParseOptions struct {
	// ValidateGeometry checks geometry type tags, path length and coordinate
	// ranges in addition to the structural shape of each geometry.
	// Default is true.
	ValidateGeometry bool

	// SkipInvalidFeatures drops a feature that fails to decode or map instead
	// of failing the whole document. Dropped features are logged and reported
	// by Airport.Skipped. Reference point failures are always fatal.
	SkipInvalidFeatures bool

	// StrictReferencePoint rejects documents carrying more than one aerodrome
	// reference point. When false the first one is used and the rest are
	// ignored with a warning.
	StrictReferencePoint bool

	// Workers bounds the number of feature groups mapped concurrently.
	// If 0, defaults to runtime.NumCPU().
	Workers int

	// Logger receives debug and warning output. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultParseOptions returns default options.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		ValidateGeometry:     true,
		SkipInvalidFeatures:  false,
		StrictReferencePoint: false,
		Workers:              runtime.NumCPU(),
	}
}

func (o ParseOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

func (o ParseOptions) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.NumCPU()
}
