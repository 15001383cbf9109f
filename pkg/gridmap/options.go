package gridmap

import (
	"io"

	"github.com/seisview/gridmap/internal/plan"
)

// Options configures an Engine.
type Options struct {
	// Density thins the displayed grid: only lines whose identifier is
	// divisible by Density are shown. 1 shows every line.
	Density int

	// LabelOffset is the outward distance, in world units, between a
	// boundary-edge label and its edge.
	LabelOffset float64

	// CornerTolerance is the corner-exclusion radius for edge labels.
	// Intersections within this distance of a survey corner get no label.
	CornerTolerance float64

	// ClickTolerance is the hit-testing radius, in world units, for
	// resolving pointer events to a grid line.
	ClickTolerance float64

	// ShowCompass toggles the constant north marker.
	ShowCompass bool

	// CornerLabels enables the secondary vertex-keyed labeling mode when the
	// boundary dataset carries positional identifier arrays.
	CornerLabels bool

	// SnapshotCacheSize bounds the memoized snapshot count. Zero disables
	// memoization; recompute is cheap enough that this is purely an
	// optimization.
	SnapshotCacheSize int

	// ErrorLog is an optional writer for diagnostics about skipped input
	// (degenerate lines, unresolved clicks). Nil disables logging.
	ErrorLog io.Writer
}

// DefaultOptions returns engine defaults: full density, the standard
// placement constants, and a small snapshot cache.
func DefaultOptions() Options {
	return Options{
		Density:           1,
		LabelOffset:       plan.DefaultLabelOffset,
		CornerTolerance:   plan.DefaultCornerTolerance,
		ClickTolerance:    10,
		ShowCompass:       true,
		SnapshotCacheSize: 16,
	}
}

// composeConfig translates engine options into the internal recompute
// configuration.
func (o Options) composeConfig() plan.ComposeConfig {
	cfg := plan.DefaultComposeConfig()
	cfg.Density = o.Density
	cfg.ShowCompass = o.ShowCompass
	cfg.CornerLabels = o.CornerLabels
	if o.LabelOffset > 0 {
		cfg.Labels.LabelOffset = o.LabelOffset
	}
	if o.CornerTolerance > 0 {
		cfg.Labels.CornerTolerance = o.CornerTolerance
	}
	return cfg
}
