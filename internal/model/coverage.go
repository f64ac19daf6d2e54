package model

import "math"

// Coverage is implemented by anything that carries line totals:
// file records and tree nodes.
type Coverage interface {
	LinesFound() int
	LinesHit() int
	CoveragePercent() float64
}

// CoveragePercent computes hit/found as a percentage.
// A node with no executable lines is considered fully covered.
func CoveragePercent(found, hit int) float64 {
	if found == 0 {
		return 100.0
	}

	return float64(hit) * 100 / float64(found)
}

// RoundPercent rounds a percentage to two decimals. Only used for display.
func RoundPercent(percent float64) float64 {
	return math.Round(percent*100) / 100
}

// Band classifies a coverage percentage against thresholds.
type Band string

const (
	// BandLow is below the medium threshold.
	BandLow Band = "low"
	// BandMedium is at or above the medium threshold and below the high one.
	BandMedium Band = "medium"
	// BandHigh is at or above the high threshold.
	BandHigh Band = "high"
)

// Thresholds holds the lower bounds, in percent, of the medium and high bands.
type Thresholds struct {
	Medium float64
	High   float64
}

// Classify returns the band of percent. Both lower bounds are inclusive.
func (t Thresholds) Classify(percent float64) Band {
	switch {
	case percent >= t.High:
		return BandHigh
	case percent >= t.Medium:
		return BandMedium
	default:
		return BandLow
	}
}

// CheckResult is the outcome of comparing an aggregate percentage to a minimum.
type CheckResult struct {
	Passed          bool
	ObservedPercent float64
	MinimumPercent  float64
}

// Err returns a *BelowMinimumError when the check failed, nil otherwise.
func (r CheckResult) Err() error {
	if r.Passed {
		return nil
	}

	return &BelowMinimumError{Observed: r.ObservedPercent, Minimum: r.MinimumPercent}
}

// NodeSummary is the renderer-facing view of a tree node.
type NodeSummary struct {
	Name            string        `yaml:"name"`
	Path            Path          `yaml:"path"`
	Leaf            bool          `yaml:"leaf"`
	LinesFound      int           `yaml:"lines_found"`
	LinesHit        int           `yaml:"lines_hit"`
	CoveragePercent float64       `yaml:"coverage_percent"`
	Band            Band          `yaml:"band"`
	Children        []NodeSummary `yaml:"children,omitempty"`
}
