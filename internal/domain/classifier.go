package domain

import (
	"math"
	"strconv"

	m "covtree.dev/pkg/covtree/internal/model"
)

// NewThresholds validates band thresholds: 0 <= medium <= high <= 100.
func NewThresholds(medium, high float64) (m.Thresholds, error) {
	if err := validatePercent("medium threshold", medium); err != nil {
		return m.Thresholds{}, err
	}

	if err := validatePercent("high threshold", high); err != nil {
		return m.Thresholds{}, err
	}

	if medium > high {
		return m.Thresholds{}, &m.ConfigError{
			Field:  "medium threshold",
			Value:  formatPercent(medium),
			Reason: "must not exceed the high threshold " + formatPercent(high),
		}
	}

	return m.Thresholds{Medium: medium, High: high}, nil
}

// Classify returns the band of any node or record.
func Classify(c m.Coverage, thresholds m.Thresholds) m.Band {
	return thresholds.Classify(c.CoveragePercent())
}

// Summarize flattens a tree into the summary handed to renderers.
// Percentages are rounded for display; bands use full precision.
func Summarize(node *m.Node, thresholds m.Thresholds) m.NodeSummary {
	summary := m.NodeSummary{
		Name:            node.Name(),
		Path:            node.Path(),
		Leaf:            node.IsLeaf(),
		LinesFound:      node.LinesFound(),
		LinesHit:        node.LinesHit(),
		CoveragePercent: m.RoundPercent(node.CoveragePercent()),
		Band:            Classify(node, thresholds),
	}

	for _, child := range node.Children() {
		summary.Children = append(summary.Children, Summarize(child, thresholds))
	}

	return summary
}

func validatePercent(field string, value float64) error {
	if value < 0 || value > 100 || math.IsNaN(value) {
		return &m.ConfigError{Field: field, Value: formatPercent(value), Reason: "must be within [0, 100]"}
	}

	return nil
}

func formatPercent(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
