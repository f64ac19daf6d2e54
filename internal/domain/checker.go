package domain

import (
	"log/slog"

	m "covtree.dev/pkg/covtree/internal/model"
)

// Check compares the coverage of c against minimum, inclusively.
// The returned error is only set for an invalid minimum; a failed check is
// reported through the result (see CheckResult.Err).
func Check(c m.Coverage, minimum float64) (m.CheckResult, error) {
	if err := validateMinimum(minimum); err != nil {
		return m.CheckResult{}, err
	}

	return evaluate(c, minimum), nil
}

func validateMinimum(minimum float64) error {
	return validatePercent("minimum coverage", minimum)
}

// evaluate expects a validated minimum.
func evaluate(c m.Coverage, minimum float64) m.CheckResult {
	observed := c.CoveragePercent()
	result := m.CheckResult{
		Passed:          observed >= minimum,
		ObservedPercent: observed,
		MinimumPercent:  minimum,
	}

	slog.Info("coverage check", "observed", observed, "minimum", minimum, "passed", result.Passed)

	return result
}
