package model

import "fmt"

// FormatError reports malformed tracefile input. Line is the 1-based input line,
// or 0 when the problem concerns a whole block.
type FormatError struct {
	Line   int
	Text   string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Line == 0 {
		return "invalid tracefile: " + e.Reason
	}

	return fmt.Sprintf("invalid tracefile: line %d %q: %s", e.Line, e.Text, e.Reason)
}

// ConfigError reports an out-of-range or inconsistent parameter.
type ConfigError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %s: %s", e.Field, e.Value, e.Reason)
}

// PathConflictError reports two entries resolving to the same canonical path.
type PathConflictError struct {
	Path Path
}

func (e *PathConflictError) Error() string {
	return fmt.Sprintf("path conflict: %s is declared more than once", e.Path)
}

// MissingElementError reports that an expected path does not exist.
type MissingElementError struct {
	Path Path
}

func (e *MissingElementError) Error() string {
	return fmt.Sprintf("%s does not exist", e.Path)
}

// BelowMinimumError reports a failed coverage check.
type BelowMinimumError struct {
	Observed float64
	Minimum  float64
}

func (e *BelowMinimumError) Error() string {
	return fmt.Sprintf("coverage %.2f%% is below the minimum %.2f%%", RoundPercent(e.Observed), e.Minimum)
}
