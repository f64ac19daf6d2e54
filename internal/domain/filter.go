package domain

import (
	"log/slog"
	"regexp"

	m "covtree.dev/pkg/covtree/internal/model"
)

// CompilePatterns compiles exclusion regular expressions.
func CompilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, &m.ConfigError{Field: "exclude pattern", Value: pattern, Reason: err.Error()}
		}

		compiled = append(compiled, re)
	}

	return compiled, nil
}

// Filter returns a tracefile without the records whose canonical path matches
// any of patterns. Retained records keep their block text byte for byte.
func Filter(t *m.Tracefile, patterns []*regexp.Regexp) *m.Tracefile {
	if len(patterns) == 0 {
		return t
	}

	kept := make([]*m.FileRecord, 0, t.Len())

	for _, file := range t.Files() {
		if matchesAny(string(file.Path()), patterns) {
			slog.Debug("excluding record", "path", file.Path())
			continue
		}

		kept = append(kept, file)
	}

	return m.NewTracefile(kept...)
}

func matchesAny(value string, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		if re.MatchString(value) {
			return true
		}
	}

	return false
}
