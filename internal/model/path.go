// Package model defines the coverage data structures shared by covtree.
package model

import "strings"

// Path represents a file system path.
//
// Canonical paths always use forward slashes, whatever the host platform.
type Path string

// Segments splits a canonical path into its non-empty components.
func (p Path) Segments() []string {
	parts := strings.Split(string(p), "/")
	segments := make([]string, 0, len(parts))

	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}

	return segments
}
