package domain

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	m "covtree.dev/pkg/covtree/internal/model"
)

// Merge combines tracefiles from independent runs into one.
//
// Records sharing a canonical path are joined: their line sets are unioned and
// hit counts for the same line are summed. Records whose path occurs once pass
// through untouched. Repeated paths are joined even within a single tracefile.
// Output order follows the first appearance of each path.
func Merge(tracefiles ...*m.Tracefile) *m.Tracefile {
	var order []m.Path

	groups := map[m.Path][]*m.FileRecord{}

	for _, tracefile := range tracefiles {
		for _, file := range tracefile.Files() {
			if _, seen := groups[file.Path()]; !seen {
				order = append(order, file.Path())
			}

			groups[file.Path()] = append(groups[file.Path()], file)
		}
	}

	merged := make([]*m.FileRecord, 0, len(order))
	combined := 0

	for _, path := range order {
		group := groups[path]
		if len(group) == 1 {
			merged = append(merged, group[0])
			continue
		}

		merged = append(merged, mergeRecords(path, group))
		combined++
	}

	slog.Debug("merged tracefiles", "inputs", len(tracefiles), "files", len(merged), "combined", combined)

	return m.NewTracefile(merged...)
}

func mergeRecords(path m.Path, records []*m.FileRecord) *m.FileRecord {
	hits := map[int]int{}

	for _, record := range records {
		for _, line := range record.Lines() {
			hits[line.Number] += line.Hits
		}
	}

	lines := make([]m.LineRecord, 0, len(hits))
	for number, count := range hits {
		lines = append(lines, m.LineRecord{Number: number, Hits: count})
	}

	sort.Slice(lines, func(i, j int) bool { return lines[i].Number < lines[j].Number })

	return m.NewFileRecord(path, renderBlock(path, lines), lines)
}

// renderBlock regenerates the LCOV text of a record.
func renderBlock(path m.Path, lines []m.LineRecord) string {
	var b strings.Builder

	b.WriteString(sourceFileTag)
	b.WriteString(string(path))
	b.WriteString("\n")

	for _, line := range lines {
		fmt.Fprintf(&b, "%s%d,%d\n", lineDataTag, line.Number, line.Hits)
	}

	b.WriteString(endOfRecord)

	return b.String()
}
