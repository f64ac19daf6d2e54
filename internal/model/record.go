package model

import (
	"sort"
	"strings"
)

// LineRecord holds the execution count of a single executable line.
type LineRecord struct {
	Number int
	Hits   int
}

// HasBeenHit reports whether the line was executed at least once.
func (l LineRecord) HasBeenHit() bool {
	return l.Hits > 0
}

// FileRecord is one trace block: a source path plus its line records.
// It is immutable once constructed.
type FileRecord struct {
	path  Path
	raw   string
	lines []LineRecord
	found int
	hit   int
}

// NewFileRecord builds a FileRecord from a canonical path, the block text it was
// read from and its line records in parse order.
//
// When a line number appears more than once the last hit count wins and the
// position of the first occurrence is kept.
func NewFileRecord(path Path, raw string, lines []LineRecord) *FileRecord {
	index := make(map[int]int, len(lines))
	unique := make([]LineRecord, 0, len(lines))

	for _, line := range lines {
		if i, ok := index[line.Number]; ok {
			unique[i] = line
			continue
		}

		index[line.Number] = len(unique)
		unique = append(unique, line)
	}

	record := &FileRecord{path: path, raw: raw, lines: unique}

	for _, line := range unique {
		record.found++

		if line.HasBeenHit() {
			record.hit++
		}
	}

	return record
}

// Path returns the canonical source path, the record's identity.
func (f *FileRecord) Path() Path {
	return f.path
}

// Raw returns the block text the record was built from.
func (f *FileRecord) Raw() string {
	return f.raw
}

// Lines returns a copy of the line records in storage order.
func (f *FileRecord) Lines() []LineRecord {
	lines := make([]LineRecord, len(f.lines))
	copy(lines, f.lines)

	return lines
}

// LinesFound returns the number of executable lines.
func (f *FileRecord) LinesFound() int {
	return f.found
}

// LinesHit returns the number of executed lines.
func (f *FileRecord) LinesHit() int {
	return f.hit
}

// CoveragePercent returns the unrounded line coverage of the record.
func (f *FileRecord) CoveragePercent() float64 {
	return CoveragePercent(f.found, f.hit)
}

// Equal reports whether both records share a path and the same set of lines.
// Line order is not significant.
func (f *FileRecord) Equal(other *FileRecord) bool {
	if f == nil || other == nil {
		return f == other
	}

	if f.path != other.path || len(f.lines) != len(other.lines) {
		return false
	}

	hits := make(map[int]int, len(f.lines))
	for _, line := range f.lines {
		hits[line.Number] = line.Hits
	}

	for _, line := range other.lines {
		h, ok := hits[line.Number]
		if !ok || h != line.Hits {
			return false
		}
	}

	return true
}

// Tracefile is an ordered, immutable sequence of file records.
type Tracefile struct {
	files []*FileRecord
}

// NewTracefile creates a Tracefile holding the given records in order.
func NewTracefile(files ...*FileRecord) *Tracefile {
	owned := make([]*FileRecord, len(files))
	copy(owned, files)

	return &Tracefile{files: owned}
}

// Files returns the records in order.
func (t *Tracefile) Files() []*FileRecord {
	files := make([]*FileRecord, len(t.files))
	copy(files, t.files)

	return files
}

// Len returns the number of records.
func (t *Tracefile) Len() int {
	return len(t.files)
}

// Paths returns the sorted canonical paths of all records.
func (t *Tracefile) Paths() []Path {
	paths := make([]Path, 0, len(t.files))
	for _, file := range t.files {
		paths = append(paths, file.path)
	}

	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	return paths
}

// String renders the tracefile in LCOV form, one block per record.
func (t *Tracefile) String() string {
	var b strings.Builder

	for _, file := range t.files {
		b.WriteString(file.raw)

		if !strings.HasSuffix(file.raw, "\n") {
			b.WriteString("\n")
		}
	}

	return b.String()
}
