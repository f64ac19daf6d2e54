package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"path"
	"regexp"
	"strconv"
	"strings"

	m "covtree.dev/pkg/covtree/internal/model"
)

const (
	sourceFileTag = "SF:"
	lineDataTag   = "DA:"
	endOfRecord   = "end_of_record"
)

// lineDataPattern matches "<line>,<hits>" with an optional trailing checksum field.
var lineDataPattern = regexp.MustCompile(`^(\d+),(\d+)(?:,.*)?$`)

var drivePattern = regexp.MustCompile(`^[A-Za-z]:/`)

// Parser turns LCOV text into a Tracefile.
type Parser struct {
	baseDir m.Path
}

// NewParser creates a Parser resolving relative source paths against baseDir.
func NewParser(baseDir m.Path) *Parser {
	return &Parser{baseDir: m.Path(toSlash(string(baseDir)))}
}

// Parse reads every trace block of text. Any malformed block fails the whole parse.
func (p *Parser) Parse(text string) (*m.Tracefile, error) {
	var (
		files []*m.FileRecord
		block []string
		start int
	)

	for i, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		if len(block) == 0 {
			if trimmed == "" {
				continue
			}

			start = i + 1
		}

		block = append(block, line)

		if trimmed != endOfRecord {
			continue
		}

		file, err := p.parseBlock(block, start)
		if err != nil {
			slog.Error("failed to parse trace block", "line", start, "error", err)
			return nil, err
		}

		files = append(files, file)
		block = nil
	}

	if len(block) > 0 {
		return nil, &m.FormatError{Line: start, Text: strings.TrimSpace(block[0]), Reason: "trace block is not terminated by " + endOfRecord}
	}

	slog.Debug("parsed tracefile", "files", len(files), "base_dir", p.baseDir)

	return m.NewTracefile(files...), nil
}

func (p *Parser) parseBlock(block []string, start int) (*m.FileRecord, error) {
	var (
		source string
		found  bool
		lines  []m.LineRecord
	)

	for offset, line := range block {
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, sourceFileTag):
			if !found {
				source = strings.TrimSpace(strings.TrimPrefix(trimmed, sourceFileTag))
				found = true
			}
		case strings.HasPrefix(trimmed, lineDataTag):
			record, err := parseLineData(strings.TrimPrefix(trimmed, lineDataTag))
			if err != nil {
				return nil, &m.FormatError{Line: start + offset, Text: trimmed, Reason: err.Error()}
			}

			lines = append(lines, record)
		}
	}

	if !found {
		return nil, &m.FormatError{Line: start, Text: strings.TrimSpace(block[0]), Reason: "source file tag not found"}
	}

	if source == "" {
		return nil, &m.FormatError{Line: start, Text: strings.TrimSpace(block[0]), Reason: "empty source file path"}
	}

	return m.NewFileRecord(p.Canonicalize(source), strings.Join(block, "\n"), lines), nil
}

func parseLineData(value string) (m.LineRecord, error) {
	match := lineDataPattern.FindStringSubmatch(value)
	if match == nil {
		return m.LineRecord{}, errors.New("expected <line>,<hits>")
	}

	number, err := strconv.Atoi(match[1])
	if err != nil {
		return m.LineRecord{}, fmt.Errorf("line number: %w", err)
	}

	hits, err := strconv.Atoi(match[2])
	if err != nil {
		return m.LineRecord{}, fmt.Errorf("hits number: %w", err)
	}

	return m.LineRecord{Number: number, Hits: hits}, nil
}

// Canonicalize normalizes separators and resolves a relative source path
// against the parser's base directory.
func (p *Parser) Canonicalize(source string) m.Path {
	source = toSlash(source)

	if !isAbs(source) {
		source = string(p.baseDir) + "/" + source
	}

	return m.Path(path.Clean(source))
}

func toSlash(value string) string {
	return strings.ReplaceAll(value, `\`, "/")
}

func isAbs(value string) bool {
	return strings.HasPrefix(value, "/") || drivePattern.MatchString(value)
}
