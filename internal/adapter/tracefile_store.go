// Package adapter contains the infrastructure adapters of the covtree CLI.
package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	m "covtree.dev/pkg/covtree/internal/model"
)

// StdioPath designates standard input (for reads) or standard output (for writes).
const StdioPath m.Path = "-"

// TracefileStore abstracts the filesystem access the workflow relies on,
// so coverage logic can be tested without touching the disk.
type TracefileStore interface {
	// ReadTracefile loads the raw text of one tracefile. StdioPath reads stdin.
	ReadTracefile(ctx context.Context, path m.Path) (string, error)

	// ReadTracefiles loads several tracefiles concurrently. Results keep the
	// order of paths.
	ReadTracefiles(ctx context.Context, paths []m.Path) ([]string, error)

	// WriteTracefile stores LCOV text, creating parent directories as needed.
	WriteTracefile(path m.Path, content string) error

	// WriteSummary stores a coverage summary as YAML.
	WriteSummary(path m.Path, summary m.NodeSummary) error

	// Remove deletes a file or directory tree. A missing path yields a
	// *model.MissingElementError unless ignoreMissing is set.
	Remove(path m.Path, ignoreMissing bool) error

	// WorkingDir returns the directory relative source paths resolve against.
	WorkingDir() (m.Path, error)
}

// LocalTracefileStore is the os-backed TracefileStore.
type LocalTracefileStore struct {
	stdin    io.Reader
	parallel int
}

// NewLocalTracefileStore creates a store reading stdin from the given reader
// and loading at most parallel files at once (unbounded when parallel <= 0).
func NewLocalTracefileStore(stdin io.Reader, parallel int) *LocalTracefileStore {
	return &LocalTracefileStore{stdin: stdin, parallel: parallel}
}

// ReadTracefile loads one tracefile from disk or stdin.
func (s *LocalTracefileStore) ReadTracefile(ctx context.Context, path m.Path) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if path == StdioPath {
		content, err := io.ReadAll(s.stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}

		return string(content), nil
	}

	// #nosec G304 - tracefile paths are supplied by the user on purpose
	content, err := os.ReadFile(string(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &m.MissingElementError{Path: path}
		}

		return "", fmt.Errorf("read %s: %w", path, err)
	}

	slog.Debug("read tracefile", "path", path, "bytes", len(content))

	return string(content), nil
}

// ReadTracefiles loads every path concurrently and fails on the first error.
func (s *LocalTracefileStore) ReadTracefiles(ctx context.Context, paths []m.Path) ([]string, error) {
	contents := make([]string, len(paths))

	group, groupCtx := errgroup.WithContext(ctx)
	if s.parallel > 0 {
		group.SetLimit(s.parallel)
	}

	for i, path := range paths {
		group.Go(func() error {
			content, err := s.ReadTracefile(groupCtx, path)
			if err != nil {
				return err
			}

			contents[i] = content

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		slog.Error("failed to read tracefiles", "count", len(paths), "error", err)
		return nil, err
	}

	return contents, nil
}

// WriteTracefile writes LCOV text to path.
func (s *LocalTracefileStore) WriteTracefile(path m.Path, content string) error {
	return writeFile(path, []byte(content))
}

// WriteSummary encodes summary as YAML into path.
func (s *LocalTracefileStore) WriteSummary(path m.Path, summary m.NodeSummary) error {
	var buf bytes.Buffer

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(summary); err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encode summary: %w", err)
	}

	return writeFile(path, buf.Bytes())
}

// Remove deletes path and everything below it.
func (s *LocalTracefileStore) Remove(path m.Path, ignoreMissing bool) error {
	if _, err := os.Lstat(string(path)); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", path, err)
		}

		if ignoreMissing {
			slog.Debug("nothing to remove", "path", path)
			return nil
		}

		return &m.MissingElementError{Path: path}
	}

	if err := os.RemoveAll(string(path)); err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}

	slog.Info("removed", "path", path)

	return nil
}

// WorkingDir returns the process working directory in slash form.
func (s *LocalTracefileStore) WorkingDir() (m.Path, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("working directory: %w", err)
	}

	return m.Path(filepath.ToSlash(dir)), nil
}

func writeFile(path m.Path, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}

	// #nosec G306 - reports are meant to be readable by other tools
	if err := os.WriteFile(string(path), content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	slog.Debug("wrote file", "path", path, "bytes", len(content))

	return nil
}
