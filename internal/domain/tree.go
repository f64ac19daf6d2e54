package domain

import (
	"log/slog"
	"strings"

	m "covtree.dev/pkg/covtree/internal/model"
)

// treeBuilder is the mutable scaffolding used while inserting records.
// It is discarded once the immutable tree has been built.
type treeBuilder struct {
	name    string
	path    m.Path
	folders map[string]*treeBuilder
	leaves  map[string]*m.FileRecord
}

func newTreeBuilder(name string, path m.Path) *treeBuilder {
	return &treeBuilder{
		name:    name,
		path:    path,
		folders: map[string]*treeBuilder{},
		leaves:  map[string]*m.FileRecord{},
	}
}

// BuildTree arranges the records of a tracefile into a folder hierarchy that
// mirrors their canonical paths. The root folder has an empty name.
// Two records claiming the same path fail with a PathConflictError.
func BuildTree(t *m.Tracefile) (*m.Node, error) {
	root := newTreeBuilder("", "/")

	for _, file := range t.Files() {
		if err := root.insert(file); err != nil {
			slog.Error("failed to insert record into coverage tree", "path", file.Path(), "error", err)
			return nil, err
		}
	}

	node, err := root.build()
	if err != nil {
		return nil, err
	}

	slog.Debug("built coverage tree", "files", t.Len(), "lines_found", node.LinesFound(), "lines_hit", node.LinesHit())

	return node, nil
}

func (b *treeBuilder) insert(file *m.FileRecord) error {
	segments := file.Path().Segments()
	if len(segments) == 0 {
		return &m.PathConflictError{Path: file.Path()}
	}

	current := b
	prefix := strings.HasPrefix(string(file.Path()), "/")

	for i, segment := range segments[:len(segments)-1] {
		if _, isLeaf := current.leaves[segment]; isLeaf {
			return &m.PathConflictError{Path: joinSegments(prefix, segments[:i+1])}
		}

		next, ok := current.folders[segment]
		if !ok {
			next = newTreeBuilder(segment, joinSegments(prefix, segments[:i+1]))
			current.folders[segment] = next
		}

		current = next
	}

	name := segments[len(segments)-1]

	if _, exists := current.leaves[name]; exists {
		return &m.PathConflictError{Path: file.Path()}
	}

	if _, exists := current.folders[name]; exists {
		return &m.PathConflictError{Path: file.Path()}
	}

	current.leaves[name] = file

	return nil
}

// build freezes the scaffolding bottom-up into immutable nodes.
func (b *treeBuilder) build() (*m.Node, error) {
	children := make([]*m.Node, 0, len(b.folders)+len(b.leaves))

	for _, folder := range b.folders {
		child, err := folder.build()
		if err != nil {
			return nil, err
		}

		children = append(children, child)
	}

	for name, file := range b.leaves {
		children = append(children, m.NewLeaf(name, file))
	}

	return m.NewFolder(b.name, b.path, children)
}

func joinSegments(absolute bool, segments []string) m.Path {
	joined := strings.Join(segments, "/")
	if absolute {
		joined = "/" + joined
	}

	return m.Path(joined)
}
