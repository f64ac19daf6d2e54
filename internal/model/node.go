package model

import "sort"

// NodeKind tags the variant of a Node.
type NodeKind int

const (
	// KindFolder is a directory node with children.
	KindFolder NodeKind = iota
	// KindLeaf wraps a single FileRecord.
	KindLeaf
)

func (k NodeKind) String() string {
	if k == KindLeaf {
		return "leaf"
	}

	return "folder"
}

// Node is an element of the coverage tree: either a folder or a leaf.
// Totals are computed once when the node is created and never change.
type Node struct {
	kind     NodeKind
	name     string
	path     Path
	found    int
	hit      int
	children []*Node
	file     *FileRecord
}

// NewLeaf wraps file in a leaf node named name.
func NewLeaf(name string, file *FileRecord) *Node {
	return &Node{
		kind:  KindLeaf,
		name:  name,
		path:  file.Path(),
		found: file.LinesFound(),
		hit:   file.LinesHit(),
		file:  file,
	}
}

// NewFolder creates a folder from already built children, summing their totals.
// Child names must be unique.
func NewFolder(name string, path Path, children []*Node) (*Node, error) {
	sorted := make([]*Node, len(children))
	copy(sorted, children)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].name < sorted[j].name })

	folder := &Node{kind: KindFolder, name: name, path: path, children: sorted}

	for i, child := range sorted {
		if i > 0 && sorted[i-1].name == child.name {
			return nil, &PathConflictError{Path: child.path}
		}

		folder.found += child.found
		folder.hit += child.hit
	}

	return folder, nil
}

// Kind returns the variant of the node.
func (n *Node) Kind() NodeKind { return n.kind }

// IsLeaf reports whether the node wraps a file record.
func (n *Node) IsLeaf() bool { return n.kind == KindLeaf }

// Name returns the last path segment of the node.
func (n *Node) Name() string { return n.name }

// Path returns the full path of the node.
func (n *Node) Path() Path { return n.path }

// LinesFound returns the total of executable lines below the node.
func (n *Node) LinesFound() int { return n.found }

// LinesHit returns the total of executed lines below the node.
func (n *Node) LinesHit() int { return n.hit }

// CoveragePercent returns the unrounded coverage of the node.
func (n *Node) CoveragePercent() float64 { return CoveragePercent(n.found, n.hit) }

// File returns the wrapped record of a leaf, nil for folders.
func (n *Node) File() *FileRecord { return n.file }

// Children returns the children ordered by name. Leaves have none.
func (n *Node) Children() []*Node {
	children := make([]*Node, len(n.children))
	copy(children, n.children)

	return children
}

// Child looks a direct child up by exact name.
func (n *Node) Child(name string) (*Node, bool) {
	i := sort.Search(len(n.children), func(i int) bool { return n.children[i].name >= name })
	if i < len(n.children) && n.children[i].name == name {
		return n.children[i], true
	}

	return nil, false
}

// Walk visits the node and its descendants depth-first, children in name order.
// depth is 0 for the receiver.
func (n *Node) Walk(fn func(node *Node, depth int) error) error {
	return n.walk(fn, 0)
}

func (n *Node) walk(fn func(node *Node, depth int) error, depth int) error {
	if err := fn(n, depth); err != nil {
		return err
	}

	for _, child := range n.children {
		if err := child.walk(fn, depth+1); err != nil {
			return err
		}
	}

	return nil
}
