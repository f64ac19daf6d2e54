package controller

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	m "covtree.dev/pkg/covtree/internal/model"
)

var testThresholds = m.Thresholds{Medium: 75, High: 90}

func fileRecord(path m.Path, found, hit int) *m.FileRecord {
	lines := make([]m.LineRecord, 0, found)
	for i := 1; i <= found; i++ {
		hits := 0
		if i <= hit {
			hits = 1
		}

		lines = append(lines, m.LineRecord{Number: i, Hits: hits})
	}

	return m.NewFileRecord(path, "SF:"+string(path)+"\nend_of_record", lines)
}

// sampleTree builds /src/{a.x 9/10, lib/{b.x 3/4}} and /z.x 0/2.
func sampleTree(t *testing.T) *m.Node {
	t.Helper()

	lib, err := m.NewFolder("lib", "/src/lib", []*m.Node{m.NewLeaf("b.x", fileRecord("/src/lib/b.x", 4, 3))})
	require.NoError(t, err)

	src, err := m.NewFolder("src", "/src", []*m.Node{lib, m.NewLeaf("a.x", fileRecord("/src/a.x", 10, 9))})
	require.NoError(t, err)

	root, err := m.NewFolder("", "/", []*m.Node{m.NewLeaf("z.x", fileRecord("/z.x", 2, 0)), src})
	require.NoError(t, err)

	return root
}

func emptyTree(t *testing.T) *m.Node {
	t.Helper()

	root, err := m.NewFolder("", "/", nil)
	require.NoError(t, err)

	return root
}

func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer

	cmd := &cobra.Command{Use: "test"}
	cmd.SetOut(&out)

	return cmd, &out
}
