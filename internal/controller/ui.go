// Package controller provides output adapters for displaying coverage results.
package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "covtree.dev/pkg/covtree/internal/model"
)

// UI defines how workflow results are shown to the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayReport(ctx context.Context, root *m.Node, thresholds m.Thresholds) error
	DisplayCheck(ctx context.Context, result m.CheckResult)
	DisplayTracefile(ctx context.Context, tracefile *m.Tracefile) error
	DisplayRemoved(ctx context.Context, path m.Path)
}

// NewUI returns the interactive UI on a terminal and the plain one otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// reportRow is one rendered line of the coverage tree.
type reportRow struct {
	label   string
	found   int
	hit     int
	percent float64
	band    m.Band
	leaf    bool
}

// buildReportRows flattens the tree depth-first, children in name order.
// The root itself is omitted: it is reported as the total.
func buildReportRows(root *m.Node, thresholds m.Thresholds) []reportRow {
	var rows []reportRow

	_ = root.Walk(func(node *m.Node, depth int) error {
		if depth == 0 {
			return nil
		}

		label := strings.Repeat("  ", depth-1) + node.Name()
		if !node.IsLeaf() {
			label += "/"
		}

		rows = append(rows, reportRow{
			label:   label,
			found:   node.LinesFound(),
			hit:     node.LinesHit(),
			percent: node.CoveragePercent(),
			band:    thresholds.Classify(node.CoveragePercent()),
			leaf:    node.IsLeaf(),
		})

		return nil
	})

	return rows
}

// bandStyles colours percentages per band.
type bandStyles map[m.Band]lipgloss.Style

func newBandStyles(renderer *lipgloss.Renderer) bandStyles {
	return bandStyles{
		m.BandLow:    renderer.NewStyle().Foreground(lipgloss.Color("196")),
		m.BandMedium: renderer.NewStyle().Foreground(lipgloss.Color("214")),
		m.BandHigh:   renderer.NewStyle().Foreground(lipgloss.Color("42")),
	}
}

func (s bandStyles) percent(band m.Band, percent float64) string {
	return s[band].Render(formatPercent(percent))
}

func formatPercent(percent float64) string {
	return fmt.Sprintf("%.2f%%", m.RoundPercent(percent))
}

func formatCheck(result m.CheckResult) string {
	status := "PASSED"
	if !result.Passed {
		status = "FAILED"
	}

	return fmt.Sprintf("Coverage check %s: %s (minimum %s)",
		status, formatPercent(result.ObservedPercent), formatPercent(result.MinimumPercent))
}

func writeTracefile(w io.Writer, tracefile *m.Tracefile) error {
	_, err := io.WriteString(w, tracefile.String())

	return err
}
