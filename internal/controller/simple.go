package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "covtree.dev/pkg/covtree/internal/model"
)

// SimpleUI implements UI by printing to the cobra command's output.
type SimpleUI struct {
	cmd    *cobra.Command
	styles bandStyles
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{
		cmd:    cmd,
		styles: newBandStyles(lipgloss.NewRenderer(cmd.OutOrStdout())),
	}
}

// DisplayReport prints the coverage tree as a table.
func (s *SimpleUI) DisplayReport(ctx context.Context, root *m.Node, thresholds m.Thresholds) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows := buildReportRows(root, thresholds)
	if len(rows) == 0 {
		s.printf("No coverage data found\n")
		return nil
	}

	s.printf("\n%s", renderReportTable(rows, root, thresholds, s.styles))

	return nil
}

func renderReportTable(rows []reportRow, root *m.Node, thresholds m.Thresholds, styles bandStyles) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Lines", "Hit", "Coverage", "Band"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
	})

	files := 0

	for _, row := range rows {
		if row.leaf {
			files++
		}

		table.Append([]string{
			row.label,
			fmt.Sprintf("%d", row.found),
			fmt.Sprintf("%d", row.hit),
			styles.percent(row.band, row.percent),
			string(row.band),
		})
	}

	band := thresholds.Classify(root.CoveragePercent())

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", files),
		fmt.Sprintf("%d", root.LinesFound()),
		fmt.Sprintf("%d", root.LinesHit()),
		formatPercent(root.CoveragePercent()),
		string(band),
	})

	table.Render()

	return tableBuffer.String()
}

// DisplayCheck prints the outcome of a coverage check.
func (s *SimpleUI) DisplayCheck(ctx context.Context, result m.CheckResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", formatCheck(result))
}

// DisplayTracefile writes LCOV text to the command output.
func (s *SimpleUI) DisplayTracefile(ctx context.Context, tracefile *m.Tracefile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return writeTracefile(s.cmd.OutOrStdout(), tracefile)
}

// DisplayRemoved confirms the removal of an artifact.
func (s *SimpleUI) DisplayRemoved(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Removed %s\n", path)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
