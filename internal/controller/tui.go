package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	m "covtree.dev/pkg/covtree/internal/model"
)

// reservedLines is the space taken by the header and footer around the list.
const reservedLines = 6

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// TUI implements UI for terminals. Reports taller than the screen open in a
// scrollable pager.
type TUI struct {
	*SimpleUI
	output io.Writer
}

// NewTUI creates a new TUI writing to the command output.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{
		SimpleUI: NewSimpleUI(cmd),
		output:   cmd.OutOrStdout(),
	}
}

// DisplayReport shows the tree, paging it when it is taller than the terminal.
func (p *TUI) DisplayReport(ctx context.Context, root *m.Node, thresholds m.Thresholds) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newReportModel(root, thresholds, p.styles)

	// Get initial terminal size
	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(f.Fd())
		if err == nil {
			model = model.resize(width, height)
		}
	}

	// If the report is small, just print and exit
	if !model.needsPagination() {
		_, err := fmt.Fprint(p.output, model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// reportModel is the Bubble Tea model of the coverage report pager.
type reportModel struct {
	lines    []string
	summary  string
	viewport viewport.Model
	height   int
	width    int
	quitting bool
}

func newReportModel(root *m.Node, thresholds m.Thresholds, styles bandStyles) reportModel {
	rows := buildReportRows(root, thresholds)
	lines := make([]string, 0, len(rows))

	for _, row := range rows {
		label := row.label
		if !row.leaf {
			label = dimStyle.Render(label)
		}

		lines = append(lines, fmt.Sprintf("  %s  %s  (%d/%d)",
			styles.percent(row.band, row.percent), label, row.hit, row.found))
	}

	summary := fmt.Sprintf("  Total: %d/%d lines | Coverage: %s (%s)",
		root.LinesHit(), root.LinesFound(),
		styles.percent(thresholds.Classify(root.CoveragePercent()), root.CoveragePercent()),
		thresholds.Classify(root.CoveragePercent()))

	vp := viewport.New(0, 0)
	vp.SetContent(strings.Join(lines, "\n"))

	return reportModel{lines: lines, summary: summary, viewport: vp}
}

func (rm reportModel) resize(width, height int) reportModel {
	rm.width = width
	rm.height = height
	rm.viewport.Width = width

	rm.viewport.Height = height - reservedLines
	if rm.viewport.Height < 1 {
		rm.viewport.Height = 1
	}

	return rm
}

// needsPagination returns true if the list is too large to fit on screen.
func (rm reportModel) needsPagination() bool {
	if len(rm.lines) == 0 || rm.height == 0 {
		return false
	}

	return len(rm.lines) > rm.height-reservedLines
}

func (rm reportModel) Init() tea.Cmd {
	return nil
}

func (rm reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return rm.resize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			rm.quitting = true
			return rm, tea.Quit
		case "g", "home":
			rm.viewport.GotoTop()
			return rm, nil
		case "G", "end":
			rm.viewport.GotoBottom()
			return rm, nil
		}
	}

	var cmd tea.Cmd
	rm.viewport, cmd = rm.viewport.Update(msg)

	return rm, cmd
}

func (rm reportModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("covtree - Line Coverage"))
	b.WriteString("\n\n")

	if len(rm.lines) == 0 {
		b.WriteString("  No coverage data found\n")
		return b.String()
	}

	if rm.needsPagination() {
		b.WriteString(rm.viewport.View())
	} else {
		b.WriteString(strings.Join(rm.lines, "\n"))
	}

	b.WriteString("\n\n")
	b.WriteString(rm.summary)
	b.WriteString("\n")

	if rm.needsPagination() {
		fmt.Fprintf(&b, "%s\n", dimStyle.Render(fmt.Sprintf(
			"  %3.0f%% | ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit",
			rm.viewport.ScrollPercent()*100)))
	}

	return b.String()
}
