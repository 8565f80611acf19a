package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/promptcanvas/promptcanvas/pkg/layout"
	"github.com/promptcanvas/promptcanvas/pkg/pipeline"
	"github.com/promptcanvas/promptcanvas/pkg/template"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// tuiCommand creates the interactive terminal UI command.
func (c *CLI) tuiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive layout explorer",
		Long: `Interactive layout explorer.

Pick a template, adjust ratio and transparency, and preview the resolved
layout and generation prompt without leaving the terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTUI(cmd.Context())
		},
	}
}

// runTUI starts the bubbletea program.
func (c *CLI) runTUI(ctx context.Context) error {
	infos, err := template.Builtins()
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, false)
	if err != nil {
		return err
	}
	defer runner.Close()

	model := newExplorerModel(c, runner, infos)
	_, err = tea.NewProgram(model, tea.WithContext(ctx)).Run()
	return err
}

// =============================================================================
// ExplorerModel - Three-Page Layout Explorer
// =============================================================================

// explorer pages.
const (
	pagePicker = iota
	pageParams
	pagePreview
)

// computeDoneMsg carries the pipeline result back into the update loop.
type computeDoneMsg struct {
	result *pipeline.Result
	err    error
}

// explorerModel is the bubbletea model for the layout explorer.
type explorerModel struct {
	cli    *CLI
	runner *pipeline.Runner

	page      int
	templates []template.Info
	cursor    int

	ratio        int
	transparency int
	strict       bool
	paramCursor  int // 0 ratio, 1 transparency, 2 strict

	computing bool
	result    *pipeline.Result
	err       error
}

func newExplorerModel(c *CLI, runner *pipeline.Runner, infos []template.Info) explorerModel {
	return explorerModel{
		cli:          c,
		runner:       runner,
		templates:    infos,
		ratio:        c.Config.DefaultRatio,
		transparency: c.Config.DefaultTransparency,
	}
}

func (m explorerModel) Init() tea.Cmd {
	return nil
}

func (m explorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.page == pagePicker {
				return m, tea.Quit
			}
			m.page--
			m.err = nil
			return m, nil
		}
		switch m.page {
		case pagePicker:
			return m.updatePicker(msg)
		case pageParams:
			return m.updateParams(msg)
		case pagePreview:
			return m.updatePreview(msg)
		}
	case computeDoneMsg:
		m.computing = false
		m.result = msg.result
		m.err = msg.err
		m.page = pagePreview
		return m, nil
	}
	return m, nil
}

func (m explorerModel) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.templates)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.templates) > 0 {
			m.page = pageParams
		}
	}
	return m, nil
}

func (m explorerModel) updateParams(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < 2 {
			m.paramCursor++
		}
	case "left", "h":
		m.adjustParam(-5)
	case "right", "l":
		m.adjustParam(5)
	case " ":
		if m.paramCursor == 2 {
			m.strict = !m.strict
		}
	case "enter":
		m.computing = true
		return m, m.computeCmd()
	}
	return m, nil
}

func (m explorerModel) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "r":
		m.computing = true
		return m, m.computeCmd()
	}
	return m, nil
}

// adjustParam shifts the selected parameter, clamped to its domain.
func (m *explorerModel) adjustParam(delta int) {
	switch m.paramCursor {
	case 0:
		m.ratio = clampInt(m.ratio+delta, 30, 70)
	case 1:
		m.transparency = clampInt(m.transparency+delta, 0, 100)
	case 2:
		m.strict = !m.strict
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// computeCmd runs the pipeline for the selected template and parameters.
func (m explorerModel) computeCmd() tea.Cmd {
	opts := m.cli.pipelineOptions()
	opts.Template = m.templates[m.cursor].Name
	opts.Ratio = pipeline.Int(m.ratio)
	opts.Transparency = pipeline.Int(m.transparency)
	opts.Strict = m.strict

	runner := m.runner
	return func() tea.Msg {
		result, err := runner.Execute(context.Background(), opts)
		return computeDoneMsg{result: result, err: err}
	}
}

// =============================================================================
// Views
// =============================================================================

func (m explorerModel) View() string {
	if m.computing {
		return "\n  " + StyleDim.Render("Computing layout...") + "\n"
	}
	switch m.page {
	case pageParams:
		return m.viewParams()
	case pagePreview:
		return m.viewPreview()
	default:
		return m.viewPicker()
	}
}

func (m explorerModel) viewPicker() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Template"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, info := range m.templates {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		layoutType := strings.TrimSuffix(strings.TrimPrefix(info.LayoutType, "dynamic_"), "_layout")
		line := fmt.Sprintf("%s%-22s %-18s %d zones", cursor, info.Name, layoutType, info.Zones)
		if i == m.cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.cursor+1, len(m.templates))))
	return b.String()
}

func (m explorerModel) viewParams() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Parameters"))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(m.templates[m.cursor].Name))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ field  ←/→ adjust  ⏎ compute  esc back"))
	b.WriteString("\n\n")

	strictLabel := "off"
	if m.strict {
		strictLabel = "on"
	}
	rows := []struct {
		label string
		value string
	}{
		{"Ratio", fmt.Sprintf("%d%%  %s", m.ratio, gauge(m.ratio, 30, 70))},
		{"Transparency", fmt.Sprintf("%d%%  %s", m.transparency, gauge(m.transparency, 0, 100))},
		{"Strict", strictLabel},
	}
	for i, row := range rows {
		cursor := "  "
		if i == m.paramCursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-14s %s", cursor, row.label, row.value)
		if i == m.paramCursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// gauge renders a simple ASCII slider for a value within [lo, hi].
func gauge(v, lo, hi int) string {
	const width = 20
	pos := (v - lo) * width / (hi - lo)
	if pos < 0 {
		pos = 0
	}
	if pos > width {
		pos = width
	}
	return "[" + strings.Repeat("=", pos) + strings.Repeat("·", width-pos) + "]"
}

func (m explorerModel) viewPreview() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Preview"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("⏎/r recompute  esc back  q quit"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(StyleWarning.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
		return b.String()
	}

	l := m.result.Layout
	b.WriteString(fmt.Sprintf("  %s %s\n", StyleValue.Render(l.LayoutID), listDimStyle.Render(l.LayoutType)))
	b.WriteString(fmt.Sprintf("  text %.0fpx, image %.0fpx, opacity %.2f\n",
		l.Values.TextWidth, l.Values.ImageWidth, l.Values.Opacity))
	if l.FallbackUsed {
		b.WriteString("  " + StyleWarning.Render("fallback geometry used") + "\n")
	}
	for _, e := range l.Validation.Errors {
		b.WriteString("  " + StyleWarning.Render("error: "+e) + "\n")
	}
	for _, warn := range l.Validation.Warnings {
		b.WriteString("  " + listDimStyle.Render("warning: "+warn) + "\n")
	}

	b.WriteString("\n")
	for _, name := range sortedZoneNames(l.Zones) {
		z := l.Zones[name]
		marker := listDimStyle.Render("·")
		if z.ContainerStyle != nil {
			marker = StyleSuccess.Render("▪")
		}
		b.WriteString(fmt.Sprintf("  %s %-24s %4.0f,%-4.0f %.0fx%.0f\n",
			marker, name, z.X, z.Y, z.Width, z.Height))
	}

	if m.result.Prompt != "" {
		b.WriteString("\n  " + StyleHighlight.Render("Prompt") + "\n")
		b.WriteString("  " + listDimStyle.Render(m.result.Prompt) + "\n")
	}

	return b.String()
}

// sortedZoneNames returns zone names in stable display order.
func sortedZoneNames(zones map[string]layout.ZoneRuntime) []string {
	names := make([]string, 0, len(zones))
	for name := range zones {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
