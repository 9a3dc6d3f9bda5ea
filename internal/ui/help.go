package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// helpPagerMsg contains the result of running the help pager
type helpPagerMsg struct {
	err error
}

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	noun string
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(noun string) *HelpRenderer {
	return &HelpRenderer{noun: noun}
}

// RenderHelpContent generates the full help text shown in the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	line := func(k, desc string) string {
		return fmt.Sprintf("  %s %s\n", keyStyle.Render(k), descStyle.Render(desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("Value Tracker Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Navigation"))
	help.WriteString("\n")
	help.WriteString(line("↑/↓, k/j", "Move the row cursor"))
	help.WriteString(line("g/G", "First/last row"))
	help.WriteString(line("PgUp/PgDn", "Page up/down"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Search"))
	help.WriteString("\n")
	help.WriteString(line("/", "Focus the search field"))
	help.WriteString(line("enter", "Leave the search field, keep the text"))
	help.WriteString(line("esc", "Clear the search"))
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).
		Render(fmt.Sprintf("  Matches %s whose name contains the text, ignoring case.", r.noun)))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Sorting"))
	help.WriteString("\n")
	help.WriteString(line("n, 1", "Sort by name (again to reverse)"))
	help.WriteString(line("v, 2", "Sort by value (again to reverse)"))
	help.WriteString(line("tab", "Move header focus"))
	help.WriteString(line("enter", "Sort by the focused header"))
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).
		Render("  Values sort by their first number: 4.5k counts as 4, 800-1k as 800."))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(line("?", "Show this help"))
	help.WriteString(line("q", "Quit"))

	return help.String()
}

// helpPager shows help content in the ov pager. It satisfies tea.ExecCommand
// so Bubble Tea releases the terminal while the pager runs.
type helpPager struct {
	content string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

func newHelpPager(content string) *helpPager {
	return &helpPager{content: content}
}

func (p *helpPager) SetStdin(r io.Reader)  { p.stdin = r }
func (p *helpPager) SetStdout(w io.Writer) { p.stdout = w }
func (p *helpPager) SetStderr(w io.Writer) { p.stderr = w }

// Run blocks until the pager exits
func (p *helpPager) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(p.content))
	if err != nil {
		return fmt.Errorf("failed to start pager: %w", err)
	}

	// Don't write the page to the terminal on exit, Bubble Tea redraws it
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
