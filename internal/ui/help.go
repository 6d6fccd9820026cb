package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// helpKeys lists the help rows per section
var helpKeys = []struct {
	section string
	rows    [][2]string
}{
	{"Query field", [][2]string{
		{"type", "Search suggestions (after a short pause)"},
		{"↑/↓", "Move the highlight, wrapping around"},
		{"Enter", "Add the highlighted suggestion"},
		{"Tab", "Add the highlighted suggestion, or move to the next field"},
		{"Shift+Tab", "Same as Tab, moving backwards"},
	}},
	{"Mouse", [][2]string{
		{"hover", "Highlight a suggestion"},
		{"click row", "Add the suggestion"},
		{"click [x]", "Remove an entry from the list"},
		{"click field", "Focus the field"},
	}},
	{"Selected list", [][2]string{
		{"Tab", "Reach the [x] controls"},
		{"Enter/Space", "Remove the focused entry"},
	}},
	{"Other", [][2]string{
		{"F1", "Show this help"},
		{"Ctrl+C", "Quit and print the selected list"},
	}},
}

// Markdown returns the help as a markdown document
func (r *HelpRenderer) Markdown(endpoint string) string {
	var b strings.Builder
	b.WriteString("# suggestbox Help\n\n")
	for _, sec := range helpKeys {
		fmt.Fprintf(&b, "## %s\n\n| Key | Action |\n|---|---|\n", sec.section)
		for _, row := range sec.rows {
			fmt.Fprintf(&b, "| `%s` | %s |\n", row[0], row[1])
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "_Suggestions from:_ `%s`\n", endpoint)
	return b.String()
}

// Render renders the markdown help for a terminal width columns wide. The
// lipgloss rendition is used when glamour cannot build a renderer.
func (r *HelpRenderer) Render(endpoint string, width int) string {
	if width <= 0 {
		width = 80
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return r.RenderHelpContentPlain(endpoint)
	}
	out, err := tr.Render(r.Markdown(endpoint))
	if err != nil {
		return r.RenderHelpContentPlain(endpoint)
	}
	return out
}

// RenderHelpContentPlain generates help content with colors for pager
func (r *HelpRenderer) RenderHelpContentPlain(endpoint string) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	row := func(k, desc string) string {
		return fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-13s", k)), descStyle.Render(desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("suggestbox Help"))
	help.WriteString("\n")

	for _, sec := range helpKeys {
		help.WriteString(sectionStyle.Render(sec.section))
		help.WriteString("\n")
		for _, kv := range sec.rows {
			help.WriteString(row(kv[0], kv[1]))
		}
		help.WriteString("\n")
	}

	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Render("  Suggestions from: " + endpoint))

	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
