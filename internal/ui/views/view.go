package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// LabelWidth is the width of the right-aligned field labels
const LabelWidth = 12

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width    int
	Height   int
	BoxWidth int // width of the text fields and the dropdown
	MaxRows  int // dropdown rows shown at once, 0 for all

	QueryText    string // rendered query input
	FieldText    string // rendered plain field input
	QueryFocused bool
	FieldFocused bool

	Suggestions   []string
	Highlighted   int
	SelectedList  []string
	FocusedDelete int // -1 when no delete control has focus

	StatusMessage string
	HelpModel     help.Model
	Keys          help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles         *Styles
	dropdownRender *DropdownRenderer
	listRender     *ListRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:         styles,
		dropdownRender: NewDropdownRenderer(styles),
		listRender:     NewListRenderer(styles),
	}
}

// Render produces the complete view and the layout of its interactive zones
func (r *Renderer) Render(state ViewState) (string, Layout) {
	f := &frame{}

	f.add(r.styles.Title.Render("suggestbox"))
	f.add("")

	// Combo-box with its menu directly underneath
	y := f.add(r.renderLabel("Query:", state.QueryFocused) + r.renderInput(state.QueryText, state.BoxWidth))
	f.zone(ZoneQuery, 0, LabelWidth, LabelWidth+state.BoxWidth, y)
	r.dropdownRender.Render(f, state, LabelWidth)
	f.add("")

	y = f.add(r.renderLabel("Some field:", state.FieldFocused) + r.renderInput(state.FieldText, state.BoxWidth))
	f.zone(ZoneField, 0, LabelWidth, LabelWidth+state.BoxWidth, y)
	f.add("")

	f.add(r.renderLabel("Selected:", false))
	r.listRender.Render(f, state, LabelWidth)

	// Status and help are pushed to the bottom
	footer := []string{r.renderStatus(state.StatusMessage)}
	if state.Keys != nil {
		footer = append(footer, r.styles.Help.Render(state.HelpModel.View(state.Keys)))
	}

	available := state.Height - 2*PadTop
	if gap := available - len(f.lines) - len(footer); gap > 0 {
		for i := 0; i < gap; i++ {
			f.add("")
		}
	} else {
		f.add("")
	}
	for _, line := range footer {
		f.add(line)
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(strings.Join(f.lines, "\n")), Layout{Zones: f.zones}
}

func (r *Renderer) renderLabel(text string, focused bool) string {
	style := r.styles.Label
	if focused {
		style = r.styles.LabelFocused
	}
	return style.Width(LabelWidth - 1).Align(lipgloss.Right).Render(text) + " "
}

// renderInput pads a rendered text input to the box width
func (r *Renderer) renderInput(view string, width int) string {
	if w := lipgloss.Width(view); w < width {
		view += runewidth.FillRight("", width-w)
	}
	return r.styles.Input.Render(view)
}

func (r *Renderer) renderStatus(msg string) string {
	if msg == "" {
		return ""
	}
	if strings.HasPrefix(msg, "Error:") {
		return r.styles.StatusError.Render(msg)
	}
	return r.styles.Status.Render(msg)
}
