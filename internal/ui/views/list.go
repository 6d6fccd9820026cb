package views

import (
	"github.com/mattn/go-runewidth"
)

const deleteLabel = "[x]"

// ListRenderer renders the committed items with their delete controls
type ListRenderer struct {
	styles *Styles
}

// NewListRenderer creates a new list renderer
func NewListRenderer(styles *Styles) *ListRenderer {
	return &ListRenderer{styles: styles}
}

// Render adds one line per committed item to f
func (r *ListRenderer) Render(f *frame, state ViewState, indent int) {
	pad := runewidth.FillRight("", indent)

	if len(state.SelectedList) == 0 {
		f.add(pad + r.styles.Dim.Render("Nothing selected yet"))
		return
	}

	buttonWidth := runewidth.StringWidth(deleteLabel)
	textWidth := state.Width - indent - buttonWidth - 1 - 2*PadLeft
	if textWidth < 10 {
		textWidth = 10
	}

	for i, item := range state.SelectedList {
		button := r.styles.Delete.Render(deleteLabel)
		if i == state.FocusedDelete {
			button = r.styles.DeleteFocus.Render(deleteLabel)
		}
		text := r.styles.Item.Render(runewidth.Truncate(item, textWidth, "…"))

		y := f.add(pad + button + " " + text)
		f.zone(ZoneDelete, i, indent, indent+buttonWidth, y)
	}
}
