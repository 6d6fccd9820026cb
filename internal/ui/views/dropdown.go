package views

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// DropdownRenderer renders the suggestion menu under the query field
type DropdownRenderer struct {
	styles *Styles
}

// NewDropdownRenderer creates a new dropdown renderer
func NewDropdownRenderer(styles *Styles) *DropdownRenderer {
	return &DropdownRenderer{styles: styles}
}

// visibleRange returns the slice of rows shown when at most maxRows fit,
// scrolled so the highlighted row stays visible
func visibleRange(count, highlighted, maxRows int) (int, int) {
	if maxRows <= 0 || count <= maxRows {
		return 0, count
	}
	start := 0
	if highlighted >= maxRows {
		start = highlighted - maxRows + 1
	}
	return start, start + maxRows
}

// Render adds the menu rows to f. Nothing is drawn for an empty list.
func (r *DropdownRenderer) Render(f *frame, state ViewState, indent int) {
	if len(state.Suggestions) == 0 {
		return
	}

	width := state.BoxWidth
	pad := runewidth.FillRight("", indent)
	start, end := visibleRange(len(state.Suggestions), state.Highlighted, state.MaxRows)

	if start > 0 {
		f.add(pad + r.renderScroll(fmt.Sprintf("↑ %d more", start), width))
	}

	for i := start; i < end; i++ {
		// one cell of left padding inside the row
		text := " " + runewidth.Truncate(state.Suggestions[i], width-1, "…")
		text = runewidth.FillRight(text, width)

		style := r.styles.Menu
		if i == state.Highlighted {
			style = r.styles.HighlightBg
		}
		y := f.add(pad + style.Render(text))
		f.zone(ZoneRow, i, indent, indent+width, y)
	}

	if end < len(state.Suggestions) {
		f.add(pad + r.renderScroll(fmt.Sprintf("↓ %d more", len(state.Suggestions)-end), width))
	}
}

// renderScroll draws a scroll marker row on the menu background
func (r *DropdownRenderer) renderScroll(text string, width int) string {
	return r.styles.Scroll.Inherit(r.styles.Menu).Render(runewidth.FillRight(" "+text, width))
}
