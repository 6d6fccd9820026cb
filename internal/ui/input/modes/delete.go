package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"suggestbox/internal/ui/input/types"
)

// DeleteMode handles keys while a delete control has focus. Enter and Space
// press the control like a button.
type DeleteMode struct{}

func NewDeleteMode() *DeleteMode {
	return &DeleteMode{}
}

func (m *DeleteMode) Name() string {
	return "delete"
}

func (m *DeleteMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Event, bool) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeySpace:
		index := ctx.FocusedDeleteIndex()
		if index < 0 {
			return nil, true
		}
		return []types.Event{{Type: types.EventDeleteClick, Index: index}}, true
	}

	// Buttons take no text
	return nil, true
}
