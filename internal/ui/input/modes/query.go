package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"suggestbox/internal/ui/input/types"
)

// QueryMode handles keys while the combo-box query field has focus
type QueryMode struct{}

func NewQueryMode() *QueryMode {
	return &QueryMode{}
}

func (m *QueryMode) Name() string {
	return "query"
}

func (m *QueryMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Event, bool) {
	switch msg.Type {
	case tea.KeyUp:
		return []types.Event{keyDown(types.KeyUp)}, true

	case tea.KeyDown:
		return []types.Event{keyDown(types.KeyDown)}, true

	case tea.KeyEnter:
		return []types.Event{keyDown(types.KeyEnter)}, true

	case tea.KeyTab, tea.KeyShiftTab:
		// Shift+Tab reports the same key code as Tab
		return []types.Event{keyDown(types.KeyTab)}, true
	}

	// Everything else edits the text
	return nil, false
}

func keyDown(code int) types.Event {
	return types.Event{Type: types.EventKeyDown, Key: code}
}
