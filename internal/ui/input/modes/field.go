package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"suggestbox/internal/ui/input/types"
)

// FieldMode handles keys for a plain text field. The field produces no
// widget events; it only swallows focus keys so they are not typed.
type FieldMode struct{}

func NewFieldMode() *FieldMode {
	return &FieldMode{}
}

func (m *FieldMode) Name() string {
	return "field"
}

func (m *FieldMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Event, bool) {
	switch msg.Type {
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyEnter:
		return nil, true
	default:
		return nil, false
	}
}
