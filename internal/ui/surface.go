package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"suggestbox/internal/ui/input/types"
	"suggestbox/internal/ui/views"
)

// FocusedTarget implements types.Context
func (m *Model) FocusedTarget() types.Target {
	switch {
	case m.focusIdx == focusQuery:
		return types.TargetQuery
	case m.focusIdx == focusField:
		return types.TargetField
	case m.focusIdx >= focusFirstDelete:
		return types.TargetDelete
	default:
		return types.TargetNone
	}
}

// FocusedDeleteIndex implements types.Context
func (m *Model) FocusedDeleteIndex() int {
	if m.focusIdx < focusFirstDelete {
		return -1
	}
	return m.focusIdx - focusFirstDelete
}

// handleKey routes a key press to the focused control
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	m.log.V(1).Info("key", "key", msg.String(), "mode", m.inputHandler.ModeName(m.FocusedTarget()))
	events, consumed := m.inputHandler.HandleKey(msg, m)

	var cmds []tea.Cmd
	prevented := false
	for _, ev := range events {
		cmd, p := m.emit(ev)
		cmds = append(cmds, cmd)
		prevented = prevented || p
	}

	// Tab's default moves focus unless the pipeline kept it
	switch msg.Type {
	case tea.KeyTab:
		if !prevented {
			cmds = append(cmds, m.setFocus(m.nextFocus(+1)))
		}
	case tea.KeyShiftTab:
		if !prevented {
			cmds = append(cmds, m.setFocus(m.nextFocus(-1)))
		}
	}

	if !consumed {
		cmds = append(cmds, m.updateInput(msg))
	}
	return tea.Batch(cmds...)
}

// updateInput lets the focused text input handle msg and reports query edits
func (m *Model) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.FocusedTarget() {
	case types.TargetQuery:
		before := m.query.Value()
		m.query, cmd = m.query.Update(msg)
		if after := m.query.Value(); after != before {
			inputCmd, _ := m.emit(types.Event{Type: types.EventInput, Value: after})
			return tea.Batch(cmd, inputCmd)
		}
	case types.TargetField:
		m.field, cmd = m.field.Update(msg)
	}
	return cmd
}

// handleMouse translates pointer activity into row, field and button events
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	zone, _ := m.layout.Hit(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionMotion:
		return m.hover(zone)

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		return m.press(zone)

	case tea.MouseActionRelease:
		return m.release(zone)
	}
	return nil
}

func (m *Model) hover(zone views.Zone) tea.Cmd {
	if zone.Kind != views.ZoneRow {
		m.hovered = -1
		return nil
	}
	if zone.Index == m.hovered {
		return nil
	}
	m.hovered = zone.Index
	cmd, _ := m.emit(types.Event{Type: types.EventItemEnter, Index: zone.Index})
	return cmd
}

func (m *Model) press(zone views.Zone) tea.Cmd {
	m.pressed = zone

	switch zone.Kind {
	case views.ZoneRow:
		// A press enters the row before focus leaves the query field
		m.hovered = zone.Index
		enterCmd, _ := m.emit(types.Event{Type: types.EventItemEnter, Index: zone.Index})
		downCmd, _ := m.emit(types.Event{Type: types.EventItemDown, Index: zone.Index})
		return tea.Batch(enterCmd, downCmd, m.setFocus(focusNone))
	case views.ZoneQuery:
		return m.setFocus(focusQuery)
	case views.ZoneField:
		return m.setFocus(focusField)
	case views.ZoneDelete:
		return m.setFocus(focusFirstDelete + zone.Index)
	default:
		return m.setFocus(focusNone)
	}
}

func (m *Model) release(zone views.Zone) tea.Cmd {
	pressed := m.pressed
	m.pressed = views.Zone{Kind: views.ZoneNone, Index: -1}

	switch zone.Kind {
	case views.ZoneRow:
		// Released over a row; releases elsewhere leave the press window open
		cmd, _ := m.emit(types.Event{Type: types.EventItemUp, Index: zone.Index})
		return cmd
	case views.ZoneDelete:
		if pressed.Kind == views.ZoneDelete && pressed.Index == zone.Index {
			cmd, _ := m.emit(types.Event{Type: types.EventDeleteClick, Index: zone.Index})
			return cmd
		}
	}
	return nil
}

// nextFocus returns the ring position dir steps from the focused one
func (m *Model) nextFocus(dir int) int {
	n := focusFirstDelete + len(m.store.State().SelectedList)
	if m.focusIdx == focusNone {
		if dir > 0 {
			return focusQuery
		}
		return n - 1
	}
	return ((m.focusIdx+dir)%n + n) % n
}

// setFocus moves focus to ring position idx. Leaving the query field emits a
// blur; if the pipeline prevents it, focus returns to the query field.
func (m *Model) setFocus(idx int) tea.Cmd {
	if idx == m.focusIdx && (idx != focusQuery || m.queryFocused) {
		return nil
	}

	var cmds []tea.Cmd
	if m.focusIdx == focusQuery && idx != focusQuery && m.queryFocused {
		blurCmd, prevented := m.blurQueryEvent()
		cmds = append(cmds, blurCmd)
		if prevented {
			return tea.Batch(append(cmds, m.focusQuery())...)
		}
	}

	cmds = append(cmds, m.moveFocus(idx))
	if idx == focusQuery && !m.queryFocused {
		cmds = append(cmds, m.focusQuery())
	}
	return tea.Batch(cmds...)
}

// moveFocus repositions focus without emitting widget events
func (m *Model) moveFocus(idx int) tea.Cmd {
	m.focusIdx = idx
	m.query.Blur()
	m.field.Blur()
	m.viewModel.SetFocusedDelete(m.FocusedDeleteIndex())

	switch idx {
	case focusQuery:
		return m.query.Focus()
	case focusField:
		return m.field.Focus()
	}
	return nil
}

// focusQuery gives the query field focus and emits the focus event
func (m *Model) focusQuery() tea.Cmd {
	focusCmd := m.moveFocus(focusQuery)
	m.queryFocused = true
	cmd, _ := m.emit(types.Event{Type: types.EventFocus})
	return tea.Batch(focusCmd, cmd)
}

// blurQuery takes focus from the query field without moving it elsewhere,
// as when the terminal loses focus
func (m *Model) blurQuery() tea.Cmd {
	cmd, prevented := m.blurQueryEvent()
	if prevented {
		return tea.Batch(cmd, m.focusQuery())
	}
	m.query.Blur()
	return cmd
}

func (m *Model) blurQueryEvent() (tea.Cmd, bool) {
	m.queryFocused = false
	return m.emit(types.Event{Type: types.EventBlur})
}
