package input

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"suggestbox/internal/ui/input/modes"
	"suggestbox/internal/ui/input/types"
)

// Handler classifies raw widget events into actions. It owns the temporal
// state the classification needs: the focus window, the row press window and
// the debounce sequence numbers.
type Handler struct {
	modes map[types.Target]types.ModeHandler

	focus Window
	item  Window

	// row of the last press; a release on the same row completes a click
	downIndex int

	searchDelay time.Duration
	selectDelay time.Duration
	searchSeq   uint64
	selectSeq   uint64
	query       string // text of the latest input event
}

// New creates a handler with the given debounce delays
func New(searchDelay, selectDelay time.Duration) *Handler {
	h := &Handler{
		modes:       make(map[types.Target]types.ModeHandler),
		downIndex:   -1,
		searchDelay: searchDelay,
		selectDelay: selectDelay,
	}

	h.modes[types.TargetQuery] = modes.NewQueryMode()
	h.modes[types.TargetField] = modes.NewFieldMode()
	h.modes[types.TargetDelete] = modes.NewDeleteMode()

	return h
}

// HandleKey translates a key press on the focused control into raw events
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Event, bool) {
	handler := h.modes[ctx.FocusedTarget()]
	if handler == nil {
		return nil, false
	}
	return handler.HandleKey(msg, ctx)
}

// HandleAppKey returns the application action bound to msg regardless of
// focus, or nil when msg belongs to the focused control
func (h *Handler) HandleAppKey(msg tea.KeyMsg) types.Action {
	switch msg.Type {
	case tea.KeyCtrlC:
		return types.QuitAction{Force: true}
	case tea.KeyF1:
		return types.ToggleHelpAction{}
	}
	return nil
}

// ModeName returns the display name of the mode handling target
func (h *Handler) ModeName(target types.Target) string {
	if handler := h.modes[target]; handler != nil {
		return handler.Name()
	}
	return ""
}

// Handle classifies ev. It returns the actions to apply now and the timers to
// start; a timer's DebounceMsg must be passed to Fire when it expires.
func (h *Handler) Handle(ev types.Event) ([]types.Action, []types.Timer) {
	switch ev.Type {
	case types.EventInput:
		var actions []types.Action
		if ev.Value == "" {
			actions = append(actions, types.QuitAutocompleteAction{})
		}
		h.query = ev.Value
		h.searchSeq++
		return actions, []types.Timer{{Kind: types.DebounceSearch, Seq: h.searchSeq, Delay: h.searchDelay}}

	case types.EventKeyDown:
		switch ev.Key {
		case types.KeyUp:
			return []types.Action{types.MoveHighlightAction{Delta: -1}}, nil
		case types.KeyDown:
			return []types.Action{types.MoveHighlightAction{Delta: +1}}, nil
		case types.KeyEnter, types.KeyTab:
			return []types.Action{types.KeepFocusAction{Cause: ev}}, []types.Timer{h.scheduleSelect()}
		}
		return nil, nil

	case types.EventItemEnter:
		return []types.Action{types.SetHighlightAction{Index: ev.Index}}, nil

	case types.EventItemDown:
		h.item.Start()
		h.downIndex = ev.Index
		return nil, nil

	case types.EventItemUp:
		h.item.End()
		if ev.Index == h.downIndex {
			return nil, []types.Timer{h.scheduleSelect()}
		}
		return nil, nil

	case types.EventFocus:
		h.focus.Start()
		return []types.Action{types.WantsSuggestionsAction{Wants: true}}, nil

	case types.EventBlur:
		h.focus.End()
		actions := []types.Action{types.WantsSuggestionsAction{Wants: false}}
		if h.item.Between() {
			// focus is leaving for a suggestion row
			actions = append(actions, types.KeepFocusAction{Cause: ev})
		} else {
			actions = append(actions, types.QuitAutocompleteAction{})
		}
		return actions, nil

	case types.EventDeleteClick:
		return []types.Action{types.DeleteSelectedItemAction{Index: ev.Index}}, nil
	}

	return nil, nil
}

// Fire handles an expired debounce timer. Superseded timers produce nothing.
func (h *Handler) Fire(msg types.DebounceMsg) []types.Action {
	switch msg.Kind {
	case types.DebounceSearch:
		if msg.Seq != h.searchSeq {
			return nil
		}
		// typing that settles after a blur is dropped
		if h.focus.NotBetween() || h.query == "" {
			return nil
		}
		return []types.Action{types.SearchAction{Query: h.query}}

	case types.DebounceSelect:
		if msg.Seq != h.selectSeq {
			return nil
		}
		return []types.Action{types.SelectHighlightedAction{}}
	}
	return nil
}

// Focused reports whether the query field is inside a focus window
func (h *Handler) Focused() bool {
	return h.focus.Between()
}

func (h *Handler) scheduleSelect() types.Timer {
	h.selectSeq++
	return types.Timer{Kind: types.DebounceSelect, Seq: h.selectSeq, Delay: h.selectDelay}
}
