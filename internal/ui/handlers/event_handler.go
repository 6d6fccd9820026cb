package handlers

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"

	"suggestbox/internal/eventbus"
	"suggestbox/internal/ui/commands"
	"suggestbox/internal/ui/input/types"
	"suggestbox/internal/ui/state"
)

// gate decides what a suggestion batch turns into
type gate int

const (
	gateUnset gate = iota // no focus or blur seen yet; batches are dropped
	gateOpen              // query field wants suggestions
	gateClosed            // query field blurred; batches arrive empty
)

// EventHandler turns actions and domain events into reducers on the store
type EventHandler struct {
	store     *state.Store
	executor  *commands.Executor
	endpoint  string
	gate      gate
	setStatus func(string)
	log       logr.Logger
}

// NewEventHandler creates a new event handler. Suggestion events whose
// request URL does not start with endpoint are ignored.
func NewEventHandler(store *state.Store, executor *commands.Executor, endpoint string, setStatus func(string), log logr.Logger) *EventHandler {
	return &EventHandler{
		store:     store,
		executor:  executor,
		endpoint:  endpoint,
		setStatus: setStatus,
		log:       log.WithName("handler"),
	}
}

// Prevented reports whether a keep-focus action must suppress its cause's
// default behaviour: a row is highlighted in a non-empty dropdown.
func (h *EventHandler) Prevented(a types.KeepFocusAction) bool {
	return h.store.State().HasHighlight()
}

// HandleAction applies a combo-box action
func (h *EventHandler) HandleAction(action types.Action) tea.Cmd {
	h.log.V(1).Info("action", "type", action.Type())

	switch a := action.(type) {
	case types.SearchAction:
		return h.executor.ExecuteSearch(a.Query)

	case types.MoveHighlightAction:
		h.store.Dispatch(state.MoveHighlight(a.Delta))

	case types.SetHighlightAction:
		h.store.Dispatch(state.SetHighlight(a.Index))

	case types.SelectHighlightedAction:
		// Selected is set for exactly one dispatch so subscribers can push
		// it into the query field
		s := h.store.Dispatch(state.Select())
		var cmd tea.Cmd
		if s.HasSelected {
			cmd = h.executor.ExecuteCommit(s.Selected, len(s.SelectedList)-1)
		}
		h.store.Dispatch(state.Deselect())
		return cmd

	case types.QuitAutocompleteAction:
		h.store.Dispatch(state.Hide())

	case types.DeleteSelectedItemAction:
		if a.Index < 0 || a.Index >= len(h.store.State().SelectedList) {
			return nil
		}
		h.store.Dispatch(state.DeleteSelected(a.Index))
		return h.executor.ExecuteDelete(a.Index)

	case types.WantsSuggestionsAction:
		if a.Wants {
			h.gate = gateOpen
		} else {
			h.gate = gateClosed
		}

	case types.KeepFocusAction:
		// Only its prevented side effect matters; see Prevented
	}

	return nil
}

// HandleEvent processes domain events forwarded from the bus
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.SuggestionsReceivedEvent:
		if !h.owns(e.Request) {
			h.log.V(1).Info("ignoring foreign response", "request", e.Request)
			return nil
		}
		h.receive(e.Suggestions)
		if h.gate == gateOpen {
			h.status(fmt.Sprintf("%d suggestions for %q", len(e.Suggestions), e.Query))
		}

	case eventbus.FetchFailedEvent:
		if !h.owns(e.Request) {
			return nil
		}
		h.receive(nil)
		h.status(fmt.Sprintf("Error: suggestions for %q failed: %v", e.Query, e.Err))

	case eventbus.ErrorEvent:
		h.status(fmt.Sprintf("Error: %s", e.Message))
	}

	return nil
}

// receive applies a batch through the suggestion gate
func (h *EventHandler) receive(batch []string) {
	switch h.gate {
	case gateOpen:
		h.store.Dispatch(state.ReceiveSuggestions(batch))
	case gateClosed:
		h.store.Dispatch(state.ReceiveSuggestions(nil))
	}
}

func (h *EventHandler) owns(request string) bool {
	return strings.HasPrefix(request, h.endpoint)
}

func (h *EventHandler) status(msg string) {
	if h.setStatus != nil {
		h.setStatus(msg)
	}
}
