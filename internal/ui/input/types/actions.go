package types

// Combo-box actions

type SearchAction struct {
	Query string
}

func (a SearchAction) Type() string { return "search" }

type MoveHighlightAction struct {
	Delta int // -1 up, +1 down
}

func (a MoveHighlightAction) Type() string { return "move_highlight" }

type SetHighlightAction struct {
	Index int
}

func (a SetHighlightAction) Type() string { return "set_highlight" }

// KeepFocusAction asks to keep focus on the query field. Cause is the event
// whose default behaviour would move focus away.
type KeepFocusAction struct {
	Cause Event
}

func (a KeepFocusAction) Type() string { return "keep_focus" }

type SelectHighlightedAction struct{}

func (a SelectHighlightedAction) Type() string { return "select_highlighted" }

type WantsSuggestionsAction struct {
	Wants bool
}

func (a WantsSuggestionsAction) Type() string { return "wants_suggestions" }

type QuitAutocompleteAction struct{}

func (a QuitAutocompleteAction) Type() string { return "quit_autocomplete" }

type DeleteSelectedItemAction struct {
	Index int
}

func (a DeleteSelectedItemAction) Type() string { return "delete_selected_item" }

// Application actions

type QuitAction struct {
	Force bool // true for Ctrl+C
}

func (a QuitAction) Type() string { return "quit" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }
