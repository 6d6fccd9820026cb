package state

import "sync"

// None marks the absence of a highlighted row
const None = -1

// State is the combo-box state. Values are never mutated in place; every
// reducer returns a new State with fresh slices.
type State struct {
	Suggestions  []string // offered rows, empty when the dropdown is hidden
	Highlighted  int      // index into Suggestions or None
	Selected     string   // most recently committed suggestion
	HasSelected  bool     // whether Selected is set
	SelectedList []string // committed items in commit order
}

// Reducer transforms the previous state into the next one
type Reducer func(State) State

// Initial returns the state at mount
func Initial() State {
	return State{
		Suggestions:  []string{},
		Highlighted:  None,
		SelectedList: []string{},
	}
}

// HasHighlight reports whether a row is highlighted in a non-empty dropdown
func (s State) HasHighlight() bool {
	return len(s.Suggestions) > 0 && s.Highlighted >= 0 && s.Highlighted < len(s.Suggestions)
}

// HighlightedSuggestion returns the highlighted row text
func (s State) HighlightedSuggestion() (string, bool) {
	if !s.HasHighlight() {
		return "", false
	}
	return s.Suggestions[s.Highlighted], true
}

func (s State) clone() State {
	next := s
	next.Suggestions = append([]string{}, s.Suggestions...)
	next.SelectedList = append([]string{}, s.SelectedList...)
	return next
}

// MoveHighlight moves the highlight by delta, wrapping around the list. With
// nothing highlighted, moving down lands on the first row and moving up on
// the last.
func MoveHighlight(delta int) Reducer {
	return func(s State) State {
		next := s.clone()
		n := len(next.Suggestions)
		if n == 0 {
			return next
		}
		wrap := func(x int) int { return ((x % n) + n) % n }
		if next.Highlighted == None {
			next.Highlighted = wrap(min(delta, 0))
		} else {
			next.Highlighted = wrap(next.Highlighted + delta)
		}
		return next
	}
}

// SetHighlight highlights row index. Indexes outside the list are ignored.
func SetHighlight(index int) Reducer {
	return func(s State) State {
		next := s.clone()
		if index >= 0 && index < len(next.Suggestions) {
			next.Highlighted = index
		}
		return next
	}
}

// Select commits the highlighted row: it becomes Selected, is appended to
// SelectedList and the dropdown closes. Without a highlight it only clears
// Selected.
func Select() Reducer {
	return func(s State) State {
		next := s.clone()
		item, ok := next.HighlightedSuggestion()
		if !ok {
			next.Selected, next.HasSelected = "", false
			return next
		}
		next.Selected, next.HasSelected = item, true
		next.Suggestions = []string{}
		next.Highlighted = None
		next.SelectedList = append(next.SelectedList, item)
		return next
	}
}

// Deselect clears Selected
func Deselect() Reducer {
	return func(s State) State {
		next := s.clone()
		next.Selected, next.HasSelected = "", false
		return next
	}
}

// Hide closes the dropdown
func Hide() Reducer {
	return func(s State) State {
		next := s.clone()
		next.Suggestions = []string{}
		next.Highlighted = None
		return next
	}
}

// DeleteSelected removes entry index from SelectedList. Indexes outside the
// list are ignored.
func DeleteSelected(index int) Reducer {
	return func(s State) State {
		next := s.clone()
		if index < 0 || index >= len(next.SelectedList) {
			return next
		}
		next.SelectedList = append(next.SelectedList[:index], next.SelectedList[index+1:]...)
		return next
	}
}

// ReceiveSuggestions replaces the dropdown with batch and resets the
// highlight and selection
func ReceiveSuggestions(batch []string) Reducer {
	return func(s State) State {
		next := s.clone()
		next.Suggestions = append([]string{}, batch...)
		next.Highlighted = None
		next.Selected, next.HasSelected = "", false
		return next
	}
}

// Store holds the current state and applies reducers in dispatch order
type Store struct {
	mu          sync.RWMutex
	state       State
	subscribers []func(State)
}

// NewStore creates a store holding the initial state
func NewStore() *Store {
	return &Store{state: Initial()}
}

// State returns the current state
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies r and notifies subscribers with the result
func (s *Store) Dispatch(r Reducer) State {
	s.mu.Lock()
	s.state = r(s.state)
	next := s.state
	subs := append([]func(State){}, s.subscribers...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
	return next
}

// Subscribe registers fn to be called after every dispatch
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}
