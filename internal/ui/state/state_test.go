package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withSuggestions(items ...string) State {
	s := Initial()
	s.Suggestions = items
	return s
}

func TestInitial(t *testing.T) {
	s := Initial()
	assert.Empty(t, s.Suggestions)
	assert.Equal(t, None, s.Highlighted)
	assert.False(t, s.HasSelected)
	assert.Empty(t, s.SelectedList)
	assert.False(t, s.HasHighlight())
}

func TestMoveHighlightWraps(t *testing.T) {
	s := withSuggestions("a", "b", "c", "d", "e")

	s.Highlighted = 0
	assert.Equal(t, 4, MoveHighlight(-1)(s).Highlighted, "up from the first row wraps to the last")

	s.Highlighted = 4
	assert.Equal(t, 0, MoveHighlight(+1)(s).Highlighted, "down from the last row wraps to the first")

	s.Highlighted = 2
	assert.Equal(t, 3, MoveHighlight(+1)(s).Highlighted)
	assert.Equal(t, 1, MoveHighlight(-1)(s).Highlighted)
}

func TestMoveHighlightFromNone(t *testing.T) {
	s := withSuggestions("a", "b", "c")

	assert.Equal(t, 0, MoveHighlight(+1)(s).Highlighted)
	assert.Equal(t, 2, MoveHighlight(-1)(s).Highlighted)
}

func TestMoveHighlightEmptyList(t *testing.T) {
	s := Initial()
	next := MoveHighlight(+1)(s)
	assert.Equal(t, None, next.Highlighted)
	assert.Empty(t, next.Suggestions)
}

func TestSetHighlight(t *testing.T) {
	s := withSuggestions("a", "b", "c")

	assert.Equal(t, 1, SetHighlight(1)(s).Highlighted)
	assert.Equal(t, None, SetHighlight(3)(s).Highlighted, "out of range is ignored")
	assert.Equal(t, None, SetHighlight(-2)(s).Highlighted)
}

func TestSelectCommitsHighlighted(t *testing.T) {
	s := withSuggestions("Cat", "Dog")
	s.Highlighted = 0

	next := Select()(s)
	assert.True(t, next.HasSelected)
	assert.Equal(t, "Cat", next.Selected)
	assert.Equal(t, []string{"Cat"}, next.SelectedList)
	assert.Empty(t, next.Suggestions)
	assert.Equal(t, None, next.Highlighted)
}

func TestSelectWithoutHighlight(t *testing.T) {
	s := withSuggestions("Cat", "Dog")
	s.Selected, s.HasSelected = "Old", true
	s.SelectedList = []string{"Old"}

	next := Select()(s)
	assert.False(t, next.HasSelected)
	assert.Empty(t, next.Selected)
	assert.Equal(t, []string{"Cat", "Dog"}, next.Suggestions, "dropdown stays open")
	assert.Equal(t, []string{"Old"}, next.SelectedList)
}

func TestSelectAppendsInCommitOrder(t *testing.T) {
	s := withSuggestions("A", "B")
	s.Highlighted = 1
	s = Select()(s)
	s = ReceiveSuggestions([]string{"C"})(s)
	s = SetHighlight(0)(s)
	s = Select()(s)

	assert.Equal(t, []string{"B", "C"}, s.SelectedList)
}

func TestDeselect(t *testing.T) {
	s := Initial()
	s.Selected, s.HasSelected = "Cat", true
	next := Deselect()(s)
	assert.False(t, next.HasSelected)
	assert.Empty(t, next.Selected)
}

func TestHide(t *testing.T) {
	s := withSuggestions("a", "b")
	s.Highlighted = 1
	s.SelectedList = []string{"x"}

	next := Hide()(s)
	assert.Empty(t, next.Suggestions)
	assert.Equal(t, None, next.Highlighted)
	assert.Equal(t, []string{"x"}, next.SelectedList)
}

func TestDeleteSelected(t *testing.T) {
	s := Initial()
	s.SelectedList = []string{"A", "B", "C"}

	assert.Equal(t, []string{"A", "C"}, DeleteSelected(1)(s).SelectedList)
	assert.Equal(t, []string{"A", "B", "C"}, DeleteSelected(3)(s).SelectedList, "out of range is ignored")
	assert.Equal(t, []string{"A", "B", "C"}, s.SelectedList, "input state is untouched")
}

func TestReceiveSuggestions(t *testing.T) {
	s := withSuggestions("old")
	s.Highlighted = 0
	s.Selected, s.HasSelected = "x", true

	next := ReceiveSuggestions([]string{"Java", "JavaScript"})(s)
	assert.Equal(t, []string{"Java", "JavaScript"}, next.Suggestions)
	assert.Equal(t, None, next.Highlighted)
	assert.False(t, next.HasSelected)

	assert.Empty(t, ReceiveSuggestions(nil)(s).Suggestions)
	assert.NotNil(t, ReceiveSuggestions(nil)(s).Suggestions)
}

func TestReducersDoNotAlias(t *testing.T) {
	batch := []string{"a", "b"}
	s := ReceiveSuggestions(batch)(Initial())
	batch[0] = "changed"
	assert.Equal(t, "a", s.Suggestions[0])

	s.SelectedList = []string{"x", "y"}
	next := DeleteSelected(0)(s)
	assert.Equal(t, []string{"x", "y"}, s.SelectedList)
	assert.Equal(t, []string{"y"}, next.SelectedList)
}

func TestHighlightedSuggestion(t *testing.T) {
	s := withSuggestions("a", "b")
	_, ok := s.HighlightedSuggestion()
	assert.False(t, ok)

	s.Highlighted = 1
	item, ok := s.HighlightedSuggestion()
	require.True(t, ok)
	assert.Equal(t, "b", item)

	s.Highlighted = 5
	assert.False(t, s.HasHighlight())
}

func TestStoreDispatchNotifies(t *testing.T) {
	store := NewStore()

	var seen []State
	store.Subscribe(func(s State) { seen = append(seen, s) })

	store.Dispatch(ReceiveSuggestions([]string{"a", "b"}))
	store.Dispatch(MoveHighlight(+1))

	require.Len(t, seen, 2)
	assert.Equal(t, None, seen[0].Highlighted)
	assert.Equal(t, 0, seen[1].Highlighted)
	assert.Equal(t, 0, store.State().Highlighted)
}

func TestStoreSubscriberMayRead(t *testing.T) {
	store := NewStore()
	var got []string
	store.Subscribe(func(State) { got = store.State().Suggestions })

	store.Dispatch(ReceiveSuggestions([]string{"a"}))
	assert.Equal(t, []string{"a"}, got)
}

func TestStoreConcurrentDispatch(t *testing.T) {
	store := NewStore()
	store.Dispatch(ReceiveSuggestions([]string{"a", "b", "c"}))

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Dispatch(MoveHighlight(+1))
		}()
	}
	wg.Wait()

	// 30 moves from None: first lands on 0, the other 29 advance
	assert.Equal(t, 29%3, store.State().Highlighted)
}
