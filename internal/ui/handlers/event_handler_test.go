package handlers

import (
	"errors"
	"sync"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suggestbox/internal/eventbus"
	"suggestbox/internal/ui/commands"
	"suggestbox/internal/ui/input/types"
	"suggestbox/internal/ui/state"
)

const endpoint = "http://suggest.test/?q="

type recordingBus struct {
	mu     sync.Mutex
	events []eventbus.DomainEvent
}

func (b *recordingBus) Publish(event eventbus.DomainEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
}

func (b *recordingBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() {
	return func() {}
}

func (b *recordingBus) published() []eventbus.DomainEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]eventbus.DomainEvent{}, b.events...)
}

type prefixURLs struct{}

func (prefixURLs) URL(q string) string { return endpoint + q }

type fixture struct {
	store   *state.Store
	bus     *recordingBus
	handler *EventHandler
	status  string
}

func newFixture() *fixture {
	f := &fixture{store: state.NewStore(), bus: &recordingBus{}}
	setStatus := func(s string) { f.status = s }
	exec := commands.NewExecutor(f.bus, prefixURLs{}, setStatus)
	f.handler = NewEventHandler(f.store, exec, endpoint, setStatus, logr.Discard())
	return f
}

func (f *fixture) receive(query string, items ...string) {
	f.handler.HandleEvent(eventbus.SuggestionsReceivedEvent{
		Request:     endpoint + query,
		Query:       query,
		Suggestions: items,
	})
}

func TestBatchDroppedBeforeFocus(t *testing.T) {
	f := newFixture()
	f.receive("Jav", "Java")
	assert.Empty(t, f.store.State().Suggestions)
}

func TestBatchAppliedWhileFocused(t *testing.T) {
	f := newFixture()
	f.handler.HandleAction(types.WantsSuggestionsAction{Wants: true})
	f.receive("Jav", "Java", "JavaScript")

	s := f.store.State()
	assert.Equal(t, []string{"Java", "JavaScript"}, s.Suggestions)
	assert.Equal(t, state.None, s.Highlighted)
	assert.Equal(t, `2 suggestions for "Jav"`, f.status)
}

func TestBatchEmptiedAfterBlur(t *testing.T) {
	f := newFixture()
	f.handler.HandleAction(types.WantsSuggestionsAction{Wants: true})
	f.receive("Ja", "Java")
	f.handler.HandleAction(types.WantsSuggestionsAction{Wants: false})
	f.receive("Jav", "Java", "JavaScript")

	assert.Empty(t, f.store.State().Suggestions)
}

func TestForeignResponseIgnored(t *testing.T) {
	f := newFixture()
	f.handler.HandleAction(types.WantsSuggestionsAction{Wants: true})
	f.handler.HandleEvent(eventbus.SuggestionsReceivedEvent{
		Request:     "http://elsewhere.test/?q=Jav",
		Query:       "Jav",
		Suggestions: []string{"Java"},
	})
	assert.Empty(t, f.store.State().Suggestions)
}

func TestFetchFailedEmptiesDropdown(t *testing.T) {
	f := newFixture()
	f.handler.HandleAction(types.WantsSuggestionsAction{Wants: true})
	f.receive("Ja", "Java")

	f.handler.HandleEvent(eventbus.FetchFailedEvent{
		Request: endpoint + "Jav",
		Query:   "Jav",
		Err:     errors.New("boom"),
	})
	assert.Empty(t, f.store.State().Suggestions)
	assert.Contains(t, f.status, "Error:")
	assert.Contains(t, f.status, "boom")
}

func TestErrorEventSetsStatus(t *testing.T) {
	f := newFixture()
	f.handler.HandleEvent(eventbus.ErrorEvent{Message: "bad thing"})
	assert.Equal(t, "Error: bad thing", f.status)
}

func TestSearchPublishesRequest(t *testing.T) {
	f := newFixture()
	f.handler.HandleAction(types.SearchAction{Query: "Jav"})

	events := f.bus.published()
	require.Len(t, events, 1)
	assert.Equal(t, eventbus.SearchRequestedEvent{Query: "Jav", URL: endpoint + "Jav"}, events[0])
	assert.Equal(t, `Searching for "Jav"...`, f.status)
}

func TestMoveAndSetHighlight(t *testing.T) {
	f := newFixture()
	f.handler.HandleAction(types.WantsSuggestionsAction{Wants: true})
	f.receive("a", "a1", "a2", "a3")

	f.handler.HandleAction(types.MoveHighlightAction{Delta: -1})
	assert.Equal(t, 2, f.store.State().Highlighted)

	f.handler.HandleAction(types.SetHighlightAction{Index: 1})
	assert.Equal(t, 1, f.store.State().Highlighted)
}

func TestSelectHighlightedCommits(t *testing.T) {
	f := newFixture()
	f.handler.HandleAction(types.WantsSuggestionsAction{Wants: true})
	f.receive("Ca", "Cat", "Car")
	f.handler.HandleAction(types.SetHighlightAction{Index: 0})

	var pulses []state.State
	f.store.Subscribe(func(s state.State) {
		if s.HasSelected {
			pulses = append(pulses, s)
		}
	})

	f.handler.HandleAction(types.SelectHighlightedAction{})

	s := f.store.State()
	assert.Equal(t, []string{"Cat"}, s.SelectedList)
	assert.Empty(t, s.Suggestions)
	assert.False(t, s.HasSelected, "selected is cleared after the commit dispatch")

	require.Len(t, pulses, 1)
	assert.Equal(t, "Cat", pulses[0].Selected)

	events := f.bus.published()
	require.Len(t, events, 1)
	assert.Equal(t, eventbus.ItemCommittedEvent{Item: "Cat", Index: 0}, events[0])
	assert.Equal(t, `Added "Cat"`, f.status)
}

func TestSelectWithoutHighlightPublishesNothing(t *testing.T) {
	f := newFixture()
	f.handler.HandleAction(types.WantsSuggestionsAction{Wants: true})
	f.receive("Ca", "Cat")

	f.handler.HandleAction(types.SelectHighlightedAction{})
	assert.Empty(t, f.store.State().SelectedList)
	assert.Empty(t, f.bus.published())
}

func TestQuitAutocompleteHides(t *testing.T) {
	f := newFixture()
	f.handler.HandleAction(types.WantsSuggestionsAction{Wants: true})
	f.receive("Ca", "Cat")

	f.handler.HandleAction(types.QuitAutocompleteAction{})
	assert.Empty(t, f.store.State().Suggestions)
}

func TestDeleteSelected(t *testing.T) {
	f := newFixture()
	f.handler.HandleAction(types.WantsSuggestionsAction{Wants: true})
	for _, item := range []string{"A", "B", "C"} {
		f.receive(item, item)
		f.handler.HandleAction(types.SetHighlightAction{Index: 0})
		f.handler.HandleAction(types.SelectHighlightedAction{})
	}
	require.Equal(t, []string{"A", "B", "C"}, f.store.State().SelectedList)

	f.handler.HandleAction(types.DeleteSelectedItemAction{Index: 1})
	assert.Equal(t, []string{"A", "C"}, f.store.State().SelectedList)

	events := f.bus.published()
	assert.Equal(t, eventbus.ItemDeletedEvent{Index: 1}, events[len(events)-1])

	before := len(events)
	f.handler.HandleAction(types.DeleteSelectedItemAction{Index: 7})
	assert.Equal(t, []string{"A", "C"}, f.store.State().SelectedList)
	assert.Len(t, f.bus.published(), before, "out of range delete publishes nothing")
}

func TestPrevented(t *testing.T) {
	f := newFixture()
	keep := types.KeepFocusAction{Cause: types.Event{Type: types.EventKeyDown, Key: types.KeyTab}}

	assert.False(t, f.handler.Prevented(keep), "empty dropdown")

	f.handler.HandleAction(types.WantsSuggestionsAction{Wants: true})
	f.receive("Ca", "Cat")
	assert.False(t, f.handler.Prevented(keep), "nothing highlighted")

	f.handler.HandleAction(types.MoveHighlightAction{Delta: 1})
	assert.True(t, f.handler.Prevented(keep))
}
