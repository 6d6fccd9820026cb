package eventbus

import (
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/go-logr/logr"

	"suggestbox/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventSearchRequested     = domain.EventSearchRequested
	EventSuggestionsReceived = domain.EventSuggestionsReceived
	EventFetchFailed         = domain.EventFetchFailed
	EventItemCommitted       = domain.EventItemCommitted
	EventItemDeleted         = domain.EventItemDeleted
	EventError               = domain.EventError
)

// Re-export domain event types
type SearchRequestedEvent = domain.SearchRequestedEvent
type SuggestionsReceivedEvent = domain.SuggestionsReceivedEvent
type FetchFailedEvent = domain.FetchFailedEvent
type ItemCommittedEvent = domain.ItemCommittedEvent
type ItemDeletedEvent = domain.ItemDeletedEvent
type ErrorEvent = domain.ErrorEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// Bus is the concrete implementation of EventBus
type Bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
	log       logr.Logger
}

// New creates a new event bus. Handlers run on their own goroutines, so
// subscribers must not assume any ordering between deliveries.
func New(log logr.Logger) *Bus {
	b := &Bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 1000),
		quit:      make(chan struct{}),
		log:       log.WithName("eventbus"),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *Bus) Publish(event DomainEvent) {
	b.log.V(1).Info("publishing event", "type", string(event.Type()))

	select {
	case b.eventChan <- event:
	default:
		// Channel full, log and drop
		b.log.Info("event bus channel full, dropping event", "type", string(event.Type()))
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *Bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher and waits for it to exit. Events still queued
// are discarded.
func (b *Bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
	})
	b.wg.Wait()
}

// dispatch handles event distribution to subscribers
func (b *Bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := make([]subscription, len(b.handlers[event.Type()]))
			copy(subs, b.handlers[event.Type()])
			b.mu.RUnlock()

			for _, s := range subs {
				go b.safeCall(s.handler, event)
			}

		case <-b.quit:
			// Drain remaining events
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}

// safeCall invokes a handler and recovers from any panics. A recovered panic
// is reported as an ErrorEvent unless the failing handler was itself
// handling one.
func (b *Bus) safeCall(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%v", r)
			b.log.Error(err, "event handler panic",
				"type", string(event.Type()), "stack", string(debug.Stack()))
			if event.Type() != EventError {
				b.Publish(ErrorEvent{
					Message: fmt.Sprintf("%s handler failed: %v", event.Type(), r),
					Err:     err,
				})
			}
		}
	}()
	h(event)
}
