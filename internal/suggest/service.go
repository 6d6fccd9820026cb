package suggest

import (
	"context"

	"github.com/go-logr/logr"

	"suggestbox/internal/domain"
	"suggestbox/internal/eventbus"
)

// Fetcher is the part of Client the service needs
type Fetcher interface {
	Fetch(ctx context.Context, requestURL string) (domain.Response, error)
}

// Service turns SearchRequested events into HTTP requests and publishes the
// outcome. It keeps no state between requests: no retry, no cache and no
// deduplication, and replies may be published out of order.
type Service struct {
	ctx     context.Context
	bus     eventbus.EventBus
	fetcher Fetcher
	log     logr.Logger
	unsub   func()
}

// NewService creates the service and subscribes it to search requests.
// Requests in flight are cancelled when ctx is done.
func NewService(ctx context.Context, bus eventbus.EventBus, fetcher Fetcher, log logr.Logger) *Service {
	s := &Service{
		ctx:     ctx,
		bus:     bus,
		fetcher: fetcher,
		log:     log.WithName("suggest-service"),
	}

	s.unsub = bus.Subscribe(eventbus.EventSearchRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchRequestedEvent); ok {
			s.handleSearch(event)
		}
	})
	return s
}

// Stop unsubscribes from the bus
func (s *Service) Stop() {
	if s.unsub != nil {
		s.unsub()
	}
}

func (s *Service) handleSearch(event eventbus.SearchRequestedEvent) {
	resp, err := s.fetcher.Fetch(s.ctx, event.URL)
	if err != nil {
		if s.ctx.Err() != nil {
			// Shutting down; nobody is listening
			return
		}
		s.log.Error(err, "suggestion request failed", "query", event.Query)
		s.bus.Publish(eventbus.FetchFailedEvent{
			Request: event.URL,
			Query:   event.Query,
			Err:     err,
		})
		return
	}

	s.log.V(1).Info("suggestions received", "query", event.Query, "count", len(resp.Suggestions))
	s.bus.Publish(eventbus.SuggestionsReceivedEvent{
		Request:     event.URL,
		Query:       event.Query,
		Suggestions: resp.Suggestions,
	})
}
