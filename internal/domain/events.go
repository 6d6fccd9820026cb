package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchRequested     EventType = "SearchRequested"
	EventSuggestionsReceived EventType = "SuggestionsReceived"
	EventFetchFailed         EventType = "FetchFailed"
	EventItemCommitted       EventType = "ItemCommitted"
	EventItemDeleted         EventType = "ItemDeleted"
	EventError               EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchRequestedEvent is emitted when the widget wants suggestions for a query
type SearchRequestedEvent struct {
	Query string
	URL   string // full request URL, used to tag the response
}

func (e SearchRequestedEvent) Type() EventType { return EventSearchRequested }

// SuggestionsReceivedEvent is emitted when the suggestion service answered
type SuggestionsReceivedEvent struct {
	Request     string // request URL the response belongs to
	Query       string
	Suggestions []string
}

func (e SuggestionsReceivedEvent) Type() EventType { return EventSuggestionsReceived }

// FetchFailedEvent is emitted when a suggestion request could not be completed
type FetchFailedEvent struct {
	Request string
	Query   string
	Err     error
}

func (e FetchFailedEvent) Type() EventType { return EventFetchFailed }

// ItemCommittedEvent is emitted when a suggestion is appended to the selected list
type ItemCommittedEvent struct {
	Item  string
	Index int
}

func (e ItemCommittedEvent) Type() EventType { return EventItemCommitted }

// ItemDeletedEvent is emitted when an entry is removed from the selected list
type ItemDeletedEvent struct {
	Index int
}

func (e ItemDeletedEvent) Type() EventType { return EventItemDeleted }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
