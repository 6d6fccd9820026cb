package types

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// EventType identifies a raw widget event
type EventType int

const (
	EventInput       EventType = iota // query text changed
	EventKeyDown                      // key pressed in the query field
	EventItemEnter                    // pointer entered a suggestion row
	EventItemDown                     // button pressed on a suggestion row
	EventItemUp                       // button released on a suggestion row
	EventFocus                        // query field gained focus
	EventBlur                         // query field lost focus
	EventDeleteClick                  // delete control activated
)

func (t EventType) String() string {
	switch t {
	case EventInput:
		return "input"
	case EventKeyDown:
		return "keydown"
	case EventItemEnter:
		return "mouseenter"
	case EventItemDown:
		return "mousedown"
	case EventItemUp:
		return "mouseup"
	case EventFocus:
		return "focus"
	case EventBlur:
		return "blur"
	case EventDeleteClick:
		return "click"
	default:
		return "unknown"
	}
}

// Key codes carried by EventKeyDown. The numbering follows DOM keyCode values.
const (
	KeyTab   = 9
	KeyEnter = 13
	KeyUp    = 38
	KeyDown  = 40
)

// Event is a raw event produced by the terminal surface
type Event struct {
	Type  EventType
	Value string // EventInput: current text
	Key   int    // EventKeyDown: key code
	Index int    // row or delete control index
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// DebounceKind names a debounced signal
type DebounceKind int

const (
	DebounceSearch DebounceKind = iota
	DebounceSelect
)

// Timer asks the model to deliver a DebounceMsg after Delay
type Timer struct {
	Kind  DebounceKind
	Seq   uint64
	Delay time.Duration
}

// Msg returns the message the timer delivers
func (t Timer) Msg() DebounceMsg {
	return DebounceMsg{Kind: t.Kind, Seq: t.Seq}
}

// DebounceMsg is delivered when a debounce timer expires. Only the message
// carrying the latest sequence number for its kind fires.
type DebounceMsg struct {
	Kind DebounceKind
	Seq  uint64
}

// Target is a focusable control on screen
type Target int

const (
	TargetNone Target = iota
	TargetQuery
	TargetField
	TargetDelete
)

// Context provides read-only access to model state needed for input handling
type Context interface {
	FocusedTarget() Target
	FocusedDeleteIndex() int // -1 unless a delete control is focused
}

// ModeHandler turns key presses on the focused control into raw events
type ModeHandler interface {
	// HandleKey returns the events for msg and whether the key was consumed.
	// Unconsumed keys go to the control's text input.
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Event, bool)

	// Name returns the mode name for display
	Name() string
}
