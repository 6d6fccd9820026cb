package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"suggestbox/internal/eventbus"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor. setStatus receives the status
// line text commands produce and may be nil.
func NewExecutor(bus eventbus.EventBus, urls URLBuilder, setStatus func(string)) *Executor {
	return &Executor{
		ctx: &CommandContext{
			Bus:       bus,
			URLs:      urls,
			SetStatus: setStatus,
		},
	}
}

// ExecuteSearch creates and executes a search command
func (e *Executor) ExecuteSearch(query string) tea.Cmd {
	cmd := NewSearchCommand(e.ctx, query)
	return cmd.Execute()
}

// ExecuteCommit creates and executes a commit command
func (e *Executor) ExecuteCommit(item string, index int) tea.Cmd {
	cmd := NewCommitCommand(e.ctx, item, index)
	return cmd.Execute()
}

// ExecuteDelete creates and executes a delete command
func (e *Executor) ExecuteDelete(index int) tea.Cmd {
	cmd := NewDeleteCommand(e.ctx, index)
	return cmd.Execute()
}
