package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"suggestbox/internal/eventbus"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// URLBuilder builds the request URL for a query
type URLBuilder interface {
	URL(query string) string
}

// CommandContext provides context for command execution
type CommandContext struct {
	Bus       eventbus.EventBus
	URLs      URLBuilder
	SetStatus func(string)
}

func (c *CommandContext) status(msg string) {
	if c.SetStatus != nil {
		c.SetStatus(msg)
	}
}

// SearchCommand requests suggestions for a query
type SearchCommand struct {
	ctx   *CommandContext
	query string
}

// NewSearchCommand creates a new search command
func NewSearchCommand(ctx *CommandContext, query string) *SearchCommand {
	return &SearchCommand{
		ctx:   ctx,
		query: query,
	}
}

// Execute publishes the request. Each search is a fresh request; earlier
// ones still in flight are not cancelled.
func (c *SearchCommand) Execute() tea.Cmd {
	if c.query == "" || c.ctx.URLs == nil {
		return nil
	}
	c.ctx.status(fmt.Sprintf("Searching for %q...", c.query))
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.SearchRequestedEvent{
			Query: c.query,
			URL:   c.ctx.URLs.URL(c.query),
		})
	}
	return nil
}

// CommitCommand announces an item appended to the selected list
type CommitCommand struct {
	ctx   *CommandContext
	item  string
	index int
}

// NewCommitCommand creates a new commit command
func NewCommitCommand(ctx *CommandContext, item string, index int) *CommitCommand {
	return &CommitCommand{
		ctx:   ctx,
		item:  item,
		index: index,
	}
}

// Execute publishes the commit
func (c *CommitCommand) Execute() tea.Cmd {
	c.ctx.status(fmt.Sprintf("Added %q", c.item))
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.ItemCommittedEvent{
			Item:  c.item,
			Index: c.index,
		})
	}
	return nil
}

// DeleteCommand announces an entry removed from the selected list
type DeleteCommand struct {
	ctx   *CommandContext
	index int
}

// NewDeleteCommand creates a new delete command
func NewDeleteCommand(ctx *CommandContext, index int) *DeleteCommand {
	return &DeleteCommand{
		ctx:   ctx,
		index: index,
	}
}

// Execute publishes the deletion
func (c *DeleteCommand) Execute() tea.Cmd {
	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.ItemDeletedEvent{
			Index: c.index,
		})
	}
	return nil
}
