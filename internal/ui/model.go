package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"

	"suggestbox/internal/config"
	"suggestbox/internal/eventbus"
	"suggestbox/internal/ui/commands"
	"suggestbox/internal/ui/handlers"
	"suggestbox/internal/ui/input"
	"suggestbox/internal/ui/input/types"
	"suggestbox/internal/ui/state"
	"suggestbox/internal/ui/viewmodels"
	"suggestbox/internal/ui/views"
)

// Focus ring positions. Delete controls follow the fixed fields.
const (
	focusNone        = -1
	focusQuery       = 0
	focusField       = 1
	focusFirstDelete = 2
)

// Model represents the UI state
type Model struct {
	config *config.Config
	store  *state.Store

	width  int
	height int
	help   help.Model
	keys   keyMap

	query textinput.Model // combo-box input
	field textinput.Model // plain field after it

	// Surface state
	focusIdx     int  // position in the focus ring, focusNone when nothing has focus
	queryFocused bool // whether the query field holds focus as far as the pipeline knows
	hovered      int  // suggestion row under the pointer, -1 for none
	pressed      views.Zone
	layout       views.Layout
	inPagerMode  bool

	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	viewModel    *viewmodels.ViewModel
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
	helpOps      *HelpOps

	// schedule turns a debounce timer into a command delivering its message
	schedule func(types.Timer) tea.Cmd

	log logr.Logger

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. urls builds request URLs for searches
// published on bus.
func NewModel(bus eventbus.EventBus, cfg *config.Config, urls commands.URLBuilder, log logr.Logger) *Model {
	log = log.WithName("ui")

	query := textinput.New()
	query.Prompt = ""
	query.Placeholder = "type to search"
	query.Width = cfg.UI.Width - 1

	field := textinput.New()
	field.Prompt = ""
	field.Width = cfg.UI.Width - 1

	m := &Model{
		config:       cfg,
		store:        state.NewStore(),
		help:         help.New(),
		keys:         newKeyMap(),
		query:        query,
		field:        field,
		focusIdx:     focusNone,
		hovered:      -1,
		pressed:      views.Zone{Kind: views.ZoneNone, Index: -1},
		renderer:     views.NewRenderer(),
		inputHandler: input.New(cfg.SearchDebounce, cfg.SelectDebounce),
		schedule:     tickTimer,
		log:          log,
	}

	m.viewModel = viewmodels.NewViewModel(m.store, cfg, m.query, m.field)
	m.viewModel.SetHelp(m.help, m.keys)
	m.cmdExecutor = commands.NewExecutor(bus, urls, m.setStatus)
	m.eventHandler = handlers.NewEventHandler(m.store, m.cmdExecutor, cfg.Endpoint, m.setStatus, log)

	m.store.Subscribe(m.onStateChange)

	// The query field starts with focus
	m.setFocus(focusQuery)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// SelectedList returns the committed items
func (m *Model) SelectedList() []string {
	return m.store.State().SelectedList
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewModel.SetHelp(m.help, m.keys)
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if action := m.inputHandler.HandleAppKey(msg); action != nil {
			return m, m.processAction(action)
		}
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.FocusMsg:
		// Terminal regained focus
		if m.focusIdx == focusQuery && !m.inputHandler.Focused() {
			return m, m.focusQuery()
		}
		return m, nil

	case tea.BlurMsg:
		// Terminal lost focus; the query field loses it with it
		if m.queryFocused {
			return m, m.blurQuery()
		}
		return m, nil

	case types.DebounceMsg:
		var cmds []tea.Cmd
		for _, action := range m.inputHandler.Fire(msg) {
			cmds = append(cmds, m.processAction(action))
		}
		return m, tea.Batch(cmds...)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		// The pager owns the screen
		return ""
	}

	m.viewModel.UpdateTextInputs(m.query, m.field)
	out, layout := m.renderer.Render(m.viewModel.BuildViewState())
	m.layout = layout
	return out
}

// processAction applies one action produced by the intent stage
func (m *Model) processAction(action types.Action) tea.Cmd {
	switch a := action.(type) {
	case types.QuitAction:
		m.log.Info("quit requested", "force", a.Force, "selected", len(m.store.State().SelectedList))
		return tea.Quit

	case types.ToggleHelpAction:
		if m.program == nil {
			return nil
		}
		helpContent := NewHelpRenderer().Render(m.config.Endpoint, m.width)
		return m.fetchHelpPager(helpContent)
	}

	return m.eventHandler.HandleAction(action)
}

// emit feeds a raw event through the pipeline and reports whether its
// default behaviour was prevented
func (m *Model) emit(ev types.Event) (tea.Cmd, bool) {
	m.log.V(1).Info("event", "type", ev.Type.String(), "key", ev.Key, "index", ev.Index)

	actions, timers := m.inputHandler.Handle(ev)

	var cmds []tea.Cmd
	prevented := false
	for _, action := range actions {
		if keep, ok := action.(types.KeepFocusAction); ok && m.eventHandler.Prevented(keep) {
			prevented = true
		}
		cmds = append(cmds, m.processAction(action))
	}
	for _, t := range timers {
		cmds = append(cmds, m.schedule(t))
	}
	return tea.Batch(cmds...), prevented
}

// onStateChange keeps the controls in line with the state
func (m *Model) onStateChange(s state.State) {
	// Selected is a one-dispatch pulse; the query field shows the commit
	if s.HasSelected {
		m.query.SetValue(s.Selected)
		m.query.CursorEnd()
	}

	// A closed or replaced dropdown has no row under the pointer yet
	if len(s.Suggestions) == 0 || s.Highlighted == state.None {
		m.hovered = -1
	}

	// A deleted entry may have taken the focused control with it
	if last := focusFirstDelete + len(s.SelectedList) - 1; m.focusIdx > last {
		if last < focusFirstDelete {
			last = focusField
		}
		m.moveFocus(last)
	}
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case helpPagerMsg:
		if msg.err != nil {
			m.log.Error(msg.err, "help pager failed")
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil
	}

	// Cursor blink and friends
	var qCmd, fCmd tea.Cmd
	m.query, qCmd = m.query.Update(msg)
	m.field, fCmd = m.field.Update(msg)
	return m, tea.Batch(qCmd, fCmd)
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

func (m *Model) setStatus(msg string) {
	m.viewModel.SetStatus(msg)
}

func tickTimer(t types.Timer) tea.Cmd {
	return tea.Tick(t.Delay, func(time.Time) tea.Msg {
		return t.Msg()
	})
}
