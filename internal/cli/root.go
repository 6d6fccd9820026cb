package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"suggestbox/internal/config"
	"suggestbox/internal/eventbus"
	"suggestbox/internal/logger"
	"suggestbox/internal/suggest"
	"suggestbox/internal/ui"
)

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "suggestbox",
		Short: "Terminal autocomplete box backed by a search suggestion service",
		Long: `suggestbox is a terminal combo-box. As you type it asks a search
suggestion service for completions, shows them in a dropdown and lets you
collect the ones you pick into a list. The list is printed on exit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runTUI,
	}

	pf := root.PersistentFlags()
	pf.StringP("config", "c", "", "config file (default is "+config.ConfigFile()+")")
	pf.String("endpoint", config.DefaultEndpoint, "suggestion service URL; the query is appended")
	pf.Duration("http-timeout", 0, "request timeout, 0 for none")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-file", "suggestbox.log", "log file path")

	f := root.Flags()
	f.Duration("search-debounce", config.DefaultConfig().SearchDebounce, "quiet period before a search is sent")
	f.Duration("select-debounce", config.DefaultConfig().SelectDebounce, "window merging simultaneous select triggers")
	f.String("mouse", config.MouseAll, "mouse reporting: all, cell or off")
	f.Bool("report-focus", true, "treat terminal focus changes as focus changes of the query field")
	f.Int("width", config.DefaultConfig().UI.Width, "width of the combo-box in cells")

	root.AddCommand(newQueryCommand())
	root.AddCommand(newConfigCommand())

	return root
}

// loadConfig merges defaults, the config file, environment and flags
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	v := config.New(path)
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return nil, err
	}
	return config.Load(v)
}

// programOptions maps the config onto bubbletea options
func programOptions(cfg *config.Config) []tea.ProgramOption {
	// SIGINT and SIGTERM are handled by the shutdown watcher in runProgram
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithoutSignalHandler()}
	switch cfg.Mouse {
	case config.MouseAll:
		opts = append(opts, tea.WithMouseAllMotion())
	case config.MouseCell:
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if cfg.ReportFocus {
		opts = append(opts, tea.WithReportFocus())
	}
	return opts
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("suggestbox needs an interactive terminal; use 'suggestbox query' in scripts")
	}

	lg, err := logger.NewFile(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() {
		_ = lg.Close()
	}()
	log := lg.Component("main")

	// Create context for graceful shutdown
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithLogger(ctx, log)

	bus := eventbus.New(lg.Logger)
	defer bus.Close()

	client := suggest.NewClient(cfg.Endpoint, cfg.HTTPTimeout, lg.Logger)
	svc := suggest.NewService(ctx, bus, client, lg.Logger)
	defer svc.Stop()

	uiModel := ui.NewModel(bus, cfg, client, lg.Logger)
	p := tea.NewProgram(uiModel, programOptions(cfg)...)
	uiModel.SetProgram(p)

	// Set up event forwarding to UI. The channel is never closed because bus
	// handlers may still be running when the program exits.
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Info("event channel full, dropping event", "type", string(e.Type()))
		}
	}
	bus.Subscribe(eventbus.EventSuggestionsReceived, forward)
	bus.Subscribe(eventbus.EventFetchFailed, forward)
	bus.Subscribe(eventbus.EventError, forward)

	bus.Subscribe(eventbus.EventItemCommitted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ItemCommittedEvent); ok {
			log.Info("item committed", "item", event.Item, "index", event.Index)
		}
	})
	bus.Subscribe(eventbus.EventItemDeleted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ItemDeletedEvent); ok {
			log.Info("item deleted", "index", event.Index)
		}
	})

	log.Info("starting UI", "endpoint", client.Endpoint(), "mouse", cfg.Mouse)
	if err := runProgram(ctx, p, eventChan); err != nil {
		log.Error(err, "program failed")
		return fmt.Errorf("error running program: %w", err)
	}
	log.Info("UI exited normally")

	for _, item := range uiModel.SelectedList() {
		fmt.Fprintln(cmd.OutOrStdout(), item)
	}
	return nil
}

// runProgram runs p next to the goroutines feeding it: the event forwarder
// and the shutdown watcher. It returns when the program exits.
func runProgram(ctx context.Context, p *tea.Program, events <-chan eventbus.DomainEvent) error {
	log := logger.FromContext(ctx)
	done := make(chan struct{})
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(done)
		_, err := p.Run()
		if errors.Is(err, tea.ErrInterrupted) {
			log.Info("program interrupted")
			return nil
		}
		return err
	})

	g.Go(func() error {
		for {
			select {
			case e := <-events:
				p.Send(ui.EventMsg{Event: e})
			case <-done:
				return nil
			}
		}
	})

	g.Go(func() error {
		select {
		case <-gctx.Done():
			log.Info("shutdown requested")
			p.Quit()
		case <-done:
		}
		return nil
	})

	return g.Wait()
}
