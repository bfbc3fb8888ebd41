package tui

import (
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
)

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   Model
	opts    []tea.ProgramOption
}

// New creates a new TUI application. Extra program options are appended to
// the defaults, which is how tests swap in their own input and output.
func New(model Model, opts ...tea.ProgramOption) *App {
	return &App{
		model: model,
		opts:  opts,
	}
}

// Run starts the TUI application and blocks until the user quits.
func (a *App) Run() error {
	opts := append([]tea.ProgramOption{tea.WithAltScreen()}, a.opts...)
	a.program = tea.NewProgram(a.model, opts...)

	// Terminate cleanly on SIGTERM/SIGHUP; SIGINT arrives as ctrl+c in raw mode
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGHUP)
	done := make(chan struct{})

	go func() {
		select {
		case <-sigChan:
			a.program.Quit()
		case <-done:
		}
	}()

	final, err := a.program.Run()

	signal.Stop(sigChan)
	close(done)

	// Cancel anything still in flight if the program ended without a quit key
	if m, ok := final.(Model); ok && m.loader.Session() != nil {
		m.loader.Close()
	}
	return err
}
