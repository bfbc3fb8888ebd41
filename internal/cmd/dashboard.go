package cmd

import (
	"io"
	"os"

	"github.com/Iron-Ham/feeflow/internal/clipboard"
	"github.com/Iron-Ham/feeflow/internal/config"
	"github.com/Iron-Ham/feeflow/internal/errors"
	"github.com/Iron-Ham/feeflow/internal/loader"
	"github.com/Iron-Ham/feeflow/internal/logging"
	"github.com/Iron-Ham/feeflow/internal/stage"
	"github.com/Iron-Ham/feeflow/internal/store"
	"github.com/Iron-Ham/feeflow/internal/tui"
	"github.com/Iron-Ham/feeflow/internal/tui/styles"
	"github.com/Iron-Ham/feeflow/internal/tui/view"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
)

var startStage int

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	if startStage != 0 {
		if _, ok := stage.Lookup(startStage); !ok {
			return errors.Wrapf(errors.ErrInvalidInput, "unknown stage %d (valid: 1-%d)", startStage, stage.Count)
		}
	}

	fd := os.Stdout.Fd()
	if !term.IsTerminal(fd) {
		return errors.New("the dashboard needs an interactive terminal; try 'feeflow stages'")
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	st, err := store.New(cfg.Store)
	if err != nil {
		return errors.Wrapf(err, "failed to set up %s store", cfg.Store.Backend)
	}
	if c, ok := st.(io.Closer); ok {
		defer func() { _ = c.Close() }()
	}

	sty, err := styles.Resolve(cfg.TUI.Theme, cfg.TUI.ThemeFile)
	if err != nil {
		logger.Warn("theme file ignored", "path", cfg.TUI.ThemeFile, "error", err.Error())
	}

	if w, h, err := term.GetSize(fd); err == nil {
		logger.Debug("terminal size", "width", w, "height", h)
		if w < view.CardWidth {
			logger.Warn("terminal narrower than a stage card", "width", w)
		}
	}

	ld := loader.New(st, clipboard.New(cfg.Clipboard.Mode), loader.WithLogger(logger))
	model := tui.NewModel(ld,
		tui.WithStyles(sty),
		tui.WithLogger(logger),
		tui.WithInitialStage(startStage),
		tui.WithShowStats(cfg.TUI.ShowStats),
	)

	logger.Info("dashboard started",
		"backend", cfg.Store.Backend,
		"clipboard", cfg.Clipboard.Mode,
		"theme", cfg.TUI.Theme,
	)
	err = tui.New(model).Run()
	logger.Info("dashboard stopped", "fallbacks", ld.FallbackCount())
	return err
}

// newLogger builds the debug logger. The dashboard owns the terminal, so
// logs only ever go to the rotating file, or nowhere when disabled.
func newLogger(cfg config.LoggingConfig) (*logging.Logger, error) {
	if !cfg.Enabled {
		return logging.NopLogger(), nil
	}
	logger, err := logging.NewLoggerWithRotation(cfg.ResolveDir(), cfg.Level, logging.RotationConfig{
		MaxSizeMB:  cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		Compress:   cfg.Compress,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to set up logging")
	}
	return logger, nil
}
