package cmd

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Iron-Ham/feeflow/internal/config"
	"github.com/Iron-Ham/feeflow/internal/errors"
	"github.com/Iron-Ham/feeflow/internal/logging"
	"github.com/gobwas/glob"
	"github.com/spf13/cobra"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View debug logs",
	Long: `View and filter feeflow debug logs.

Every detail view gets a session ID, so one stage visit can be followed
from open to close.

Examples:
  # Show the last 50 entries
  feeflow logs

  # Show every fetch that fell back to placeholder content
  feeflow logs --level warn -n 0

  # Follow one detail-view session
  feeflow logs -s 6f1c2a

  # Show stage 3 entries from the last hour as JSON
  feeflow logs --stage 3 --since 1h --format json

  # Show entries about any source listing
  feeflow logs --object 'coding_*.py'

  # Keep printing warnings as the dashboard writes them
  feeflow logs -f --level warn`,
	Args: cobra.NoArgs,
	RunE: runLogs,
}

var (
	logsDir      string
	logsSession  string
	logsTail     int
	logsLevel    string
	logsSince    string
	logsStage    int
	logsCategory string
	logsContains string
	logsFormat   string
	logsObject   string
	logsFollow   bool
)

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().StringVar(&logsDir, "dir", "", "Log directory (default: logging.dir)")
	logsCmd.Flags().StringVarP(&logsSession, "session", "s", "", "Filter by detail-view session ID")
	logsCmd.Flags().IntVarP(&logsTail, "tail", "n", 50, "Number of entries to show (0 for all)")
	logsCmd.Flags().StringVar(&logsLevel, "level", "", "Filter by minimum level (debug/info/warn/error)")
	logsCmd.Flags().StringVar(&logsSince, "since", "", "Show logs since duration ago (e.g., 1h, 30m)")
	logsCmd.Flags().IntVar(&logsStage, "stage", 0, "Filter by stage ID")
	logsCmd.Flags().StringVar(&logsCategory, "category", "", "Filter by category (overview/details/code)")
	logsCmd.Flags().StringVar(&logsContains, "grep", "", "Filter by message substring")
	logsCmd.Flags().StringVar(&logsFormat, "format", "text", "Output format (text/json)")
	logsCmd.Flags().StringVar(&logsObject, "object", "", "Filter by object name glob (e.g., 'coding_3_*')")
	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "Keep printing new entries as they are written")
}

func runLogs(cmd *cobra.Command, args []string) error {
	dir := logsDir
	if dir == "" {
		cfg := config.Get()
		dir = cfg.Logging.ResolveDir()
	}

	filter := logging.LogFilter{
		SessionID:       logsSession,
		Stage:           logsStage,
		Category:        logsCategory,
		MessageContains: logsContains,
	}
	if logsLevel != "" {
		filter.Level = logging.ParseLevel(logsLevel)
	}
	if logsSince != "" {
		d, err := time.ParseDuration(logsSince)
		if err != nil {
			return errors.Wrapf(errors.ErrInvalidInput, "invalid --since duration %q (%v)", logsSince, err)
		}
		filter.Since = time.Now().Add(-d)
	}

	var objects glob.Glob
	if logsObject != "" {
		g, err := glob.Compile(logsObject)
		if err != nil {
			return errors.Wrapf(errors.ErrInvalidInput, "invalid --object pattern %q (%v)", logsObject, err)
		}
		objects = g
	}

	if logsFollow && strings.ToLower(logsFormat) == "json" {
		return errors.Wrap(errors.ErrInvalidInput, "--follow only supports text output")
	}

	out := cmd.OutOrStdout()

	entries, err := logging.AggregateLogs(dir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return errors.Wrap(err, "failed to read logs")
		}
		if !logsFollow {
			fmt.Fprintf(out, "No logs found in %s\n", dir)
			return nil
		}
	}

	entries = filterObjects(logging.FilterLogs(entries, filter), objects)
	if logsTail > 0 && len(entries) > logsTail {
		entries = entries[len(entries)-logsTail:]
	}

	if logsFollow {
		if err := logging.WriteEntries(out, entries, logsFormat); err != nil {
			return err
		}
		return followLogs(cmd, dir, filter, objects, out)
	}

	if len(entries) == 0 && strings.ToLower(logsFormat) != "json" {
		fmt.Fprintln(out, "No matching log entries")
		return nil
	}
	return logging.WriteEntries(out, entries, logsFormat)
}

// followLogs prints matching entries as they are appended until interrupted.
func followLogs(cmd *cobra.Command, dir string, filter logging.LogFilter, objects glob.Glob, out io.Writer) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return logging.Follow(ctx, dir, func(entry logging.LogEntry) {
		matched := filterObjects(logging.FilterLogs([]logging.LogEntry{entry}, filter), objects)
		for _, e := range matched {
			fmt.Fprintln(out, logging.FormatEntry(e))
		}
	})
}

// filterObjects keeps entries whose "object" attribute matches g.
// A nil g keeps everything.
func filterObjects(entries []logging.LogEntry, g glob.Glob) []logging.LogEntry {
	if g == nil {
		return entries
	}
	var kept []logging.LogEntry
	for _, e := range entries {
		name, ok := e.Attrs["object"].(string)
		if ok && g.Match(name) {
			kept = append(kept, e)
		}
	}
	return kept
}
