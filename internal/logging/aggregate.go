package logging

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// LogEntry represents a parsed log entry with all structured fields.
type LogEntry struct {
	Timestamp time.Time      `json:"time"`
	Level     string         `json:"level"`
	Message   string         `json:"msg"`
	SessionID string         `json:"session_id,omitempty"`
	Stage     int            `json:"stage,omitempty"`
	Category  string         `json:"category,omitempty"`
	Attrs     map[string]any `json:"attrs,omitempty"`
}

// LogFilter defines criteria for filtering log entries.
// Zero values disable the corresponding criterion; criteria combine with AND.
type LogFilter struct {
	// Level keeps entries at or above this level (DEBUG < INFO < WARN < ERROR).
	Level string
	// Since keeps entries at or after this time.
	Since time.Time
	// SessionID keeps entries from one detail-view session.
	SessionID string
	// Stage keeps entries for one stage id.
	Stage int
	// Category keeps entries for one content category key.
	Category string
	// MessageContains keeps entries whose message contains this substring.
	MessageContains string
}

var levelOrder = map[string]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

var standardFields = map[string]bool{
	"time":       true,
	"level":      true,
	"msg":        true,
	"session_id": true,
	"stage":      true,
	"category":   true,
}

// AggregateLogs reads and parses every entry of {logDir}/debug.log.
// Lines that are not JSON objects are skipped. Entries are returned sorted by
// timestamp in ascending order.
func AggregateLogs(logDir string) ([]LogEntry, error) {
	logPath := filepath.Join(logDir, LogFileName)

	file, err := os.Open(logPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no log file found in %s: %w", logDir, err)
		}
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return ReadEntries(file)
}

// ReadEntries parses JSON log lines from r.
func ReadEntries(r io.Reader) ([]LogEntry, error) {
	var entries []LogEntry
	scanner := bufio.NewScanner(r)

	const maxScanTokenSize = 1024 * 1024 // 1MB
	scanner.Buffer(make([]byte, 64*1024), maxScanTokenSize)

	for scanner.Scan() {
		entry, ok := parseLogEntry(scanner.Text())
		if !ok {
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading log file: %w", err)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})

	return entries, nil
}

// parseLogEntry parses a single JSON log line into a LogEntry.
func parseLogEntry(line string) (LogEntry, bool) {
	line = strings.TrimSpace(line)
	if line == "" || !gjson.Valid(line) {
		return LogEntry{}, false
	}
	root := gjson.Parse(line)
	if !root.IsObject() {
		return LogEntry{}, false
	}

	entry := LogEntry{
		Level:     root.Get("level").String(),
		Message:   root.Get("msg").String(),
		SessionID: root.Get("session_id").String(),
		Stage:     int(root.Get("stage").Int()),
		Category:  root.Get("category").String(),
		Attrs:     make(map[string]any),
	}
	if t, err := time.Parse(time.RFC3339Nano, root.Get("time").String()); err == nil {
		entry.Timestamp = t
	}

	root.ForEach(func(key, value gjson.Result) bool {
		if !standardFields[key.String()] {
			entry.Attrs[key.String()] = value.Value()
		}
		return true
	})

	return entry, true
}

// FilterLogs returns the entries matching every criterion of filter.
func FilterLogs(entries []LogEntry, filter LogFilter) []LogEntry {
	if filter == (LogFilter{}) {
		return entries
	}

	var filtered []LogEntry
	for _, entry := range entries {
		if matchesFilter(entry, filter) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

func matchesFilter(entry LogEntry, filter LogFilter) bool {
	if filter.Level != "" {
		want, wantOk := levelOrder[strings.ToUpper(filter.Level)]
		got, gotOk := levelOrder[entry.Level]
		if wantOk && gotOk && got < want {
			return false
		}
	}
	if !filter.Since.IsZero() && entry.Timestamp.Before(filter.Since) {
		return false
	}
	if filter.SessionID != "" && entry.SessionID != filter.SessionID {
		return false
	}
	if filter.Stage != 0 && entry.Stage != filter.Stage {
		return false
	}
	if filter.Category != "" && entry.Category != filter.Category {
		return false
	}
	if filter.MessageContains != "" && !strings.Contains(entry.Message, filter.MessageContains) {
		return false
	}
	return true
}

// WriteEntries writes entries to w as "text" (one line per entry) or "json"
// (an indented array).
func WriteEntries(w io.Writer, entries []LogEntry, format string) error {
	switch strings.ToLower(format) {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	case "text", "":
		for _, entry := range entries {
			if _, err := io.WriteString(w, FormatEntry(entry)+"\n"); err != nil {
				return fmt.Errorf("failed to write text entry: %w", err)
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported format: %s (supported: json, text)", format)
	}
}

// FormatEntry renders one entry as
// "[TIMESTAMP] LEVEL - MESSAGE (context) {attrs}".
func FormatEntry(entry LogEntry) string {
	parts := []string{
		fmt.Sprintf("[%s]", entry.Timestamp.Format("2006-01-02 15:04:05.000")),
		entry.Level,
		"-",
		entry.Message,
	}

	var context []string
	if entry.SessionID != "" {
		context = append(context, "session="+entry.SessionID)
	}
	if entry.Stage != 0 {
		context = append(context, fmt.Sprintf("stage=%d", entry.Stage))
	}
	if entry.Category != "" {
		context = append(context, "category="+entry.Category)
	}
	if len(context) > 0 {
		parts = append(parts, fmt.Sprintf("(%s)", strings.Join(context, ", ")))
	}

	if len(entry.Attrs) > 0 {
		// json.Marshal sorts map keys, which keeps the output stable.
		if b, err := json.Marshal(entry.Attrs); err == nil {
			parts = append(parts, string(b))
		}
	}

	return strings.Join(parts, " ")
}
