package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

const sampleLog = `{"time":"2026-03-01T10:00:02Z","level":"WARN","msg":"fetch failed, using fallback","session_id":"s1","stage":3,"category":"details","object":"coding_3_prompt.md"}
not json at all
{"time":"2026-03-01T10:00:00Z","level":"INFO","msg":"detail view opened","session_id":"s1","stage":3}

{"time":"2026-03-01T10:00:05Z","level":"DEBUG","msg":"content loaded","session_id":"s2","stage":1,"category":"overview","bytes":120}
{"time":"2026-03-01T10:00:07Z","level":"ERROR","msg":"fetch failed, using fallback","session_id":"s2","stage":1,"category":"code"}
[1,2,3]
`

func writeSampleLog(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, LogFileName), []byte(sampleLog), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestAggregateLogs(t *testing.T) {
	dir := writeSampleLog(t)

	entries, err := AggregateLogs(dir)
	if err != nil {
		t.Fatalf("AggregateLogs failed: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}

	// Sorted by time
	for i := 1; i < len(entries); i++ {
		if entries[i].Timestamp.Before(entries[i-1].Timestamp) {
			t.Errorf("entries not sorted at %d", i)
		}
	}

	want := LogEntry{
		Timestamp: time.Date(2026, 3, 1, 10, 0, 2, 0, time.UTC),
		Level:     LevelWarn,
		Message:   "fetch failed, using fallback",
		SessionID: "s1",
		Stage:     3,
		Category:  "details",
		Attrs:     map[string]any{"object": "coding_3_prompt.md"},
	}
	if diff := cmp.Diff(want, entries[1]); diff != "" {
		t.Errorf("entry mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateLogs_MissingFile(t *testing.T) {
	_, err := AggregateLogs(t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "no log file found") {
		t.Errorf("AggregateLogs() error = %v, want missing-file error", err)
	}
}

func TestFilterLogs(t *testing.T) {
	entries, err := AggregateLogs(writeSampleLog(t))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		filter LogFilter
		want   []string
	}{
		{"empty filter", LogFilter{}, []string{"INFO", "WARN", "DEBUG", "ERROR"}},
		{"min level warn", LogFilter{Level: "warn"}, []string{"WARN", "ERROR"}},
		{"session", LogFilter{SessionID: "s2"}, []string{"DEBUG", "ERROR"}},
		{"stage", LogFilter{Stage: 3}, []string{"INFO", "WARN"}},
		{"category", LogFilter{Category: "code"}, []string{"ERROR"}},
		{"message", LogFilter{MessageContains: "fallback"}, []string{"WARN", "ERROR"}},
		{"since", LogFilter{Since: time.Date(2026, 3, 1, 10, 0, 5, 0, time.UTC)}, []string{"DEBUG", "ERROR"}},
		{"combined", LogFilter{Stage: 1, Level: "info"}, []string{"ERROR"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, e := range FilterLogs(entries, tt.filter) {
				got = append(got, e.Level)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FilterLogs() levels mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFormatEntry(t *testing.T) {
	entry := LogEntry{
		Timestamp: time.Date(2026, 3, 1, 10, 0, 2, 0, time.UTC),
		Level:     LevelWarn,
		Message:   "fetch failed, using fallback",
		SessionID: "s1",
		Stage:     3,
		Category:  "details",
		Attrs:     map[string]any{"status": float64(404), "object": "coding_3_prompt.md"},
	}

	want := `[2026-03-01 10:00:02.000] WARN - fetch failed, using fallback (session=s1, stage=3, category=details) {"object":"coding_3_prompt.md","status":404}`
	if got := FormatEntry(entry); got != want {
		t.Errorf("FormatEntry() =\n%s\nwant\n%s", got, want)
	}
}

func TestWriteEntries(t *testing.T) {
	entries := []LogEntry{{Level: LevelInfo, Message: "hello"}}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteEntries(&buf, entries, "text"); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), "INFO - hello") {
			t.Errorf("unexpected text output: %q", buf.String())
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteEntries(&buf, entries, "json"); err != nil {
			t.Fatal(err)
		}
		var decoded []LogEntry
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("invalid JSON output: %v", err)
		}
		if len(decoded) != 1 || decoded[0].Message != "hello" {
			t.Errorf("decoded = %+v", decoded)
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		if err := WriteEntries(&bytes.Buffer{}, entries, "csv"); err == nil {
			t.Error("expected an error for csv")
		}
	})
}
