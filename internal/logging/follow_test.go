package logging

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func appendLine(t *testing.T, path, line string) {
	t.Helper()
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()
	if _, err := f.WriteString(line); err != nil {
		t.Fatal(err)
	}
}

func TestFollow_DeliversNewEntries(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, LogFileName)
	appendLine(t, path, `{"time":"2026-01-01T09:00:00Z","level":"INFO","msg":"existing"}`+"\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	entries := make(chan LogEntry, 100)
	done := make(chan error, 1)
	go func() {
		done <- Follow(ctx, dir, func(e LogEntry) { entries <- e })
	}()

	// The watcher starts asynchronously, so keep writing until something
	// arrives.
	var got LogEntry
	deadline := time.After(5 * time.Second)
	for i := 0; ; i++ {
		appendLine(t, path, fmt.Sprintf(`{"time":"2026-01-01T09:00:01Z","level":"WARN","msg":"new %d","stage":2}`+"\n", i))
		select {
		case got = <-entries:
		case <-time.After(50 * time.Millisecond):
			continue
		case <-deadline:
			t.Fatal("no entry delivered")
		}
		break
	}

	if got.Message == "existing" {
		t.Error("existing content should be skipped")
	}
	if got.Level != LevelWarn || got.Stage != 2 {
		t.Errorf("entry = %+v", got)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Follow() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Follow did not return after cancel")
	}
}

func TestFollow_MissingDir(t *testing.T) {
	err := Follow(context.Background(), filepath.Join(t.TempDir(), "nope"), func(LogEntry) {})
	if err == nil {
		t.Error("expected an error for a missing directory")
	}
}

func TestTail_HoldsPartialLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, LogFileName)
	tl := &tail{path: path}

	var got []string
	collect := func(e LogEntry) { got = append(got, e.Message) }

	appendLine(t, path, `{"level":"INFO","msg":"one"}`+"\n"+`{"level":"INFO",`)
	if err := tl.read(collect); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != "one" {
		t.Fatalf("after first read got %v", got)
	}

	appendLine(t, path, `"msg":"two"}`+"\n")
	if err := tl.read(collect); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[1] != "two" {
		t.Errorf("after second read got %v", got)
	}

	// Truncation restarts from the top
	if err := os.WriteFile(path, []byte(`{"level":"INFO","msg":"three"}`+"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := tl.read(collect); err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[2] != "three" {
		t.Errorf("after truncation got %v", got)
	}
}
