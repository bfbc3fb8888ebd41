package logging

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Follow streams entries appended to {logDir}/debug.log to fn until ctx is
// done. Content already in the file is skipped. When the file is recreated by
// rotation, reading restarts at the top of the new file.
func Follow(ctx context.Context, logDir string, fn func(LogEntry)) error {
	path := filepath.Clean(filepath.Join(logDir, LogFileName))

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory, not the file, so rotation is visible
	if err := watcher.Add(logDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", logDir, err)
	}

	t := &tail{path: path}
	if info, err := os.Stat(path); err == nil {
		t.offset = info.Size()
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				t.reset()
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := t.read(fn); err != nil {
				return err
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch error: %w", err)
		}
	}
}

// tail tracks the read position in a growing log file.
type tail struct {
	path    string
	offset  int64
	partial []byte
}

func (t *tail) reset() {
	t.offset = 0
	t.partial = nil
}

// read delivers every complete line written since the last read. A trailing
// line without a newline is held until the rest of it arrives.
func (t *tail) read(fn func(LogEntry)) error {
	f, err := os.Open(t.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			t.reset()
			return nil
		}
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = f.Close() }()

	// Truncated in place
	if info, err := f.Stat(); err == nil && info.Size() < t.offset {
		t.reset()
	}

	if _, err := f.Seek(t.offset, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek log file: %w", err)
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("failed to read log file: %w", err)
	}
	t.offset += int64(len(data))

	buf := append(t.partial, data...)
	for {
		i := bytes.IndexByte(buf, '\n')
		if i < 0 {
			break
		}
		if entry, ok := parseLogEntry(string(buf[:i])); ok {
			fn(entry)
		}
		buf = buf[i+1:]
	}
	t.partial = append([]byte(nil), buf...)
	return nil
}
