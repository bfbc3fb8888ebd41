// Package testutil provides fakes for the loader's collaborators: a store
// that counts and can hold fetches, and a clipboard that records writes.
package testutil

import (
	"context"
	"sync"
	"testing"

	"github.com/Iron-Ham/feeflow/internal/errors"
)

// FakeStore serves objects from a map and records every fetch.
// Names missing from Objects fail with ErrObjectNotFound unless Errors has an
// entry for them. It is safe for concurrent use.
type FakeStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	errs    map[string]error
	calls   map[string]int
	order   []string
	gate    chan struct{}
}

// NewFakeStore creates a FakeStore holding objects.
func NewFakeStore(objects map[string]string) *FakeStore {
	s := &FakeStore{
		objects: make(map[string][]byte, len(objects)),
		errs:    make(map[string]error),
		calls:   make(map[string]int),
	}
	for name, body := range objects {
		s.objects[name] = []byte(body)
	}
	return s
}

// SetBytes stores raw bytes under name, e.g. invalid UTF-8.
func (s *FakeStore) SetBytes(name string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[name] = data
}

// FailWith makes fetches of name return err.
func (s *FakeStore) FailWith(name string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs[name] = err
}

// Hold makes subsequent fetches block until Release is called or their
// context is done.
func (s *FakeStore) Hold() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gate == nil {
		s.gate = make(chan struct{})
	}
}

// Release unblocks every held fetch.
func (s *FakeStore) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gate != nil {
		close(s.gate)
		s.gate = nil
	}
}

// Fetch implements store.Store.
func (s *FakeStore) Fetch(ctx context.Context, name string) ([]byte, error) {
	s.mu.Lock()
	s.calls[name]++
	s.order = append(s.order, name)
	gate := s.gate
	s.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, errors.NewFetchError(name, errors.Join(errors.ErrCanceled, ctx.Err())).WithBackend("fake")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err, ok := s.errs[name]; ok {
		return nil, errors.NewFetchError(name, err).WithBackend("fake")
	}
	data, ok := s.objects[name]
	if !ok {
		return nil, errors.NewFetchError(name, errors.ErrObjectNotFound).WithBackend("fake")
	}
	return append([]byte(nil), data...), nil
}

// Calls returns how many times name was fetched.
func (s *FakeStore) Calls(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[name]
}

// TotalCalls returns the number of fetches across all names.
func (s *FakeStore) TotalCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

// Order returns the fetched names in call order.
func (s *FakeStore) Order() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.order...)
}

// FakeClipboard records written text. When Err is set every write fails
// with it and nothing is recorded.
type FakeClipboard struct {
	mu     sync.Mutex
	Err    error
	writes []string
}

// WriteText implements clipboard.Clipboard.
func (c *FakeClipboard) WriteText(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return errors.NewClipboardError("fake", c.Err)
	}
	c.writes = append(c.writes, text)
	return nil
}

// Writes returns every successfully written text in order.
func (c *FakeClipboard) Writes() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.writes...)
}

// Last returns the most recent write, or "" when there is none.
func (c *FakeClipboard) Last() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.writes) == 0 {
		return ""
	}
	return c.writes[len(c.writes)-1]
}

// SetXDGConfigHome points the config directory at a fresh temporary
// directory for the duration of the test and returns it.
func SetXDGConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}
