// Package fixture holds the mock server's in-memory directory table.
package fixture

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Ning0612/FakeFTP/internal/domain"
	"github.com/Ning0612/FakeFTP/internal/logger"
)

// Table references the fixture entries a mock FTP server reports.
// Entries are not copied; callers that mutate an entry after Add must
// coordinate with readers of the table themselves.
type Table struct {
	mu    sync.RWMutex
	files []*domain.File
	log   logger.Logger
}

// NewTable creates an empty table
func NewTable(files ...*domain.File) *Table {
	t := &Table{log: logger.With("component", "fixture")}
	t.Add(files...)
	return t
}

// Add appends entries in order; nil entries are skipped
func (t *Table) Add(files ...*domain.File) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, f := range files {
		if f == nil {
			continue
		}
		t.files = append(t.files, f)
		t.log.Debug("fixture added", "name", f.FullName(), "bytes", f.Bytes(), "mode", f.Mode().String())
	}
}

// Lookup finds the first entry whose full name matches, falling back to
// the first entry whose bare name matches
func (t *Table) Lookup(name string) (*domain.File, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if i := t.indexOf(name); i >= 0 {
		return t.files[i], nil
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, name)
}

// indexOf must be called with mu held
func (t *Table) indexOf(name string) int {
	for i, f := range t.files {
		if f.FullName() == name {
			return i
		}
	}
	for i, f := range t.files {
		if f.Name() == name {
			return i
		}
	}
	return -1
}

// Remove deletes the entry Lookup would return for name
func (t *Table) Remove(name string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(name)
	if i < 0 {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, name)
	}
	t.files = append(t.files[:i], t.files[i+1:]...)
	t.log.Debug("fixture removed", "name", name)
	return nil
}

// List returns the entries directly inside dir, sorted by full name.
// "", "/" and an unset directory all mean root.
func (t *Table) List(dir string) []*domain.File {
	want := normalizeDir(dir)

	t.mu.RLock()
	var out []*domain.File
	for _, f := range t.files {
		if normalizeDir(f.Directory()) == want {
			out = append(out, f)
		}
	}
	t.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FullName() < out[j].FullName()
	})
	return out
}

// ByMode returns the entries staged for one data-connection mode, in insertion order
func (t *Table) ByMode(mode domain.TransferMode) []*domain.File {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var out []*domain.File
	for _, f := range t.files {
		if f.Mode() == mode {
			out = append(out, f)
		}
	}
	return out
}

// All returns a snapshot of every entry in insertion order
func (t *Table) All() []*domain.File {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]*domain.File, len(t.files))
	copy(out, t.files)
	return out
}

func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.files)
}

// Reset drops every entry
func (t *Table) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.files = nil
	t.log.Debug("fixtures reset")
}

func normalizeDir(dir string) string {
	return strings.Trim(dir, "/")
}
