package navigation

import (
	"fmt"
	"path"
	"strings"
)

// Model is the ordered, immutable list of sidebar entries.
type Model struct {
	entries []Entry
	byPath  map[string]int
}

// NewModel validates entries and returns a model preserving their order.
// Labels must be non-empty and unique, paths must be normalized routes and
// unique.
func NewModel(entries ...Entry) (*Model, error) {
	m := &Model{
		entries: make([]Entry, 0, len(entries)),
		byPath:  make(map[string]int, len(entries)),
	}
	labels := make(map[string]struct{}, len(entries))

	for i, entry := range entries {
		if strings.TrimSpace(entry.Label) == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrEmptyLabel)
		}
		if !IsNormalizedPath(entry.Path) {
			return nil, fmt.Errorf("entry %q: %w: %q", entry.Label, ErrInvalidPath, entry.Path)
		}
		if _, exists := labels[entry.Label]; exists {
			return nil, fmt.Errorf("entry %q: %w", entry.Label, ErrDuplicateLabel)
		}
		if _, exists := m.byPath[entry.Path]; exists {
			return nil, fmt.Errorf("entry %q: %w: %q", entry.Label, ErrDuplicatePath, entry.Path)
		}

		labels[entry.Label] = struct{}{}
		m.byPath[entry.Path] = len(m.entries)
		m.entries = append(m.entries, entry)
	}

	return m, nil
}

// MustModel is like NewModel but panics on invalid input. It is meant for
// package-level tables that are known to be valid.
func MustModel(entries ...Entry) *Model {
	m, err := NewModel(entries...)
	if err != nil {
		panic(err)
	}
	return m
}

// IsNormalizedPath reports whether value is an absolute, cleaned route without
// a trailing slash (the root "/" excepted).
func IsNormalizedPath(value string) bool {
	if !strings.HasPrefix(value, "/") {
		return false
	}
	return path.Clean(value) == value
}

func (m *Model) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Entries returns a copy of the entries in display order.
func (m *Model) Entries() []Entry {
	if m == nil {
		return nil
	}
	return append([]Entry(nil), m.entries...)
}

// Lookup returns the entry registered for path.
func (m *Model) Lookup(path string) (Entry, bool) {
	if m == nil {
		return Entry{}, false
	}
	idx, ok := m.byPath[path]
	if !ok {
		return Entry{}, false
	}
	return m.entries[idx], true
}

// Active returns the entry highlighted for currentLocation, if any.
func (m *Model) Active(currentLocation string) (Entry, bool) {
	if m == nil {
		return Entry{}, false
	}
	for _, entry := range m.entries {
		if IsActive(entry, currentLocation) {
			return entry, true
		}
	}
	return Entry{}, false
}

// States annotates every entry with its active flag for currentLocation.
func (m *Model) States(currentLocation string) []State {
	if m == nil {
		return nil
	}
	states := make([]State, len(m.entries))
	for i, entry := range m.entries {
		states[i] = State{Entry: entry, Active: IsActive(entry, currentLocation)}
	}
	return states
}
