// Package navigation holds the sidebar navigation model and the logic that
// decides which entry is highlighted for the current location.
//
// A Model is built once at startup and never changes afterwards, so it can be
// shared freely between request handlers.
package navigation

// Entry represents a navigation link rendered in the shell sidebar.
type Entry struct {
	Label string `json:"label" yaml:"label"`
	Icon  string `json:"icon" yaml:"icon"`
	Path  string `json:"path" yaml:"path"`
}

// State is an Entry annotated with whether it matches the current location.
type State struct {
	Entry
	Active bool `json:"active"`
}

// IsActive reports whether entry is the destination for currentLocation.
// Matching is exact and case-sensitive: a nested location such as
// "/repositories/123" does not activate "/repositories".
func IsActive(entry Entry, currentLocation string) bool {
	return entry.Path == currentLocation
}
