package navigation

import "sync"

// Update describes the navigation state after a location change.
type Update struct {
	Location string  `json:"location"`
	States   []State `json:"states"`
	Active   *Entry  `json:"active"`
}

// Tracker follows the current location published by a route provider and
// recomputes the highlighted entry on every change. Subscribers are invoked
// synchronously, in subscription order, on the goroutine calling Navigate.
// A subscriber may itself call Navigate.
type Tracker struct {
	model *Model

	mu          sync.Mutex
	location    string
	subscribers []func(Update)
}

func NewTracker(model *Model) *Tracker {
	return &Tracker{model: model}
}

// Subscribe registers fn to receive every subsequent Update.
func (t *Tracker) Subscribe(fn func(Update)) {
	if fn == nil {
		return
	}
	t.mu.Lock()
	t.subscribers = append(t.subscribers, fn)
	t.mu.Unlock()
}

// Navigate records location as current and notifies subscribers.
func (t *Tracker) Navigate(location string) Update {
	t.mu.Lock()
	t.location = location
	update := t.snapshot()
	subscribers := make([]func(Update), len(t.subscribers))
	copy(subscribers, t.subscribers)
	t.mu.Unlock()

	for _, fn := range subscribers {
		fn(update)
	}
	return update
}

// Location returns the last location passed to Navigate, or "" before the
// first navigation.
func (t *Tracker) Location() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.location
}

// Current returns the navigation state for the current location.
func (t *Tracker) Current() Update {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshot()
}

func (t *Tracker) snapshot() Update {
	update := Update{
		Location: t.location,
		States:   t.model.States(t.location),
	}
	if entry, ok := t.model.Active(t.location); ok {
		update.Active = &entry
	}
	return update
}
