package widget

import (
	"sync"
	"time"

	"nutrisearch/internal/catalog"
)

type registryEntry struct {
	widget   *Widget
	lastUsed time.Time
}

// Registry hands out one widget per client ID.
type Registry struct {
	table *catalog.Table
	opts  Options

	mu      sync.Mutex
	widgets map[string]*registryEntry
	closed  bool
}

// NewRegistry creates an empty registry whose widgets share opts.
func NewRegistry(table *catalog.Table, opts Options) *Registry {
	return &Registry{
		table:   table,
		opts:    opts.withDefaults(),
		widgets: make(map[string]*registryEntry),
	}
}

// Get returns the widget for id, creating it on first use.
func (r *Registry) Get(id string) (*Widget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, ErrClosed
	}

	e, ok := r.widgets[id]
	if !ok {
		e = &registryEntry{widget: New(r.table, r.opts)}
		r.widgets[id] = e
	}
	e.lastUsed = r.opts.Now()
	return e.widget, nil
}

// Sweep closes and removes widgets unused for longer than maxIdle.
// Returns the number removed.
func (r *Registry) Sweep(maxIdle time.Duration) int {
	cutoff := r.opts.Now().Add(-maxIdle)

	r.mu.Lock()
	var stale []*Widget
	for id, e := range r.widgets {
		if e.lastUsed.Before(cutoff) {
			stale = append(stale, e.widget)
			delete(r.widgets, id)
		}
	}
	r.mu.Unlock()

	for _, w := range stale {
		w.Close()
	}
	return len(stale)
}

// Len returns the number of live widgets.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.widgets)
}

// Open reports whether the registry still accepts new widgets.
func (r *Registry) Open() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.closed
}

// Close closes every widget. Further Get calls return ErrClosed.
func (r *Registry) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	widgets := r.widgets
	r.widgets = make(map[string]*registryEntry)
	r.mu.Unlock()

	for _, e := range widgets {
		e.widget.Close()
	}
}
