// Package widget implements the nutrition lookup widget: a reusable
// idle → pending → found/not-found state machine with a simulated delay.
package widget

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"nutrisearch/internal/catalog"
	"nutrisearch/internal/models"
	"nutrisearch/internal/validation"
)

// DefaultDelay is the simulated lookup latency.
const DefaultDelay = 800 * time.Millisecond

// Options configures a widget.
type Options struct {
	// Delay before a pending query resolves.
	Delay time.Duration

	// After returns a channel that fires once d has elapsed. Defaults to
	// time.After.
	After func(d time.Duration) <-chan time.Time

	// Now defaults to time.Now.
	Now func() time.Time

	// OnOutcome is called with the matched key (empty when nothing matched)
	// and one of the models.Outcome* constants. Called with the widget lock
	// held, so it must not call back into the widget.
	OnOutcome func(food, outcome string)
}

func (o Options) withDefaults() Options {
	if o.Delay < 0 {
		o.Delay = 0
	}
	if o.After == nil {
		o.After = time.After
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Widget owns one QueryState. Safe for concurrent use.
type Widget struct {
	table *catalog.Table
	opts  Options

	mu     sync.Mutex
	state  models.QueryState
	cancel context.CancelFunc
	done   chan struct{} // closed when the current pending state ends
	closed bool

	wg sync.WaitGroup
}

// New creates an idle widget backed by table.
func New(table *catalog.Table, opts Options) *Widget {
	return &Widget{
		table: table,
		opts:  opts.withDefaults(),
		state: models.IdleState(),
	}
}

// Search submits query. Blank input leaves the state untouched. Otherwise any
// in-flight query is cancelled and a new pending state is returned; it
// resolves after the configured delay.
func (w *Widget) Search(query string) models.QueryState {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || validation.IsBlank(query) {
		return w.state
	}

	if w.state.IsPending() {
		w.emit("", models.OutcomeSuperseded)
	}
	w.endPendingLocked()

	now := w.opts.Now()
	st := models.QueryState{
		ID:          uuid.New(),
		Input:       query,
		Phase:       models.PhasePending,
		SubmittedAt: &now,
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.state = st
	w.cancel = cancel
	w.done = make(chan struct{})

	// Timer is armed before the goroutine starts so that the order of
	// After calls matches the order of submissions.
	fire := w.opts.After(w.opts.Delay)
	w.wg.Add(1)
	go w.resolveAfter(ctx, fire, st.ID)

	return st
}

// Reset cancels any in-flight query and returns the widget to idle.
func (w *Widget) Reset() models.QueryState {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state.IsPending() {
		w.emit("", models.OutcomeReset)
	}
	w.endPendingLocked()
	w.state = models.IdleState()
	return w.state
}

// State returns the current state.
func (w *Widget) State() models.QueryState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Await blocks while the current query is pending. It returns the state that
// is current once the query resolves, is superseded or reset, or ctx ends.
func (w *Widget) Await(ctx context.Context) (models.QueryState, error) {
	w.mu.Lock()
	st, done := w.state, w.done
	w.mu.Unlock()

	if !st.IsPending() || done == nil {
		return st, nil
	}

	select {
	case <-done:
		return w.State(), nil
	case <-ctx.Done():
		return w.State(), ctx.Err()
	}
}

// Close cancels any in-flight query and waits for its goroutine to exit.
// A pending query is dropped to idle. Search is a no-op afterwards.
func (w *Widget) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	w.endPendingLocked()
	if w.state.IsPending() {
		w.state = models.IdleState()
	}
	w.mu.Unlock()

	w.wg.Wait()
}

// Resolve performs the delay-free lookup for query.
func Resolve(table *catalog.Table, query string) models.QueryState {
	rec, _, err := table.Lookup(query)
	if err != nil {
		return models.QueryState{
			Input: query,
			Phase: models.PhaseNotFound,
			Error: table.NotFoundMessage(query),
		}
	}
	return models.QueryState{
		Input:  query,
		Phase:  models.PhaseFound,
		Result: &rec,
	}
}

func (w *Widget) resolveAfter(ctx context.Context, fire <-chan time.Time, id uuid.UUID) {
	defer w.wg.Done()

	select {
	case <-ctx.Done():
		return
	case <-fire:
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	// Superseded or reset while the timer was in flight.
	if w.state.ID != id || !w.state.IsPending() {
		return
	}

	resolved := Resolve(w.table, w.state.Input)
	now := w.opts.Now()
	resolved.ID = id
	resolved.SubmittedAt = w.state.SubmittedAt
	resolved.ResolvedAt = &now

	w.endPendingLocked()
	w.state = resolved

	if resolved.IsFound() {
		w.emit(validation.NormalizeQuery(resolved.Input), models.OutcomeFound)
	} else {
		w.emit("", models.OutcomeNotFound)
	}
}

// endPendingLocked stops the in-flight timer and releases Await callers.
func (w *Widget) endPendingLocked() {
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
	if w.done != nil {
		close(w.done)
		w.done = nil
	}
}

func (w *Widget) emit(food, outcome string) {
	if w.opts.OnOutcome != nil {
		w.opts.OnOutcome(food, outcome)
	}
}
