// Package loader accumulates paged results for one query context.
//
// A Loader owns a cursor, an append-only item list and a tagged state.
// Callers decide when to ask for the next page (initial mount, scroll
// proximity, an explicit "more" key); the Loader only guarantees that at
// most one fetch per query context is in flight and that results from a
// context that has since been Reset are dropped.
package loader

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"anirex/internal/apperr"
)

const DefaultFetchTimeout = 10 * time.Second

// FetchFunc returns one page of results for query q. Pages start at 1.
// An empty, error-free result means there are no more pages.
type FetchFunc[Q, T any] func(ctx context.Context, q Q, page int) ([]T, error)

type Option func(*settings)

type settings struct {
	timeout time.Duration
}

// WithFetchTimeout bounds every fetch. Non-positive values keep the default.
func WithFetchTimeout(d time.Duration) Option {
	return func(s *settings) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// Outcome describes what a LoadNext call did.
type Outcome struct {
	Appended int
	Skipped  bool
	Stale    bool
	State    State
}

// Snapshot is a point-in-time copy of a Loader's state.
type Snapshot[Q, T any] struct {
	Query      Q
	Items      []T
	Cursor     int
	State      State
	Generation uint64
}

func (s Snapshot[Q, T]) Exhausted() bool { return s.State == Exhausted }
func (s Snapshot[Q, T]) Fetching() bool  { return s.State == Fetching }

type Loader[Q, T any] struct {
	fetch   FetchFunc[Q, T]
	timeout time.Duration

	mu         sync.Mutex
	query      Q
	items      []T
	cursor     int
	state      State
	generation uint64
}

func New[Q, T any](fetch FetchFunc[Q, T], opts ...Option) *Loader[Q, T] {
	s := settings{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(&s)
	}
	return &Loader[Q, T]{
		fetch:   fetch,
		timeout: s.timeout,
		cursor:  1,
		state:   Idle,
	}
}

// Reset switches to query q and starts over from page 1. Any fetch still in
// flight for the previous query is discarded when it completes.
func (l *Loader[Q, T]) Reset(q Q) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.query = q
	l.items = nil
	l.cursor = 1
	l.state = Idle
	l.generation++
}

// LoadNext fetches the page at the cursor. It is a no-op while a fetch is
// outstanding or after the list is exhausted. On failure the items and
// cursor are left as they were and the error is returned.
func (l *Loader[Q, T]) LoadNext(ctx context.Context) (Outcome, error) {
	l.mu.Lock()
	if l.state != Idle {
		st := l.state
		l.mu.Unlock()
		return Outcome{Skipped: true, State: st}, nil
	}
	l.state = Fetching
	gen := l.generation
	page := l.cursor
	q := l.query
	l.mu.Unlock()

	fctx, cancel := context.WithTimeout(ctx, l.timeout)
	got, err := l.call(fctx, q, page)
	cancel()

	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.generation {
		return Outcome{Stale: true, State: l.state}, nil
	}

	if err != nil {
		l.state = Idle
		return Outcome{State: Idle}, fmt.Errorf("load page %d: %w", page, classify(err))
	}

	if len(got) == 0 {
		l.state = Exhausted
		return Outcome{State: Exhausted}, nil
	}

	l.items = append(l.items, got...)
	l.cursor++
	l.state = Idle
	return Outcome{Appended: len(got), State: Idle}, nil
}

// call runs the fetch and turns a panic into an error so the loader
// never stays in Fetching.
func (l *Loader[Q, T]) call(ctx context.Context, q Q, page int) (got []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			got, err = nil, fmt.Errorf("fetch panicked: %v", r)
		}
	}()
	return l.fetch(ctx, q, page)
}

// classify marks timeouts as network failures. Errors that already carry
// a kind, such as ErrNetwork from the API client, keep it.
func classify(err error) error {
	if errors.Is(err, apperr.ErrNetwork) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", apperr.ErrNetwork, err)
	}
	return err
}

func (l *Loader[Q, T]) Snapshot() Snapshot[Q, T] {
	l.mu.Lock()
	defer l.mu.Unlock()

	items := make([]T, len(l.items))
	copy(items, l.items)
	return Snapshot[Q, T]{
		Query:      l.query,
		Items:      items,
		Cursor:     l.cursor,
		State:      l.state,
		Generation: l.generation,
	}
}

// Generation identifies the current query context.
func (l *Loader[Q, T]) Generation() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.generation
}
