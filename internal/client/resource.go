package client

import (
	"context"
	"errors"
	"sync"
)

type State int

const (
	Loading State = iota
	Failed
	Loaded
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Failed:
		return "error"
	case Loaded:
		return "loaded"
	}
	return "unknown"
}

// Resource holds the result of one fetch for a view. Each Resource fetches
// at most once; there is no refresh and nothing is shared between resources.
type Resource[T any] struct {
	fetch func(context.Context) (T, error)

	once  sync.Once
	mu    sync.Mutex
	state State
	data  T
	err   string
}

func NewResource[T any](fetch func(context.Context) (T, error)) *Resource[T] {
	return &Resource[T]{fetch: fetch}
}

// Mount runs the fetch the first time it is called and blocks until it ends.
// Later calls return immediately with the settled state.
func (r *Resource[T]) Mount(ctx context.Context) {
	r.once.Do(func() {
		data, err := r.fetch(ctx)

		r.mu.Lock()
		defer r.mu.Unlock()
		if err != nil {
			r.state = Failed
			var apiErr *APIError
			if errors.As(err, &apiErr) {
				r.err = apiErr.Message
			} else {
				r.err = err.Error()
			}
			return
		}
		r.state = Loaded
		r.data = data
	})
}

// Snapshot reports the current state, the data (zero unless Loaded) and the
// error message (empty unless Failed).
func (r *Resource[T]) Snapshot() (State, T, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state, r.data, r.err
}
