package catalog

import (
	"context"
	"sync"
)

// LoadStatus is the phase of an asynchronous load.
type LoadStatus int

const (
	Loading LoadStatus = iota
	Loaded
	Failed
)

func (s LoadStatus) String() string {
	switch s {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is the discriminated result of a load: Loading, Loaded(Value) or Failed(Err).
type State[T any] struct {
	Status LoadStatus
	Value  T
	Err    error
}

// Operation is one in-flight load. Its context doubles as the cancellation
// token: a result that arrives after cancellation is never committed.
type Operation[T any] struct {
	mu     sync.Mutex
	state  State[T]
	done   chan struct{}
	subs   []chan State[T]
	cancel context.CancelFunc
}

// Load runs fn on its own goroutine and returns the operation tracking it.
func Load[T any](ctx context.Context, fn func(context.Context) (T, error)) *Operation[T] {
	ctx, cancel := context.WithCancel(ctx)
	op := &Operation[T]{done: make(chan struct{}), cancel: cancel}
	go func() {
		defer cancel()
		v, err := fn(ctx)
		op.commit(ctx, v, err)
	}()
	return op
}

func (o *Operation[T]) commit(ctx context.Context, v T, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	switch {
	case ctx.Err() != nil:
		o.state = State[T]{Status: Failed, Err: ctx.Err()}
	case err != nil:
		o.state = State[T]{Status: Failed, Err: err}
	default:
		o.state = State[T]{Status: Loaded, Value: v}
	}
	for _, ch := range o.subs {
		ch <- o.state
		close(ch)
	}
	o.subs = nil
	close(o.done)
}

// Snapshot returns the current state without blocking.
func (o *Operation[T]) Snapshot() State[T] {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Done is closed once the state is terminal.
func (o *Operation[T]) Done() <-chan struct{} {
	return o.done
}

// Subscribe returns a channel that receives the terminal state exactly once.
func (o *Operation[T]) Subscribe() <-chan State[T] {
	ch := make(chan State[T], 1)
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state.Status != Loading {
		ch <- o.state
		close(ch)
		return ch
	}
	o.subs = append(o.subs, ch)
	return ch
}

// Wait blocks until the load settles or ctx ends.
func (o *Operation[T]) Wait(ctx context.Context) (State[T], error) {
	select {
	case <-o.done:
		return o.Snapshot(), nil
	case <-ctx.Done():
		return o.Snapshot(), ctx.Err()
	}
}

// Cancel fires the cancellation token.
func (o *Operation[T]) Cancel() {
	o.cancel()
}
