package promise

import (
	"context"
	"sync"
)

// Promise is a single-resolution future: it can be settled exactly once, with
// either a value or an error, and awaited any number of times. The first call
// to Resolve or Reject wins; every later settle attempt is a no-op.
//
// Promise is safe for concurrent use.
type Promise[T any] struct {
	once  sync.Once
	done  chan struct{}
	value T
	err   error
}

// New creates an unsettled promise.
func New[T any]() *Promise[T] {
	return &Promise[T]{done: make(chan struct{})}
}

// Resolved creates a promise already settled with value.
func Resolved[T any](value T) *Promise[T] {
	p := New[T]()
	p.Resolve(value)
	return p
}

// Rejected creates a promise already settled with err.
func Rejected[T any](err error) *Promise[T] {
	p := New[T]()
	p.Reject(err)
	return p
}

// Resolve settles the promise with a value. It reports whether this call
// performed the settlement; false means the promise was already settled.
func (p *Promise[T]) Resolve(value T) bool {
	settled := false
	p.once.Do(func() {
		p.value = value
		close(p.done)
		settled = true
	})
	return settled
}

// Reject settles the promise with an error. It reports whether this call
// performed the settlement; false means the promise was already settled.
func (p *Promise[T]) Reject(err error) bool {
	settled := false
	p.once.Do(func() {
		p.err = err
		close(p.done)
		settled = true
	})
	return settled
}

// Await blocks until the promise settles or ctx is done. A ctx failure does
// not settle the promise; the caller has abandoned the wait but the promise
// can still be settled later.
func (p *Promise[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done returns a channel that is closed once the promise settles.
func (p *Promise[T]) Done() <-chan struct{} {
	return p.done
}

// Settled reports whether the promise has been resolved or rejected.
func (p *Promise[T]) Settled() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}
