// Package promise provides a single-resolution future for bridging
// event-driven delivery into request/response style code.
//
// # Overview
//
// A Promise is settled exactly once, with either a value (Resolve) or an
// error (Reject), and can be awaited by any number of goroutines. Later
// settle attempts are no-ops, which makes fan-out failure paths safe: a
// teardown handler can reject every outstanding promise without checking
// whether a racing delivery already resolved one of them.
//
// # Quick Start
//
//	p := promise.New[string]()
//
//	go func() { p.Resolve("hello") }()
//
//	value, err := p.Await(ctx)
//
// Await honors context cancellation without settling the promise: an
// abandoned wait leaves the promise eligible for a later settlement.
//
// No timeout is built in; deadline control is the caller's responsibility
// via ctx.
package promise
