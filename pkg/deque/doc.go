// Package deque provides a generic double-ended queue backed by a growable
// ring buffer.
//
// # Overview
//
// The deque supports O(1) amortized push and pop at both ends while preserving
// insertion order under interleaved operations. wspull uses two instances as
// strict FIFOs (PushBack + PopFront): one for pending read requests and one
// for buffered inbound frames. The front operations exist for symmetry and
// for callers that need to return an element to the head of the line.
//
// # Quick Start
//
//	q := deque.New[string]()
//	q.PushBack("first")
//	q.PushBack("second")
//
//	item, ok := q.PopFront() // "first", true
//
// Pop and peek operations never panic on an empty deque; they return the zero
// value and false instead.
//
// # Thread Safety
//
// Deque is not synchronized. The owning component is expected to guard it,
// which keeps the hot path free of redundant locking.
package deque
