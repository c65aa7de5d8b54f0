package deque

// minCapacity is the smallest backing slice allocated for a non-empty deque.
// Must be a power of two so index masking works.
const minCapacity = 8

// Deque is a generic double-ended queue backed by a growable ring buffer.
// Push and pop at either end are O(1) amortized. Insertion order is preserved
// under arbitrary interleavings of pushes and pops.
//
// Deque is NOT safe for concurrent use. Callers that share a deque across
// goroutines must provide their own synchronization; in wspull both deques
// are mutated only under the owning connection's mutex.
type Deque[T any] struct {
	items []T
	head  int // index of the front element
	size  int
}

// New creates an empty deque.
func New[T any]() *Deque[T] {
	return &Deque[T]{}
}

// Len returns the number of elements currently in the deque.
func (d *Deque[T]) Len() int {
	return d.size
}

// PushBack appends an element at the back of the deque.
func (d *Deque[T]) PushBack(item T) {
	d.grow()
	d.items[d.index(d.size)] = item
	d.size++
}

// PushFront inserts an element at the front of the deque.
func (d *Deque[T]) PushFront(item T) {
	d.grow()
	d.head = d.index(len(d.items) - 1)
	d.items[d.head] = item
	d.size++
}

// PopFront removes and returns the front element.
// Returns the zero value and false if the deque is empty.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.size == 0 {
		return zero, false
	}
	item := d.items[d.head]
	d.items[d.head] = zero // release reference
	d.head = d.index(1)
	d.size--
	return item, true
}

// PopBack removes and returns the back element.
// Returns the zero value and false if the deque is empty.
func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.size == 0 {
		return zero, false
	}
	idx := d.index(d.size - 1)
	item := d.items[idx]
	d.items[idx] = zero
	d.size--
	return item, true
}

// PeekFront returns the front element without removing it.
// Returns the zero value and false if the deque is empty.
func (d *Deque[T]) PeekFront() (T, bool) {
	var zero T
	if d.size == 0 {
		return zero, false
	}
	return d.items[d.head], true
}

// PeekBack returns the back element without removing it.
// Returns the zero value and false if the deque is empty.
func (d *Deque[T]) PeekBack() (T, bool) {
	var zero T
	if d.size == 0 {
		return zero, false
	}
	return d.items[d.index(d.size-1)], true
}

// Clear removes all elements. The backing storage is released so a drained
// deque does not pin previously queued values.
func (d *Deque[T]) Clear() {
	d.items = nil
	d.head = 0
	d.size = 0
}

// index maps an offset from the front to a position in the ring.
func (d *Deque[T]) index(offset int) int {
	return (d.head + offset) & (len(d.items) - 1)
}

// grow ensures room for one more element, doubling the ring when full.
func (d *Deque[T]) grow() {
	if len(d.items) == 0 {
		d.items = make([]T, minCapacity)
		d.head = 0
		return
	}
	if d.size < len(d.items) {
		return
	}

	resized := make([]T, len(d.items)*2)
	n := copy(resized, d.items[d.head:])
	copy(resized[n:], d.items[:d.head])
	d.items = resized
	d.head = 0
}
