// Package ringqueue provides a fixed-capacity FIFO ring. The ring is backed
// by a fixed-length dynarray buffer with modulo-advanced front and rear
// cursors, which makes logical indexing a constant-time operation. Fullness
// and emptiness are always decided by the explicit element count, never by
// cursor comparison, since both states place the cursors at the same slot.
package ringqueue

import (
	"fmt"

	"github.com/structlab/collections"
	"github.com/structlab/collections/dynarray"
	"github.com/structlab/collections/hooking"
)

// HookPosEnqueue marks when an element is admitted into the ring.
var HookPosEnqueue = &hooking.HookPos{Name: "Ring Enqueue"}

// HookPosDequeue marks when an element is released from the ring.
var HookPosDequeue = &hooking.HookPos{Name: "Ring Dequeue"}

// A Queue is a bounded FIFO pool with O(1) admission and release and
// wraparound reuse of slots.
type Queue[T any] struct {
	hooking.HookableBase

	name     string
	buf      *dynarray.Array[T]
	capacity int

	front int
	rear  int
	size  int
}

// Name returns the name of the queue.
func (q *Queue[T]) Name() string {
	return q.name
}

// Len returns the number of elements currently held.
func (q *Queue[T]) Len() int {
	return q.size
}

// Capacity returns the fixed capacity of the queue.
func (q *Queue[T]) Capacity() int {
	return q.capacity
}

// IsEmpty checks if the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.size == 0
}

// IsFull checks if the queue has reached its capacity.
func (q *Queue[T]) IsFull() bool {
	return q.size == q.capacity
}

// Enqueue admits value at the rear of the queue.
func (q *Queue[T]) Enqueue(value T) error {
	if q.IsFull() {
		return fmt.Errorf("enqueue: %w", collections.ErrCapacityExceeded)
	}

	q.rear = (q.rear + 1) % q.capacity

	// The slot is always within the fixed-length buffer.
	_ = q.buf.Set(q.rear, value)

	q.size++

	if q.NumHooks() > 0 {
		q.InvokeHook(hooking.HookCtx{
			Domain: q,
			Pos:    HookPosEnqueue,
			Item:   value,
		})
	}

	return nil
}

// Dequeue releases and returns the element at the front of the queue.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("dequeue: %w", collections.ErrEmptyCollection)
	}

	value, _ := q.buf.At(q.front)

	// Drop the reference held by the vacated slot.
	var zero T
	_ = q.buf.Set(q.front, zero)

	q.front = (q.front + 1) % q.capacity
	q.size--

	if q.NumHooks() > 0 {
		q.InvokeHook(hooking.HookCtx{
			Domain: q,
			Pos:    HookPosDequeue,
			Item:   value,
		})
	}

	return value, nil
}

// PeekFront returns the element at the front of the queue without removing
// it.
func (q *Queue[T]) PeekFront() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, fmt.Errorf("peek front: %w", collections.ErrEmptyCollection)
	}

	return q.buf.At(q.front)
}

// At returns the element at the given logical position: 0 is the current
// front, Len()-1 the current rear.
func (q *Queue[T]) At(logicalIndex int) (T, error) {
	if logicalIndex < 0 || logicalIndex >= q.size {
		var zero T
		return zero, fmt.Errorf("logical index %d outside [0, %d): %w",
			logicalIndex, q.size, collections.ErrIndexOutOfBounds)
	}

	return q.buf.At((q.front + logicalIndex) % q.capacity)
}

// Find scans from the front for the first element that satisfies the
// condition and returns its 1-based logical position, or -1 if no element
// matches. The scan makes at most one full traversal.
func (q *Queue[T]) Find(condition func(T) bool) int {
	for i := 0; i < q.size; i++ {
		value, _ := q.At(i)
		if condition(value) {
			return i + 1
		}
	}

	return -1
}
