// Package bucketqueue provides a bucket-based priority queue: a dynarray of
// linked lists, one per discrete priority level. Admission is O(1) and
// extraction scans a small fixed number of buckets, so there is no
// comparison-based heap and no comparator beyond the priority integer.
// Arrival order is preserved within each level.
package bucketqueue

import (
	"fmt"

	"github.com/structlab/collections"
	"github.com/structlab/collections/dynarray"
	"github.com/structlab/collections/hooking"
	"github.com/structlab/collections/linkedlist"
)

// HookPosAdd marks when an element is admitted into a bucket.
var HookPosAdd = &hooking.HookPos{Name: "Bucket Add"}

// HookPosPop marks when an element is extracted from the queue.
var HookPosPop = &hooking.HookPos{Name: "Bucket Pop"}

// A Queue holds elements bucketed by priority level. Level 1 is the most
// urgent and maps to bucket index 0.
type Queue[T any] struct {
	hooking.HookableBase

	name    string
	buckets *dynarray.Array[*linkedlist.List[T]]
	levels  int
	total   int
}

// Name returns the name of the queue.
func (q *Queue[T]) Name() string {
	return q.name
}

// Len returns the total number of elements across all buckets.
func (q *Queue[T]) Len() int {
	return q.total
}

// Levels returns the number of priority levels.
func (q *Queue[T]) Levels() int {
	return q.levels
}

// IsEmpty checks if no bucket holds an element.
func (q *Queue[T]) IsEmpty() bool {
	return q.total == 0
}

// Add admits value at the given priority level. Elements of the same level
// are kept in arrival order.
func (q *Queue[T]) Add(value T, priority int) error {
	bucket, err := q.bucketAt(priority)
	if err != nil {
		return err
	}

	bucket.Add(value)
	q.total++

	if q.NumHooks() > 0 {
		q.InvokeHook(hooking.HookCtx{
			Domain: q,
			Pos:    HookPosAdd,
			Item:   value,
			Detail: priority,
		})
	}

	return nil
}

// Pop extracts the oldest element of the most urgent non-empty bucket.
func (q *Queue[T]) Pop() (T, error) {
	if q.total == 0 {
		var zero T
		return zero, fmt.Errorf("pop: %w", collections.ErrEmptyCollection)
	}

	bucket := q.firstNonEmptyBucket()
	value, _ := bucket.Pop()
	q.total--

	if q.NumHooks() > 0 {
		q.InvokeHook(hooking.HookCtx{
			Domain: q,
			Pos:    HookPosPop,
			Item:   value,
		})
	}

	return value, nil
}

// Peek returns the element Pop would extract, without removing it.
func (q *Queue[T]) Peek() (T, error) {
	if q.total == 0 {
		var zero T
		return zero, fmt.Errorf("peek: %w", collections.ErrEmptyCollection)
	}

	return q.firstNonEmptyBucket().Peek()
}

// LevelLen returns the number of elements waiting at the given priority
// level.
func (q *Queue[T]) LevelLen(priority int) (int, error) {
	bucket, err := q.bucketAt(priority)
	if err != nil {
		return 0, err
	}

	return bucket.Len(), nil
}

// Contains reports whether any element in any bucket satisfies the
// condition.
func (q *Queue[T]) Contains(condition func(T) bool) bool {
	for i := 0; i < q.levels; i++ {
		bucket, _ := q.buckets.At(i)
		if bucket.Contains(condition) {
			return true
		}
	}

	return false
}

func (q *Queue[T]) bucketAt(priority int) (*linkedlist.List[T], error) {
	index := priority - 1
	if index < 0 || index >= q.levels {
		return nil, fmt.Errorf("priority %d outside [1, %d]: %w",
			priority, q.levels, collections.ErrInvalidPriority)
	}

	bucket, _ := q.buckets.At(index)

	return bucket, nil
}

// firstNonEmptyBucket must only be called when the queue is known to be
// non-empty.
func (q *Queue[T]) firstNonEmptyBucket() *linkedlist.List[T] {
	for i := 0; i < q.levels; i++ {
		bucket, _ := q.buckets.At(i)
		if !bucket.IsEmpty() {
			return bucket
		}
	}

	panic("total count out of sync with bucket contents")
}
