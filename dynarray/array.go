// Package dynarray provides an owning, contiguous, resizable sequence with
// bounds-checked random access and an in-place merge sort. Capacity follows
// a golden-ratio growth and shrink policy so that the two thresholds never
// thrash against each other.
package dynarray

import (
	"fmt"

	"github.com/structlab/collections"
	"github.com/structlab/collections/hooking"
)

// HookPosInsert marks when an element is inserted into the array.
var HookPosInsert = &hooking.HookPos{Name: "Array Insert"}

// HookPosRemove marks when an element is removed from the array.
var HookPosRemove = &hooking.HookPos{Name: "Array Remove"}

const (
	goldenRatio = 1.618

	// Capacities at or below this floor are never shrunk.
	shrinkFloor = 20
)

// An Array is a dynamic array. Elements at indices [0, Len()) are live; the
// remainder of the buffer is unspecified. The array owns its buffer
// exclusively and replaces it only after a new buffer is fully populated.
type Array[T any] struct {
	hooking.HookableBase

	name   string
	buf    []T
	length int
}

// Name returns the name of the array.
func (a *Array[T]) Name() string {
	return a.name
}

// Len returns the number of live elements.
func (a *Array[T]) Len() int {
	return a.length
}

// Capacity returns the current size of the underlying buffer.
func (a *Array[T]) Capacity() int {
	return len(a.buf)
}

// At returns the element at the given index.
func (a *Array[T]) At(index int) (T, error) {
	if index < 0 || index >= a.length {
		var zero T
		return zero, outOfBounds(index, a.length)
	}

	return a.buf[index], nil
}

// Set overwrites the element at the given index.
func (a *Array[T]) Set(index int, value T) error {
	if index < 0 || index >= a.length {
		return outOfBounds(index, a.length)
	}

	a.buf[index] = value

	return nil
}

// Insert places value at the given index, shifting the elements at
// [index, Len()) one position to the right. Index Len() appends.
func (a *Array[T]) Insert(index int, value T) error {
	if index < 0 || index > a.length {
		return outOfBounds(index, a.length+1)
	}

	a.grow()

	for i := a.length; i > index; i-- {
		a.buf[i] = a.buf[i-1]
	}

	a.buf[index] = value
	a.length++

	if a.NumHooks() > 0 {
		a.InvokeHook(hooking.HookCtx{
			Domain: a,
			Pos:    HookPosInsert,
			Item:   value,
		})
	}

	return nil
}

// Append places value after the last element.
func (a *Array[T]) Append(value T) {
	// Index Len() is always valid.
	_ = a.Insert(a.length, value)
}

// Remove discards the element at the given index, shifting the elements
// above it one position to the left.
func (a *Array[T]) Remove(index int) error {
	if index < 0 || index >= a.length {
		return outOfBounds(index, a.length)
	}

	removed := a.buf[index]

	a.length--
	for i := index; i < a.length; i++ {
		a.buf[i] = a.buf[i+1]
	}

	var zero T
	a.buf[a.length] = zero

	a.shrink()

	if a.NumHooks() > 0 {
		a.InvokeHook(hooking.HookCtx{
			Domain: a,
			Pos:    HookPosRemove,
			Item:   removed,
		})
	}

	return nil
}

// RemoveLast discards the last element.
func (a *Array[T]) RemoveLast() error {
	return a.Remove(a.length - 1)
}

// Sort sorts the live elements in place with a recursive merge sort. The
// sort places an element from the left half before an equal element from
// the right half.
func (a *Array[T]) Sort(less func(a, b T) bool) {
	mergeSort(a.buf[:a.length], less)
}

// grow replaces the buffer with one scaled by the golden ratio once every
// slot is occupied. The old buffer stays intact until the new one holds
// every element.
func (a *Array[T]) grow() {
	if a.length < len(a.buf) {
		return
	}

	newCap := int(float64(len(a.buf)) * goldenRatio)
	if newCap <= len(a.buf) {
		// A capacity of 1 does not grow under the ratio alone.
		newCap = len(a.buf) + 1
	}

	newBuf := make([]T, newCap)
	copy(newBuf, a.buf)
	a.buf = newBuf
}

// shrink replaces the buffer with one reduced by the golden ratio when
// occupancy drops below capacity/φ². The trigger point sits strictly below
// the growth trigger of the reduced capacity, which prevents thrashing.
func (a *Array[T]) shrink() {
	if len(a.buf) <= shrinkFloor {
		return
	}

	if a.length > int(float64(len(a.buf))/(goldenRatio*goldenRatio)) {
		return
	}

	newCap := int(float64(len(a.buf)) / goldenRatio)

	// The shrink threshold guarantees length <= newCap.
	newBuf := make([]T, newCap)
	copy(newBuf, a.buf[:newCap])
	a.buf = newBuf
}

func outOfBounds(index, length int) error {
	return fmt.Errorf("index %d outside [0, %d): %w",
		index, length, collections.ErrIndexOutOfBounds)
}
