// Package linkedlist provides an owning singly linked sequence and its LIFO
// specialization. A List adds at the tail (FIFO); a Stack adds at the head
// (LIFO). The insertion policy is the only behavioral difference between
// the two.
package linkedlist

import (
	"fmt"
	"io"

	"github.com/structlab/collections"
	"github.com/structlab/collections/hooking"
)

// HookPosAdd marks when an element is added to the list.
var HookPosAdd = &hooking.HookPos{Name: "List Add"}

// HookPosPop marks when an element is removed from the head of the list.
var HookPosPop = &hooking.HookPos{Name: "List Pop"}

// insertionPolicy selects where Add places new elements.
type insertionPolicy int

const (
	insertAtTail insertionPolicy = iota
	insertAtHead
)

type node[T any] struct {
	value T
	next  *node[T]
}

// A List is a singly linked sequence. The list exclusively owns every node
// in its chain; nodes are created on insertion and released on removal.
type List[T any] struct {
	hooking.HookableBase

	name   string
	policy insertionPolicy

	head   *node[T]
	tail   *node[T]
	length int
}

// Name returns the name of the list.
func (l *List[T]) Name() string {
	return l.name
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.length
}

// IsEmpty checks if the list holds no elements.
func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

// Add inserts value according to the list's insertion policy, at the tail
// for a List and at the head for a Stack. Both placements are O(1).
func (l *List[T]) Add(value T) {
	n := &node[T]{value: value}

	switch {
	case l.head == nil:
		l.head = n
		l.tail = n
	case l.policy == insertAtHead:
		n.next = l.head
		l.head = n
	default:
		l.tail.next = n
		l.tail = n
	}

	l.length++

	if l.NumHooks() > 0 {
		l.InvokeHook(hooking.HookCtx{
			Domain: l,
			Pos:    HookPosAdd,
			Item:   value,
		})
	}
}

// Peek returns the head's value without removing it.
func (l *List[T]) Peek() (T, error) {
	if l.head == nil {
		var zero T
		return zero, fmt.Errorf("peek: %w", collections.ErrEmptyCollection)
	}

	return l.head.value, nil
}

// Pop removes and returns the head's value.
func (l *List[T]) Pop() (T, error) {
	if l.head == nil {
		var zero T
		return zero, fmt.Errorf("pop: %w", collections.ErrEmptyCollection)
	}

	value := l.head.value
	l.head = l.head.next
	if l.head == nil {
		l.tail = nil
	}

	l.length--

	if l.NumHooks() > 0 {
		l.InvokeHook(hooking.HookCtx{
			Domain: l,
			Pos:    HookPosPop,
			Item:   value,
		})
	}

	return value, nil
}

// Contains reports whether any element satisfies the condition. The scan
// stops at the first match.
func (l *List[T]) Contains(condition func(T) bool) bool {
	for n := l.head; n != nil; n = n.next {
		if condition(n.value) {
			return true
		}
	}

	return false
}

// Reverse flips the chain in place with three cursors. Lists of fewer than
// two elements are left untouched.
func (l *List[T]) Reverse() {
	if l.head == l.tail {
		return
	}

	var previous *node[T]
	current := l.head

	for current != nil {
		next := current.next
		current.next = previous
		previous = current
		current = next
	}

	l.head, l.tail = l.tail, l.head
}

// Clear releases every node and resets the list to its empty state.
func (l *List[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.length = 0
}

// Store writes the list as a count followed by the elements in traversal
// order, whitespace-separated.
func (l *List[T]) Store(w io.Writer) error {
	if _, err := fmt.Fprint(w, l.length); err != nil {
		return fmt.Errorf("store list: %w", err)
	}

	for n := l.head; n != nil; n = n.next {
		if _, err := fmt.Fprintf(w, " %v", n.value); err != nil {
			return fmt.Errorf("store list: %w", err)
		}
	}

	return nil
}

// Load clears the list and reads the format written by Store. Elements are
// re-attached at the tail regardless of the insertion policy so that the
// traversal order round-trips.
func (l *List[T]) Load(r io.Reader) error {
	l.Clear()

	var count int
	if _, err := fmt.Fscan(r, &count); err != nil {
		return fmt.Errorf("load list: %w", err)
	}

	for i := 0; i < count; i++ {
		var value T
		if _, err := fmt.Fscan(r, &value); err != nil {
			return fmt.Errorf("load list: %w", err)
		}

		n := &node[T]{value: value}
		if l.head == nil {
			l.head = n
		} else {
			l.tail.next = n
		}
		l.tail = n
		l.length++
	}

	return nil
}
