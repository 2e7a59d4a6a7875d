package linkedlist

import "github.com/structlab/collections/naming"

// A Stack is a List built with the head insertion policy, giving LIFO
// semantics: Pop always returns the most recently added value. Every other
// operation is inherited from List unchanged.
type Stack[T any] struct {
	List[T]
}

// A StackBuilder can build stacks.
type StackBuilder[T any] struct{}

// MakeStackBuilder creates a builder with the default configuration.
func MakeStackBuilder[T any]() StackBuilder[T] {
	return StackBuilder[T]{}
}

// Build builds a new Stack.
func (b StackBuilder[T]) Build(name string) *Stack[T] {
	naming.MustBeValid(name)

	s := &Stack[T]{}
	s.name = name
	s.policy = insertAtHead

	return s
}
