package linkedlist

import "github.com/structlab/collections/naming"

// A Builder can build lists.
type Builder[T any] struct{}

// MakeBuilder creates a builder with the default configuration.
func MakeBuilder[T any]() Builder[T] {
	return Builder[T]{}
}

// Build builds a new List with the FIFO insertion policy.
func (b Builder[T]) Build(name string) *List[T] {
	naming.MustBeValid(name)

	return &List[T]{
		name:   name,
		policy: insertAtTail,
	}
}
