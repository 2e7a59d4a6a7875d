package dynarray

import "github.com/structlab/collections/naming"

// A Builder can build dynamic arrays.
type Builder[T any] struct {
	capacity      int
	initialLength int
}

// MakeBuilder creates a builder with the default configuration.
func MakeBuilder[T any]() Builder[T] {
	return Builder[T]{
		capacity: 10,
	}
}

// WithCapacity sets the initial capacity of the array.
func (b Builder[T]) WithCapacity(capacity int) Builder[T] {
	b.capacity = capacity
	return b
}

// WithInitialLength sets the number of zero-valued elements the array
// starts with. It must not exceed the capacity.
func (b Builder[T]) WithInitialLength(length int) Builder[T] {
	b.initialLength = length
	return b
}

func (b Builder[T]) parametersMustBeValid() {
	if b.capacity <= 0 {
		panic("array capacity must be positive")
	}

	if b.initialLength < 0 || b.initialLength > b.capacity {
		panic("array initial length must be in [0, capacity]")
	}
}

// Build builds a new Array.
func (b Builder[T]) Build(name string) *Array[T] {
	naming.MustBeValid(name)
	b.parametersMustBeValid()

	return &Array[T]{
		name:   name,
		buf:    make([]T, b.capacity),
		length: b.initialLength,
	}
}
