package ringqueue

import (
	"github.com/structlab/collections/dynarray"
	"github.com/structlab/collections/naming"
)

// A Builder can build ring queues.
type Builder[T any] struct {
	capacity int
}

// MakeBuilder creates a builder with the default configuration.
func MakeBuilder[T any]() Builder[T] {
	return Builder[T]{
		capacity: 4,
	}
}

// WithCapacity sets the fixed capacity of the queue.
func (b Builder[T]) WithCapacity(capacity int) Builder[T] {
	b.capacity = capacity
	return b
}

func (b Builder[T]) parametersMustBeValid() {
	if b.capacity <= 0 {
		panic("ring queue capacity must be positive")
	}
}

// Build builds a new Queue.
func (b Builder[T]) Build(name string) *Queue[T] {
	naming.MustBeValid(name)
	b.parametersMustBeValid()

	buf := dynarray.MakeBuilder[T]().
		WithCapacity(b.capacity).
		WithInitialLength(b.capacity).
		Build(naming.Build(name, "Buffer"))

	return &Queue[T]{
		name:     name,
		buf:      buf,
		capacity: b.capacity,
		front:    0,
		rear:     -1,
	}
}
