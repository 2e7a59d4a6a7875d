package bucketqueue

import (
	"github.com/structlab/collections/dynarray"
	"github.com/structlab/collections/linkedlist"
	"github.com/structlab/collections/naming"
)

// A Builder can build bucket priority queues.
type Builder[T any] struct {
	levels int
}

// MakeBuilder creates a builder with the default configuration of three
// priority levels.
func MakeBuilder[T any]() Builder[T] {
	return Builder[T]{
		levels: 3,
	}
}

// WithLevels sets the number of discrete priority levels.
func (b Builder[T]) WithLevels(levels int) Builder[T] {
	b.levels = levels
	return b
}

func (b Builder[T]) parametersMustBeValid() {
	if b.levels <= 0 {
		panic("bucket queue must have at least one priority level")
	}
}

// Build builds a new Queue.
func (b Builder[T]) Build(name string) *Queue[T] {
	naming.MustBeValid(name)
	b.parametersMustBeValid()

	buckets := dynarray.MakeBuilder[*linkedlist.List[T]]().
		WithCapacity(b.levels).
		Build(naming.Build(name, "Buckets"))

	for i := 0; i < b.levels; i++ {
		buckets.Append(linkedlist.MakeBuilder[T]().
			Build(naming.BuildWithIndex(name, "Bucket", i)))
	}

	return &Queue[T]{
		name:    name,
		buckets: buckets,
		levels:  b.levels,
	}
}
