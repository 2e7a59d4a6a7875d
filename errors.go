package collections

import "errors"

// ErrEmptyCollection is returned when an element is requested from an empty
// container. The container is left unchanged.
var ErrEmptyCollection = errors.New("collection is empty")

// ErrIndexOutOfBounds is returned when an index falls outside the valid
// range of a container. No mutation takes place.
var ErrIndexOutOfBounds = errors.New("index out of bounds")

// ErrCapacityExceeded is returned when an element is added to a
// fixed-capacity container that is already full.
var ErrCapacityExceeded = errors.New("capacity exceeded")

// ErrInvalidPriority is returned when a priority level does not map to a
// configured bucket.
var ErrInvalidPriority = errors.New("invalid priority level")
