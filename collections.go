// Package collections defines the error taxonomy and the common views that
// all containers in this module share. The containers themselves live in
// the dynarray, linkedlist, ringqueue, and bucketqueue packages.
package collections

import (
	"github.com/structlab/collections/hooking"
	"github.com/structlab/collections/naming"
)

// A Container is the read-only view of any container in this module. It is
// the unit that the analysis and monitoring layers operate on.
type Container interface {
	naming.Named
	hooking.Hookable

	// Len returns the number of elements currently held.
	Len() int
}

// A Bounded container additionally has a fixed capacity.
type Bounded interface {
	Container

	Capacity() int
}
