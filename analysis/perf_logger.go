// Package analysis reports statistics about containers while a program
// runs. Analyzers are hooks; they observe operations without changing the
// behavior of the container they are attached to. Since containers have no
// clock, progress is measured in completed operations rather than time.
package analysis

import (
	"github.com/structlab/collections/hooking"
)

// PerfEntry is a single entry in the performance database. Start and End
// are operation counts that delimit the reported period.
type PerfEntry struct {
	Start     int64
	End       int64
	Where     string
	What      string
	EntryType string
	Value     float64
	Unit      string
}

// PerfLogger is the interface that provides the service that can record
// performance data entries.
type PerfLogger interface {
	AddDataEntry(entry PerfEntry)
}

// OpTeller tells how many container operations have completed so far.
type OpTeller interface {
	CurrentOp() int64
}

// An OpCounter is a hook that advances the operation count every time a
// hooked container operation completes. It serves as the logical clock for
// all analyzers that share it.
type OpCounter struct {
	count int64
}

// NewOpCounter creates an OpCounter starting at zero.
func NewOpCounter() *OpCounter {
	return &OpCounter{}
}

// Func counts one completed operation.
func (c *OpCounter) Func(ctx hooking.HookCtx) {
	c.count++
}

// CurrentOp returns the number of operations completed so far.
func (c *OpCounter) CurrentOp() int64 {
	return c.count
}
