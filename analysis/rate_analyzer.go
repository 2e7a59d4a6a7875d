package analysis

import (
	"github.com/structlab/collections"
	"github.com/structlab/collections/hooking"
	"github.com/tebeka/atexit"
)

// RateAnalyzer is a hook that counts how often each kind of operation runs
// on a container.
type RateAnalyzer struct {
	PerfLogger
	OpTeller

	usePeriod bool
	period    int64
	container collections.Container

	lastOp     int64
	posToCount map[string]int64
}

// Func tallies the operation that triggered the hook.
func (a *RateAnalyzer) Func(ctx hooking.HookCtx) {
	now := a.CurrentOp()

	if a.usePeriod {
		lastPeriodEndOp := a.periodEndOp(a.lastOp)
		if now > lastPeriodEndOp {
			a.summarize()
		}
	}

	if a.posToCount == nil {
		a.posToCount = make(map[string]int64)
	}

	a.posToCount[ctx.Pos.Name]++
	a.lastOp = now
}

func (a *RateAnalyzer) summarize() {
	now := a.CurrentOp()

	startOp := int64(0)
	endOp := now

	if a.usePeriod {
		startOp = a.periodStartOp(a.lastOp)
		endOp = a.periodEndOp(a.lastOp)

		if endOp > now {
			endOp = now
		}
	}

	for pos, count := range a.posToCount {
		if count == 0 {
			continue
		}

		a.PerfLogger.AddDataEntry(PerfEntry{
			Start:     startOp,
			End:       endOp,
			Where:     a.container.Name(),
			What:      pos,
			EntryType: "Rate",
			Value:     float64(count),
			Unit:      "Op",
		})
	}

	a.posToCount = make(map[string]int64)
}

func (a *RateAnalyzer) periodStartOp(op int64) int64 {
	return op / a.period * a.period
}

func (a *RateAnalyzer) periodEndOp(op int64) int64 {
	return a.periodStartOp(op) + a.period
}

// RateAnalyzerBuilder can build a RateAnalyzer.
type RateAnalyzerBuilder struct {
	perfLogger PerfLogger
	opTeller   OpTeller
	usePeriod  bool
	period     int64
	container  collections.Container
}

// MakeRateAnalyzerBuilder creates a RateAnalyzerBuilder.
func MakeRateAnalyzerBuilder() RateAnalyzerBuilder {
	return RateAnalyzerBuilder{}
}

// WithPerfLogger sets the logger to be used by the RateAnalyzer.
func (b RateAnalyzerBuilder) WithPerfLogger(l PerfLogger) RateAnalyzerBuilder {
	b.perfLogger = l
	return b
}

// WithOpTeller sets the OpTeller to be used by the RateAnalyzer.
func (b RateAnalyzerBuilder) WithOpTeller(t OpTeller) RateAnalyzerBuilder {
	b.opTeller = t
	return b
}

// WithPeriod sets the period, in operations, to summarize over.
func (b RateAnalyzerBuilder) WithPeriod(p int64) RateAnalyzerBuilder {
	b.usePeriod = true
	b.period = p

	return b
}

// WithContainer sets the container to observe.
func (b RateAnalyzerBuilder) WithContainer(
	c collections.Container,
) RateAnalyzerBuilder {
	b.container = c
	return b
}

// Build creates a RateAnalyzer.
func (b RateAnalyzerBuilder) Build() *RateAnalyzer {
	if b.perfLogger == nil {
		panic("RateAnalyzer requires a PerfLogger")
	}

	if b.opTeller == nil {
		panic("RateAnalyzer requires an OpTeller")
	}

	if b.container == nil {
		panic("RateAnalyzer requires a container")
	}

	a := &RateAnalyzer{
		PerfLogger: b.perfLogger,
		OpTeller:   b.opTeller,
		usePeriod:  b.usePeriod,
		period:     b.period,
		container:  b.container,
	}

	atexit.Register(func() { a.summarize() })

	return a
}
