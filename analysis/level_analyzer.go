package analysis

import (
	"github.com/structlab/collections"
	"github.com/structlab/collections/hooking"
	"github.com/tebeka/atexit"
)

// LevelAnalyzer can periodically record the number of elements held by a
// container.
type LevelAnalyzer struct {
	PerfLogger
	OpTeller

	container collections.Container
	usePeriod bool
	period    int64

	lastOp          int64
	lastLevel       int
	levelToDuration map[int]int64
}

// Func records a level change of the observed container.
func (a *LevelAnalyzer) Func(ctx hooking.HookCtx) {
	now := a.CurrentOp()
	c := ctx.Domain.(collections.Container)
	currLevel := c.Len()

	if a.usePeriod {
		lastPeriodEndOp := a.periodEndOp(a.lastOp)

		if now > lastPeriodEndOp {
			a.summarize()
			a.resetPeriod()
		}
	}

	a.levelToDuration[a.lastLevel] += now - a.lastOp
	a.lastLevel = currLevel
	a.lastOp = now
}

func (a *LevelAnalyzer) summarize() {
	now := a.CurrentOp()

	if !a.usePeriod {
		a.summarizePeriod(now, 0, now)
		return
	}

	periodStartOp := a.periodStartOp(a.lastOp)
	periodEndOp := a.periodEndOp(a.lastOp)

	for periodEndOp < now {
		a.summarizePeriod(now, periodStartOp, periodEndOp)

		a.levelToDuration = make(map[int]int64)
		a.lastOp = periodEndOp
		periodStartOp = periodEndOp
		periodEndOp = periodStartOp + a.period
	}
}

func (a *LevelAnalyzer) summarizePeriod(
	now, periodStartOp, periodEndOp int64,
) {
	sumLevel := 0.0
	sumDuration := 0.0
	for level, duration := range a.levelToDuration {
		sumLevel += float64(level) * float64(duration)
		sumDuration += float64(duration)
	}

	summarizeEndOp := minOp(periodEndOp, now)
	if summarizeEndOp > a.lastOp {
		remainingOps := summarizeEndOp - a.lastOp
		sumLevel += float64(a.lastLevel) * float64(remainingOps)
		sumDuration += float64(remainingOps)
	}

	avgLevel := sumLevel / sumDuration

	if avgLevel == 0 {
		return
	}

	a.PerfLogger.AddDataEntry(PerfEntry{
		Start:     periodStartOp,
		End:       periodEndOp,
		Where:     a.container.Name(),
		What:      "Level",
		EntryType: "Container",
		Value:     avgLevel,
		Unit:      "",
	})
}

func (a *LevelAnalyzer) resetPeriod() {
	now := a.CurrentOp()

	a.levelToDuration = make(map[int]int64)

	a.lastOp = a.periodStartOp(now)
}

func (a *LevelAnalyzer) periodStartOp(op int64) int64 {
	return op / a.period * a.period
}

func (a *LevelAnalyzer) periodEndOp(op int64) int64 {
	return a.periodStartOp(op) + a.period
}

func minOp(a, b int64) int64 {
	if a < b {
		return a
	}

	return b
}

// LevelAnalyzerBuilder can build a LevelAnalyzer.
type LevelAnalyzerBuilder struct {
	perfLogger PerfLogger
	opTeller   OpTeller
	usePeriod  bool
	period     int64
	container  collections.Container
}

// MakeLevelAnalyzerBuilder creates a LevelAnalyzerBuilder.
func MakeLevelAnalyzerBuilder() LevelAnalyzerBuilder {
	return LevelAnalyzerBuilder{}
}

// WithPerfLogger sets the PerfLogger to use.
func (b LevelAnalyzerBuilder) WithPerfLogger(
	perfLogger PerfLogger,
) LevelAnalyzerBuilder {
	b.perfLogger = perfLogger
	return b
}

// WithOpTeller sets the OpTeller to use.
func (b LevelAnalyzerBuilder) WithOpTeller(
	opTeller OpTeller,
) LevelAnalyzerBuilder {
	b.opTeller = opTeller
	return b
}

// WithPeriod sets the period, in operations, to summarize over.
func (b LevelAnalyzerBuilder) WithPeriod(period int64) LevelAnalyzerBuilder {
	b.usePeriod = true
	b.period = period
	return b
}

// WithContainer sets the container to observe.
func (b LevelAnalyzerBuilder) WithContainer(
	c collections.Container,
) LevelAnalyzerBuilder {
	b.container = c
	return b
}

// Build creates a LevelAnalyzer.
func (b LevelAnalyzerBuilder) Build() *LevelAnalyzer {
	if b.perfLogger == nil {
		panic("LevelAnalyzer requires a PerfLogger")
	}

	if b.opTeller == nil {
		panic("LevelAnalyzer requires an OpTeller")
	}

	if b.container == nil {
		panic("LevelAnalyzer requires a container")
	}

	analyzer := &LevelAnalyzer{
		PerfLogger:      b.perfLogger,
		OpTeller:        b.opTeller,
		container:       b.container,
		usePeriod:       b.usePeriod,
		period:          b.period,
		levelToDuration: make(map[int]int64),
	}

	atexit.Register(func() {
		analyzer.summarize()
	})

	return analyzer
}
