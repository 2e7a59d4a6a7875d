package analysis

import (
	"github.com/structlab/collections"
)

// PerfAnalyzer reports performance metrics of registered containers. It
// owns the operation counter that serves as the shared logical clock, so
// every registered container advances the same count.
type PerfAnalyzer struct {
	usePeriod bool
	period    int64
	opCounter *OpCounter
	backend   PerfAnalyzerBackend
}

// RegisterContainer registers a container to be analyzed. The operation
// counter is attached first so that level and rate analyzers observe an
// already-advanced count.
func (p *PerfAnalyzer) RegisterContainer(c collections.Container) {
	c.AcceptHook(p.opCounter)

	levelAnalyzerBuilder := MakeLevelAnalyzerBuilder().
		WithOpTeller(p.opCounter).
		WithPerfLogger(p).
		WithContainer(c)

	if p.usePeriod {
		levelAnalyzerBuilder = levelAnalyzerBuilder.WithPeriod(p.period)
	}

	c.AcceptHook(levelAnalyzerBuilder.Build())

	rateAnalyzerBuilder := MakeRateAnalyzerBuilder().
		WithOpTeller(p.opCounter).
		WithPerfLogger(p).
		WithContainer(c)

	if p.usePeriod {
		rateAnalyzerBuilder = rateAnalyzerBuilder.WithPeriod(p.period)
	}

	c.AcceptHook(rateAnalyzerBuilder.Build())
}

// CurrentOp returns the number of operations completed across all
// registered containers.
func (p *PerfAnalyzer) CurrentOp() int64 {
	return p.opCounter.CurrentOp()
}

// AddDataEntry adds a data entry to the backend.
func (p *PerfAnalyzer) AddDataEntry(entry PerfEntry) {
	p.backend.AddDataEntry(entry)
}

// PerfAnalyzerBuilder is a builder that can build a PerfAnalyzer.
type PerfAnalyzerBuilder struct {
	usePeriod   bool
	period      int64
	backendType string
	dbFilename  string
}

// MakePerfAnalyzerBuilder creates a new PerfAnalyzerBuilder.
func MakePerfAnalyzerBuilder() PerfAnalyzerBuilder {
	return PerfAnalyzerBuilder{
		backendType: "csv",
		dbFilename:  "perf",
	}
}

// WithPeriod sets the period, in operations, of the PerfAnalyzer.
func (b PerfAnalyzerBuilder) WithPeriod(period int64) PerfAnalyzerBuilder {
	b.usePeriod = true
	b.period = period
	return b
}

// WithSQLiteBackend sets the backend of the PerfAnalyzer to be a SQLite
// database.
func (b PerfAnalyzerBuilder) WithSQLiteBackend() PerfAnalyzerBuilder {
	b.backendType = "sqlite"
	return b
}

// WithDBFilename sets the filename of the database file, without the
// extension.
func (b PerfAnalyzerBuilder) WithDBFilename(
	filename string,
) PerfAnalyzerBuilder {
	b.dbFilename = filename
	return b
}

// Build creates a PerfAnalyzer.
func (b PerfAnalyzerBuilder) Build() *PerfAnalyzer {
	var backend PerfAnalyzerBackend

	switch b.backendType {
	case "csv":
		backend = NewCSVPerfAnalyzerBackend(b.dbFilename)
	case "sqlite":
		backend = NewSQLitePerfAnalyzerBackend(b.dbFilename)
	default:
		panic("unknown backend type " + b.backendType)
	}

	return &PerfAnalyzer{
		usePeriod: b.usePeriod,
		period:    b.period,
		opCounter: NewOpCounter(),
		backend:   backend,
	}
}
