package session

import (
	"github.com/rs/xid"

	"github.com/structlab/collections/analysis"
	"github.com/structlab/collections/datarecording"
	"github.com/structlab/collections/monitoring"
)

// Builder can be used to build a session.
type Builder struct {
	monitorOn      bool
	monitorPort    int
	browserOn      bool
	analysisPeriod int64
	outputFileName string
}

// MakeBuilder creates a new builder.
func MakeBuilder() Builder {
	return Builder{
		monitorOn: true,
	}
}

// WithoutMonitoring sets the session to not start a monitoring server.
func (b Builder) WithoutMonitoring() Builder {
	b.monitorOn = false
	return b
}

// WithMonitorPort sets the port number for the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorPort = port
	return b
}

// WithBrowserOpen makes the session open the monitoring dashboard in the
// default browser.
func (b Builder) WithBrowserOpen() Builder {
	b.browserOn = true
	return b
}

// WithAnalysisPeriod sets the number of operations the performance
// analyzer summarizes over.
func (b Builder) WithAnalysisPeriod(period int64) Builder {
	b.analysisPeriod = period
	return b
}

// WithOutputFileName sets the custom output file name for the data
// recorder and the performance database.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.outputFileName = filename
	return b
}

func (b Builder) parametersMustBeValid() {
	if !b.monitorOn && b.monitorPort != 0 {
		panic("monitor port cannot be set when monitoring is disabled")
	}

	if !b.monitorOn && b.browserOn {
		panic("browser cannot be opened when monitoring is disabled")
	}

	if b.analysisPeriod < 0 {
		panic("analysis period must be positive")
	}
}

// Build builds the session.
func (b Builder) Build() *Session {
	b.parametersMustBeValid()

	s := &Session{
		nameIndex: make(map[string]int),
	}

	s.id = xid.New().String()

	outputPath := b.outputFileName
	if outputPath == "" {
		outputPath = "collections_session_" + s.id
	}
	s.dataRecorder = datarecording.New(outputPath)

	perfAnalyzerBuilder := analysis.MakePerfAnalyzerBuilder().
		WithSQLiteBackend().
		WithDBFilename(outputPath + "_perf")

	if b.analysisPeriod > 0 {
		perfAnalyzerBuilder = perfAnalyzerBuilder.
			WithPeriod(b.analysisPeriod)
	}

	s.perfAnalyzer = perfAnalyzerBuilder.Build()

	if b.monitorOn {
		s.monitor = monitoring.NewMonitor()

		if b.monitorPort > 0 {
			s.monitor.WithPortNumber(b.monitorPort)
		}

		if b.browserOn {
			s.monitor.WithBrowserOpen()
		}

		s.monitor.RegisterPerfAnalyzer(s.perfAnalyzer)
		s.monitor.StartServer()
	}

	return s
}
