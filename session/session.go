// Package session bundles the services that observe containers during one
// run of a program: a data recorder, a performance analyzer, and an
// optional monitoring server. Containers registered with a session are
// automatically wired to all of them.
package session

import (
	"github.com/structlab/collections"
	"github.com/structlab/collections/analysis"
	"github.com/structlab/collections/datarecording"
	"github.com/structlab/collections/monitoring"
)

// A Session provides the services required to observe containers.
type Session struct {
	id string

	dataRecorder datarecording.DataRecorder
	monitor      *monitoring.Monitor
	perfAnalyzer *analysis.PerfAnalyzer

	containers []collections.Container
	nameIndex  map[string]int
}

// ID returns the unique ID of the session.
func (s *Session) ID() string {
	return s.id
}

// GetDataRecorder returns the data recorder used in the session.
func (s *Session) GetDataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

// GetMonitor returns the monitor used in the session. It is nil when
// monitoring is disabled.
func (s *Session) GetMonitor() *monitoring.Monitor {
	return s.monitor
}

// GetPerfAnalyzer returns the performance analyzer used in the session.
func (s *Session) GetPerfAnalyzer() *analysis.PerfAnalyzer {
	return s.perfAnalyzer
}

// RegisterContainer registers a container with the session, attaching the
// performance analyzer and, when enabled, the monitor.
func (s *Session) RegisterContainer(c collections.Container) {
	name := c.Name()
	if _, ok := s.nameIndex[name]; ok {
		panic("container " + name + " already registered")
	}

	s.containers = append(s.containers, c)
	s.nameIndex[name] = len(s.containers) - 1

	s.perfAnalyzer.RegisterContainer(c)

	if s.monitor != nil {
		s.monitor.RegisterContainer(c)
	}
}

// GetContainerByName returns the registered container with the given name.
func (s *Session) GetContainerByName(name string) collections.Container {
	index, ok := s.nameIndex[name]
	if !ok {
		panic("container " + name + " not registered")
	}

	return s.containers[index]
}

// Terminate terminates the session.
func (s *Session) Terminate() {
	s.dataRecorder.Close()
}
