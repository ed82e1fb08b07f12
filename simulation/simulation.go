// Package simulation wires an engine together with the services that observe
// it: the count tracer, the database recorder, the CSV trace and the monitor.
package simulation

import (
	"github.com/sarchlab/tickloop/datarecording"
	"github.com/sarchlab/tickloop/monitoring"
	"github.com/sarchlab/tickloop/tick"
	"github.com/sarchlab/tickloop/tracing"
)

// A Simulation provides the service requires to run an engine over a world.
type Simulation[W any] struct {
	id     string
	engine *tick.Engine[W]
	world  *W

	counter      *tracing.CountTracer
	dataRecorder datarecording.DataRecorder
	dbTracer     *tracing.DBTracer
	traceWriter  *tracing.CSVTraceWriter
	monitor      *monitoring.Monitor
}

// ID returns the unique id of the simulation.
func (s *Simulation[W]) ID() string {
	return s.id
}

// GetEngine returns the engine used in the simulation.
func (s *Simulation[W]) GetEngine() *tick.Engine[W] {
	return s.engine
}

// GetDataRecorder returns the data recorder used in the simulation. It is nil
// if recording is disabled.
func (s *Simulation[W]) GetDataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

// GetMonitor returns the monitor used in the simulation. It is nil if
// monitoring is disabled.
func (s *Simulation[W]) GetMonitor() *monitoring.Monitor {
	return s.monitor
}

// GetCountTracer returns the tracer counting executions by kind.
func (s *Simulation[W]) GetCountTracer() *tracing.CountTracer {
	return s.counter
}

// RegisterWorld sets the world that Run steps the engine over.
func (s *Simulation[W]) RegisterWorld(world *W) {
	s.world = world

	if s.monitor != nil {
		s.monitor.RegisterWorld(world)
	}
}

// GetWorld returns the registered world.
func (s *Simulation[W]) GetWorld() *W {
	return s.world
}

// Run steps the engine the given number of ticks over the registered world.
func (s *Simulation[W]) Run(ticks uint64) {
	if s.world == nil {
		panic("world is not registered")
	}

	var bar *monitoring.ProgressBar
	if s.monitor != nil {
		bar = s.monitor.CreateProgressBar("Ticks", ticks)
		defer s.monitor.CompleteProgressBar(bar)
	}

	for i := uint64(0); i < ticks; i++ {
		s.engine.Step(s.world)

		if bar != nil {
			bar.IncrementFinished(1)
		}
	}
}

// Terminate flushes and closes everything the simulation has opened.
func (s *Simulation[W]) Terminate() {
	if s.traceWriter != nil {
		s.traceWriter.Close()
	}

	if s.dataRecorder != nil {
		s.dataRecorder.Close()
	}

	if s.monitor != nil {
		s.monitor.StopServer()
	}
}
