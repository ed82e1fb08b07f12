package simulation

import (
	"log/slog"

	"github.com/rs/xid"
	"github.com/sarchlab/tickloop/datarecording"
	"github.com/sarchlab/tickloop/monitoring"
	"github.com/sarchlab/tickloop/tick"
	"github.com/sarchlab/tickloop/tracing"
)

// Builder can be used to build a simulation.
type Builder[W any] struct {
	engineBuilder  tick.Builder[W]
	logger         *slog.Logger
	monitorOn      bool
	monitorPort    int
	openBrowser    bool
	recordOn       bool
	outputFileName string
	traceFileName  string
	logExecutions  bool
}

// MakeBuilder creates a new builder. Monitoring and recording are on by
// default.
func MakeBuilder[W any]() Builder[W] {
	return Builder[W]{
		engineBuilder: tick.MakeBuilder[W](),
		monitorOn:     true,
		recordOn:      true,
	}
}

// WithEngineBuilder sets the builder used to create the engine, which carries
// the execution budget and the initial event pool.
func (b Builder[W]) WithEngineBuilder(eb tick.Builder[W]) Builder[W] {
	b.engineBuilder = eb
	return b
}

// WithLogger sets the logger handed to the engine and the log tracer. Without
// it, the engine keeps the logger of its builder and the log tracer uses
// slog.Default.
func (b Builder[W]) WithLogger(logger *slog.Logger) Builder[W] {
	b.logger = logger
	return b
}

// WithoutMonitoring sets the simulation to not use monitoring.
func (b Builder[W]) WithoutMonitoring() Builder[W] {
	b.monitorOn = false
	return b
}

// WithMonitorPort sets the port number for the monitoring server.
func (b Builder[W]) WithMonitorPort(port int) Builder[W] {
	b.monitorPort = port
	return b
}

// WithBrowser opens the monitoring page once the server is up.
func (b Builder[W]) WithBrowser() Builder[W] {
	b.openBrowser = true
	return b
}

// WithoutRecording sets the simulation to not store executions into a
// database.
func (b Builder[W]) WithoutRecording() Builder[W] {
	b.recordOn = false
	return b
}

// WithOutputFileName sets the custom output file name for the data recorder.
func (b Builder[W]) WithOutputFileName(filename string) Builder[W] {
	b.outputFileName = filename
	return b
}

// WithTraceFileName writes every execution into filename + ".csv".
func (b Builder[W]) WithTraceFileName(filename string) Builder[W] {
	b.traceFileName = filename
	return b
}

// WithExecutionLogging logs every execution at debug level.
func (b Builder[W]) WithExecutionLogging() Builder[W] {
	b.logExecutions = true
	return b
}

func (b Builder[W]) parametersMustBeValid() {
	if !b.monitorOn && b.monitorPort != 0 {
		panic("monitor port cannot be set when monitoring is disabled")
	}

	if !b.monitorOn && b.openBrowser {
		panic("browser cannot be opened when monitoring is disabled")
	}

	if !b.recordOn && b.outputFileName != "" {
		panic("output file cannot be set when recording is disabled")
	}
}

// Build builds the simulation.
func (b Builder[W]) Build() *Simulation[W] {
	b.parametersMustBeValid()

	s := &Simulation[W]{}
	s.id = xid.New().String()

	eb := b.engineBuilder
	logger := slog.Default()
	if b.logger != nil {
		logger = b.logger
		eb = eb.WithLogger(logger)
	}

	s.counter = tracing.NewCountTracer()
	eb = eb.WithHook(s.counter)

	if b.recordOn {
		outputPath := b.outputFileName
		if outputPath == "" {
			outputPath = "tickloop_sim_" + s.id
		}

		s.dataRecorder = datarecording.New(outputPath)
		s.dbTracer = tracing.NewDBTracer(s.dataRecorder)
		eb = eb.WithHook(s.dbTracer)
	}

	if b.traceFileName != "" {
		s.traceWriter = tracing.NewCSVTraceWriter(b.traceFileName)
		s.traceWriter.Init()
		eb = eb.WithHook(tracing.NewExecTracer(s.traceWriter))
	}

	if b.logExecutions {
		eb = eb.WithHook(tracing.NewLogTracer(logger))
	}

	s.engine = eb.Build()

	if b.monitorOn {
		s.monitor = monitoring.NewMonitor()
		if b.monitorPort > 0 {
			s.monitor.WithPortNumber(b.monitorPort)
		}
		if b.openBrowser {
			s.monitor.WithBrowser()
		}
		s.monitor.RegisterEngine(s.engine)
		s.monitor.RegisterCountTracer(s.counter)
		s.monitor.StartServer()
	}

	return s
}
