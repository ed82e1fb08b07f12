package simulation

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/tickloop/datarecording"
	"github.com/sarchlab/tickloop/tick"
	"github.com/sarchlab/tickloop/tracing"
)

type vault struct {
	Coins int
}

type mint struct {
	period tick.Tick
}

func (m *mint) EventKind() string { return "mint" }

func (m *mint) Execute(v *vault, _ tick.Tick, h tick.Handle[vault]) {
	v.Coins++
	h.Schedule(m, m.period)
}

var _ = Describe("Simulation", func() {
	var (
		dir        string
		engineB    tick.Builder[vault]
		simulation *Simulation[vault]
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		engineB = tick.MakeBuilder[vault]().
			WithMaxExecutionsPerTick(1).
			WithInitialEventPool([]tick.Seed[vault]{
				{Event: &mint{period: 1}, Tick: 0},
				{Event: &mint{period: 2}, Tick: 0},
			})
	})

	AfterEach(func() {
		if simulation != nil {
			simulation.Terminate()
			simulation = nil
		}
	})

	It("should run the engine over the registered world", func() {
		simulation = MakeBuilder[vault]().
			WithEngineBuilder(engineB).
			WithoutMonitoring().
			WithoutRecording().
			Build()

		world := &vault{}
		simulation.RegisterWorld(world)
		Expect(simulation.GetWorld()).To(BeIdenticalTo(world))

		simulation.Run(4)

		Expect(simulation.ID()).NotTo(BeEmpty())
		Expect(simulation.GetEngine().CurrentTick()).To(Equal(tick.Tick(4)))
		Expect(world.Coins).To(Equal(4))
		Expect(simulation.GetCountTracer().GetCount("mint")).To(Equal(uint64(4)))
		Expect(simulation.GetCountTracer().ExhaustedTicks()).NotTo(BeEmpty())
		Expect(simulation.GetDataRecorder()).To(BeNil())
		Expect(simulation.GetMonitor()).To(BeNil())
	})

	It("should keep the logger of the engine builder", func() {
		buf := new(bytes.Buffer)
		logger := slog.New(slog.NewTextHandler(buf,
			&slog.HandlerOptions{Level: slog.LevelDebug}))

		simulation = MakeBuilder[vault]().
			WithEngineBuilder(engineB.WithLogger(logger)).
			WithoutMonitoring().
			WithoutRecording().
			Build()
		simulation.RegisterWorld(&vault{})
		simulation.Run(1)

		Expect(buf.String()).To(ContainSubstring("execution budget exhausted"))
	})

	It("should hand its own logger to the engine", func() {
		engineBuf := new(bytes.Buffer)
		simBuf := new(bytes.Buffer)
		debug := &slog.HandlerOptions{Level: slog.LevelDebug}

		simulation = MakeBuilder[vault]().
			WithEngineBuilder(engineB.WithLogger(
				slog.New(slog.NewTextHandler(engineBuf, debug)))).
			WithLogger(slog.New(slog.NewTextHandler(simBuf, debug))).
			WithoutMonitoring().
			WithoutRecording().
			Build()
		simulation.RegisterWorld(&vault{})
		simulation.Run(1)

		Expect(engineBuf.String()).To(BeEmpty())
		Expect(simBuf.String()).To(ContainSubstring("execution budget exhausted"))
	})

	It("should panic when running without a world", func() {
		simulation = MakeBuilder[vault]().
			WithoutMonitoring().
			WithoutRecording().
			Build()

		Expect(func() { simulation.Run(1) }).To(Panic())
	})

	It("should reject inconsistent options", func() {
		Expect(func() {
			MakeBuilder[vault]().WithoutMonitoring().WithMonitorPort(3000).Build()
		}).To(Panic())
		Expect(func() {
			MakeBuilder[vault]().WithoutRecording().WithOutputFileName("x").Build()
		}).To(Panic())
	})

	It("should record executions and ticks into the output file", func() {
		output := filepath.Join(dir, "run")
		simulation = MakeBuilder[vault]().
			WithEngineBuilder(engineB).
			WithoutMonitoring().
			WithOutputFileName(output).
			Build()
		simulation.RegisterWorld(&vault{})
		simulation.Run(3)
		simulation.Terminate()
		simulation = nil

		reader, err := datarecording.NewReader(output + ".sqlite3")
		Expect(err).NotTo(HaveOccurred())
		defer reader.Close()

		reader.MapTable(tracing.TickTableName, tracing.TickRecord{})
		ticks, total, err := reader.Query(context.Background(),
			tracing.TickTableName,
			datarecording.QueryParams{OrderBy: "Tick"})
		Expect(err).NotTo(HaveOccurred())
		Expect(total).To(Equal(3))
		Expect(ticks[0]).To(Equal(&tracing.TickRecord{
			Tick:            1,
			Executed:        1,
			Pending:         2,
			BudgetExhausted: true,
		}))
	})

	It("should write a CSV trace", func() {
		trace := filepath.Join(dir, "trace")
		simulation = MakeBuilder[vault]().
			WithEngineBuilder(engineB).
			WithoutMonitoring().
			WithoutRecording().
			WithTraceFileName(trace).
			Build()
		simulation.RegisterWorld(&vault{})
		simulation.Run(2)
		simulation.Terminate()
		simulation = nil

		content, err := os.ReadFile(trace + ".csv")
		Expect(err).NotTo(HaveOccurred())
		Expect(string(content)).To(Equal(
			"Tick, EventID, Due, Kind\n" +
				"1, 1, 0, mint\n" +
				"2, 2, 0, mint\n"))
	})

	It("should expose the engine through the monitor", func() {
		simulation = MakeBuilder[vault]().
			WithEngineBuilder(engineB).
			WithoutRecording().
			Build()
		simulation.RegisterWorld(&vault{})

		Expect(simulation.GetMonitor()).NotTo(BeNil())
		Expect(simulation.GetMonitor().URL()).To(HavePrefix("http://localhost:"))
	})
})
