package cmd

import (
	"fmt"

	"github.com/sarchlab/tickloop/config"
	"github.com/sarchlab/tickloop/scenario"
	"github.com/sarchlab/tickloop/simulation"
	"github.com/sarchlab/tickloop/tick"
	"github.com/spf13/cobra"
)

type runOptions struct {
	envFiles    []string
	ticks       uint64
	budget      uint64
	monitor     bool
	port        int
	browser     bool
	record      bool
	recordPath  string
	tracePath   string
	logLevel    string
	logExecuted bool
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}

	runCmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Run a scenario file.",
		Long: "`run` loads a scenario, steps the engine and prints a report. " +
			"Settings come from TICKLOOP_* environment variables and .env " +
			"files; flags override them.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd, args[0], opts)
		},
	}

	flags := runCmd.Flags()
	flags.StringSliceVar(&opts.envFiles, "env-file", nil,
		"Env files to load before reading the environment")
	flags.Uint64Var(&opts.ticks, "ticks", 0, "Number of ticks to run")
	flags.Uint64Var(&opts.budget, "budget", 0,
		"Maximum number of events executed per tick")
	flags.BoolVar(&opts.monitor, "monitor", false, "Start the web monitor")
	flags.IntVar(&opts.port, "port", 0, "Port of the web monitor")
	flags.BoolVar(&opts.browser, "browser", false,
		"Open the web monitor in a browser")
	flags.BoolVar(&opts.record, "record", false,
		"Record executions into a SQLite database")
	flags.StringVar(&opts.recordPath, "record-path", "",
		"Database file name without the .sqlite3 extension")
	flags.StringVar(&opts.tracePath, "trace", "",
		"CSV trace file name without the .csv extension")
	flags.StringVar(&opts.logLevel, "log-level", "",
		"Log level: debug, info, warn or error")
	flags.BoolVar(&opts.logExecuted, "log-executions", false,
		"Log every executed event at debug level")

	return runCmd
}

func runScenario(cmd *cobra.Command, path string, opts *runOptions) error {
	cfg, err := config.Load(opts.envFiles...)
	if err != nil {
		return err
	}

	applyFlags(cmd, &cfg, opts)

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := cfg.Logger(cmd.ErrOrStderr())

	s, err := scenario.Load(path)
	if err != nil {
		return err
	}

	ticks, eb := resolve(cmd, s, cfg)

	b := simulation.MakeBuilder[scenario.Ledger]().
		WithEngineBuilder(eb).
		WithLogger(logger)

	if cfg.Monitor {
		b = b.WithMonitorPort(cfg.MonitorPort)
		if opts.browser {
			b = b.WithBrowser()
		}
	} else {
		b = b.WithoutMonitoring()
	}

	if cfg.Record {
		b = b.WithOutputFileName(cfg.RecordPath)
	} else {
		b = b.WithoutRecording()
	}

	if cfg.TracePath != "" {
		b = b.WithTraceFileName(cfg.TracePath)
	}

	if opts.logExecuted {
		b = b.WithExecutionLogging()
	}

	sim := b.Build()
	defer sim.Terminate()

	ledger := &scenario.Ledger{}
	sim.RegisterWorld(ledger)

	logger.Info("running scenario",
		"scenario", s.Name,
		"simulation", sim.ID(),
		"ticks", ticks,
		"budget", sim.GetEngine().MaxExecutionsPerTick())

	sim.Run(ticks)

	result := scenario.Summarize(s.Name, ledger, sim.GetEngine(),
		sim.GetCountTracer())
	fmt.Fprint(cmd.OutOrStdout(), result.Report())

	logger.Info("scenario finished",
		"scenario", s.Name,
		"tick", uint64(result.FinalTick),
		"executed", result.Executed,
		"pending", result.Pending)

	return nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config, opts *runOptions) {
	flags := cmd.Flags()

	if flags.Changed("ticks") {
		cfg.Ticks = opts.ticks
	}

	if flags.Changed("budget") {
		budget := opts.budget
		cfg.MaxExecutionsPerTick = &budget
	}

	if flags.Changed("monitor") {
		cfg.Monitor = opts.monitor
	}

	if opts.browser {
		cfg.Monitor = true
	}

	if flags.Changed("port") {
		cfg.MonitorPort = opts.port
	}

	if flags.Changed("record") {
		cfg.Record = opts.record
	}

	if flags.Changed("record-path") {
		cfg.RecordPath = opts.recordPath
		cfg.Record = true
	}

	if flags.Changed("trace") {
		cfg.TracePath = opts.tracePath
	}

	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
}

// resolve picks the tick count and the engine settings. A flag wins over the
// scenario file, which wins over the environment.
func resolve(
	cmd *cobra.Command,
	s *scenario.Scenario,
	cfg config.Config,
) (uint64, tick.Builder[scenario.Ledger]) {
	flags := cmd.Flags()

	ticks := cfg.Ticks
	if s.Ticks > 0 && !flags.Changed("ticks") {
		ticks = s.Ticks
	}

	if s.StartTick == nil {
		start := cfg.StartTick
		s.StartTick = &start
	}

	if cfg.MaxExecutionsPerTick != nil &&
		(s.Budget == nil || flags.Changed("budget")) {
		budget := *cfg.MaxExecutionsPerTick
		s.Budget = &budget
	}

	return ticks, s.EngineBuilder()
}
