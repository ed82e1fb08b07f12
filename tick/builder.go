package tick

import (
	"log/slog"
	"slices"

	"github.com/sarchlab/tickloop/hooking"
)

// Builder can build engines. Every With method returns a modified copy, so a
// Builder can be reused as a template.
type Builder[W any] struct {
	maxExecutionsPerTick uint64
	startTick            Tick
	pool                 []Seed[W]
	hooks                []hooking.Hook
	logger               *slog.Logger
}

// MakeBuilder creates a Builder with an unbounded execution budget and a start
// tick of 0.
func MakeBuilder[W any]() Builder[W] {
	return Builder[W]{
		maxExecutionsPerTick: Unbounded,
	}
}

// WithMaxExecutionsPerTick caps how many events a single step executes. A
// budget of 0 builds an engine that advances ticks but never executes events.
func (b Builder[W]) WithMaxExecutionsPerTick(n uint64) Builder[W] {
	b.maxExecutionsPerTick = n
	return b
}

// WithInitialEventPool adds events to schedule before the first step. Each
// seed's tick is an offset from the start tick.
func (b Builder[W]) WithInitialEventPool(pool []Seed[W]) Builder[W] {
	b.pool = append(slices.Clone(b.pool), pool...)
	return b
}

// WithStartTick sets the tick the engine starts at.
func (b Builder[W]) WithStartTick(t Tick) Builder[W] {
	b.startTick = t
	return b
}

// WithHook registers a hook on the engine before any seed is scheduled.
func (b Builder[W]) WithHook(h hooking.Hook) Builder[W] {
	b.hooks = append(slices.Clone(b.hooks), h)
	return b
}

// WithLogger sets the logger used by the engine. slog.Default is used
// otherwise.
func (b Builder[W]) WithLogger(logger *slog.Logger) Builder[W] {
	b.logger = logger
	return b
}

// Build builds the engine and schedules the initial event pool.
func (b Builder[W]) Build() *Engine[W] {
	logger := b.logger
	if logger == nil {
		logger = slog.Default()
	}

	e := newEngine[W](b.startTick, b.maxExecutionsPerTick, logger)

	for _, h := range b.hooks {
		e.AcceptHook(h)
	}

	for _, seed := range b.pool {
		e.Schedule(seed.Event, seed.Tick)
	}

	return e
}
