package tick

import (
	"log/slog"
	"math"
	"sync"

	"github.com/sarchlab/tickloop/hooking"
)

// Hook positions raised by the Engine.
var (
	// HookPosTickStart triggers after the tick counter advances. Item is the
	// new Tick.
	HookPosTickStart = &hooking.HookPos{Name: "TickStart"}

	// HookPosBeforeEvent triggers before an event executes. Item is an
	// ExecutionInfo.
	HookPosBeforeEvent = &hooking.HookPos{Name: "BeforeEvent"}

	// HookPosAfterEvent triggers after an event executes. Item is an
	// ExecutionInfo.
	HookPosAfterEvent = &hooking.HookPos{Name: "AfterEvent"}

	// HookPosBudgetExhausted triggers when a step stops with due events left
	// in the queue. Item is the Tick, Detail the number of pending events.
	HookPosBudgetExhausted = &hooking.HookPos{Name: "BudgetExhausted"}

	// HookPosTickEnd triggers when a step finishes. Item is the Tick, Detail a
	// TickSummary.
	HookPosTickEnd = &hooking.HookPos{Name: "TickEnd"}
)

// An Engine owns the tick counter and the pending events, and executes due
// events one after another when stepped. Engines are built with a Builder.
//
// Stepping is single-threaded. The locks in the engine only let observers
// such as a monitor read the tick and counters, or hold the engine between
// ticks, from another goroutine.
type Engine[W any] struct {
	*hooking.HookableBase

	timeLock sync.RWMutex
	now      Tick
	executed uint64

	budget    uint64
	scheduler *Scheduler[W]
	logger    *slog.Logger

	isPaused     bool
	isPausedLock sync.Mutex
	pauseLock    sync.Mutex
}

var _ Handle[struct{}] = (*Engine[struct{}])(nil)

func newEngine[W any](start Tick, budget uint64, logger *slog.Logger) *Engine[W] {
	return &Engine[W]{
		HookableBase: hooking.NewHookableBase(),
		now:          start,
		budget:       budget,
		scheduler:    NewScheduler[W](),
		logger:       logger,
	}
}

// Schedule enqueues evt to run after the given number of ticks from the
// current tick. Offsets that would overflow the counter saturate at the
// largest tick.
func (e *Engine[W]) Schedule(evt Event[W], after Tick) EventID {
	now := e.CurrentTick()

	at := Tick(math.MaxUint64)
	if after <= at-now {
		at = now + after
	}

	return e.scheduler.Schedule(evt, at)
}

// ScheduleAt enqueues evt for the absolute tick at.
func (e *Engine[W]) ScheduleAt(evt Event[W], at Tick) EventID {
	return e.scheduler.Schedule(evt, at)
}

// Step advances the tick counter by one and executes the events that are due,
// until either none is left or the execution budget is used up. Due events
// that do not fit in the budget stay pending for the next step.
//
// A panic raised by an event propagates to the caller. The tick has already
// advanced and the effects of events executed so far stand.
func (e *Engine[W]) Step(world *W) {
	e.pauseLock.Lock()
	defer e.pauseLock.Unlock()

	now := e.advance()
	e.InvokeHook(hooking.HookCtx{
		Domain: e,
		Pos:    HookPosTickStart,
		Item:   now,
	})

	var executed uint64
	for executed < e.budget {
		entry, ok := e.scheduler.PopDue(now)
		if !ok {
			break
		}

		e.execute(entry, now, world)
		executed++
	}

	exhausted := e.dueEventsLeft(now)
	if exhausted {
		e.logger.Debug("execution budget exhausted",
			"tick", uint64(now),
			"budget", e.budget,
			"pending", e.scheduler.Len())
		e.InvokeHook(hooking.HookCtx{
			Domain: e,
			Pos:    HookPosBudgetExhausted,
			Item:   now,
			Detail: e.scheduler.Len(),
		})
	}

	e.InvokeHook(hooking.HookCtx{
		Domain: e,
		Pos:    HookPosTickEnd,
		Item:   now,
		Detail: TickSummary{
			Tick:            now,
			Executed:        executed,
			Pending:         e.scheduler.Len(),
			BudgetExhausted: exhausted,
		},
	})
}

func (e *Engine[W]) advance() Tick {
	e.timeLock.Lock()
	defer e.timeLock.Unlock()

	if e.now == Tick(math.MaxUint64) {
		panic("tick: tick counter overflow")
	}

	e.now++

	return e.now
}

func (e *Engine[W]) execute(entry Entry[W], now Tick, world *W) {
	hooked := e.NumHooks() > 0

	var ctx hooking.HookCtx
	if hooked {
		ctx = hooking.HookCtx{
			Domain: e,
			Pos:    HookPosBeforeEvent,
			Item: ExecutionInfo{
				ID:    entry.ID,
				Due:   entry.Tick,
				Now:   now,
				Kind:  KindOf(entry.Event),
				Event: entry.Event,
			},
		}
		e.InvokeHook(ctx)
	}

	entry.Event.Execute(world, now, e)

	e.timeLock.Lock()
	e.executed++
	e.timeLock.Unlock()

	if hooked {
		ctx.Pos = HookPosAfterEvent
		e.InvokeHook(ctx)
	}
}

func (e *Engine[W]) dueEventsLeft(now Tick) bool {
	next, ok := e.scheduler.Peek()

	return ok && next.Tick <= now
}

// StepUntil steps the engine until the current tick equals target. It does
// nothing if target is not after the current tick.
func (e *Engine[W]) StepUntil(target Tick, world *W) {
	for e.CurrentTick() < target {
		e.Step(world)
	}
}

// StepN steps the engine n times.
func (e *Engine[W]) StepN(n uint64, world *W) {
	for i := uint64(0); i < n; i++ {
		e.Step(world)
	}
}

// CurrentTick returns the tick most recently stepped into, or the start tick
// if the engine has not been stepped.
func (e *Engine[W]) CurrentTick() Tick {
	e.timeLock.RLock()
	t := e.now
	e.timeLock.RUnlock()

	return t
}

// TotalExecuted returns how many events the engine has executed.
func (e *Engine[W]) TotalExecuted() uint64 {
	e.timeLock.RLock()
	n := e.executed
	e.timeLock.RUnlock()

	return n
}

// Pending returns the number of events waiting to be executed.
func (e *Engine[W]) Pending() int {
	return e.scheduler.Len()
}

// MaxExecutionsPerTick returns the execution budget of a single step.
func (e *Engine[W]) MaxExecutionsPerTick() uint64 {
	return e.budget
}

// Pause prevents the engine from starting another step until Continue is
// called. A step in progress finishes first. Pause must not be called from
// inside an event.
func (e *Engine[W]) Pause() {
	e.isPausedLock.Lock()
	defer e.isPausedLock.Unlock()

	if e.isPaused {
		return
	}

	e.pauseLock.Lock()
	e.isPaused = true
}

// Continue allows a paused engine to step again.
func (e *Engine[W]) Continue() {
	e.isPausedLock.Lock()
	defer e.isPausedLock.Unlock()

	if !e.isPaused {
		return
	}

	e.pauseLock.Unlock()
	e.isPaused = false
}

// IsPaused tells if the engine is held by Pause.
func (e *Engine[W]) IsPaused() bool {
	e.isPausedLock.Lock()
	defer e.isPausedLock.Unlock()

	return e.isPaused
}
