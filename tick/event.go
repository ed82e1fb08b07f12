// Package tick provides a discrete-time event engine. Time is an integer tick
// counter advanced explicitly by the caller. Every step, the engine executes
// the events that are due, earliest tick first and in insertion order for
// equal ticks, up to a per-tick execution budget.
package tick

import (
	"math"
	"reflect"
)

// Tick is the engine's discrete unit of simulated time.
type Tick uint64

// Unbounded is the default per-tick execution budget. An engine with this
// budget executes every due event in each step.
const Unbounded uint64 = math.MaxUint64

// EventID identifies a scheduled event. IDs are assigned by a Scheduler in
// strictly increasing order and break ties between events due at the same
// tick.
type EventID uint64

// An Event is a single-shot unit of behavior executed against the world at its
// due tick. An event that wants to recur must schedule itself again through
// the handle it receives.
type Event[W any] interface {
	Execute(world *W, now Tick, h Handle[W])
}

// EventFunc adapts a plain function to the Event interface.
type EventFunc[W any] func(world *W, now Tick, h Handle[W])

// Execute calls f.
func (f EventFunc[W]) Execute(world *W, now Tick, h Handle[W]) {
	f(world, now, h)
}

// Handle is the scheduling capability handed to an executing event. Events
// scheduled through it for the current tick run within the same step, as long
// as the execution budget allows.
type Handle[W any] interface {
	// Schedule enqueues evt to run after the given number of ticks from now.
	// An offset of 0 means the current tick.
	Schedule(evt Event[W], after Tick) EventID

	// ScheduleAt enqueues evt for an absolute tick. Ticks at or before the
	// current tick are due immediately.
	ScheduleAt(evt Event[W], at Tick) EventID

	// CurrentTick returns the tick being executed.
	CurrentTick() Tick
}

// Entry pairs an event with its target tick.
type Entry[W any] struct {
	ID    EventID
	Tick  Tick
	Event Event[W]
}

// Seed is an event placed in the engine before the first step. Tick is an
// offset from the engine's start tick.
type Seed[W any] struct {
	Event Event[W]
	Tick  Tick
}

// Kinded can be implemented by events that want to report a stable kind to
// tracers instead of their Go type name.
type Kinded interface {
	EventKind() string
}

// KindOf returns the kind reported for evt.
func KindOf(evt any) string {
	if k, ok := evt.(Kinded); ok {
		return k.EventKind()
	}

	t := reflect.TypeOf(evt)
	if t == nil {
		return ""
	}

	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t.Name()
}

// ExecutionInfo describes a single event execution. It is the Item of the
// before-event and after-event hooks.
type ExecutionInfo struct {
	ID    EventID
	Due   Tick
	Now   Tick
	Kind  string
	Event any
}

// TickSummary is the Detail of the tick-end hook.
type TickSummary struct {
	Tick            Tick
	Executed        uint64
	Pending         int
	BudgetExhausted bool
}
