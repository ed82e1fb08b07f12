package tracing

import (
	"sync"

	"github.com/sarchlab/tickloop/hooking"
	"github.com/sarchlab/tickloop/tick"
)

// CountTracer counts executed events per kind and remembers the ticks at
// which the execution budget ran out.
type CountTracer struct {
	lock           sync.Mutex
	kinds          []string
	counts         map[string]uint64
	total          uint64
	exhaustedTicks []tick.Tick
	busiestTick    tick.Tick
	busiestCount   uint64
}

// NewCountTracer creates a new CountTracer
func NewCountTracer() *CountTracer {
	return &CountTracer{
		counts: make(map[string]uint64),
	}
}

// Func implements hooking.Hook.
func (t *CountTracer) Func(ctx hooking.HookCtx) {
	t.lock.Lock()
	defer t.lock.Unlock()

	switch ctx.Pos {
	case tick.HookPosAfterEvent:
		rec, ok := execRecordOf(ctx)
		if !ok {
			return
		}

		if _, seen := t.counts[rec.Kind]; !seen {
			t.kinds = append(t.kinds, rec.Kind)
		}
		t.counts[rec.Kind]++
		t.total++
	case tick.HookPosBudgetExhausted:
		if now, ok := ctx.Item.(tick.Tick); ok {
			t.exhaustedTicks = append(t.exhaustedTicks, now)
		}
	case tick.HookPosTickEnd:
		rec, ok := tickRecordOf(ctx)
		if ok && rec.Executed > t.busiestCount {
			t.busiestTick = tick.Tick(rec.Tick)
			t.busiestCount = rec.Executed
		}
	}
}

// GetKinds returns the event kinds seen, in order of first execution.
func (t *CountTracer) GetKinds() []string {
	t.lock.Lock()
	defer t.lock.Unlock()

	kinds := make([]string, len(t.kinds))
	copy(kinds, t.kinds)

	return kinds
}

// GetCount returns how many events of a kind were executed.
func (t *CountTracer) GetCount(kind string) uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.counts[kind]
}

// Total returns the number of executed events.
func (t *CountTracer) Total() uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.total
}

// ExhaustedTicks returns the ticks that ended with due events left over.
func (t *CountTracer) ExhaustedTicks() []tick.Tick {
	t.lock.Lock()
	defer t.lock.Unlock()

	ticks := make([]tick.Tick, len(t.exhaustedTicks))
	copy(ticks, t.exhaustedTicks)

	return ticks
}

// BusiestTick returns the earliest tick with the most executions and that
// number.
func (t *CountTracer) BusiestTick() (tick.Tick, uint64) {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.busiestTick, t.busiestCount
}
