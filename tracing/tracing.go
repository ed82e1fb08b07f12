// Package tracing provides hooks that observe an engine while it steps.
// Attach a tracer with the engine's AcceptHook or the builder's WithHook.
package tracing

import (
	"github.com/sarchlab/tickloop/hooking"
	"github.com/sarchlab/tickloop/tick"
)

// ExecRecord describes one executed event.
type ExecRecord struct {
	Tick    uint64
	EventID uint64
	Due     uint64
	Kind    string
}

// TickRecord describes one finished step.
type TickRecord struct {
	Tick            uint64
	Executed        uint64
	Pending         int
	BudgetExhausted bool
}

func execRecordOf(ctx hooking.HookCtx) (ExecRecord, bool) {
	info, ok := ctx.Item.(tick.ExecutionInfo)
	if !ok {
		return ExecRecord{}, false
	}

	return ExecRecord{
		Tick:    uint64(info.Now),
		EventID: uint64(info.ID),
		Due:     uint64(info.Due),
		Kind:    info.Kind,
	}, true
}

func tickRecordOf(ctx hooking.HookCtx) (TickRecord, bool) {
	summary, ok := ctx.Detail.(tick.TickSummary)
	if !ok {
		return TickRecord{}, false
	}

	return TickRecord{
		Tick:            uint64(summary.Tick),
		Executed:        summary.Executed,
		Pending:         summary.Pending,
		BudgetExhausted: summary.BudgetExhausted,
	}, true
}
