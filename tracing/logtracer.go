package tracing

import (
	"log/slog"

	"github.com/sarchlab/tickloop/hooking"
	"github.com/sarchlab/tickloop/tick"
)

// LogTracer logs executions at debug level and budget exhaustion at warn
// level.
type LogTracer struct {
	logger *slog.Logger
}

// NewLogTracer creates a LogTracer.
func NewLogTracer(logger *slog.Logger) *LogTracer {
	return &LogTracer{logger: logger}
}

// Func implements hooking.Hook.
func (t *LogTracer) Func(ctx hooking.HookCtx) {
	switch ctx.Pos {
	case tick.HookPosAfterEvent:
		rec, ok := execRecordOf(ctx)
		if !ok {
			return
		}

		t.logger.Debug("event executed",
			"tick", rec.Tick,
			"id", rec.EventID,
			"due", rec.Due,
			"kind", rec.Kind)
	case tick.HookPosBudgetExhausted:
		t.logger.Warn("execution budget exhausted",
			"tick", ctx.Item,
			"pending", ctx.Detail)
	}
}
