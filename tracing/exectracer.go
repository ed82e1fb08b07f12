package tracing

import (
	"github.com/sarchlab/tickloop/hooking"
	"github.com/sarchlab/tickloop/tick"
)

// A TraceWriter stores execution records.
type TraceWriter interface {
	Write(rec ExecRecord)
	Flush()
}

// ExecTracer forwards every executed event to a TraceWriter.
type ExecTracer struct {
	writer TraceWriter
}

// NewExecTracer creates an ExecTracer that writes into w.
func NewExecTracer(w TraceWriter) *ExecTracer {
	return &ExecTracer{writer: w}
}

// Func implements hooking.Hook.
func (t *ExecTracer) Func(ctx hooking.HookCtx) {
	if ctx.Pos != tick.HookPosAfterEvent {
		return
	}

	rec, ok := execRecordOf(ctx)
	if !ok {
		return
	}

	t.writer.Write(rec)
}
