package tracing

import (
	"github.com/sarchlab/tickloop/datarecording"
	"github.com/sarchlab/tickloop/hooking"
	"github.com/sarchlab/tickloop/tick"
)

// Table names written by the DBTracer.
const (
	ExecTableName = "executions"
	TickTableName = "ticks"
)

// DBTracer stores executions and tick summaries into a DataRecorder.
type DBTracer struct {
	backend datarecording.DataRecorder
}

// NewDBTracer creates a DBTracer and the tables it writes to.
func NewDBTracer(backend datarecording.DataRecorder) *DBTracer {
	backend.CreateTable(ExecTableName, ExecRecord{})
	backend.CreateTable(TickTableName, TickRecord{})

	return &DBTracer{backend: backend}
}

// Func implements hooking.Hook.
func (t *DBTracer) Func(ctx hooking.HookCtx) {
	switch ctx.Pos {
	case tick.HookPosAfterEvent:
		if rec, ok := execRecordOf(ctx); ok {
			t.backend.InsertData(ExecTableName, rec)
		}
	case tick.HookPosTickEnd:
		if rec, ok := tickRecordOf(ctx); ok {
			t.backend.InsertData(TickTableName, rec)
		}
	}
}
