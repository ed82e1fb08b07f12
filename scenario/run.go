package scenario

import (
	"fmt"
	"strings"

	"github.com/sarchlab/tickloop/tick"
	"github.com/sarchlab/tickloop/tracing"
)

// KindCount is the number of executions of one event kind.
type KindCount struct {
	Kind  string
	Count uint64
}

// Result summarizes a finished run.
type Result struct {
	Name           string
	Ledger         *Ledger
	FinalTick      tick.Tick
	Executed       uint64
	Pending        int
	Kinds          []KindCount
	ExhaustedTicks []tick.Tick
	BusiestTick    tick.Tick
	BusiestCount   uint64
}

// Run builds an engine for the scenario, steps it the scenario's number of
// ticks over a new ledger, and summarizes the run.
func (s *Scenario) Run() Result {
	counter := tracing.NewCountTracer()
	engine := s.EngineBuilder().WithHook(counter).Build()
	ledger := &Ledger{}

	engine.StepN(s.Ticks, ledger)

	return Summarize(s.Name, ledger, engine, counter)
}

// Summarize collects the result of a run from the engine and the count tracer
// attached to it.
func Summarize(
	name string,
	ledger *Ledger,
	engine *tick.Engine[Ledger],
	counter *tracing.CountTracer,
) Result {
	r := Result{
		Name:           name,
		Ledger:         ledger,
		FinalTick:      engine.CurrentTick(),
		Executed:       engine.TotalExecuted(),
		Pending:        engine.Pending(),
		ExhaustedTicks: counter.ExhaustedTicks(),
	}

	for _, k := range counter.GetKinds() {
		r.Kinds = append(r.Kinds, KindCount{Kind: k, Count: counter.GetCount(k)})
	}

	r.BusiestTick, r.BusiestCount = counter.BusiestTick()

	return r
}

// Report renders the result as text.
func (r Result) Report() string {
	b := &strings.Builder{}

	fmt.Fprintf(b, "scenario: %s\n", r.Name)
	fmt.Fprintf(b, "final tick: %d\n", r.FinalTick)
	fmt.Fprintf(b, "executed: %d\n", r.Executed)
	fmt.Fprintf(b, "pending: %d\n", r.Pending)
	fmt.Fprintf(b, "gold: %d\n", r.Ledger.Gold)
	fmt.Fprintf(b, "spawned: %d\n", r.Ledger.Spawned)

	fmt.Fprintf(b, "kinds:\n")
	for _, k := range r.Kinds {
		fmt.Fprintf(b, "  %s: %d\n", k.Kind, k.Count)
	}

	fmt.Fprintf(b, "exhausted ticks: %v\n", r.ExhaustedTicks)
	fmt.Fprintf(b, "busiest tick: %d (%d executions)\n",
		r.BusiestTick, r.BusiestCount)

	fmt.Fprintf(b, "log:\n")
	for _, line := range r.Ledger.Log {
		fmt.Fprintf(b, "  %s\n", line)
	}

	return b.String()
}
