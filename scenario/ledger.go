package scenario

import (
	"fmt"
	"math/rand/v2"

	"github.com/sarchlab/tickloop/tick"
)

// Ledger is the world scenario events act on.
type Ledger struct {
	Gold    int64
	Spawned uint64
	Log     []string
}

func (l *Ledger) record(now tick.Tick, format string, args ...any) {
	l.Log = append(l.Log,
		fmt.Sprintf("Tick %d: ", now)+fmt.Sprintf(format, args...))
}

// Mine adds gold to the ledger and, if Every is positive, runs again Every
// ticks later.
type Mine struct {
	Amount int64
	Every  tick.Tick
}

// EventKind returns the kind of the event.
func (m *Mine) EventKind() string { return KindMine }

// Execute mines.
func (m *Mine) Execute(l *Ledger, now tick.Tick, h tick.Handle[Ledger]) {
	l.Gold += m.Amount
	l.record(now, "Mined %d", m.Amount)

	if m.Every > 0 {
		h.Schedule(&Mine{Amount: m.Amount, Every: m.Every}, m.Every)
	}
}

// Announce writes a message into the ledger log.
type Announce struct {
	Message string
}

// EventKind returns the kind of the event.
func (a *Announce) EventKind() string { return KindAnnounce }

// Execute announces.
func (a *Announce) Execute(l *Ledger, now tick.Tick, _ tick.Handle[Ledger]) {
	l.record(now, "%s", a.Message)
}

// Spawn schedules Count copies of itself Delay ticks later with the given
// probability.
type Spawn struct {
	Delay       tick.Tick
	Count       int
	Probability float64

	rng *rand.Rand
}

// EventKind returns the kind of the event.
func (s *Spawn) EventKind() string { return KindSpawn }

// Execute spawns.
func (s *Spawn) Execute(l *Ledger, _ tick.Tick, h tick.Handle[Ledger]) {
	if s.rng.Float64() >= s.Probability {
		return
	}

	for i := 0; i < s.Count; i++ {
		h.Schedule(s, s.Delay)
		l.Spawned++
	}
}
