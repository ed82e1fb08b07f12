// Package scenario loads YAML descriptions of a ledger world and the events
// seeded into it, and runs them on a tick engine.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/sarchlab/tickloop/tick"
	"gopkg.in/yaml.v3"
)

// Event kinds a scenario can seed.
const (
	KindMine     = "mine"
	KindAnnounce = "announce"
	KindSpawn    = "spawn"
)

// Scenario is a parsed scenario file.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`

	// Ticks is the number of steps to run. Zero lets the caller decide.
	Ticks uint64 `yaml:"ticks,omitempty"`

	// StartTick is the tick the engine starts at. Nil lets the caller decide
	// and falls back to 0.
	StartTick *uint64 `yaml:"start_tick,omitempty"`

	// Budget caps executions per tick. Nil means unbounded.
	Budget *uint64 `yaml:"budget,omitempty"`

	// Seed feeds the random source shared by spawn events.
	Seed uint64 `yaml:"seed,omitempty"`

	Events []EventSpec `yaml:"events"`
}

// EventSpec describes one initial event. At is an offset from the start
// tick. Which of the other fields apply depends on Kind.
type EventSpec struct {
	Kind string `yaml:"kind"`
	At   uint64 `yaml:"at"`

	// mine
	Amount int64  `yaml:"amount,omitempty"`
	Every  uint64 `yaml:"every,omitempty"`

	// announce
	Message string `yaml:"message,omitempty"`

	// spawn
	Delay       uint64  `yaml:"delay,omitempty"`
	Count       int     `yaml:"count,omitempty"`
	Probability float64 `yaml:"probability,omitempty"`
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	return Parse(bytes.NewReader(data))
}

// Parse decodes and validates a scenario. Unknown fields are rejected.
func Parse(r io.Reader) (*Scenario, error) {
	var s Scenario

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &s, nil
}

// Validate checks that the scenario can be turned into events.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return errors.New("name is required")
	}

	if len(s.Events) == 0 {
		return errors.New("events list is required and must be non-empty")
	}

	for i, e := range s.Events {
		if err := e.validate(); err != nil {
			return fmt.Errorf("events[%d]: %w", i, err)
		}
	}

	return nil
}

func (e EventSpec) validate() error {
	switch e.Kind {
	case KindMine:
		return nil
	case KindAnnounce:
		if e.Message == "" {
			return errors.New("announce requires a message")
		}
	case KindSpawn:
		if e.Delay == 0 {
			return errors.New("spawn requires a positive delay")
		}
		if e.Count < 0 {
			return fmt.Errorf("spawn count %d is negative", e.Count)
		}
		if e.Probability < 0 || e.Probability > 1 {
			return fmt.Errorf("spawn probability %g is not in [0, 1]",
				e.Probability)
		}
	case "":
		return errors.New("kind is required")
	default:
		return fmt.Errorf("unknown kind %q", e.Kind)
	}

	return nil
}

// Seeds creates the initial event pool. Every call creates fresh events and
// a fresh random source, so two pools from the same scenario replay the same
// run.
func (s *Scenario) Seeds() []tick.Seed[Ledger] {
	rng := rand.New(rand.NewPCG(s.Seed, s.Seed))

	seeds := make([]tick.Seed[Ledger], 0, len(s.Events))
	for _, e := range s.Events {
		seeds = append(seeds, tick.Seed[Ledger]{
			Event: e.event(rng),
			Tick:  tick.Tick(e.At),
		})
	}

	return seeds
}

func (e EventSpec) event(rng *rand.Rand) tick.Event[Ledger] {
	switch e.Kind {
	case KindMine:
		return &Mine{Amount: e.Amount, Every: tick.Tick(e.Every)}
	case KindAnnounce:
		return &Announce{Message: e.Message}
	case KindSpawn:
		return &Spawn{
			Delay:       tick.Tick(e.Delay),
			Count:       e.Count,
			Probability: e.Probability,
			rng:         rng,
		}
	default:
		panic(fmt.Sprintf("unknown event kind %q", e.Kind))
	}
}

// EngineBuilder returns an engine builder carrying the scenario's budget,
// start tick and initial events.
func (s *Scenario) EngineBuilder() tick.Builder[Ledger] {
	b := tick.MakeBuilder[Ledger]().
		WithInitialEventPool(s.Seeds())

	if s.StartTick != nil {
		b = b.WithStartTick(tick.Tick(*s.StartTick))
	}

	if s.Budget != nil {
		b = b.WithMaxExecutionsPerTick(*s.Budget)
	}

	return b
}
