package tick

import (
	"container/heap"
	"sync"
)

// Scheduler holds pending events ordered by tick. Events due at the same tick
// come out in the order they were scheduled.
//
// The scheduler takes absolute ticks. Engine.Schedule, in contrast, takes an
// offset from the current tick.
type Scheduler[W any] struct {
	sync.Mutex
	entries entryHeap[W]
	lastID  EventID
}

// NewScheduler creates an empty Scheduler.
func NewScheduler[W any]() *Scheduler[W] {
	s := &Scheduler[W]{}
	s.entries = make([]Entry[W], 0)
	heap.Init(&s.entries)

	return s
}

// Schedule inserts evt for the absolute tick at. Scheduling for a tick that
// has already passed is allowed; the event is simply due at the next pop.
func (s *Scheduler[W]) Schedule(evt Event[W], at Tick) EventID {
	if evt == nil {
		panic("tick: cannot schedule a nil event")
	}

	s.Lock()
	s.lastID++
	id := s.lastID
	heap.Push(&s.entries, Entry[W]{ID: id, Tick: at, Event: evt})
	s.Unlock()

	return id
}

// PopDue removes and returns the earliest entry if its tick is not after now.
func (s *Scheduler[W]) PopDue(now Tick) (Entry[W], bool) {
	s.Lock()
	defer s.Unlock()

	if len(s.entries) == 0 || s.entries[0].Tick > now {
		return Entry[W]{}, false
	}

	return heap.Pop(&s.entries).(Entry[W]), true
}

// Peek returns the earliest entry without removing it.
func (s *Scheduler[W]) Peek() (Entry[W], bool) {
	s.Lock()
	defer s.Unlock()

	if len(s.entries) == 0 {
		return Entry[W]{}, false
	}

	return s.entries[0], true
}

// Len returns the number of pending entries.
func (s *Scheduler[W]) Len() int {
	s.Lock()
	l := len(s.entries)
	s.Unlock()

	return l
}

// IsEmpty tells if no entries are pending.
func (s *Scheduler[W]) IsEmpty() bool {
	return s.Len() == 0
}

type entryHeap[W any] []Entry[W]

func (h entryHeap[W]) Len() int {
	return len(h)
}

// Less orders by tick, then by ID so that equal-tick entries are FIFO.
func (h entryHeap[W]) Less(i, j int) bool {
	if h[i].Tick != h[j].Tick {
		return h[i].Tick < h[j].Tick
	}

	return h[i].ID < h[j].ID
}

func (h entryHeap[W]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *entryHeap[W]) Push(x any) {
	*h = append(*h, x.(Entry[W]))
}

func (h *entryHeap[W]) Pop() any {
	old := *h
	n := len(old)
	entry := old[n-1]
	old[n-1] = Entry[W]{}
	*h = old[:n-1]

	return entry
}
