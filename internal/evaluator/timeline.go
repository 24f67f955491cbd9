package evaluator

import (
	"sort"
	"sync"
)

// Entry is one time-versioned binding: variable name, tick, value.
type Entry struct {
	Name  string
	Tick  int
	Value Object
}

// Observer is notified after each committed write. Used by the trace
// recorder; it must not call back into the store.
type Observer func(name string, tick int, value Object)

// Store is the append-only timeline of variable bindings. Per variable,
// ticks start at 0 and increase by exactly one per write; entries are never
// overwritten or removed for the lifetime of the run.
//
// Execution is single-threaded, but inspection (trace, dump) may read
// concurrently, so access goes through a reader/writer lock: readers only
// ever observe a prefix of completed writes.
type Store struct {
	mu       sync.RWMutex
	entries  map[string][]Entry
	observer Observer
}

func NewStore() *Store {
	return &Store{entries: make(map[string][]Entry)}
}

func (s *Store) SetObserver(fn Observer) {
	s.mu.Lock()
	s.observer = fn
	s.mu.Unlock()
}

// Write appends a new entry for name at its next tick and returns that tick.
func (s *Store) Write(name string, value Object) int {
	s.mu.Lock()
	tick := len(s.entries[name])
	s.entries[name] = append(s.entries[name], Entry{Name: name, Tick: tick, Value: value})
	observer := s.observer
	s.mu.Unlock()

	if observer != nil {
		observer(name, tick, value)
	}
	return tick
}

// Read returns the most recent value bound to name.
func (s *Store) Read(name string) (Object, *Error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.entries[name]
	if len(history) == 0 {
		return nil, newError(UnboundVariable, "variable %s has no binding", name)
	}
	return history[len(history)-1].Value, nil
}

// ReadAt returns the value bound to name at the greatest tick ≤ tick.
func (s *Store) ReadAt(name string, tick int) (Object, *Error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.entries[name]
	if len(history) == 0 || tick < 0 {
		return nil, newError(UnboundVariable, "variable %s has no binding at tick %d", name, tick)
	}
	if tick >= len(history) {
		tick = len(history) - 1
	}
	return history[tick].Value, nil
}

// LatestTick returns the tick of the most recent entry for name, or -1.
func (s *Store) LatestTick(name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries[name]) - 1
}

// History returns a copy of all entries for name in tick order.
func (s *Store) History(name string) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.entries[name]
	out := make([]Entry, len(history))
	copy(out, history)
	return out
}

// Names returns all bound variable names, sorted.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
