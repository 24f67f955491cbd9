// Package trace provides inspection tooling for the timeline store: a YAML
// snapshot of a run's full variable history and an optional SQLite recorder
// that logs every write as it happens. Both are additive; neither affects
// execution semantics.
package trace

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/manyfold-lang/manyfold/internal/evaluator"
)

// Binding is one timeline entry in a snapshot.
type Binding struct {
	Tick  int    `yaml:"tick"`
	Value string `yaml:"value"`
	Kind  string `yaml:"kind"`
}

// VariableHistory is the ordered binding sequence of one variable.
type VariableHistory struct {
	Name     string    `yaml:"name"`
	Bindings []Binding `yaml:"bindings"`
}

// Snapshot is a point-in-time view of the whole timeline store.
type Snapshot struct {
	Variables []VariableHistory `yaml:"variables"`
}

// Take captures the store's complete history. The store's reader lock
// guarantees a consistent prefix of completed writes.
func Take(store *evaluator.Store) Snapshot {
	var snap Snapshot
	for _, name := range store.Names() {
		history := VariableHistory{Name: name}
		for _, entry := range store.History(name) {
			history.Bindings = append(history.Bindings, Binding{
				Tick:  entry.Tick,
				Value: entry.Value.Inspect(),
				Kind:  string(entry.Value.Type()),
			})
		}
		snap.Variables = append(snap.Variables, history)
	}
	return snap
}

// WriteYAML renders the snapshot to w.
func WriteYAML(w io.Writer, snap Snapshot) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(snap)
}
