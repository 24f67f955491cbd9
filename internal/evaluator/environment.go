package evaluator

// Environment routes variable reads and writes. Outside a potential it is a
// thin view over the shared timeline store. Inside a potential, reads and
// writes of the branch's target variable act on the potential's private
// value; every other variable still hits the shared store immediately.
// Branch/merge isolates a single variable's divergent futures, nothing else.
type Environment struct {
	store     *Store
	parent    *Environment
	branch    *Branch
	potential *Potential
}

func NewEnvironment(store *Store) *Environment {
	return &Environment{store: store}
}

// EnterPotential returns the execution context for one potential's
// sub-sequence. The receiver becomes the parent, so a nested branch keeps
// routing the enclosing branch's target to its potential.
func (e *Environment) EnterPotential(branch *Branch, pot *Potential) *Environment {
	return &Environment{store: e.store, parent: e, branch: branch, potential: pot}
}

func (e *Environment) isTarget(name string) bool {
	return e.potential != nil && e.branch.Target == name
}

// Get resolves name to its current value in this context.
func (e *Environment) Get(name string) (Object, *Error) {
	if e.isTarget(name) {
		return e.potential.Value, nil
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return e.store.Read(name)
}

// Set binds name to value. Returns the assigned tick, or -1 for a private
// potential write (private values carry no tick until merge commits one).
func (e *Environment) Set(name string, value Object) int {
	if e.isTarget(name) {
		e.potential.Value = value
		return -1
	}
	if e.parent != nil {
		return e.parent.Set(name, value)
	}
	return e.store.Write(name, value)
}

// Store exposes the shared timeline for inspection.
func (e *Environment) Store() *Store { return e.store }
