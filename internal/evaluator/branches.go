package evaluator

import (
	"github.com/google/uuid"
)

type BranchStatus int

const (
	BranchStatusOpen BranchStatus = iota
	BranchStatusMerged
	BranchStatusAborted
)

func (s BranchStatus) String() string {
	switch s {
	case BranchStatusMerged:
		return "merged"
	case BranchStatusAborted:
		return "aborted"
	default:
		return "open"
	}
}

type PotentialStatus int

const (
	PotentialPending PotentialStatus = iota
	PotentialResolved
	PotentialFailed
)

// Potential is one candidate continuation of a branched variable. Its Value
// is private: nothing written here reaches the shared store unless the
// merge selects this ordinal.
type Potential struct {
	Ordinal int // 1-based
	Value   Object
	Status  PotentialStatus
	// Err records why a potential failed; surfaced at merge time.
	Err *Error
}

// Branch tracks one fork point of one variable. All potentials fork from
// the same timeline entry (the target's value at ForkTick).
type Branch struct {
	ID         uuid.UUID
	Target     string
	ForkTick   int
	Potentials []*Potential
	Status     BranchStatus
}

// Potential returns the potential with the given 1-based ordinal, or nil.
func (b *Branch) Potential(ordinal int) *Potential {
	if ordinal < 1 || ordinal > len(b.Potentials) {
		return nil
	}
	return b.Potentials[ordinal-1]
}

// BranchManager creates branches and tracks which are still open. At most
// one branch may be open per target variable at a time.
type BranchManager struct {
	store *Store
	open  map[string]*Branch
	// latest keeps the last branch per target after it closes, so a second
	// merge can be distinguished from a merge that never had a branch.
	latest map[string]*Branch
}

func NewBranchManager(store *Store) *BranchManager {
	return &BranchManager{
		store:  store,
		open:   make(map[string]*Branch),
		latest: make(map[string]*Branch),
	}
}

// Open forks name into n potentials, each holding a private copy of the
// variable's current value. This is the only way potentials come into
// existence.
func (m *BranchManager) Open(name string, n int) (*Branch, *Error) {
	if n < 1 {
		return nil, newError(InvalidBranchArity, "branch on %s requires at least one potential, got %d", name, n)
	}
	if existing, ok := m.open[name]; ok {
		return nil, newError(BranchAlreadyOpen, "branch %s on %s is still open", existing.ID, name)
	}

	forkValue, err := m.store.Read(name)
	if err != nil {
		return nil, err
	}

	branch := &Branch{
		ID:       uuid.New(),
		Target:   name,
		ForkTick: m.store.LatestTick(name),
		Status:   BranchStatusOpen,
	}
	for i := 1; i <= n; i++ {
		// Values are immutable, so sharing the fork value is a safe
		// private copy; any write replaces the potential's Value wholesale.
		branch.Potentials = append(branch.Potentials, &Potential{
			Ordinal: i,
			Value:   forkValue,
		})
	}

	m.open[name] = branch
	m.latest[name] = branch
	return branch, nil
}

// Lookup finds the open branch targeting name. When the variable's last
// branch already closed, the error says so instead of claiming no branch
// ever existed.
func (m *BranchManager) Lookup(name string) (*Branch, *Error) {
	if branch, ok := m.open[name]; ok {
		return branch, nil
	}
	if closed, ok := m.latest[name]; ok {
		return nil, newError(BranchAlreadyClosed, "branch %s on %s is already %s", closed.ID, name, closed.Status)
	}
	return nil, newError(UnknownBranch, "no branch has been opened on %s", name)
}

// ResolvePotential records a potential's terminal private value.
func (m *BranchManager) ResolvePotential(branch *Branch, ordinal int, value Object) *Error {
	if branch.Status != BranchStatusOpen {
		return newError(UnknownPotential, "potential %d belongs to %s branch %s on %s",
			ordinal, branch.Status, branch.ID, branch.Target)
	}
	pot := branch.Potential(ordinal)
	if pot == nil {
		return newError(UnknownPotential, "branch %s on %s has no potential %d",
			branch.ID, branch.Target, ordinal)
	}
	pot.Value = value
	pot.Status = PotentialResolved
	return nil
}

// FailPotential marks a potential as failed with the error that stopped its
// sub-sequence. The branch stays open; the merge reports the failure.
func (m *BranchManager) FailPotential(branch *Branch, ordinal int, err *Error) {
	if pot := branch.Potential(ordinal); pot != nil {
		pot.Status = PotentialFailed
		pot.Err = err
	}
}

// close removes the branch from the open table and destroys its potentials.
// Called by the merge resolver on both terminal transitions.
func (m *BranchManager) close(branch *Branch, status BranchStatus) {
	branch.Status = status
	branch.Potentials = nil
	if m.open[branch.Target] == branch {
		delete(m.open, branch.Target)
	}
}
