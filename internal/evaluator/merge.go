package evaluator

// MergeResolver collapses an open branch onto exactly one successor binding.
// Merge and Abort are the only terminal transitions of a branch; neither can
// be repeated.
type MergeResolver struct {
	store    *Store
	branches *BranchManager
}

func NewMergeResolver(store *Store, branches *BranchManager) *MergeResolver {
	return &MergeResolver{store: store, branches: branches}
}

// Merge writes the selected potential's value as the target variable's next
// timeline entry and discards every other potential. Exactly one entry is
// written no matter how many potentials existed; losing values never reach
// the store.
func (r *MergeResolver) Merge(branch *Branch, ordinal int) (int, *Error) {
	if branch.Status != BranchStatusOpen {
		return 0, newError(BranchAlreadyClosed, "branch %s on %s is already %s",
			branch.ID, branch.Target, branch.Status)
	}

	selected := branch.Potential(ordinal)
	if selected == nil {
		return 0, newError(UnknownPotential, "branch %s on %s has no potential %d",
			branch.ID, branch.Target, ordinal)
	}

	for _, pot := range branch.Potentials {
		if pot.Status == PotentialResolved {
			continue
		}
		if pot.Err != nil {
			return 0, newError(IncompletePotentials,
				"potential %d of branch %s on %s failed: %s",
				pot.Ordinal, branch.ID, branch.Target, pot.Err.Message)
		}
		return 0, newError(IncompletePotentials,
			"potential %d of branch %s on %s is still pending",
			pot.Ordinal, branch.ID, branch.Target)
	}

	tick := r.store.Write(branch.Target, selected.Value)
	r.branches.close(branch, BranchStatusMerged)
	return tick, nil
}

// Abort discards all potentials without writing any value.
func (r *MergeResolver) Abort(branch *Branch) *Error {
	if branch.Status != BranchStatusOpen {
		return newError(BranchAlreadyClosed, "branch %s on %s is already %s",
			branch.ID, branch.Target, branch.Status)
	}
	r.branches.close(branch, BranchStatusAborted)
	return nil
}
