package coinselect

import "fmt"

// InsufficientFundsError is returned when even selecting every
// unbanned candidate in the catalog cannot fund the target.
type InsufficientFundsError struct {
	// Missing is the amount still needed, in satoshis, on top of every
	// candidate's value.
	Missing Amount
}

// Error returns a human readable string describing the error.
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: missing %d satoshis", e.Missing)
}

// BnbNoSolutionError is returned when run_bnb's search space is
// exhausted, or its round budget is spent, without ever finding a
// feasible selection.
type BnbNoSolutionError struct {
	// Rounds is the number of nodes popped from the search queue before
	// giving up.
	Rounds int
}

// Error returns a human readable string describing the error.
func (e *BnbNoSolutionError) Error() string {
	return fmt.Sprintf("no bnb solution found after %d rounds", e.Rounds)
}

// BnbLimitReachedError is returned alongside a usable best-so-far
// result when max_rounds is hit before the search could prove its best
// solution optimal. The caller's CoinSelector is left holding the
// best-so-far selection; this error only signals that it has not been
// proven optimal.
type BnbLimitReachedError struct {
	Rounds int
	Score  Score
}

// Error returns a human readable string describing the error.
func (e *BnbLimitReachedError) Error() string {
	return fmt.Sprintf("bnb round limit (%d) reached before proving "+
		"optimality; best score found is %v", e.Rounds, e.Score)
}

// SelectionConflictKind enumerates the reasons a mutation of the
// CoinSelector's state can be rejected.
type SelectionConflictKind int

const (
	// ConflictAlreadySelected means the caller tried to select an index
	// that is already selected.
	ConflictAlreadySelected SelectionConflictKind = iota

	// ConflictBanned means the caller tried to select an index that is
	// currently banned.
	ConflictBanned

	// ConflictNotBanned means the caller tried to unban an index that
	// isn't currently banned.
	ConflictNotBanned
)

// SelectionConflictError is returned by Select and Unban when the
// requested mutation is impossible given the candidate's current
// state.
type SelectionConflictError struct {
	Index int
	Kind  SelectionConflictKind
}

// Error returns a human readable string describing the error.
func (e *SelectionConflictError) Error() string {
	switch e.Kind {
	case ConflictAlreadySelected:
		return fmt.Sprintf("candidate %d is already selected", e.Index)
	case ConflictBanned:
		return fmt.Sprintf("candidate %d is banned", e.Index)
	case ConflictNotBanned:
		return fmt.Sprintf("candidate %d is not banned", e.Index)
	default:
		return fmt.Sprintf("candidate %d: selection conflict", e.Index)
	}
}
