package coinselect

// Score is a metric's objective value. Smaller is better; ties are
// acceptable and broken arbitrarily by search order.
type Score float64

// Metric is the capability set run_bnb searches against: a way to
// score a fully-decided selection, and a way to lower-bound the best
// score any completion of a partial selection could achieve.
//
// This is expressed as an interface rather than a type hierarchy --
// a swappable algorithm behind one small interface, with no
// inheritance, just two independently implementable methods.
type Metric interface {
	// Score returns the metric's objective value for the current,
	// fully-decided selection, or ok=false if the selection is
	// infeasible (target not met, or the change policy can't be
	// reconciled with it).
	Score(cs *CoinSelector, target Target, policy ChangePolicy) (score Score, ok bool)

	// Bound returns a lower bound on the score achievable by any
	// completion of the partial selection at node (cs, k), where
	// decisions for sort-order positions < k are frozen and positions
	// >= k are free. ok=false prunes the subtree rooted at this node.
	//
	// The bound MUST be a valid underestimate of every reachable
	// completion's score; an invalid bound breaks BnB's optimality
	// guarantee.
	Bound(cs *CoinSelector, target Target, policy ChangePolicy, k int) (bound Score, ok bool)
}
