package coinselect

import (
	"container/heap"

	"github.com/davecgh/go-spew/spew"
)

// BnbResult is what RunBnB leaves behind on success: the winning
// score, how many rounds (queue pops) the search took, and whether
// the search proved that score optimal (as opposed to reporting the
// best-so-far after hitting max_rounds).
type BnbResult struct {
	Score  Score
	Rounds int
	Proven bool
}

// bnbNode is one node in the search tree: a CoinSelector snapshot
// (states plus the derived scalar totals) and k, the number of
// sort-order prefix positions that have been decided. Nodes share the
// parent CoinSelector's read-only candidate catalog and sort order;
// they only carry their own copy of per-candidate state, since the
// search queue can hold many nodes at once and cloning the whole
// catalog per node would make it the dominant cost of the search.
type bnbNode struct {
	states []candidateState
	k      int

	selectedValue       Amount
	selectedWeight      uint64
	selectedInputCount  uint64
	selectedSegwitCount uint64

	bound Score
}

// selectorForNode builds a throwaway *CoinSelector sharing cs's catalog and
// sort order but reflecting n's state and totals, so that Metric
// implementations -- which only know how to operate on a
// *CoinSelector -- can be evaluated against a search node without it
// needing its own notion of a search tree.
func (cs *CoinSelector) selectorForNode(n *bnbNode) *CoinSelector {
	return &CoinSelector{
		candidates:          cs.candidates,
		states:              n.states,
		sortOrder:           cs.sortOrder,
		selectedValue:       n.selectedValue,
		selectedWeight:      n.selectedWeight,
		selectedInputCount:  n.selectedInputCount,
		selectedSegwitCount: n.selectedSegwitCount,
	}
}

// rootNode builds the initial search node from cs's current
// selection, whatever it is (callers may seed mandatory selections
// before calling RunBnB).
func (cs *CoinSelector) rootNode() *bnbNode {
	states := make([]candidateState, len(cs.states))
	copy(states, cs.states)

	return &bnbNode{
		states:              states,
		k:                   0,
		selectedValue:       cs.selectedValue,
		selectedWeight:      cs.selectedWeight,
		selectedInputCount:  cs.selectedInputCount,
		selectedSegwitCount: cs.selectedSegwitCount,
	}
}

// advance returns a copy of n with k incremented by one and, if
// include is true and idx is free, idx marked selected with totals
// updated.
func (cs *CoinSelector) advance(n *bnbNode, idx int, include bool) *bnbNode {
	states := make([]candidateState, len(n.states))
	copy(states, n.states)

	child := &bnbNode{
		states:              states,
		k:                   n.k + 1,
		selectedValue:       n.selectedValue,
		selectedWeight:      n.selectedWeight,
		selectedInputCount:  n.selectedInputCount,
		selectedSegwitCount: n.selectedSegwitCount,
	}

	if include && states[idx] == stateUnselected {
		c := cs.candidates[idx]
		states[idx] = stateSelected
		child.selectedValue += c.Value
		child.selectedWeight += uint64(c.Weight)
		child.selectedInputCount += uint64(c.InputCount)
		if c.IsSegwit {
			child.selectedSegwitCount++
		}
	}

	return child
}

// children returns the (at most two) branches reachable from node n
// at its current k: include candidate idx in the selection, or
// exclude it, each advancing k by one. A candidate that is already
// selected or banned only has one reachable branch.
func (cs *CoinSelector) children(n *bnbNode) []*bnbNode {
	idx := cs.sortOrder[n.k]

	switch n.states[idx] {
	case stateBanned:
		// Only the exclude branch is reachable: i can never be
		// selected.
		return []*bnbNode{cs.advance(n, idx, false)}

	case stateSelected:
		// i was pre-selected by the caller before search began; the
		// only reachable branch keeps it selected.
		return []*bnbNode{cs.advance(n, idx, true)}

	default:
		return []*bnbNode{
			cs.advance(n, idx, false),
			cs.advance(n, idx, true),
		}
	}
}

// bnbQueue is a binary heap of search nodes ordered by ascending
// bound, breaking ties by descending depth (k) to prefer nodes closer
// to a leaf, hastening the first feasible discovery. It wraps
// container/heap the way watchtower/wtclient's towerListIterator wraps
// container/list: a small named type exposing the operations the
// driver needs, never the raw container.
type bnbQueue []*bnbNode

func (q bnbQueue) Len() int { return len(q) }

func (q bnbQueue) Less(i, j int) bool {
	if q[i].bound != q[j].bound {
		return q[i].bound < q[j].bound
	}
	return q[i].k > q[j].k
}

func (q bnbQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *bnbQueue) Push(x interface{}) {
	*q = append(*q, x.(*bnbNode))
}

func (q *bnbQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// RunBnB performs best-first branch-and-bound over the lattice of
// selections, using metric's bound to prune and metric's score to
// evaluate fully-decided leaves. On success (or on a usable
// best-so-far after the round budget is spent) it leaves cs's own
// selection state set to the winning node, so ApplySelection reflects
// the result directly.
//
// Changing cs's sort order after calling RunBnB is undefined; set it
// beforehand, typically via SortCandidatesByDescendingValuePWU.
func (cs *CoinSelector) RunBnB(
	metric Metric,
	target Target,
	policy ChangePolicy,
	maxRounds int,
) (*BnbResult, error) {

	root := cs.rootNode()
	if bound, ok := metric.Bound(cs.selectorForNode(root), target, policy, 0); ok {
		root.bound = bound
	} else {
		return nil, &BnbNoSolutionError{Rounds: 0}
	}

	queue := &bnbQueue{root}
	heap.Init(queue)

	var (
		best      *bnbNode
		bestScore Score
		rounds    int
		exhausted bool
	)

	for queue.Len() > 0 {
		if rounds >= maxRounds {
			break
		}

		node := heap.Pop(queue).(*bnbNode)
		rounds++

		if best != nil && node.bound >= bestScore {
			log.Tracef("bnb: pruning node %v (bound %v >= best %v)",
				spew.Sdump(node), node.bound, bestScore)
			continue
		}

		if node.k == len(cs.candidates) {
			sel := cs.selectorForNode(node)
			if score, ok := metric.Score(sel, target, policy); ok {
				if best == nil || score < bestScore {
					best, bestScore = node, score
				}
			}
			continue
		}

		for _, child := range cs.children(node) {
			bound, ok := metric.Bound(
				cs.selectorForNode(child), target, policy, child.k,
			)
			if !ok {
				continue
			}
			if best != nil && bound >= bestScore {
				continue
			}
			child.bound = bound
			heap.Push(queue, child)
		}
	}

	if queue.Len() == 0 {
		exhausted = true
	}

	if best == nil {
		return nil, &BnbNoSolutionError{Rounds: rounds}
	}

	cs.states = best.states
	cs.selectedValue = best.selectedValue
	cs.selectedWeight = best.selectedWeight
	cs.selectedInputCount = best.selectedInputCount
	cs.selectedSegwitCount = best.selectedSegwitCount

	result := &BnbResult{Score: bestScore, Rounds: rounds, Proven: exhausted}
	if !exhausted {
		return result, &BnbLimitReachedError{Rounds: rounds, Score: bestScore}
	}
	return result, nil
}
