package coinselect

// ApplySelection projects original, a caller-owned slice parallel to
// the candidate catalog cs was built from, down to the elements at
// currently selected indices, in sort order (not input order).
//
// Go has no generic methods, so this is a free function rather than a
// method on *CoinSelector, generalizing the same "project by index"
// idea as chanfunding.selectInputs's coins[:i+1] slice, but by selected
// index instead of by contiguous prefix.
func ApplySelection[T any](cs *CoinSelector, original []T) []T {
	out := make([]T, 0, len(cs.sortOrder))
	for _, i := range cs.sortOrder {
		if cs.states[i] == stateSelected {
			out = append(out, original[i])
		}
	}
	return out
}
