package swapplan

// board is the working array of a single Trace call together with its
// lookup strategy. It is never shared between calls.
type board struct {
	cells []int

	// at maps value → current position; nil under LinearScan.
	at map[int]int
}

// newBoard copies src so the caller's slice is never mutated.
//
// Complexity: O(n).
func newBoard(src []int, mode LookupMode) *board {
	b := &board{cells: make([]int, len(src))}
	copy(b.cells, src)
	if mode == ReverseIndex {
		b.at = make(map[int]int, len(src))
		for i, v := range b.cells {
			b.at[v] = i
		}
	}

	return b
}

// pos returns the position of v in the working array.
//
// Complexity: O(1) with the reverse index, O(n) otherwise.
func (b *board) pos(v int) (int, bool) {
	if b.at != nil {
		i, ok := b.at[v]
		return i, ok
	}
	for i, c := range b.cells {
		if c == v {
			return i, true
		}
	}

	return -1, false
}

// swap exchanges cells i and j and keeps the reverse index in sync.
func (b *board) swap(i, j int) {
	b.cells[i], b.cells[j] = b.cells[j], b.cells[i]
	if b.at != nil {
		b.at[b.cells[i]] = i
		b.at[b.cells[j]] = j
	}
}
