package swapplan

import "fmt"

// Apply returns a copy of a with every step of p applied in order.
// a itself is left untouched.
//
// Errors:
//   - ErrStepOutOfRange — a step references a position outside a.
func (p Plan) Apply(a []int) ([]int, error) {
	return p.Replay(a, nil)
}

// Replay is Apply with a callback invoked after each step. fn receives the
// step number k (0-based), the step and the state after the swap; the state
// slice is reused between calls.
func (p Plan) Replay(a []int, fn func(k int, s Step, state []int)) ([]int, error) {
	out := make([]int, len(a))
	copy(out, a)

	n := len(out)
	for k, s := range p {
		if s.I < 0 || s.I >= n || s.J < 0 || s.J >= n {
			return nil, fmt.Errorf("%w: step %d %v on length %d", ErrStepOutOfRange, k, s, n)
		}
		out[s.I], out[s.J] = out[s.J], out[s.I]
		if fn != nil {
			fn(k, s, out)
		}
	}

	return out, nil
}
