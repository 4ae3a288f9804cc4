package swapplan

import "fmt"

// Trace — evacuate-then-fill swap planning
//
// Description:
//
//	Trace returns the ordered steps that turn src into dst when every swap
//	routes through the single empty slot marked by sentinel.
//
// Algorithm Outline:
//  1. Validate(src, dst, sentinel); reject before touching anything.
//  2. working := copy(src).
//  3. For i = 0..n-1:
//     if working[i] == dst[i]            → continue
//     e := pos(sentinel); e != i         → emit (i, e), swap   (evacuate)
//     v := pos(dst[i]);   v != i         → emit (i, v), swap   (fill)
//     working[i] must now equal dst[i].
//  4. working must equal dst.
//
// Step order (evacuate before fill, ascending i) is fixed, so the Plan is
// fully determined by the input regardless of LookupMode.
//
// Once index i is finalized it is never part of a later step, except when
// dst[i] is the sentinel: that slot may be borrowed by a later evacuation.
// The value parked there always belongs further right, so its own fill
// returns the sentinel.
//
// Complexity:
//
//	Time   = O(n²) (LinearScan) or O(n) (ReverseIndex)
//	Memory = O(n)  (+ O(n) map for ReverseIndex)
//
// Errors:
//   - ErrOptionViolation          — invalid Option.
//   - ErrInvalidInput (and kin)   — see Validate.
//   - ErrInvariantViolation       — internal defect; unreachable for valid input.
func Trace(src, dst []int, sentinel int, opts ...Option) (Plan, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := Validate(src, dst, sentinel); err != nil {
		return nil, err
	}

	n := len(src)
	b := newBoard(src, o.Lookup)
	plan := make(Plan, 0, MaxSteps(n))

	emit := func(i int, s Step) {
		b.swap(s.I, s.J)
		plan = append(plan, s)
		o.OnStep(i, s, b.cells)
	}

	var (
		i, e, v int
		ok      bool
	)
	for i = 0; i < n; i++ {
		if b.cells[i] == dst[i] {
			continue
		}

		// Evacuate: move the misplaced value into the empty slot.
		if e, ok = b.pos(sentinel); !ok {
			return nil, fmt.Errorf("%w: sentinel missing at index %d", ErrInvariantViolation, i)
		}
		if e != i {
			emit(i, Step{I: i, J: e})
		}

		// Fill: bring the wanted value into the now empty index i.
		if v, ok = b.pos(dst[i]); !ok {
			return nil, fmt.Errorf("%w: value %d missing at index %d", ErrInvariantViolation, dst[i], i)
		}
		if v != i {
			emit(i, Step{I: i, J: v})
		}

		if b.cells[i] != dst[i] {
			return nil, fmt.Errorf("%w: index %d holds %d, want %d", ErrInvariantViolation, i, b.cells[i], dst[i])
		}
	}

	for i = 0; i < n; i++ {
		if b.cells[i] != dst[i] {
			return nil, fmt.Errorf("%w: final index %d holds %d, want %d", ErrInvariantViolation, i, b.cells[i], dst[i])
		}
	}

	return plan, nil
}

// MaxSteps is the upper bound on len(Trace(...)) for arrays of length n:
// 2·(n−1), and 0 for n ≤ 1.
func MaxSteps(n int) int {
	if n <= 1 {
		return 0
	}

	return 2 * (n - 1)
}
