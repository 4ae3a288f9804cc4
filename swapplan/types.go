// Package swapplan defines the step/plan types, options and sentinel errors.
package swapplan

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultSentinel is the empty-slot marker used by RandomInstance and the CLI
// when no other value is given.
const DefaultSentinel = -1

// Sentinel errors for planning.
//
// Every input rejection satisfies errors.Is(err, ErrInvalidInput); the more
// specific sentinels below let callers branch on the reason.
var (
	// ErrInvalidInput is the root of all input rejections.
	ErrInvalidInput = errors.New("swapplan: invalid input")

	// ErrLengthMismatch indicates source and destination differ in length.
	ErrLengthMismatch = fmt.Errorf("%w: length mismatch", ErrInvalidInput)

	// ErrValueMismatch indicates the non-sentinel values differ between the arrays.
	ErrValueMismatch = fmt.Errorf("%w: value mismatch", ErrInvalidInput)

	// ErrDuplicateValue indicates a non-sentinel value repeats inside one array.
	ErrDuplicateValue = fmt.Errorf("%w: duplicate value", ErrInvalidInput)

	// ErrSentinelCount indicates an array without exactly one sentinel.
	ErrSentinelCount = fmt.Errorf("%w: sentinel count must be exactly one", ErrInvalidInput)

	// ErrInvariantViolation reports an internal logic defect. It cannot occur
	// for input accepted by Validate.
	ErrInvariantViolation = errors.New("swapplan: internal invariant violated")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("swapplan: invalid option supplied")

	// ErrStepOutOfRange is returned by Plan.Apply when a step indexes
	// outside the array it is applied to.
	ErrStepOutOfRange = errors.New("swapplan: step index out of range")
)

// Step swaps the values at positions I and J. I != J for every emitted step.
type Step struct {
	I int
	J int
}

// String renders the step as "(i j)".
func (s Step) String() string {
	return fmt.Sprintf("(%d %d)", s.I, s.J)
}

// Plan is the ordered list of steps that turns a source array into its
// destination.
type Plan []Step

// Len returns the number of steps.
func (p Plan) Len() int { return len(p) }

// String renders the plan as "[(0 3) (0 5) ...]".
func (p Plan) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for k, s := range p {
		if k > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s.String())
	}
	b.WriteByte(']')

	return b.String()
}

// LookupMode selects how Trace locates the sentinel and target values.
//
//   - LinearScan   — scan the working array on every lookup.
//     Time O(n²), no extra memory.
//
//   - ReverseIndex — keep a value→position map updated on every swap.
//     Time O(n), O(n) extra memory.
//
// Both modes emit exactly the same Plan.
type LookupMode int

const (
	// LinearScan locates values by scanning the working array.
	LinearScan LookupMode = iota

	// ReverseIndex locates values through an incrementally maintained map.
	ReverseIndex
)

// String returns the flag spelling of the mode.
func (m LookupMode) String() string {
	switch m {
	case LinearScan:
		return "linear"
	case ReverseIndex:
		return "index"
	default:
		return fmt.Sprintf("LookupMode(%d)", int(m))
	}
}

// ParseLookupMode maps "linear" / "index" back to a LookupMode.
func ParseLookupMode(s string) (LookupMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear", "scan", "":
		return LinearScan, nil
	case "index", "reverse", "bimap":
		return ReverseIndex, nil
	default:
		return 0, fmt.Errorf("%w: unknown lookup mode %q", ErrOptionViolation, s)
	}
}

// Option configures Trace via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// Trace is invoked.
type Option func(*Options)

// Options holds parameters and hooks for Trace.
type Options struct {
	// Lookup selects the position lookup strategy.
	Lookup LookupMode

	// OnStep is called after every emitted step with the scan index that
	// produced it, the step itself and the working array after the swap.
	// The slice is owned by Trace; copy it to keep it.
	OnStep func(index int, s Step, working []int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - LinearScan lookup
//   - no-op OnStep hook
func DefaultOptions() Options {
	return Options{
		Lookup: LinearScan,
		OnStep: func(int, Step, []int) {},
		err:    nil,
	}
}

// WithLookup selects the lookup strategy. Unknown modes yield ErrOptionViolation.
func WithLookup(m LookupMode) Option {
	return func(o *Options) {
		switch m {
		case LinearScan, ReverseIndex:
			o.Lookup = m
		default:
			o.err = fmt.Errorf("%w: unknown lookup mode %d", ErrOptionViolation, int(m))
		}
	}
}

// WithOnStep registers an observer for every emitted step.
func WithOnStep(fn func(index int, s Step, working []int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
