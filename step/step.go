// Package step defines the ordered progression contract for index types:
// the distance between two indices, and moving an index forward or backward
// by an offset without ever leaving its valid range.
//
// It is a separate package on purpose. Index types stand on their own;
// only callers that iterate or search over an index space need the
// stepping protocol, and they opt in by importing step.
package step

import "fmt"

// Stepper is implemented by ordered index types that can measure distance
// and move by a bounded offset. The receiver is the start of the move.
//
// A move that would overflow the offset domain and a move that would leave
// the index type's valid range both report false; the two causes are not
// distinguished. Checked moves never wrap and never panic.
type Stepper[T any] interface {
	// StepsBetween returns how many forward steps separate the receiver
	// from end. count is a lower bound on the distance and exact reports
	// whether it is precise. When end is ordered before the receiver,
	// the result is (0, false).
	StepsBetween(end T) (count int, exact bool)

	// ForwardChecked returns the index n steps after the receiver, or
	// false when the move cannot stay in range.
	ForwardChecked(n int) (T, bool)

	// BackwardChecked returns the index n steps before the receiver, or
	// false when the move cannot stay in range.
	BackwardChecked(n int) (T, bool)
}

// Count returns the distance from start to end. It is the free-function
// form of StepsBetween for generic call sites.
func Count[T Stepper[T]](start, end T) (count int, exact bool) {
	return start.StepsBetween(end)
}

// Forward returns the index n steps after start.
//
// It panics when the move cannot stay in range. Use ForwardChecked when
// running past the boundary is an expected outcome rather than a bug.
func Forward[T Stepper[T]](start T, n int) T {
	next, ok := start.ForwardChecked(n)
	if !ok {
		panic(fmt.Sprintf("step: cannot advance %v forward by %d", start, n))
	}
	return next
}

// Backward returns the index n steps before start.
//
// It panics when the move cannot stay in range. Use BackwardChecked when
// running past the boundary is an expected outcome rather than a bug.
func Backward[T Stepper[T]](start T, n int) T {
	prev, ok := start.BackwardChecked(n)
	if !ok {
		panic(fmt.Sprintf("step: cannot move %v backward by %d", start, n))
	}
	return prev
}
