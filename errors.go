package idxgo

import "fmt"

// OutOfRangeError reports a value that cannot exist in the index space.
//
// The validating constructors and Add panic with it, because producing an
// out-of-range index is a logic error in the caller. UnmarshalBinary
// returns it instead, because decoded bytes are untrusted input.
type OutOfRangeError struct {
	Value int64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("idxgo: value %d is outside the index range [0, %d]", e.Value, MaxValue)
}
