package idxgo

// Idx is the contract shared by dense index newtypes. It pairs a validating
// factory with offset extraction, so a generic algorithm can take indices
// apart and rebuild them without knowing the concrete type. Keeping each
// index domain its own Idx implementation prevents indices of different
// domains from being mixed.
//
// The embedded comparable carries the equality and map-key requirements of
// the contract.
type Idx[T any] interface {
	comparable

	// New returns the index at the given offset. The receiver acts only
	// as a factory; the result does not depend on it. Out-of-range
	// behavior is the implementation's: Index panics with
	// *OutOfRangeError.
	New(offset int) T

	// Index returns the offset of this index.
	Index() int
}

// Plus returns the index amount positions after i. It inherits the range
// failure behavior of the implementation's New.
func Plus[T Idx[T]](i T, amount int) T {
	return i.New(i.Index() + amount)
}

// IncrementBy advances *i by amount in place. Use Plus to keep the
// original value.
func IncrementBy[T Idx[T]](i *T, amount int) {
	*i = Plus(*i, amount)
}
