package idxgo

// StepsBetween returns how many forward steps separate i from end. The
// count is exact whenever end is not ordered before i; otherwise the
// result is (0, false).
func (i Index) StepsBetween(end Index) (count int, exact bool) {
	if end.value < i.value {
		return 0, false
	}
	return int(end.value - i.value), true
}

// ForwardChecked returns the index n steps after i, or false when n is
// negative or the move would pass Max. It never panics and never wraps.
func (i Index) ForwardChecked(n int) (Index, bool) {
	if n < 0 {
		return Index{}, false
	}
	// i.value <= MaxValue < 2^32 and n <= 2^63-1, so the sum cannot wrap
	// a uint64.
	offset := uint64(i.value) + uint64(n)
	if offset > uint64(MaxValue) {
		return Index{}, false
	}
	return Index{value: uint32(offset)}, true
}

// BackwardChecked returns the index n steps before i, or false when n is
// negative or the move would pass Zero. It never panics and never wraps.
func (i Index) BackwardChecked(n int) (Index, bool) {
	if n < 0 || uint64(n) > uint64(i.value) {
		return Index{}, false
	}
	return Index{value: i.value - uint32(n)}, true
}
