package idxgo

import "fmt"

// MaxValue is the largest offset an Index can hold. The 256 bit patterns
// above it (0xFFFF_FF01 through 0xFFFF_FFFF) are never produced by the
// validating constructors and stay available to callers that pack a small
// tag next to an index in the same 32-bit word.
const MaxValue uint32 = 0xFFFF_FF00

var (
	// Zero is the index at offset 0. It equals the zero value of Index.
	Zero Index

	// Max is the largest index the validating constructors will produce.
	Max = Index{value: MaxValue}
)

// Index is a dense, strictly 32-bit index, allowing for max 4 billion
// (minus a reserved tail of 256) entries per index space. Used for all
// hot-path structures keyed by position (adjacency lists, bitsets, heaps).
//
// The offset is held in an unexported field so that every construction
// path outside this package runs the range validation; a plain defined
// type over uint32 would let a conversion smuggle in a reserved-tail bit
// pattern. Index is comparable and usable as a map key.
type Index struct {
	value uint32
}

// New returns the index at the given offset.
//
// It panics with *OutOfRangeError if offset is negative or exceeds
// MaxValue.
func New(offset int) Index {
	if offset < 0 || uint64(offset) > uint64(MaxValue) {
		panic(&OutOfRangeError{Value: int64(offset)})
	}
	return Index{value: uint32(offset)}
}

// FromUint32 returns the index at offset v.
//
// It panics with *OutOfRangeError if v exceeds MaxValue.
func FromUint32(v uint32) Index {
	if v > MaxValue {
		panic(&OutOfRangeError{Value: int64(v)})
	}
	return Index{value: v}
}

// FromUint16 returns the index at offset v. Every uint16 offset is
// numerically in range; the value still runs through the validating path
// so all checked constructors behave uniformly.
func FromUint16(v uint16) Index {
	return FromUint32(uint32(v))
}

// FromUint32Unchecked returns the index at offset v without validating it.
//
// The caller must guarantee v <= MaxValue. A violating value breaks the
// reserved-tail contract that every safe accessor assumes; it is only
// legitimate for callers that overlay their own tag scheme onto the word
// and strip it before handing the index back.
//
// Prefer FromUint32.
func FromUint32Unchecked(v uint32) Index {
	return Index{value: v}
}

// Index returns the offset of i.
func (i Index) Index() int {
	return int(i.value)
}

// Uint32 returns the offset of i as a uint32.
func (i Index) Uint32() uint32 {
	return i.value
}

// New returns the index at the given offset, independent of the receiver.
// It makes Index satisfy Idx[Index]; the package-level New is the direct
// form.
func (Index) New(offset int) Index {
	return New(offset)
}

// Add returns the index offset positions after i.
//
// It panics with *OutOfRangeError under exactly the same condition as
// New(i.Index() + offset).
func (i Index) Add(offset int) Index {
	return New(i.Index() + offset)
}

// Less reports whether i is ordered before other. The order is the total
// order of the underlying offsets.
func (i Index) Less(other Index) bool {
	return i.value < other.value
}

// Compare returns -1 if i is ordered before other, +1 if after, and 0 when
// equal. It follows the cmp.Compare convention for use with
// slices.SortFunc and friends.
func (i Index) Compare(other Index) int {
	switch {
	case i.value < other.value:
		return -1
	case i.value > other.value:
		return 1
	default:
		return 0
	}
}

// String returns a string representation of the Index.
func (i Index) String() string {
	return fmt.Sprintf("Idx(%d)", i.value)
}
