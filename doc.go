// Package idxgo provides a dense, strictly 32-bit index value type with a
// reserved tag tail, plus the generic contracts needed to write algorithms
// over any index newtype.
//
// # Index
//
// Index wraps a uint32 and maintains the invariant 0 <= offset <= MaxValue.
// The 256 bit patterns above MaxValue are never produced by the validating
// constructors, so callers that embed an index inside a larger tagged
// representation can claim those patterns as tags without extra storage:
//
//	i := idxgo.New(42)
//	i = i.Add(1)
//	fmt.Println(i.Index()) // 43
//
// Going out of range during construction is a bug in the caller, not a
// runtime condition: the validating constructors and Add panic with
// *OutOfRangeError. Decoding untrusted bytes goes through UnmarshalBinary,
// which returns the error instead.
//
// # Generic contracts
//
// Idx abstracts construction from, and extraction to, a plain int offset.
// Generic code written against Idx works with any conforming index type and
// cannot accidentally mix indices from different domains. The step
// subpackage adds the ordered progression protocol (distance between two
// indices, bounds-checked forward/backward movement) for callers that
// iterate or search over an index space.
//
// Offsets above math.MaxInt32 require a 64-bit int.
package idxgo
