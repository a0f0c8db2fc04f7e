package idxgo

import (
	"encoding"
	"encoding/binary"
	"fmt"
)

// Compile time checks to ensure Index satisfies the binary codec interfaces.
var (
	_ encoding.BinaryMarshaler   = Index{}
	_ encoding.BinaryUnmarshaler = (*Index)(nil)
)

// binarySize is the wire size of an Index: one 32-bit word.
const binarySize = 4

// MarshalBinary encodes the index as its 32-bit offset, little-endian.
func (i Index) MarshalBinary() ([]byte, error) {
	buf := make([]byte, binarySize)
	binary.LittleEndian.PutUint32(buf, i.value)
	return buf, nil
}

// UnmarshalBinary decodes a 32-bit little-endian offset and validates it.
// Reserved-tail bit patterns are rejected with *OutOfRangeError.
func (i *Index) UnmarshalBinary(data []byte) error {
	if len(data) != binarySize {
		return fmt.Errorf("idxgo: invalid index length: %d", len(data))
	}
	v := binary.LittleEndian.Uint32(data)
	if v > MaxValue {
		return &OutOfRangeError{Value: int64(v)}
	}
	i.value = v
	return nil
}
