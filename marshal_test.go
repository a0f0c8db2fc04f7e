package idxgo_test

import (
	"errors"
	"testing"

	"github.com/hupe1980/idxgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalBinary(t *testing.T) {
	data, err := idxgo.FromUint32(0x0403_0201).MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, data)
}

func TestUnmarshalBinary(t *testing.T) {
	t.Run("valid round trip", func(t *testing.T) {
		in := idxgo.FromUint32(idxgo.MaxValue)
		data, err := in.MarshalBinary()
		require.NoError(t, err)

		var out idxgo.Index
		require.NoError(t, out.UnmarshalBinary(data))
		assert.Equal(t, in, out)
	})

	t.Run("invalid length", func(t *testing.T) {
		var out idxgo.Index
		assert.Error(t, out.UnmarshalBinary([]byte{0x01, 0x02}))
		assert.Error(t, out.UnmarshalBinary(nil))
	})

	t.Run("invalid reserved tail", func(t *testing.T) {
		var out idxgo.Index
		err := out.UnmarshalBinary([]byte{0x01, 0xFF, 0xFF, 0xFF}) // 0xFFFF_FF01
		require.Error(t, err)

		var oor *idxgo.OutOfRangeError
		require.True(t, errors.As(err, &oor))
		assert.Equal(t, int64(0xFFFF_FF01), oor.Value)
	})
}

func FuzzUint32RoundTrip(f *testing.F) {
	f.Add(uint32(0))
	f.Add(uint32(42))
	f.Add(idxgo.MaxValue)
	f.Add(idxgo.MaxValue + 1)

	f.Fuzz(func(t *testing.T, v uint32) {
		if v > idxgo.MaxValue {
			assert.Panics(t, func() { idxgo.FromUint32(v) })

			var out idxgo.Index
			assert.Error(t, out.UnmarshalBinary([]byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}))
			return
		}

		i := idxgo.FromUint32(v)
		assert.Equal(t, v, i.Uint32())

		data, err := i.MarshalBinary()
		require.NoError(t, err)

		var out idxgo.Index
		require.NoError(t, out.UnmarshalBinary(data))
		assert.Equal(t, i, out)
	})
}
