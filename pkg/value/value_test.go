package value_test

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/macladson/milhouse/pkg/util"
	"github.com/macladson/milhouse/pkg/value"
	"github.com/stretchr/testify/require"
)

type threeway byte

func (threeway) PackingFactor() int          { return 3 }
func (v threeway) PutBytes(dst []byte)       { dst[0] = byte(v) }
func (threeway) FromBytes(b []byte) threeway { return threeway(b[0]) }

func TestPackingFactor(t *testing.T) {
	require.Equal(t, 32, value.PackingFactor[value.Uint8]())
	require.Equal(t, 16, value.PackingFactor[value.Uint16]())
	require.Equal(t, 8, value.PackingFactor[value.Uint32]())
	require.Equal(t, 4, value.PackingFactor[value.Uint64]())
	require.Equal(t, 32, value.PackingFactor[value.Bool]())
	require.Equal(t, 1, value.PackingFactor[value.Uint256]())
	require.Equal(t, 1, value.PackingFactor[value.Hash256]())

	require.Equal(t, 1, value.Len[value.Uint8]())
	require.Equal(t, 8, value.Len[value.Uint64]())
	require.Equal(t, util.ChunkSize, value.Len[value.Uint256]())
}

func TestValidate(t *testing.T) {
	require.NoError(t, value.Validate[value.Uint8]())
	require.NoError(t, value.Validate[value.Uint16]())
	require.NoError(t, value.Validate[value.Uint32]())
	require.NoError(t, value.Validate[value.Uint64]())
	require.NoError(t, value.Validate[value.Bool]())
	require.NoError(t, value.Validate[value.Uint256]())
	require.NoError(t, value.Validate[value.Hash256]())
	require.ErrorIs(t, value.Validate[threeway](), value.ErrBadPackingFactor)
}

func testRoundTrip[T value.Text[T]](t *testing.T, v T, expected []byte) {
	b := value.Bytes(v)
	require.Equal(t, expected, b)
	require.Equal(t, v, v.FromBytes(b))

	parsed, err := v.Parse(v.String())
	require.NoError(t, err)
	require.Equal(t, v, parsed)
}

func TestEncoding(t *testing.T) {
	t.Run("Uint8", func(t *testing.T) {
		testRoundTrip(t, value.Uint8(0xab), []byte{0xab})
	})
	t.Run("Uint16", func(t *testing.T) {
		testRoundTrip(t, value.Uint16(0x0102), []byte{0x02, 0x01})
	})
	t.Run("Uint32", func(t *testing.T) {
		testRoundTrip(t, value.Uint32(0x01020304), []byte{0x04, 0x03, 0x02, 0x01})
	})
	t.Run("Uint64", func(t *testing.T) {
		testRoundTrip(t, value.Uint64(0x0102030405060708),
			[]byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01})
	})
	t.Run("Bool", func(t *testing.T) {
		testRoundTrip(t, value.Bool(true), []byte{1})
		testRoundTrip(t, value.Bool(false), []byte{0})
		require.Equal(t, value.Bool(true), value.Bool(false).FromBytes([]byte{7}))
	})
	t.Run("Uint256", func(t *testing.T) {
		expected := make([]byte, util.ChunkSize)
		expected[0] = 0x02
		expected[1] = 0x01
		testRoundTrip(t, value.NewUint256(0x0102), expected)

		big := value.Uint256(*new(uint256.Int).Lsh(uint256.NewInt(1), 255))
		expected = make([]byte, util.ChunkSize)
		expected[31] = 0x80
		testRoundTrip(t, big, expected)
	})
	t.Run("Hash256", func(t *testing.T) {
		var h value.Hash256
		for i := range h {
			h[i] = byte(i)
		}
		testRoundTrip(t, h, h[:])
	})
}

func TestParse(t *testing.T) {
	u8, err := value.Uint8(0).Parse("0x10")
	require.NoError(t, err)
	require.Equal(t, value.Uint8(16), u8)

	_, err = value.Uint8(0).Parse("256")
	require.Error(t, err)

	_, err = value.Uint16(0).Parse("-1")
	require.Error(t, err)

	_, err = value.Bool(false).Parse("maybe")
	require.Error(t, err)

	u256, err := value.Uint256{}.Parse("0xff")
	require.NoError(t, err)
	require.Equal(t, value.NewUint256(255), u256)
	require.Equal(t, uint64(255), u256.Int().Uint64())

	_, err = value.Uint256{}.Parse("-5")
	require.Error(t, err)

	_, err = value.Uint256{}.Parse("0x1" + "0000000000000000000000000000000000000000000000000000000000000000")
	require.Error(t, err)

	_, err = value.Uint256{}.Parse("nope")
	require.Error(t, err)

	_, err = value.Hash256{}.Parse("0x00")
	require.Error(t, err)
}
