package testserdes

import (
	"encoding"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// MarshalUnmarshalJSON checks if expected stays the same after
// marshal/unmarshal via JSON.
func MarshalUnmarshalJSON(t *testing.T, expected, actual any) {
	data, err := json.Marshal(expected)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, actual))
	require.Equal(t, expected, actual)
}

// Serializable is a value with a binary form.
type Serializable interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
}

// EncodeDecodeBinary checks if expected stays the same after
// serializing/deserializing via binary marshalling methods.
func EncodeDecodeBinary(t *testing.T, expected, actual Serializable) {
	data, err := EncodeBinary(expected)
	require.NoError(t, err)
	require.NoError(t, DecodeBinary(data, actual))
	require.Equal(t, expected, actual)
}

// EncodeBinary serializes a to a byte slice.
func EncodeBinary(a encoding.BinaryMarshaler) ([]byte, error) {
	return a.MarshalBinary()
}

// DecodeBinary deserializes a from a byte slice.
func DecodeBinary(data []byte, a encoding.BinaryUnmarshaler) error {
	return a.UnmarshalBinary(data)
}
