package util

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// ChunkSize is the size of a Merkle tree chunk in bytes. A packed leaf stores
// its elements in exactly one chunk.
const ChunkSize = 32

// Hash256 is a 32 byte long chunk of a Merkle tree. Bytes are kept in their
// natural (serialized) order, no reversal is done for string forms.
type Hash256 [ChunkSize]byte

// Hash256DecodeString attempts to decode the given hex string (with or without
// "0x" prefix) into a Hash256.
func Hash256DecodeString(s string) (h Hash256, err error) {
	s = strings.TrimPrefix(s, "0x")
	if len(s) != ChunkSize*2 {
		return h, fmt.Errorf("expected string size of %d got %d", ChunkSize*2, len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return h, err
	}
	return Hash256DecodeBytes(b)
}

// Hash256DecodeBytes attempts to decode the given byte slice into a Hash256.
func Hash256DecodeBytes(b []byte) (h Hash256, err error) {
	if len(b) != ChunkSize {
		return h, fmt.Errorf("expected []byte of size %d got %d", ChunkSize, len(b))
	}
	copy(h[:], b)
	return h, nil
}

// IsZero checks whether all chunk bytes are zero.
func (h Hash256) IsZero() bool {
	return h == Hash256{}
}

// String implements the stringer interface.
func (h Hash256) String() string {
	return hex.EncodeToString(h[:])
}

// StringPrefixed returns the "0x"-prefixed hex form of h.
func (h Hash256) StringPrefixed() string {
	return "0x" + h.String()
}

// UnmarshalJSON implements the json unmarshaller interface.
func (h *Hash256) UnmarshalJSON(data []byte) (err error) {
	var js string
	if err = json.Unmarshal(data, &js); err != nil {
		return err
	}
	*h, err = Hash256DecodeString(js)
	return err
}

// MarshalJSON implements the json marshaller interface.
func (h Hash256) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.StringPrefixed())
}
