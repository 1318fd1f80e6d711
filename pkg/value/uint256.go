package value

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
	"github.com/macladson/milhouse/pkg/util"
)

// Uint256 is a packable 256-bit unsigned integer taking a whole chunk.
type Uint256 uint256.Int

// Hash256 is a packable chunk-sized opaque value, its bytes are stored as is.
type Hash256 util.Hash256

var (
	_ Text[Uint256] = Uint256{}
	_ Text[Hash256] = Hash256{}
)

// NewUint256 returns a Uint256 holding n.
func NewUint256(n uint64) Uint256 {
	return Uint256(*uint256.NewInt(n))
}

// Int returns v as a *uint256.Int.
func (v Uint256) Int() *uint256.Int {
	u := uint256.Int(v)
	return &u
}

// PackingFactor implements Value interface.
func (Uint256) PackingFactor() int { return 1 }

// PutBytes implements Value interface. uint256.Int keeps little-endian
// limbs, so the encoding is the limbs in order.
func (v Uint256) PutBytes(dst []byte) {
	for i := range v {
		binary.LittleEndian.PutUint64(dst[i*8:], v[i])
	}
}

// FromBytes implements Value interface.
func (Uint256) FromBytes(b []byte) Uint256 {
	var v Uint256
	for i := range v {
		v[i] = binary.LittleEndian.Uint64(b[i*8:])
	}
	return v
}

// String implements fmt.Stringer interface.
func (v Uint256) String() string {
	return v.Int().ToBig().String()
}

// Parse implements Text interface. Decimal and 0x-prefixed hex forms are
// accepted.
func (Uint256) Parse(s string) (Uint256, error) {
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return Uint256{}, fmt.Errorf("invalid integer %q", s)
	}
	if b.Sign() < 0 {
		return Uint256{}, errors.New("negative integer")
	}
	u, overflow := uint256.FromBig(b)
	if overflow {
		return Uint256{}, fmt.Errorf("integer %q overflows 256 bits", s)
	}
	return Uint256(*u), nil
}

// PackingFactor implements Value interface.
func (Hash256) PackingFactor() int { return 1 }

// PutBytes implements Value interface.
func (v Hash256) PutBytes(dst []byte) { copy(dst, v[:]) }

// FromBytes implements Value interface.
func (Hash256) FromBytes(b []byte) Hash256 {
	var v Hash256
	copy(v[:], b)
	return v
}

// String implements fmt.Stringer interface.
func (v Hash256) String() string { return util.Hash256(v).StringPrefixed() }

// Parse implements Text interface.
func (Hash256) Parse(s string) (Hash256, error) {
	h, err := util.Hash256DecodeString(s)
	return Hash256(h), err
}
