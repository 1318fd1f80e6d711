package value

import (
	"encoding/binary"
	"fmt"
	"strconv"
)

// Uint8 is a packable 8-bit unsigned integer, 32 per chunk.
type Uint8 uint8

// Uint16 is a packable 16-bit unsigned integer, 16 per chunk.
type Uint16 uint16

// Uint32 is a packable 32-bit unsigned integer, 8 per chunk.
type Uint32 uint32

// Uint64 is a packable 64-bit unsigned integer, 4 per chunk.
type Uint64 uint64

// Bool is a packable boolean, 32 per chunk.
type Bool bool

var (
	_ Text[Uint8]  = Uint8(0)
	_ Text[Uint16] = Uint16(0)
	_ Text[Uint32] = Uint32(0)
	_ Text[Uint64] = Uint64(0)
	_ Text[Bool]   = Bool(false)
)

// PackingFactor implements Value interface.
func (Uint8) PackingFactor() int { return 32 }

// PutBytes implements Value interface.
func (v Uint8) PutBytes(dst []byte) { dst[0] = byte(v) }

// FromBytes implements Value interface.
func (Uint8) FromBytes(b []byte) Uint8 { return Uint8(b[0]) }

// String implements fmt.Stringer interface.
func (v Uint8) String() string { return strconv.FormatUint(uint64(v), 10) }

// Parse implements Text interface.
func (Uint8) Parse(s string) (Uint8, error) {
	n, err := strconv.ParseUint(s, 0, 8)
	return Uint8(n), err
}

// PackingFactor implements Value interface.
func (Uint16) PackingFactor() int { return 16 }

// PutBytes implements Value interface.
func (v Uint16) PutBytes(dst []byte) { binary.LittleEndian.PutUint16(dst, uint16(v)) }

// FromBytes implements Value interface.
func (Uint16) FromBytes(b []byte) Uint16 { return Uint16(binary.LittleEndian.Uint16(b)) }

// String implements fmt.Stringer interface.
func (v Uint16) String() string { return strconv.FormatUint(uint64(v), 10) }

// Parse implements Text interface.
func (Uint16) Parse(s string) (Uint16, error) {
	n, err := strconv.ParseUint(s, 0, 16)
	return Uint16(n), err
}

// PackingFactor implements Value interface.
func (Uint32) PackingFactor() int { return 8 }

// PutBytes implements Value interface.
func (v Uint32) PutBytes(dst []byte) { binary.LittleEndian.PutUint32(dst, uint32(v)) }

// FromBytes implements Value interface.
func (Uint32) FromBytes(b []byte) Uint32 { return Uint32(binary.LittleEndian.Uint32(b)) }

// String implements fmt.Stringer interface.
func (v Uint32) String() string { return strconv.FormatUint(uint64(v), 10) }

// Parse implements Text interface.
func (Uint32) Parse(s string) (Uint32, error) {
	n, err := strconv.ParseUint(s, 0, 32)
	return Uint32(n), err
}

// PackingFactor implements Value interface.
func (Uint64) PackingFactor() int { return 4 }

// PutBytes implements Value interface.
func (v Uint64) PutBytes(dst []byte) { binary.LittleEndian.PutUint64(dst, uint64(v)) }

// FromBytes implements Value interface.
func (Uint64) FromBytes(b []byte) Uint64 { return Uint64(binary.LittleEndian.Uint64(b)) }

// String implements fmt.Stringer interface.
func (v Uint64) String() string { return strconv.FormatUint(uint64(v), 10) }

// Parse implements Text interface.
func (Uint64) Parse(s string) (Uint64, error) {
	n, err := strconv.ParseUint(s, 0, 64)
	return Uint64(n), err
}

// PackingFactor implements Value interface.
func (Bool) PackingFactor() int { return 32 }

// PutBytes implements Value interface.
func (v Bool) PutBytes(dst []byte) {
	if v {
		dst[0] = 1
	} else {
		dst[0] = 0
	}
}

// FromBytes implements Value interface. Any non-zero byte is decoded as true.
func (Bool) FromBytes(b []byte) Bool { return b[0] != 0 }

// String implements fmt.Stringer interface.
func (v Bool) String() string { return strconv.FormatBool(bool(v)) }

// Parse implements Text interface.
func (Bool) Parse(s string) (Bool, error) {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid boolean %q", s)
	}
	return Bool(b), nil
}
