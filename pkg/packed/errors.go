package packed

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is matched by OutOfBoundsError.
	ErrOutOfBounds = errors.New("packed leaf index out of bounds")
	// ErrFull is matched by FullError.
	ErrFull = errors.New("packed leaf is full")
	// ErrUnalignedPrefix is returned for batch updates with a prefix that is
	// not a multiple of the packing factor.
	ErrUnalignedPrefix = errors.New("prefix is not aligned to the packing factor")
	// ErrUpdateOutOfRange is returned when an update source yields an index
	// outside of the requested range.
	ErrUpdateOutOfRange = errors.New("update index out of leaf range")
	// ErrUpdateOrder is returned when an update source yields indices that are
	// not strictly ascending (including duplicates).
	ErrUpdateOrder = errors.New("update indices are not strictly ascending")
	// ErrInvalidLength is returned when decoding a leaf with a length that
	// exceeds the packing factor.
	ErrInvalidLength = errors.New("invalid packed leaf length")
	// ErrDirtyPadding is returned when decoding a leaf with non-zero bytes past
	// its last value.
	ErrDirtyPadding = errors.New("non-zero packed leaf padding")
)

// OutOfBoundsError is returned when a write targets a slot that doesn't
// exist in the chunk.
type OutOfBoundsError struct {
	// SubIndex is the byte offset of the slot, math.MaxInt if it overflows.
	SubIndex int
	// Len is the leaf length at the time of the write.
	Len int
}

// Error implements error interface.
func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("%s: sub-index %d, length %d", ErrOutOfBounds, e.SubIndex, e.Len)
}

// Unwrap returns ErrOutOfBounds.
func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }

// FullError is returned when appending to a leaf that already holds
// PackingFactor values.
type FullError struct {
	Len int
}

// Error implements error interface.
func (e *FullError) Error() string {
	return fmt.Sprintf("%s: length %d", ErrFull, e.Len)
}

// Unwrap returns ErrFull.
func (e *FullError) Unwrap() error { return ErrFull }
