package value

import (
	"errors"
	"fmt"

	"github.com/macladson/milhouse/pkg/util"
)

// ErrBadPackingFactor is returned by Validate for types that don't fit the
// chunk evenly.
var ErrBadPackingFactor = errors.New("bad packing factor")

// Value is a fixed-size value that can be packed into a chunk. T is the
// implementing type itself.
type Value[T any] interface {
	// PackingFactor returns the number of T values fitting one chunk.
	PackingFactor() int
	// PutBytes writes the encoded value into dst which is exactly Len[T]()
	// bytes long.
	PutBytes(dst []byte)
	// FromBytes decodes a value from b which is exactly Len[T]() bytes long.
	FromBytes(b []byte) T
}

// Text is a Value that also has a textual form.
type Text[T any] interface {
	Value[T]
	fmt.Stringer
	// Parse decodes a value from its textual form.
	Parse(s string) (T, error)
}

// PackingFactor returns the packing factor of T.
func PackingFactor[T Value[T]]() int {
	var zero T
	return zero.PackingFactor()
}

// Len returns the number of chunk bytes taken by a single T.
func Len[T Value[T]]() int {
	return util.ChunkSize / PackingFactor[T]()
}

// Validate checks that T's packing factor divides the chunk evenly.
func Validate[T Value[T]]() error {
	pf := PackingFactor[T]()
	if pf <= 0 || pf > util.ChunkSize || util.ChunkSize%pf != 0 {
		return fmt.Errorf("%w: %d for %T", ErrBadPackingFactor, pf, *new(T))
	}
	return nil
}

// Bytes returns the encoded form of v.
func Bytes[T Value[T]](v T) []byte {
	b := make([]byte, Len[T]())
	v.PutBytes(b)
	return b
}
