package packed

import (
	"fmt"
	"math"

	"github.com/macladson/milhouse/pkg/util"
	"github.com/macladson/milhouse/pkg/value"
)

// Leaf is a packed leaf holding up to value.PackingFactor[T]() values of type
// T in a single chunk. The zero Leaf is an empty leaf.
type Leaf[T value.Value[T]] struct {
	hash   util.Hash256
	length uint8
}

// Empty returns a leaf with no values.
func Empty[T value.Value[T]]() Leaf[T] {
	return Leaf[T]{}
}

// Single returns a leaf holding v only.
func Single[T value.Value[T]](v T) Leaf[T] {
	var l Leaf[T]
	v.PutBytes(l.slot(0))
	l.length = 1
	return l
}

// Repeat returns a leaf holding n copies of v. It panics if n exceeds the
// packing factor of T.
func Repeat[T value.Value[T]](v T, n int) Leaf[T] {
	if n < 0 || n > value.PackingFactor[T]() {
		panic(fmt.Sprintf("packed: can't repeat %d values, packing factor is %d", n, value.PackingFactor[T]()))
	}
	var l Leaf[T]
	for i := 0; i < n; i++ {
		v.PutBytes(l.slot(i))
	}
	l.length = uint8(n)
	return l
}

// FromChunk returns a leaf with the given chunk and length. The length must
// not exceed the packing factor and the bytes past the last value must be
// zero.
func FromChunk[T value.Value[T]](chunk util.Hash256, length int) (Leaf[T], error) {
	if length < 0 || length > value.PackingFactor[T]() {
		return Leaf[T]{}, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	for _, b := range chunk[length*value.Len[T]():] {
		if b != 0 {
			return Leaf[T]{}, ErrDirtyPadding
		}
	}
	return Leaf[T]{hash: chunk, length: uint8(length)}, nil
}

// Pack splits values into leaves, all of them full except for the last one.
// No leaves are returned for an empty list.
func Pack[T value.Value[T]](values []T) []Leaf[T] {
	pf := value.PackingFactor[T]()
	res := make([]Leaf[T], 0, (len(values)+pf-1)/pf)
	for i := 0; i < len(values); i += pf {
		var l Leaf[T]
		for _, v := range values[i:min(i+pf, len(values))] {
			v.PutBytes(l.slot(int(l.length)))
			l.length++
		}
		res = append(res, l)
	}
	return res
}

// Length returns the number of values in the leaf.
func (l Leaf[T]) Length() int {
	return int(l.length)
}

// IsFull checks whether the leaf holds as many values as fit into a chunk.
func (l Leaf[T]) IsFull() bool {
	return l.Length() >= value.PackingFactor[T]()
}

// TreeHash returns the leaf chunk which is its tree hash.
func (l Leaf[T]) TreeHash() util.Hash256 {
	return l.hash
}

// Get returns the value at index. False is returned for indices not
// populated yet. Values are decoded from the chunk, the result doesn't
// share memory with the leaf.
func (l Leaf[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= l.Length() {
		return zero, false
	}
	return zero.FromBytes(l.slot(index)), true
}

// Values returns all values of the leaf.
func (l Leaf[T]) Values() []T {
	res := make([]T, l.Length())
	for i := range res {
		res[i], _ = l.Get(i)
	}
	return res
}

// Equal checks whether two leaves have the same chunk and length.
func (l Leaf[T]) Equal(other Leaf[T]) bool {
	return l.length == other.length && l.hash == other.hash
}

// String implements fmt.Stringer interface.
func (l Leaf[T]) String() string {
	return fmt.Sprintf("len=%d chunk=%s", l.length, l.hash.StringPrefixed())
}

// InsertAtIndex returns a copy of the leaf with v written at index. The
// receiver is not changed. See InsertInPlace for index restrictions.
func (l Leaf[T]) InsertAtIndex(index int, v T) (Leaf[T], error) {
	updated := l
	if err := updated.InsertInPlace(index, v); err != nil {
		return Leaf[T]{}, err
	}
	return updated, nil
}

// InsertInPlace writes v at index. Writing to a populated slot overwrites
// it, writing at the frontier appends. OutOfBoundsError is returned if the
// slot doesn't exist in the chunk. Writing past the frontier panics.
func (l *Leaf[T]) InsertInPlace(index int, v T) error {
	n := value.Len[T]()
	if index < 0 || index >= util.ChunkSize/n {
		subIndex := math.MaxInt
		if index >= 0 && index <= math.MaxInt/n {
			subIndex = index * n
		}
		return &OutOfBoundsError{SubIndex: subIndex, Len: l.Length()}
	}
	if index > l.Length() {
		panic(fmt.Sprintf("packed: non-contiguous insert at %d, length %d", index, l.length))
	}
	v.PutBytes(l.slot(index))
	if index == l.Length() {
		l.length++
	}
	return nil
}

// Push appends v to the leaf. FullError is returned if the leaf already
// holds PackingFactor values.
func (l *Leaf[T]) Push(v T) error {
	if l.IsFull() {
		return &FullError{Len: l.Length()}
	}
	return l.InsertInPlace(l.Length(), v)
}

// slot returns the chunk bytes of the value at index.
func (l *Leaf[T]) slot(index int) []byte {
	n := value.Len[T]()
	return l.hash[index*n : (index+1)*n]
}
