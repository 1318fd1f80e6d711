package packed

import (
	"fmt"

	"github.com/macladson/milhouse/pkg/updates"
	"github.com/macladson/milhouse/pkg/value"
)

// Update returns a copy of the leaf with all pending writes for its range
// applied. prefix is the list index of the leaf's first slot, it must be a
// multiple of the packing factor. Writes for indices
// [prefix, prefix+PackingFactor) are taken from pending in ascending order and
// written at index%PackingFactor, so every write must target a populated slot
// or the frontier. The first error stops the update and is returned.
//
// At most one pending write per index is expected; a source yielding an
// index twice or out of order fails with ErrUpdateOrder.
func (l Leaf[T]) Update(prefix uint64, pending updates.Map[T]) (Leaf[T], error) {
	pf := uint64(value.PackingFactor[T]())
	if prefix%pf != 0 {
		return Leaf[T]{}, fmt.Errorf("%w: %d", ErrUnalignedPrefix, prefix)
	}
	var (
		start   = prefix
		end     = prefix + pf
		updated = l
		last    uint64
		seen    bool
	)
	if end < start {
		return Leaf[T]{}, fmt.Errorf("%w: window at %d overflows", ErrUpdateOutOfRange, prefix)
	}
	err := pending.ForEachRange(start, end, func(index uint64, v T) error {
		if index < start || index >= end {
			return fmt.Errorf("%w: %d not in [%d, %d)", ErrUpdateOutOfRange, index, start, end)
		}
		if seen && index <= last {
			return fmt.Errorf("%w: %d after %d", ErrUpdateOrder, index, last)
		}
		last, seen = index, true
		return updated.InsertInPlace(int(index%pf), v)
	})
	if err != nil {
		return Leaf[T]{}, err
	}
	return updated, nil
}
