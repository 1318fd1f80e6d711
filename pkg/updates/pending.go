package updates

import "slices"

// Pending is a set of pending writes kept in a hash map. Writes are cheap,
// scans sort the indices of the requested range every time.
type Pending[T any] struct {
	m map[uint64]T
}

var _ Map[int] = (*Pending[int])(nil)

// NewPending returns an empty Pending.
func NewPending[T any]() *Pending[T] {
	return &Pending[T]{m: make(map[uint64]T)}
}

// Set sets the pending value for index.
func (p *Pending[T]) Set(index uint64, v T) {
	if p.m == nil {
		p.m = make(map[uint64]T)
	}
	p.m[index] = v
}

// Delete drops the pending write for index if there is one.
func (p *Pending[T]) Delete(index uint64) {
	delete(p.m, index)
}

// Len returns the number of pending writes.
func (p *Pending[T]) Len() int {
	return len(p.m)
}

// ForEachRange implements Map interface.
func (p *Pending[T]) ForEachRange(start, end uint64, step StepFunc[T]) error {
	var keys []uint64
	for k := range p.m {
		if k >= start && k < end {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	for _, k := range keys {
		if err := step(k, p.m[k]); err != nil {
			return stopped(err)
		}
	}
	return nil
}
