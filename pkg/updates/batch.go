package updates

import "sort"

type indexValue[T any] struct {
	index uint64
	value T
}

// Batch is a set of pending writes kept sorted by index. It's cheap to scan
// and suits write sets built once and then applied.
type Batch[T any] struct {
	kv []indexValue[T]
}

var _ Map[int] = (*Batch[int])(nil)

// Add adds a pending write, replacing the previous one for the same index.
func (b *Batch[T]) Add(index uint64, v T) {
	i := b.search(index)
	if i < len(b.kv) && b.kv[i].index == index {
		b.kv[i].value = v
		return
	}
	b.kv = append(b.kv, indexValue[T]{})
	copy(b.kv[i+1:], b.kv[i:])
	b.kv[i] = indexValue[T]{index: index, value: v}
}

// Get returns the pending value for index if there is one.
func (b *Batch[T]) Get(index uint64) (T, bool) {
	i := b.search(index)
	if i < len(b.kv) && b.kv[i].index == index {
		return b.kv[i].value, true
	}
	var zero T
	return zero, false
}

// Len returns the number of pending writes.
func (b *Batch[T]) Len() int {
	return len(b.kv)
}

// Indices returns all pending indices in ascending order.
func (b *Batch[T]) Indices() []uint64 {
	res := make([]uint64, len(b.kv))
	for i := range b.kv {
		res[i] = b.kv[i].index
	}
	return res
}

// ForEachRange implements Map interface.
func (b *Batch[T]) ForEachRange(start, end uint64, step StepFunc[T]) error {
	for i := b.search(start); i < len(b.kv) && b.kv[i].index < end; i++ {
		if err := step(b.kv[i].index, b.kv[i].value); err != nil {
			return stopped(err)
		}
	}
	return nil
}

// search returns the position of the first write with index >= index.
func (b *Batch[T]) search(index uint64) int {
	return sort.Search(len(b.kv), func(i int) bool {
		return b.kv[i].index >= index
	})
}
