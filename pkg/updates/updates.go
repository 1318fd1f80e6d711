/*
Package updates provides sources of pending writes for packed leaves.

A source maps absolute list indices to pending values and can be scanned by
index range in ascending order. The same source is typically scanned many
times, once per leaf touched by the updates.
*/
package updates

import "errors"

// ErrStop can be returned from a step function to end the scan early without
// an error.
var ErrStop = errors.New("stop iteration")

// StepFunc is called for every pending write visited by a scan. Returning a
// non-nil error other than ErrStop aborts the scan with that error.
type StepFunc[T any] func(index uint64, v T) error

// Map is an ordered source of pending writes.
type Map[T any] interface {
	// ForEachRange calls step for every pending write with index in
	// [start, end) in ascending index order.
	ForEachRange(start, end uint64, step StepFunc[T]) error
}

func stopped(err error) error {
	if errors.Is(err, ErrStop) {
		return nil
	}
	return err
}
