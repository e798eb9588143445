package dataset

import (
	"iter"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Reader is the read surface shared by Container and FrozenView.
type Reader[T any] interface {
	Has(value T) bool
	Size() int
	Values() iter.Seq[T]
	Keys() iter.Seq[T]
	Entries() iter.Seq2[T, T]
}

// Sorted returns the values of r in ascending order.
func Sorted[T constraints.Ordered](r Reader[T]) []T {
	arr := make([]T, 0, r.Size())
	for v := range r.Values() {
		arr = append(arr, v)
	}
	slices.Sort(arr)
	return arr
}

func pairs[T any](values iter.Seq[T]) iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		for v := range values {
			if !yield(v, v) {
				return
			}
		}
	}
}
