package collections

import "iter"

// Set is a collection of unique values that remembers insertion order.
type Set[V any] interface {
	Contains(v V) bool
	Add(v V) error
	Remove(v V) error
	Clear()
	Size() int
	Entries() []V
	All() iter.Seq[V]
	Clone() Set[V]
}
