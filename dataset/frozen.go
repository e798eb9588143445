package dataset

import (
	"fmt"
	"iter"

	"github.com/tuannh982/dataset/utils/collections"
)

// FrozenView is a read-only snapshot of a collection. It is taken once and
// never follows later changes of its source. Add, Delete and Clear are
// accepted but change nothing.
type FrozenView[T any] struct {
	set collections.Set[T]
}

// Freeze copies s into a new view.
func Freeze[T any](s collections.Set[T]) *FrozenView[T] {
	return &FrozenView[T]{
		set: s.Clone(),
	}
}

func (v *FrozenView[T]) Add(T) *FrozenView[T] {
	return v
}

func (v *FrozenView[T]) Delete(T) bool {
	return false
}

func (v *FrozenView[T]) Clear() *FrozenView[T] {
	return v
}

func (v *FrozenView[T]) Has(value T) bool {
	return v.set.Contains(value)
}

func (v *FrozenView[T]) Size() int {
	return v.set.Size()
}

func (v *FrozenView[T]) Values() iter.Seq[T] {
	return v.set.All()
}

func (v *FrozenView[T]) Keys() iter.Seq[T] {
	return v.set.All()
}

func (v *FrozenView[T]) Entries() iter.Seq2[T, T] {
	return pairs(v.set.All())
}

func (v *FrozenView[T]) ForEach(visitor func(value T)) *FrozenView[T] {
	for value := range v.set.All() {
		visitor(value)
	}
	return v
}

// Slice returns a copy of the snapshot in iteration order.
func (v *FrozenView[T]) Slice() []T {
	return v.set.Entries()
}

func (v *FrozenView[T]) String() string {
	return fmt.Sprintf("FrozenView%v", v.set.Entries())
}
