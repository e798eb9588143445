package dataset

import (
	"fmt"

	"github.com/tuannh982/dataset/store"
	"github.com/tuannh982/dataset/utils/collections"
)

// DataSet is a ready-to-use Container over the ordinary set kept in a
// *store.Data.
type DataSet[T comparable] struct {
	*Container[T, *store.Data[collections.Set[T]]]
}

// NewDataSet returns a DataSet seeded with values and no hooks.
func NewDataSet[T comparable](values ...T) *DataSet[T] {
	return NewDataSetWithHooks[T](nil, values...)
}

func NewDataSetWithHooks[T comparable](hooks Hooks[T, *store.Data[collections.Set[T]]], values ...T) *DataSet[T] {
	c, err := New(Config[T, *store.Data[collections.Set[T]]]{
		InitialElements: values,
		Hooks:           hooks,
	})
	if err != nil {
		// the default store always fits *store.Data
		panic(err)
	}
	return &DataSet[T]{Container: c}
}

func (s *DataSet[T]) String() string {
	return fmt.Sprintf("DataSet%v", s.collection().Entries())
}
