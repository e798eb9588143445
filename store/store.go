// Package store holds the backing stores a dataset keeps its collection in.
//
// A store owns exactly one value and may carry metadata next to it. Whatever
// constraint a store enforces is its own business: callers only see what
// Value returns and what SetValue reports.
package store

import "errors"

var (
	ErrLocked = errors.New("store is locked")
)

// Metadata is the part of a store that is safe to hand out: everything except
// the held value.
type Metadata interface {
	Locked() bool
	Tag(key string) (string, bool)
	TagKeys() []string
}

type Store[C any] interface {
	Metadata
	Value() C
	SetValue(v C) error
}

// Factory builds a store around a freshly seeded value. Stores that need extra
// arguments capture them in the closure.
type Factory[C any, S Store[C]] func(seed C) S
