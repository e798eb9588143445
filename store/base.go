package store

import (
	"golang.org/x/exp/slices"

	"github.com/tuannh982/dataset/utils/collections"
)

// Base carries the lock flag and tags shared by store implementations.
// The zero value is ready to use.
type Base struct {
	locked bool
	tags   collections.Map[string, string]
}

func (b *Base) Lock() {
	b.locked = true
}

func (b *Base) Unlock() {
	b.locked = false
}

func (b *Base) Locked() bool {
	return b.locked
}

// SetTag records a metadata entry, replacing any previous value for key.
func (b *Base) SetTag(key, value string) {
	if b.tags == nil {
		b.tags = collections.NewHashMap[string, string]()
	}
	_ = b.tags.Put(key, value, true)
}

// RemoveTag drops key and reports whether it was set.
func (b *Base) RemoveTag(key string) bool {
	if b.tags == nil {
		return false
	}
	return b.tags.Delete(key) == nil
}

func (b *Base) Tag(key string) (string, bool) {
	if b.tags == nil {
		return "", false
	}
	v, err := b.tags.Get(key)
	if err != nil {
		return "", false
	}
	return v, true
}

// TagKeys returns the tag keys in ascending order.
func (b *Base) TagKeys() []string {
	if b.tags == nil {
		return []string{}
	}
	keys := b.tags.Keys()
	slices.Sort(keys)
	return keys
}
