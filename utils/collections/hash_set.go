package collections

import (
	"fmt"
	"iter"
)

type hashSetNode[V any] struct {
	value      V
	prev, next *hashSetNode[V]
}

type hashSet[R comparable, V any] struct {
	entries  map[R]*hashSetNode[V]
	head     *hashSetNode[V]
	tail     *hashSetNode[V]
	hashFunc HashSetHashFunc[R, V]
}

type HashSetHashFunc[R comparable, V any] func(V) R

// NewHashSet returns a set where two values are equal when f maps them to the same key.
func NewHashSet[R comparable, V any](f HashSetHashFunc[R, V]) Set[V] {
	return &hashSet[R, V]{
		entries:  make(map[R]*hashSetNode[V]),
		hashFunc: f,
	}
}

func identity[V comparable](v V) V {
	return v
}

// NewLinkedSet returns the ordinary set: values are compared with ==.
func NewLinkedSet[V comparable](values ...V) Set[V] {
	s := NewHashSet(identity[V])
	for _, v := range values {
		_ = s.Add(v)
	}
	return s
}

func (s *hashSet[R, V]) Contains(v V) bool {
	_, ok := s.entries[s.hashFunc(v)]
	return ok
}

func (s *hashSet[R, V]) Add(v V) error {
	hash := s.hashFunc(v)
	if _, ok := s.entries[hash]; ok {
		return ErrValueExisted
	}
	node := &hashSetNode[V]{value: v, prev: s.tail}
	if s.tail == nil {
		s.head = node
	} else {
		s.tail.next = node
	}
	s.tail = node
	s.entries[hash] = node
	return nil
}

func (s *hashSet[R, V]) Remove(v V) error {
	hash := s.hashFunc(v)
	node, ok := s.entries[hash]
	if !ok {
		return ErrValueNotExisted
	}
	delete(s.entries, hash)
	if node.prev == nil {
		s.head = node.next
	} else {
		node.prev.next = node.next
	}
	if node.next == nil {
		s.tail = node.prev
	} else {
		node.next.prev = node.prev
	}
	// keep node.next so an iterator parked on a removed node can continue
	node.prev = nil
	return nil
}

func (s *hashSet[R, V]) Clear() {
	s.entries = make(map[R]*hashSetNode[V])
	s.head = nil
	s.tail = nil
}

func (s *hashSet[R, V]) Size() int {
	return len(s.entries)
}

func (s *hashSet[R, V]) Entries() []V {
	arr := make([]V, 0, s.Size())
	for node := s.head; node != nil; node = node.next {
		arr = append(arr, node.value)
	}
	return arr
}

func (s *hashSet[R, V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for node := s.head; node != nil; {
			next := node.next
			if !yield(node.value) {
				return
			}
			node = next
		}
	}
}

func (s *hashSet[R, V]) Clone() Set[V] {
	c := &hashSet[R, V]{
		entries:  make(map[R]*hashSetNode[V], s.Size()),
		hashFunc: s.hashFunc,
	}
	for node := s.head; node != nil; node = node.next {
		_ = c.Add(node.value)
	}
	return c
}

func (s *hashSet[R, V]) String() string {
	return fmt.Sprint(s.Entries())
}
