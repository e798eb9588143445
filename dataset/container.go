// Package dataset provides set containers whose collection lives in a
// pluggable store and whose mutations can be observed through hooks.
package dataset

import (
	"errors"
	"fmt"
	"iter"

	log "github.com/sirupsen/logrus"

	"github.com/tuannh982/dataset/store"
	"github.com/tuannh982/dataset/utils/collections"
)

var (
	ErrStoreFactoryRequired = errors.New("store factory is required for this store type")
)

type Config[T comparable, S store.Store[collections.Set[T]]] struct {
	// InitialElements seed the collection, duplicates collapse. Default: empty.
	InitialElements []T
	// CollectionFactory builds the empty collection. Default: collections.NewLinkedSet.
	CollectionFactory func() collections.Set[T]
	// StoreFactory wraps the seeded collection. Default: store.NewData, which
	// only fits when S is *store.Data[collections.Set[T]].
	StoreFactory store.Factory[collections.Set[T], S]
	// Hooks observe mutations. Default: NopHooks.
	Hooks Hooks[T, S]
	// Logger receives debug traces. Default: the standard logger.
	Logger *log.Entry
}

// Container is a set that keeps its collection inside a store S and reports
// every mutation to its hooks. It is not safe for concurrent use.
type Container[T comparable, S store.Store[collections.Set[T]]] struct {
	data  S
	hooks Hooks[T, S]
	log   *log.Entry
}

// New builds a container from cfg, filling unset fields with their defaults.
func New[T comparable, S store.Store[collections.Set[T]]](cfg Config[T, S]) (*Container[T, S], error) {
	newCollection := cfg.CollectionFactory
	if newCollection == nil {
		newCollection = func() collections.Set[T] {
			return collections.NewLinkedSet[T]()
		}
	}
	seed := newCollection()
	for _, v := range cfg.InitialElements {
		_ = seed.Add(v)
	}
	var data S
	if cfg.StoreFactory != nil {
		data = cfg.StoreFactory(seed)
	} else {
		d, ok := any(store.NewData(seed)).(S)
		if !ok {
			return nil, fmt.Errorf("%w: %T", ErrStoreFactoryRequired, data)
		}
		data = d
	}
	hooks := cfg.Hooks
	if hooks == nil {
		hooks = NopHooks[T, S]{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.WithFields(log.Fields{"component": "dataset"})
	}
	c := &Container[T, S]{
		data:  data,
		hooks: hooks,
		log:   logger,
	}
	c.log.Debug("container created, size=", c.Size())
	return c, nil
}

func (c *Container[T, S]) collection() collections.Set[T] {
	return c.data.Value()
}

func (c *Container[T, S]) debugEnabled() bool {
	return c.log.Logger.IsLevelEnabled(log.DebugLevel)
}

// Add inserts value if it is not present yet. OnAdd fires either way.
func (c *Container[T, S]) Add(value T) *Container[T, S] {
	err := c.collection().Add(value)
	if c.debugEnabled() {
		c.log.Debug("add ", value, " inserted=", err == nil)
	}
	c.hooks.OnAdd(value, c.data)
	return c
}

// Delete removes value and reports whether it was present. OnDelete fires
// with the same outcome.
func (c *Container[T, S]) Delete(value T) bool {
	success := c.collection().Remove(value) == nil
	if c.debugEnabled() {
		c.log.Debug("delete ", value, " success=", success)
	}
	c.hooks.OnDelete(value, success, c.data)
	return success
}

// Clear empties the collection. OnClear fires afterwards.
func (c *Container[T, S]) Clear() *Container[T, S] {
	c.collection().Clear()
	c.log.Debug("clear")
	c.hooks.OnClear(c.data)
	return c
}

func (c *Container[T, S]) Has(value T) bool {
	return c.collection().Contains(value)
}

func (c *Container[T, S]) Size() int {
	return c.collection().Size()
}

// Values walks the live collection in insertion order.
func (c *Container[T, S]) Values() iter.Seq[T] {
	return c.collection().All()
}

// Keys is the same sequence as Values; in a set every value is its own key.
func (c *Container[T, S]) Keys() iter.Seq[T] {
	return c.collection().All()
}

// Entries yields (value, value) pairs.
func (c *Container[T, S]) Entries() iter.Seq2[T, T] {
	return pairs(c.collection().All())
}

// ForEach calls visitor for every value in insertion order.
func (c *Container[T, S]) ForEach(visitor func(value T)) *Container[T, S] {
	for v := range c.collection().All() {
		visitor(v)
	}
	return c
}

// Value returns a fresh snapshot of the collection. Mutating the snapshot has
// no effect and the snapshot does not follow later changes.
func (c *Container[T, S]) Value() *FrozenView[T] {
	return Freeze(c.collection())
}

// UnsafeCollection returns the live collection held by the store. Changes
// made through it skip the hooks. Meant for code that owns the container;
// hand Value to everyone else.
func (c *Container[T, S]) UnsafeCollection() collections.Set[T] {
	return c.collection()
}

// metadataView hides everything but the Metadata methods of a store, so the
// value cannot be recovered with a type assertion.
type metadataView struct {
	md store.Metadata
}

func (m metadataView) Locked() bool {
	return m.md.Locked()
}

func (m metadataView) Tag(key string) (string, bool) {
	return m.md.Tag(key)
}

func (m metadataView) TagKeys() []string {
	return m.md.TagKeys()
}

func (m metadataView) String() string {
	return fmt.Sprintf("Metadata{locked=%t, tags=%v}", m.Locked(), m.TagKeys())
}

// Data exposes the store's metadata without its value.
func (c *Container[T, S]) Data() store.Metadata {
	return metadataView{md: c.data}
}

func (c *Container[T, S]) String() string {
	return fmt.Sprintf("Container%v", c.collection().Entries())
}
