package dataset

// Hooks observes container mutations. Every callback runs synchronously after
// the mutation is already visible in the collection, and cannot undo it. The
// store is passed instead of the raw collection so callbacks can read metadata.
type Hooks[T any, S any] interface {
	OnAdd(value T, data S)
	OnClear(data S)
	OnDelete(value T, success bool, data S)
}

// NopHooks ignores every mutation. Embed it to override only some callbacks.
type NopHooks[T any, S any] struct{}

func (NopHooks[T, S]) OnAdd(T, S) {}

func (NopHooks[T, S]) OnClear(S) {}

func (NopHooks[T, S]) OnDelete(T, bool, S) {}

// HookFuncs adapts plain functions to Hooks. Nil fields are skipped.
type HookFuncs[T any, S any] struct {
	Add    func(value T, data S)
	Clear  func(data S)
	Delete func(value T, success bool, data S)
}

func (h HookFuncs[T, S]) OnAdd(value T, data S) {
	if h.Add != nil {
		h.Add(value, data)
	}
}

func (h HookFuncs[T, S]) OnClear(data S) {
	if h.Clear != nil {
		h.Clear(data)
	}
}

func (h HookFuncs[T, S]) OnDelete(value T, success bool, data S) {
	if h.Delete != nil {
		h.Delete(value, success, data)
	}
}

type chain[T any, S any] []Hooks[T, S]

// Chain calls each of hooks in order.
func Chain[T any, S any](hooks ...Hooks[T, S]) Hooks[T, S] {
	return chain[T, S](hooks)
}

func (c chain[T, S]) OnAdd(value T, data S) {
	for _, h := range c {
		h.OnAdd(value, data)
	}
}

func (c chain[T, S]) OnClear(data S) {
	for _, h := range c {
		h.OnClear(data)
	}
}

func (c chain[T, S]) OnDelete(value T, success bool, data S) {
	for _, h := range c {
		h.OnDelete(value, success, data)
	}
}
