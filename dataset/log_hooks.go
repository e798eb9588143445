package dataset

import (
	log "github.com/sirupsen/logrus"

	"github.com/tuannh982/dataset/store"
)

// LogHooks writes a debug line for every mutation, together with the store's
// lock state and tag count.
type LogHooks[T any, S store.Metadata] struct {
	log *log.Entry
}

func NewLogHooks[T any, S store.Metadata](logger *log.Entry) *LogHooks[T, S] {
	return &LogHooks[T, S]{
		log: logger,
	}
}

func (h *LogHooks[T, S]) entry(data S) *log.Entry {
	return h.log.WithFields(log.Fields{
		"locked": data.Locked(),
		"tags":   len(data.TagKeys()),
	})
}

func (h *LogHooks[T, S]) OnAdd(value T, data S) {
	if h.log.Logger.IsLevelEnabled(log.DebugLevel) {
		h.entry(data).Debug("value added ", value)
	}
}

func (h *LogHooks[T, S]) OnClear(data S) {
	h.entry(data).Debug("values cleared")
}

func (h *LogHooks[T, S]) OnDelete(value T, success bool, data S) {
	if h.log.Logger.IsLevelEnabled(log.DebugLevel) {
		h.entry(data).Debug("value deleted ", value, ", success=", success)
	}
}
