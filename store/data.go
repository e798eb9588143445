package store

import "fmt"

// Data is the simplest store: it holds the value as is.
type Data[C any] struct {
	Base
	value C
}

func NewData[C any](seed C) *Data[C] {
	return &Data[C]{
		value: seed,
	}
}

func (d *Data[C]) Value() C {
	return d.value
}

func (d *Data[C]) SetValue(v C) error {
	if d.Locked() {
		return ErrLocked
	}
	d.value = v
	return nil
}

func (d *Data[C]) String() string {
	return fmt.Sprintf("Data{locked=%t, tags=%v}", d.Locked(), d.TagKeys())
}
