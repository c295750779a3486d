// Package source provides the data sources that feed leaf fields.
package source

import (
	"sync/atomic"

	"github.com/calebcase/fieldvalue/value"
)

// Source yields the next value on demand. NextValue never fails.
type Source interface {
	NextValue() value.Value
}

// Func adapts a function to a Source.
type Func func() value.Value

// NextValue calls f.
func (f Func) NextValue() value.Value {
	return f()
}

// Fixed always yields the configured constant.
type Fixed struct {
	v value.Value
}

// NewFixed returns a source yielding v.
func NewFixed(v value.Value) *Fixed {
	return &Fixed{v: v}
}

// Set replaces the constant.
func (f *Fixed) Set(v value.Value) {
	f.v = v
}

// NextValue returns the constant.
func (f *Fixed) NextValue() value.Value {
	return f.v
}

// Holder is a single slot value container. The newest Set always overwrites
// the previous value.
type Holder struct {
	slot atomic.Pointer[value.Value]
}

// NewHolder returns a holder containing v.
func NewHolder(v value.Value) *Holder {
	h := &Holder{}
	h.Set(v)

	return h
}

// Set replaces the held value.
func (h *Holder) Set(v value.Value) {
	h.slot.Store(&v)
}

// Get returns the held value or the zero value if nothing was set.
func (h *Holder) Get() value.Value {
	p := h.slot.Load()
	if p == nil {
		return value.Value{}
	}

	return *p
}

// Queue relays the value currently present in a Holder it does not own.
// Reading does not clear or advance the holder, so consecutive reads may
// observe the same value.
type Queue struct {
	h *Holder
}

// NewQueue returns a source reading from h.
func NewQueue(h *Holder) *Queue {
	return &Queue{h: h}
}

// NextValue returns the holder's current value.
func (q *Queue) NextValue() value.Value {
	if q.h == nil {
		return value.Value{}
	}

	return q.h.Get()
}
