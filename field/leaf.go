package field

import (
	"io"

	"github.com/calebcase/fieldvalue/source"
	"github.com/calebcase/fieldvalue/value"
)

// LeafOption configures a Leaf.
type LeafOption func(*leafConfig)

type leafConfig struct {
	format Format
}

// WithFormat sets the format the leaf renders with. The default is Decimal.
func WithFormat(f Format) LeafOption {
	return func(c *leafConfig) {
		if f != nil {
			c.format = f
		}
	}
}

// Leaf is a terminal field bound to one data source.
type Leaf[S source.Source] struct {
	src    S
	v      value.Value
	format Format
}

// NewLeaf returns a leaf reading from src.
func NewLeaf[S source.Source](src S, opts ...LeafOption) *Leaf[S] {
	c := leafConfig{
		format: Decimal,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return &Leaf[S]{
		src:    src,
		format: c.format,
	}
}

// Update caches the next value from the source.
func (l *Leaf[S]) Update() (err error) {
	l.v = l.src.NextValue()

	return nil
}

// Value returns the value cached by the most recent Update.
func (l *Leaf[S]) Value() value.Value {
	return l.v
}

// Source returns the leaf's data source.
func (l *Leaf[S]) Source() S {
	return l.src
}

// SerializeTo renders the cached value.
func (l *Leaf[S]) SerializeTo(w io.Writer) (err error) {
	return l.format.Render(w, l.v)
}

// SerializeNthValueTo renders the cached value tagged with index. The leaf
// holds one value so every index renders the same value.
func (l *Leaf[S]) SerializeNthValueTo(index int, w io.Writer) (err error) {
	return l.format.RenderNth(w, index, l.v)
}
