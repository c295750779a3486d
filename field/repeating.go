package field

import (
	"io"
)

// RepeatingGroup renders its children a fixed number of times, index by
// index.
type RepeatingGroup struct {
	count  int
	fields []Field
}

// NewRepeatingGroup returns an empty group repeating count times.
func NewRepeatingGroup(count int) (*RepeatingGroup, error) {
	if count < 0 {
		return nil, Error.New("invalid repeat count: %d", count)
	}

	return &RepeatingGroup{
		count: count,
	}, nil
}

// RepeatCount returns the number of repetitions.
func (g *RepeatingGroup) RepeatCount() int {
	return g.count
}

// AddChild appends f.
func (g *RepeatingGroup) AddChild(f Field) (err error) {
	if f == nil {
		return Error.New("nil field")
	}

	g.fields = append(g.fields, f)

	return nil
}

// Children returns the children in insertion order.
func (g *RepeatingGroup) Children() []Field {
	return append([]Field(nil), g.fields...)
}

// Update updates every child once regardless of the repeat count.
func (g *RepeatingGroup) Update() (err error) {
	return updateAll(g.fields)
}

// SerializeTo writes one block per repetition.
func (g *RepeatingGroup) SerializeTo(w io.Writer) (err error) {
	for i := 0; i < g.count; i++ {
		err = g.SerializeNthValueTo(i, w)
		if err != nil {
			return err
		}
	}

	return nil
}

// SerializeNthValueTo writes every child's rendering for index in insertion
// order.
func (g *RepeatingGroup) SerializeNthValueTo(index int, w io.Writer) (err error) {
	for _, f := range g.fields {
		err = f.SerializeNthValueTo(index, w)
		if err != nil {
			return err
		}
	}

	return nil
}
