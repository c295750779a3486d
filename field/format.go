package field

import (
	"io"
	"strconv"

	"github.com/calebcase/fieldvalue/integer"
	"github.com/calebcase/fieldvalue/value"
)

// Format renders a leaf's cached value.
type Format interface {
	Render(w io.Writer, v value.Value) (err error)
	RenderNth(w io.Writer, index int, v value.Value) (err error)
}

// Leaf Formats
var (
	// Decimal writes integers in decimal. Other kinds fail with
	// value.TypeMismatch.
	Decimal Format = decimal{}

	// Natural writes any kind in its natural textual form.
	Natural Format = natural{}

	// Zigzag writes integers as a zigzag block (see package integer).
	// The indexed form is identical since the index is positional in a
	// binary record. Other kinds fail with value.TypeMismatch.
	Zigzag Format = zigzag{}
)

func writeIndexed(w io.Writer, index int, s string) (err error) {
	buf := make([]byte, 0, len(s)+8)
	buf = append(buf, '(')
	buf = strconv.AppendInt(buf, int64(index), 10)
	buf = append(buf, ',')
	buf = append(buf, s...)
	buf = append(buf, ')')

	_, err = w.Write(buf)

	return err
}

type decimal struct{}

func (decimal) text(v value.Value) (string, error) {
	i, err := v.AsInteger()
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(i, 10), nil
}

func (d decimal) Render(w io.Writer, v value.Value) (err error) {
	s, err := d.text(v)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, s)

	return err
}

func (d decimal) RenderNth(w io.Writer, index int, v value.Value) (err error) {
	s, err := d.text(v)
	if err != nil {
		return err
	}

	return writeIndexed(w, index, s)
}

type natural struct{}

func (natural) Render(w io.Writer, v value.Value) (err error) {
	_, err = io.WriteString(w, v.String())

	return err
}

func (natural) RenderNth(w io.Writer, index int, v value.Value) (err error) {
	return writeIndexed(w, index, v.String())
}

type zigzag struct{}

func (zigzag) Render(w io.Writer, v value.Value) (err error) {
	i, err := v.AsInteger()
	if err != nil {
		return err
	}

	data, err := integer.FromInt64(i).MarshalBinary()
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}

func (z zigzag) RenderNth(w io.Writer, index int, v value.Value) (err error) {
	return z.Render(w, v)
}
