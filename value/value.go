package value

import (
	"strconv"
	"strings"

	"github.com/zeebo/errs"
)

// TypeMismatch is the class of errors returned when a Value is narrowed to a
// kind it does not hold.
var TypeMismatch = errs.Class("type mismatch")

// Kind identifies which variant a Value holds.
type Kind uint8

// Value Kinds
const (
	// Integer holds an int64. It is the kind of the zero Value.
	Integer Kind = iota

	// Real holds a float64.
	Real

	// Text holds a string.
	Text

	// Identified holds an Item: a Value tagged with an int32 identifier.
	Identified

	// Sequence holds a list of Items, used when one slot carries a batch
	// of distinct keyed values.
	Sequence
)

var kindNames = [...]string{
	Integer:    "integer",
	Real:       "real",
	Text:       "text",
	Identified: "identified",
	Sequence:   "sequence",
}

// String returns the lower case name of k, or kind(n) for an unknown kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Item is a Value tagged with an identifier.
type Item struct {
	ID    int32
	Value Value
}

// Value is a tagged union over the scalar kinds and the identified kinds.
type Value struct {
	kind Kind

	i int64
	f float64
	s string

	// item is only set for Identified. seq is only set for Sequence.
	item *Item
	seq  []Item
}

// NewInteger returns an Integer value.
func NewInteger(i int64) Value {
	return Value{kind: Integer, i: i}
}

// NewReal returns a Real value.
func NewReal(f float64) Value {
	return Value{kind: Real, f: f}
}

// NewText returns a Text value.
func NewText(s string) Value {
	return Value{kind: Text, s: s}
}

// NewIdentified returns an Identified value tagging v with id.
func NewIdentified(id int32, v Value) Value {
	return Value{kind: Identified, item: &Item{ID: id, Value: v.clone()}}
}

// NewSequence returns a Sequence value holding a copy of items.
func NewSequence(items ...Item) Value {
	return Value{kind: Sequence, seq: cloneItems(items)}
}

// Kind returns the kind held by v.
func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) mismatch(want Kind) error {
	return TypeMismatch.New("want %s, have %s", want, v.kind)
}

// AsInteger returns the integer held by v.
func (v Value) AsInteger() (int64, error) {
	if v.kind != Integer {
		return 0, v.mismatch(Integer)
	}

	return v.i, nil
}

// AsReal returns the real held by v.
func (v Value) AsReal() (float64, error) {
	if v.kind != Real {
		return 0, v.mismatch(Real)
	}

	return v.f, nil
}

// AsText returns the text held by v.
func (v Value) AsText() (string, error) {
	if v.kind != Text {
		return "", v.mismatch(Text)
	}

	return v.s, nil
}

// AsIdentified returns the identified item held by v.
func (v Value) AsIdentified() (Item, error) {
	if v.kind != Identified {
		return Item{}, v.mismatch(Identified)
	}

	return Item{ID: v.item.ID, Value: v.item.Value.clone()}, nil
}

// AsSequence returns a copy of the items held by v.
func (v Value) AsSequence() ([]Item, error) {
	if v.kind != Sequence {
		return nil, v.mismatch(Sequence)
	}

	return cloneItems(v.seq), nil
}

// Equal reports whether v and o hold the same kind and contents.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}

	switch v.kind {
	case Integer:
		return v.i == o.i
	case Real:
		return v.f == o.f
	case Text:
		return v.s == o.s
	case Identified:
		return v.item.ID == o.item.ID && v.item.Value.Equal(o.item.Value)
	case Sequence:
		if len(v.seq) != len(o.seq) {
			return false
		}

		for i := range v.seq {
			if v.seq[i].ID != o.seq[i].ID || !v.seq[i].Value.Equal(o.seq[i].Value) {
				return false
			}
		}

		return true
	}

	return false
}

// String returns the natural textual form of v.
func (v Value) String() string {
	sb := &strings.Builder{}
	v.format(sb)

	return sb.String()
}

func (v Value) format(sb *strings.Builder) {
	switch v.kind {
	case Integer:
		sb.WriteString(strconv.FormatInt(v.i, 10))
	case Real:
		sb.WriteString(strconv.FormatFloat(v.f, 'g', -1, 64))
	case Text:
		sb.WriteString(v.s)
	case Identified:
		v.item.format(sb)
	case Sequence:
		sb.WriteByte('[')
		for i := range v.seq {
			if i > 0 {
				sb.WriteByte(' ')
			}
			v.seq[i].format(sb)
		}
		sb.WriteByte(']')
	}
}

func (it Item) format(sb *strings.Builder) {
	sb.WriteString(strconv.FormatInt(int64(it.ID), 10))
	sb.WriteByte(':')
	it.Value.format(sb)
}

// clone returns a deep copy of v so that no slice or pointer is shared.
func (v Value) clone() Value {
	switch v.kind {
	case Identified:
		v.item = &Item{ID: v.item.ID, Value: v.item.Value.clone()}
	case Sequence:
		v.seq = cloneItems(v.seq)
	}

	return v
}

func cloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}

	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = Item{ID: it.ID, Value: it.Value.clone()}
	}

	return out
}
