package field

import (
	"io"

	"github.com/zeebo/errs"

	"github.com/calebcase/fieldvalue/value"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("field")

// CapacityExceeded is the class of errors returned when a BitGroup insertion
// would exceed the group's byte budget.
var CapacityExceeded = errs.Class("capacity exceeded")

// Field is a node of a record tree.
type Field interface {
	// Update refreshes the cached state from the data source, or by
	// updating every child.
	Update() (err error)

	// SerializeTo writes the full current representation.
	SerializeTo(w io.Writer) (err error)

	// SerializeNthValueTo writes the representation for repetition
	// index. Any index is accepted.
	SerializeNthValueTo(index int, w io.Writer) (err error)
}

// ValueField is a Field exposing its cached value.
type ValueField interface {
	Field

	Value() value.Value
}

// updateAll updates fs in order and returns the first error unchanged.
func updateAll[F Field](fs []F) (err error) {
	for _, f := range fs {
		err = f.Update()
		if err != nil {
			return err
		}
	}

	return nil
}
