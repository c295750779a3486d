// Package value provides the typed value exchanged between data sources and
// fields.
//
// A Value holds exactly one of the following kinds:
//
//  | Kind       | Go type | Notes                                     |
//  |------------|---------|-------------------------------------------|
//  | Integer    | int64   | The zero Value is Integer(0).             |
//  | Real       | float64 |                                           |
//  | Text       | string  |                                           |
//  | Identified | Item    | An identifier tagged Value.               |
//  | Sequence   | []Item  | A batch of distinct identified values.    |
//  |------------|---------|-------------------------------------------|
//
// Reading a Value requires knowing which kind it holds. Narrowing to a kind
// it does not hold returns a TypeMismatch error. No conversion between
// Integer and Real is ever performed.
//
// Values have value semantics: copying a Value (including a Sequence)
// produces an independent Value.
package value
