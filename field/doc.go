// Package field provides composable field nodes for building binary records.
//
// A record is a tree of Fields. Leaves pull values from a data source and
// cache them. Composites refresh and render their children:
//
//  RepeatingGroup(3)
//  ├── BitGroup(1 byte)
//  │   ├── 3 bits: Leaf
//  │   ├── 1 bit:  Leaf
//  │   └── 4 bits: Leaf
//  └── Leaf
//
// Every Field is driven in two phases. Update refreshes cached values from
// the data sources. SerializeTo and SerializeNthValueTo render the cache and
// never fetch new data. Tree construction and the update/serialize cycle must
// not be interleaved.
//
// Renderings
//
// Leaves render through a Format. The default Decimal format writes the
// cached integer in decimal and the indexed form as (index,value):
//
//  SerializeTo          -> 42
//  SerializeNthValueTo  -> (2,42)
//
// A leaf has a single cached value, so every index renders the same value.
//
// A BitGroup renders its children packed most significant bit first, each
// truncated to its declared width. The last partial byte is zero padded. The
// declared byte count is a ceiling and never a padding target:
//
//  widths [3 1 4], values [5 1 9]
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |-----------|---|---------------|
//  | 1 . 0 . 1 | 1 | 1 . 0 . 0 . 1 |
//  |-----------|---|---------------|
//
// A RepeatingGroup with repeat count N renders N blocks. Block i is every
// child's SerializeNthValueTo(i) in insertion order:
//
//  children [A B], N=3 -> (0,A)(0,B)(1,A)(1,B)(2,A)(2,B)
//
// Sharing
//
// A Field may be attached to more than one parent. It stays alive as long as
// any parent references it. Updating both parents updates the shared child
// twice, which is harmless for the sources in this module.
//
// Errors
//
// Errors raised by children are returned unchanged by every composite
// ancestor. Narrowing a cached value to the wrong kind fails with
// value.TypeMismatch. Overfilling a BitGroup fails with CapacityExceeded and
// leaves the group unchanged. Output already written to the sink before an
// error is not rolled back.
package field
