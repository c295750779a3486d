package integer

import (
	"math"
	"math/big"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("integer")

// MaxWidth is the widest fixed width slice supported.
const MaxWidth = 64

// Truncate returns the low width bits of i's two's complement representation.
func Truncate(i int64, width int) (uint64, error) {
	if width <= 0 || width > MaxWidth {
		return 0, Error.New("invalid width: %d", width)
	}

	if width == MaxWidth {
		return uint64(i), nil
	}

	return uint64(i) & (1<<uint(width) - 1), nil
}

// Extend interprets the low width bits of u as a two's complement integer.
func Extend(u uint64, width int) (int64, error) {
	if width <= 0 || width > MaxWidth {
		return 0, Error.New("invalid width: %d", width)
	}

	shift := uint(MaxWidth - width)

	return int64(u<<shift) >> shift, nil
}

// Block is a signed integer number.
type Block struct {
	Value    []byte
	Negative bool
}

// FromInt64 returns the block for i.
func FromInt64(i int64) Block {
	var m uint64
	if i < 0 {
		// Avoids overflow for math.MinInt64.
		m = uint64(-(i + 1)) + 1
	} else {
		m = uint64(i)
	}

	data := new(big.Int).SetUint64(m).Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return Block{
		Value:    data,
		Negative: i < 0,
	}
}

// Int64 returns the block as an int64.
func (b Block) Int64() (_ int64, err error) {
	defer Error.WrapP(&err)

	m := new(big.Int).SetBytes(b.Value)
	if !m.IsUint64() {
		return 0, errs.New("magnitude exceeds 64 bits: %d", m.BitLen())
	}

	u := m.Uint64()

	switch {
	case b.Negative && u > 1<<63:
		return 0, errs.New("underflow: -%d", u)
	case b.Negative:
		return int64(-u), nil
	case u > math.MaxInt64:
		return 0, errs.New("overflow: %d", u)
	}

	return int64(u), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (b Block) MarshalBinary() (data []byte, err error) {
	i := new(big.Int).SetBytes(b.Value)

	i.Lsh(i, 1)
	if b.Negative {
		i.SetBit(i, 0, 1)
	}

	data = i.Bytes()

	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (b *Block) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return Error.New("empty data")
	}

	i := new(big.Int).SetBytes(data)

	b.Negative = i.Bit(0) == 1
	i.Rsh(i, 1)

	data = i.Bytes()

	if len(data) == 0 {
		data = []byte{0}
	}

	b.Value = data

	return nil
}
