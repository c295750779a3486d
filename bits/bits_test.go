package bits_test

import (
	"bytes"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/fieldvalue/bits"
)

type slice struct {
	width int
	u     uint64
}

func TestWriter(t *testing.T) {
	type TC struct {
		in  []slice
		out []byte
		n   int
	}

	tcs := []TC{
		{
			in:  []slice{{3, 0b101}, {1, 0b1}, {4, 0b1001}},
			out: []byte{0b1011_1001},
			n:   8,
		},
		{
			in:  []slice{{3, 0b101}},
			out: []byte{0b1010_0000},
			n:   3,
		},
		{
			in:  []slice{{4, 0b1111}, {8, 0b1010_0101}, {2, 0b01}},
			out: []byte{0b1111_1010, 0b0101_0100},
			n:   14,
		},
		{
			in:  []slice{{1, 0b1}, {64, math.MaxUint64}},
			out: []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0b1000_0000},
			n:   65,
		},
		{
			// Only the low bits of the value are written.
			in:  []slice{{2, 0b1110}},
			out: []byte{0b1000_0000},
			n:   2,
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%02d", i), func(t *testing.T) {
			w := bits.NewWriter(tc.n)
			for _, s := range tc.in {
				require.NoError(t, w.WriteBits(s.width, s.u))
			}

			require.Equal(t, tc.n, w.Len())
			require.Equal(t, tc.out, w.Bytes())

			out := &bytes.Buffer{}
			n, err := w.WriteTo(out)
			require.NoError(t, err)
			require.Equal(t, int64(len(tc.out)), n)
			require.Equal(t, tc.out, out.Bytes())

			r := bits.NewReader(w.Bytes())
			for _, s := range tc.in {
				u, err := r.ReadBits(s.width)
				require.NoError(t, err)

				mask := uint64(math.MaxUint64)
				if s.width < 64 {
					mask = 1<<uint(s.width) - 1
				}
				require.Equal(t, s.u&mask, u)
			}
			require.Equal(t, len(tc.out)*8-tc.n, r.Remaining())
		})
	}
}

func TestInvalidWidth(t *testing.T) {
	w := &bits.Writer{}
	for _, width := range []int{-1, 0, 65} {
		err := w.WriteBits(width, 0)
		require.Error(t, err)
		require.True(t, bits.Error.Has(err))
	}
	require.Equal(t, 0, w.Len())

	r := bits.NewReader([]byte{0})
	_, err := r.ReadBits(0)
	require.True(t, bits.Error.Has(err))
}

func TestReaderShort(t *testing.T) {
	r := bits.NewReader([]byte{0b1100_0000})

	u, err := r.ReadBits(2)
	require.NoError(t, err)
	require.Equal(t, uint64(0b11), u)

	_, err = r.ReadBits(7)
	require.Error(t, err)
	require.True(t, bits.Error.Has(err))
	require.Equal(t, 6, r.Remaining())
}

func TestReset(t *testing.T) {
	w := bits.NewWriter(8)
	require.NoError(t, w.WriteBits(5, 0b10101))

	w.Reset()
	require.Equal(t, 0, w.Len())
	require.Empty(t, w.Bytes())

	require.NoError(t, w.WriteBits(1, 1))
	require.Equal(t, []byte{0b1000_0000}, w.Bytes())
}
