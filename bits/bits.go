// Package bits provides most significant bit first packing of fixed width
// integers into a contiguous byte buffer.
//
// Bits are laid out in write order starting at the most significant bit of
// the first byte. A trailing partial byte is zero padded:
//
//  WriteBits(3, 0b101); WriteBits(1, 0b1); WriteBits(4, 0b1001)
//
//  | 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//  |-----------|---|---------------|
//  | 1 . 0 . 1 | 1 | 1 . 0 . 0 . 1 |
//  |-----------|---|---------------|
package bits

import (
	"io"

	"github.com/zeebo/errs"

	"github.com/calebcase/fieldvalue/integer"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("bits")

// Writer accumulates bits into a byte buffer.
type Writer struct {
	buf []byte
	n   int
}

// NewWriter returns a writer with room for size bits.
func NewWriter(size int) *Writer {
	return &Writer{
		buf: make([]byte, 0, (size+7)/8),
	}
}

// WriteBits appends the low width bits of u, most significant first. Widths
// range from 1 to integer.MaxWidth.
func (w *Writer) WriteBits(width int, u uint64) error {
	if width <= 0 || width > integer.MaxWidth {
		return Error.New("invalid bit count: %d", width)
	}

	for width > 0 {
		off := w.n % 8
		if off == 0 {
			w.buf = append(w.buf, 0)
		}

		free := 8 - off
		take := free
		if width < take {
			take = width
		}

		chunk := byte(u>>uint(width-take)) & (0xFF >> uint(8-take))
		w.buf[len(w.buf)-1] |= chunk << uint(free-take)

		width -= take
		w.n += take
	}

	return nil
}

// Len returns the number of bits written.
func (w *Writer) Len() int {
	return w.n
}

// Bytes returns the packed buffer. The final byte is zero padded.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Reset discards all written bits.
func (w *Writer) Reset() {
	w.buf = w.buf[:0]
	w.n = 0
}

// WriteTo implements io.WriterTo.
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	n, err := dst.Write(w.buf)

	return int64(n), err
}

// Reader reads bits from a packed buffer.
type Reader struct {
	buf []byte
	n   int
}

// NewReader returns a reader over buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// ReadBits returns the next width bits, most significant first.
func (r *Reader) ReadBits(width int) (u uint64, err error) {
	if width <= 0 || width > integer.MaxWidth {
		return 0, Error.New("invalid bit count: %d", width)
	}

	if r.n+width > len(r.buf)*8 {
		return 0, Error.New(
			"short buffer: want=%d remaining=%d",
			width,
			len(r.buf)*8-r.n,
		)
	}

	for width > 0 {
		off := r.n % 8
		avail := 8 - off
		take := avail
		if width < take {
			take = width
		}

		b := r.buf[r.n/8] >> uint(avail-take) & (0xFF >> uint(8-take))
		u = u<<uint(take) | uint64(b)

		width -= take
		r.n += take
	}

	return u, nil
}

// Remaining returns the number of unread bits, including any padding.
func (r *Reader) Remaining() int {
	return len(r.buf)*8 - r.n
}
