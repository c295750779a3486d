package field

import (
	"io"

	"github.com/calebcase/fieldvalue/bits"
	"github.com/calebcase/fieldvalue/integer"
)

// BitGroup packs its children into a contiguous bit buffer bounded by a byte
// budget.
type BitGroup struct {
	numBytes int

	// widths[i] is the declared width of fields[i].
	widths []int
	fields []ValueField
	total  int
}

// NewBitGroup returns an empty group with a budget of numBytes.
func NewBitGroup(numBytes int) (*BitGroup, error) {
	if numBytes < 0 {
		return nil, Error.New("invalid byte count: %d", numBytes)
	}

	return &BitGroup{
		numBytes: numBytes,
	}, nil
}

// NumBytes returns the byte budget.
func (g *BitGroup) NumBytes() int {
	return g.numBytes
}

// TotalBits returns the sum of the declared child widths.
func (g *BitGroup) TotalBits() int {
	return g.total
}

// Len returns the number of children.
func (g *BitGroup) Len() int {
	return len(g.fields)
}

// AddBits appends f with a width of width bits. If the group would exceed its
// budget the insertion is undone and a CapacityExceeded error is returned.
func (g *BitGroup) AddBits(width int, f ValueField) (err error) {
	if f == nil {
		return Error.New("nil field")
	}

	if width <= 0 || width > integer.MaxWidth {
		return Error.New("invalid width: %d", width)
	}

	g.widths = append(g.widths, width)
	g.fields = append(g.fields, f)

	total := g.sum()

	// Compared in bytes so a large budget cannot overflow.
	if (total+7)/8 > g.numBytes {
		g.widths = g.widths[:len(g.widths)-1]
		g.fields[len(g.fields)-1] = nil
		g.fields = g.fields[:len(g.fields)-1]

		return CapacityExceeded.New(
			"bits=%d bytes=%d",
			total,
			g.numBytes,
		)
	}

	g.total = total

	return nil
}

func (g *BitGroup) sum() (total int) {
	for _, width := range g.widths {
		total += width
	}

	return total
}

// Update updates every child in insertion order.
func (g *BitGroup) Update() (err error) {
	return updateAll(g.fields)
}

// Pack returns the packed children and the number of meaningful bits. The
// final byte is zero padded.
func (g *BitGroup) Pack() (buf []byte, nbits int, err error) {
	w := bits.NewWriter(g.total)

	for j, f := range g.fields {
		width := g.widths[j]

		i, err := f.Value().AsInteger()
		if err != nil {
			return nil, 0, err
		}

		u, err := integer.Truncate(i, width)
		if err != nil {
			return nil, 0, err
		}

		err = w.WriteBits(width, u)
		if err != nil {
			return nil, 0, err
		}
	}

	return w.Bytes(), w.Len(), nil
}

// SerializeTo writes the packed children.
func (g *BitGroup) SerializeTo(w io.Writer) (err error) {
	buf, _, err := g.Pack()
	if err != nil {
		return err
	}

	_, err = w.Write(buf)

	return err
}

// SerializeNthValueTo writes the packed children. The group has no per index
// state so every index renders the same bits.
func (g *BitGroup) SerializeNthValueTo(index int, w io.Writer) (err error) {
	return g.SerializeTo(w)
}
