package source_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/fieldvalue/source"
	"github.com/calebcase/fieldvalue/value"
)

func TestFixed(t *testing.T) {
	t.Run("zero", func(t *testing.T) {
		f := &source.Fixed{}
		require.True(t, f.NextValue().Equal(value.Value{}))
	})

	t.Run("constant", func(t *testing.T) {
		f := source.NewFixed(value.NewText("abc"))

		for i := 0; i < 3; i++ {
			require.True(t, f.NextValue().Equal(value.NewText("abc")))
		}

		f.Set(value.NewReal(2.5))
		require.True(t, f.NextValue().Equal(value.NewReal(2.5)))
	})
}

func TestHolder(t *testing.T) {
	h := &source.Holder{}
	require.True(t, h.Get().Equal(value.NewInteger(0)))

	h.Set(value.NewInteger(5))
	h.Set(value.NewInteger(6))
	require.True(t, h.Get().Equal(value.NewInteger(6)))

	h = source.NewHolder(value.NewText("init"))
	require.True(t, h.Get().Equal(value.NewText("init")))
}

func TestHolderConcurrent(t *testing.T) {
	h := &source.Holder{}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			for j := 0; j < 100; j++ {
				h.Set(value.NewInteger(int64(i)))
				_ = h.Get()
			}
		}(i)
	}
	wg.Wait()

	i, err := h.Get().AsInteger()
	require.NoError(t, err)
	require.True(t, i >= 0 && i < 8)
}

func TestQueue(t *testing.T) {
	t.Run("unset", func(t *testing.T) {
		q := source.NewQueue(&source.Holder{})
		require.True(t, q.NextValue().Equal(value.Value{}))
	})

	t.Run("nil holder", func(t *testing.T) {
		q := source.NewQueue(nil)
		require.True(t, q.NextValue().Equal(value.Value{}))
	})

	t.Run("polling", func(t *testing.T) {
		h := &source.Holder{}
		q := source.NewQueue(h)

		h.Set(value.NewInteger(1))
		require.True(t, q.NextValue().Equal(value.NewInteger(1)))
		require.True(t, q.NextValue().Equal(value.NewInteger(1)))
		require.True(t, h.Get().Equal(value.NewInteger(1)))

		h.Set(value.NewInteger(2))
		require.True(t, q.NextValue().Equal(value.NewInteger(2)))
	})
}

func TestFunc(t *testing.T) {
	n := int64(0)
	f := source.Func(func() value.Value {
		n++
		return value.NewInteger(n)
	})

	var s source.Source = f
	require.True(t, s.NextValue().Equal(value.NewInteger(1)))
	require.True(t, s.NextValue().Equal(value.NewInteger(2)))
}
