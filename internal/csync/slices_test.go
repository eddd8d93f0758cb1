package csync

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlice_Append(t *testing.T) {
	t.Parallel()

	s := NewSlice[string]()
	require.Equal(t, 0, s.Len())

	require.Equal(t, 0, s.Append("a"))
	require.Equal(t, 1, s.Append("b"))
	require.Equal(t, 2, s.Len())

	v, ok := s.Get(1)
	require.True(t, ok)
	require.Equal(t, "b", v)
}

func TestSlice_Get(t *testing.T) {
	t.Parallel()

	s := NewSliceFrom([]int{10, 20, 30})

	v, ok := s.Get(0)
	require.True(t, ok)
	require.Equal(t, 10, v)

	_, ok = s.Get(-1)
	require.False(t, ok)

	_, ok = s.Get(3)
	require.False(t, ok)
}

func TestSlice_Take(t *testing.T) {
	t.Parallel()

	s := NewSliceFrom([]string{"a", "b"})
	old := s.Take()
	require.Equal(t, []string{"a", "b"}, old)
	require.Equal(t, 0, s.Len())

	// taking from an empty slice is fine
	require.Empty(t, s.Take())
}

func TestSlice_Seq(t *testing.T) {
	t.Parallel()

	s := NewSliceFrom([]int{1, 2, 3})
	var got []int
	for v := range s.Seq() {
		got = append(got, v)
	}
	require.Equal(t, []int{1, 2, 3}, got)
}

func TestSlice_ConcurrentAppend(t *testing.T) {
	t.Parallel()

	s := NewSlice[int]()
	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.Append(n)
		}(i)
	}
	wg.Wait()
	require.Equal(t, 100, s.Len())
}
