package deque_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/ringdeque/core/deque"
)

func TestIteratorForwardMatchesAt(t *testing.T) {
	d := wrapped(t)

	var got []int
	for it := d.Begin(); !it.Equal(d.End()); it.Next() {
		require.True(t, it.Valid())
		got = append(got, it.Value())
	}
	require.Equal(t, contents(d), got)
}

func TestIteratorBackward(t *testing.T) {
	d := wrapped(t)

	var got []int
	for it := d.End(); !it.Equal(d.Begin()); {
		it.Prev()
		got = append(got, it.Value())
	}
	require.Equal(t, []int{6, 5, 4, 3}, got)
}

func TestIteratorEquality(t *testing.T) {
	d := deque.New[int]()
	d.PushBack(1)

	require.True(t, d.Begin().Equal(d.Begin()))
	require.Equal(t, d.Begin(), d.Begin())
	require.NotEqual(t, d.Begin(), d.End())

	other := deque.New[int]()
	other.PushBack(1)
	// same index, different container identity
	require.False(t, d.Begin().Equal(other.Begin()))
}

func TestIteratorEmptyDeque(t *testing.T) {
	d := deque.New[int]()
	require.True(t, d.Begin().Equal(d.End()))
	require.False(t, d.Begin().Valid())
}

func TestIteratorEndNotValid(t *testing.T) {
	d := wrapped(t)
	end := d.End()
	require.False(t, end.Valid())
	require.Equal(t, d.Len(), end.Index())
}

func TestIteratorPtrMutates(t *testing.T) {
	d := wrapped(t)
	it := d.Begin()
	it.Next()
	*it.Ptr() = 44
	require.Equal(t, []int{3, 44, 5, 6}, contents(d))
}

func TestIteratorReobtainedAfterMutation(t *testing.T) {
	d := wrapped(t)
	stale := d.End()
	d.PushBack(7) // structural mutation invalidates stale
	require.False(t, stale.Equal(d.End()))
	require.Equal(t, d.Len(), d.End().Index())
}

func TestAllSeq(t *testing.T) {
	d := wrapped(t)

	var idxs, vals []int
	for i, v := range d.All() {
		idxs = append(idxs, i)
		vals = append(vals, v)
	}
	require.Equal(t, []int{0, 1, 2, 3}, idxs)
	require.Equal(t, contents(d), vals)

	// early break
	n := 0
	for range d.All() {
		n++
		break
	}
	require.Equal(t, 1, n)
}

func TestBackwardSeq(t *testing.T) {
	d := wrapped(t)

	var idxs, vals []int
	for i, v := range d.Backward() {
		idxs = append(idxs, i)
		vals = append(vals, v)
	}
	require.Equal(t, []int{3, 2, 1, 0}, idxs)
	require.Equal(t, []int{6, 5, 4, 3}, vals)
}
