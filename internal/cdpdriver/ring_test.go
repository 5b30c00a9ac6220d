package cdpdriver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRing_AppendWithinCapacity(t *testing.T) {
	r := newRing[int](3)
	r.append(1)
	r.append(2)
	require.Equal(t, []int{1, 2}, r.snapshot())
	require.Equal(t, 2, r.len())
}

func TestRing_OverflowDropsOldest(t *testing.T) {
	r := newRing[int](3)
	for i := 1; i <= 5; i++ {
		r.append(i)
	}
	require.Equal(t, []int{3, 4, 5}, r.snapshot())
	require.Equal(t, 3, r.len())
}

func TestRing_UpdateMutatesMostRecentMatch(t *testing.T) {
	type entry struct {
		id     string
		status int
	}
	r := newRing[entry](4)
	r.append(entry{id: "a", status: 0})
	r.append(entry{id: "b", status: 0})
	r.append(entry{id: "a", status: 0})

	found := r.update(func(e entry) bool { return e.id == "a" }, func(e *entry) { e.status = 200 })
	require.True(t, found)

	snap := r.snapshot()
	require.Equal(t, 200, snap[2].status)
	require.Equal(t, 0, snap[0].status)
}

func TestRing_UpdateNoMatch(t *testing.T) {
	r := newRing[int](2)
	r.append(1)
	found := r.update(func(v int) bool { return v == 99 }, func(v *int) { *v = 0 })
	require.False(t, found)
}
