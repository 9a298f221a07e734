package dynarr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlup/dsakit/dynarr"
)

// TestNew_Options verifies constructor defaults and option validation.
func TestNew_Options(t *testing.T) {
	a, err := dynarr.New[int]()
	require.NoError(t, err)
	assert.Zero(t, a.Len())
	assert.Equal(t, dynarr.DefaultCapacity, a.Cap())
	assert.True(t, a.IsEmpty())

	small, err := dynarr.New[int](dynarr.WithCapacity(3))
	require.NoError(t, err)
	assert.Equal(t, 3, small.Cap())

	_, err = dynarr.New[int](dynarr.WithCapacity(-1))
	assert.ErrorIs(t, err, dynarr.ErrOptionViolation)
}

// TestAppend_SizeAndGrowth covers the size invariant and 1.5× growth.
func TestAppend_SizeAndGrowth(t *testing.T) {
	a, err := dynarr.New[int]()
	require.NoError(t, err)

	const n = 100
	for i := 0; i < n; i++ {
		a.Append(i)
		assert.Equal(t, i+1, a.Len())
		assert.LessOrEqual(t, a.Len(), a.Cap(), "size must never exceed capacity")
	}
	// 10 → 15 → 22 → 33 → 49 → 73 → 109
	assert.Equal(t, 109, a.Cap())

	for i := 0; i < n; i++ {
		v, getErr := a.Get(i)
		require.NoError(t, getErr)
		assert.Equal(t, i, v)
	}
}

// TestGetSet verifies get-after-set and the returned prior value.
func TestGetSet(t *testing.T) {
	a, _ := dynarr.New[string]()
	a.Append("alpha")
	a.Append("beta")

	old, err := a.Set(1, "gamma")
	require.NoError(t, err)
	assert.Equal(t, "beta", old)

	v, err := a.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "gamma", v)

	// out-of-range reads and writes
	_, err = a.Get(2)
	assert.ErrorIs(t, err, dynarr.ErrIndexOutOfRange)
	_, err = a.Get(-1)
	assert.ErrorIs(t, err, dynarr.ErrIndexOutOfRange)
	_, err = a.Set(2, "delta")
	assert.ErrorIs(t, err, dynarr.ErrIndexOutOfRange)
}

// TestInsertAt covers interior insertion, append-position insertion, and bounds.
func TestInsertAt(t *testing.T) {
	a, _ := dynarr.New[int]()
	for _, v := range []int{1, 2, 4} {
		a.Append(v)
	}

	require.NoError(t, a.InsertAt(2, 3))
	assert.Equal(t, []int{1, 2, 3, 4}, a.ToSlice())

	// i == Len() appends
	require.NoError(t, a.InsertAt(a.Len(), 5))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, a.ToSlice())

	assert.ErrorIs(t, a.InsertAt(-1, 0), dynarr.ErrIndexOutOfRange)
	assert.ErrorIs(t, a.InsertAt(a.Len()+1, 0), dynarr.ErrIndexOutOfRange)
}

// TestRemoveAt_ShiftCorrectness verifies that removal shifts the suffix:
// the surviving index must hold the pre-removal successor value.
func TestRemoveAt_ShiftCorrectness(t *testing.T) {
	a, _ := dynarr.New[int]()
	for _, v := range []int{10, 20, 30, 40} {
		a.Append(v)
	}

	removed, err := a.RemoveAt(1)
	require.NoError(t, err)
	assert.Equal(t, 20, removed)

	v, err := a.Get(1)
	require.NoError(t, err)
	assert.Equal(t, 30, v, "index 1 must now hold the pre-removal successor")
	assert.Equal(t, []int{10, 30, 40}, a.ToSlice())

	_, err = a.RemoveAt(3)
	assert.ErrorIs(t, err, dynarr.ErrIndexOutOfRange)
}

// TestRemoveValue_IndexOf_Contains covers value-based operations,
// including zero-value equality.
func TestRemoveValue_IndexOf_Contains(t *testing.T) {
	a, _ := dynarr.New[string]()
	for _, v := range []string{"x", "", "y", ""} {
		a.Append(v)
	}

	// zero values compare equal: first empty string is at index 1
	assert.Equal(t, 1, a.IndexOf(""))
	assert.True(t, a.Contains(""))

	assert.True(t, a.RemoveValue(""))
	assert.Equal(t, []string{"x", "y", ""}, a.ToSlice())

	assert.False(t, a.RemoveValue("absent"))
	assert.Equal(t, dynarr.NotFound, a.IndexOf("absent"))
}

// TestShrinkPolicy verifies shrink-on-underuse and the capacity floor.
func TestShrinkPolicy(t *testing.T) {
	a, _ := dynarr.New[int]()
	const n = 100
	for i := 0; i < n; i++ {
		a.Append(i)
	}
	grown := a.Cap()
	require.Greater(t, grown, dynarr.DefaultCapacity)

	// remove from the end until the quarter-load threshold trips
	for a.Len() > 0 {
		_, err := a.RemoveAt(a.Len() - 1)
		require.NoError(t, err)
		// capacity must always cover the live elements
		assert.GreaterOrEqual(t, a.Cap(), a.Len())
	}
	// never below the floor
	assert.GreaterOrEqual(t, a.Cap(), dynarr.DefaultCapacity)
	assert.Less(t, a.Cap(), grown, "capacity must have shrunk after mass removal")
}

// TestClear resets size and capacity floor.
func TestClear(t *testing.T) {
	a, _ := dynarr.New[int]()
	for i := 0; i < 50; i++ {
		a.Append(i)
	}
	require.Greater(t, a.Cap(), dynarr.DefaultCapacity)

	a.Clear()
	assert.Zero(t, a.Len())
	assert.Equal(t, dynarr.DefaultCapacity, a.Cap())
	assert.Equal(t, "[]", a.String())
}

// TestString renders in index order.
func TestString(t *testing.T) {
	a, _ := dynarr.New[int]()
	for _, v := range []int{1, 2, 3} {
		a.Append(v)
	}
	assert.Equal(t, "[1, 2, 3]", a.String())
}

// TestIterator_Forward walks all elements in index order.
func TestIterator_Forward(t *testing.T) {
	a, _ := dynarr.New[int]()
	for _, v := range []int{7, 8, 9} {
		a.Append(v)
	}

	var got []int
	it := a.Iterator()
	for it.Next() {
		got = append(got, it.Value())
	}
	require.NoError(t, it.Err())
	assert.Equal(t, []int{7, 8, 9}, got)
}

// TestIterator_Reverse walks all elements backwards.
func TestIterator_Reverse(t *testing.T) {
	a, _ := dynarr.New[int]()
	for _, v := range []int{7, 8, 9} {
		a.Append(v)
	}

	var got []int
	it := a.ReverseIterator()
	for it.Next() {
		got = append(got, it.Value())
	}
	require.NoError(t, it.Err())
	assert.Equal(t, []int{9, 8, 7}, got)
}

// TestIterator_FailFast detects structural mutation mid-iteration.
func TestIterator_FailFast(t *testing.T) {
	a, _ := dynarr.New[int]()
	for _, v := range []int{1, 2, 3} {
		a.Append(v)
	}

	it := a.Iterator()
	require.True(t, it.Next())

	a.Append(4) // structural change invalidates the iterator

	assert.False(t, it.Next())
	assert.ErrorIs(t, it.Err(), dynarr.ErrConcurrentModification)

	// Set is not structural and must not trip the stamp
	b, _ := dynarr.New[int]()
	b.Append(1)
	b.Append(2)
	it2 := b.Iterator()
	require.True(t, it2.Next())
	_, _ = b.Set(1, 20)
	assert.True(t, it2.Next())
	require.NoError(t, it2.Err())
	assert.Equal(t, 20, it2.Value())
}
