package netsort

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// forEachPermutation calls fn with every permutation of vals.
// The slice passed to fn is reused; fn must not retain it.
func forEachPermutation[T any](vals []T, fn func([]T)) {
	perm := slices.Clone(vals)
	var heap func(k int)
	heap = func(k int) {
		if k <= 1 {
			fn(perm)
			return
		}
		for i := 0; i < k; i++ {
			heap(k - 1)
			if k%2 == 0 {
				perm[i], perm[k-1] = perm[k-1], perm[i]
			} else {
				perm[0], perm[k-1] = perm[k-1], perm[0]
			}
		}
	}
	heap(len(perm))
}

func TestSortSliceExhaustive(t *testing.T) {
	for n := 2; n <= 6; n++ {
		vals := make([]int32, n)
		for i := range vals {
			vals[i] = int32(i + 1)
		}
		forEachPermutation(vals, func(perm []int32) {
			got := slices.Clone(perm)
			SortSlice(got)
			require.True(t, slices.IsSorted(got), "SortSlice(%v) = %v", perm, got)
		})
	}
}

func TestSort2Concrete(t *testing.T) {
	v := [2]int32{2, 1}
	Sort2(&v)
	require.Equal(t, [2]int32{1, 2}, v)
}

func TestFixedSizeEntryPoints(t *testing.T) {
	v3 := [3]int32{3, 1, 2}
	Sort3(&v3)
	require.Equal(t, [3]int32{1, 2, 3}, v3)

	v4 := [4]int64{4, 3, 2, 1}
	Sort4(&v4)
	require.Equal(t, [4]int64{1, 2, 3, 4}, v4)

	v5 := [5]int16{5, 1, 4, 2, 3}
	Sort5(&v5)
	require.Equal(t, [5]int16{1, 2, 3, 4, 5}, v5)

	v6 := [6]int8{9, 5, 1, 4, 1, 3}
	Sort6(&v6)
	require.Equal(t, [6]int8{1, 1, 3, 4, 5, 9}, v6)
}

func TestSortSliceDuplicates(t *testing.T) {
	inputs := [][]int32{
		{5, 5},
		{2, 2, 2},
		{1, 2, 1, 2},
		{3, 3, 3, 3, 3},
		{4, 1, 4, 1, 4, 1},
	}
	for _, in := range inputs {
		got := slices.Clone(in)
		SortSlice(got)
		want := slices.Clone(in)
		slices.Sort(want)
		require.Equal(t, want, got, "SortSlice(%v)", in)
	}
}

func TestSortSliceBoundaryValues(t *testing.T) {
	in := []int32{0, math.MaxInt32, math.MinInt32, -1, 1, math.MinInt32}
	got := slices.Clone(in)
	SortSlice(got)
	want := slices.Clone(in)
	slices.Sort(want)
	require.Equal(t, want, got)
}

func TestSortSliceIdempotent(t *testing.T) {
	in := []int32{1, 2, 3, 4, 5}
	got := slices.Clone(in)
	SortSlice(got)
	require.Equal(t, in, got)
	SortSlice(got)
	require.Equal(t, in, got)
}

func TestSortSliceTrivialLengths(t *testing.T) {
	SortSlice([]int32{}) // must not panic
	one := []int32{7}
	SortSlice(one)
	require.Equal(t, []int32{7}, one)
}

func TestSortSliceInsertionFallback(t *testing.T) {
	in := []int32{9, 3, 7, 1, 8, 2, 6, 4, 5}
	got := slices.Clone(in)
	SortSlice(got)
	require.True(t, slices.IsSorted(got))
}

func TestSortGenericFrontDoor(t *testing.T) {
	i32 := []int32{4, 3, 2, 1}
	Sort(i32)
	require.Equal(t, []int32{1, 2, 3, 4}, i32)

	i8 := []int8{3, 1, 4, 1, 5, 9}
	Sort(i8)
	require.Equal(t, []int8{1, 1, 3, 4, 5, 9}, i8)

	i64 := []int64{5, 4, 3, 2, 1}
	Sort(i64)
	require.Equal(t, []int64{1, 2, 3, 4, 5}, i64)
}

func TestSortDefinedElementTypes(t *testing.T) {
	// Defined types take the scalar engine even at the vector lengths;
	// the result must be the same either way.
	type id int32
	ids := []id{4, 3, 2, 1}
	Sort(ids)
	require.Equal(t, []id{1, 2, 3, 4}, ids)

	type tag int8
	tags := []tag{3, 1, 4, 1, 5, 9}
	Sort(tags)
	require.Equal(t, []tag{1, 1, 3, 4, 5, 9}, tags)
}
