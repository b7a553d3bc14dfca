package netsort

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalNetworksSort(t *testing.T) {
	for n := 2; n <= 6; n++ {
		net := ForSize(n)
		require.NotNil(t, net, "no network for %d elements", n)
		require.True(t, net.Sorts(n), "network for %d elements fails the zero-one principle", n)
	}
}

func TestNetworkSizes(t *testing.T) {
	// Known-optimal comparator counts.
	sizes := map[int]int{2: 1, 3: 3, 4: 5, 5: 9, 6: 12}
	for n, want := range sizes {
		require.Len(t, ForSize(n), want, "comparator count for %d elements", n)
	}
}

func TestForSizeUnsupported(t *testing.T) {
	require.Nil(t, ForSize(1))
	require.Nil(t, ForSize(7))
	require.Nil(t, ForSize(0))
}

func TestSortsRejectsBrokenNetwork(t *testing.T) {
	// Dropping the merge comparators leaves the halves unmerged.
	broken := Network{{1, 2}, {0, 2}, {0, 1}, {4, 5}, {3, 5}, {3, 4}}
	require.False(t, broken.Sorts(6))
}

func TestScheduleLayersAreDisjoint(t *testing.T) {
	for name, layers := range map[string][]Network{
		"quad": Passes4(),
		"six":  Passes6(),
	} {
		for li, layer := range layers {
			seen := map[int]bool{}
			for _, c := range layer {
				require.False(t, seen[c.Low] || seen[c.High],
					"%s layer %d reuses a lane in (%d,%d)", name, li, c.Low, c.High)
				seen[c.Low] = true
				seen[c.High] = true
			}
		}
	}
}

func TestSchedulesSort(t *testing.T) {
	for _, tt := range []struct {
		name   string
		layers []Network
		n      int
	}{
		{"quad", Passes4(), 4},
		{"six", Passes6(), 6},
	} {
		t.Run(tt.name, func(t *testing.T) {
			var flat Network
			for _, layer := range tt.layers {
				flat = append(flat, layer...)
			}
			require.True(t, flat.Sorts(tt.n))
		})
	}
}
