package netsort

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDerivePassMatchesGeneratedQuad asserts that deriving the pass
// constants from the schedule reproduces the checked-in generated tables.
func TestDerivePassMatchesGeneratedQuad(t *testing.T) {
	layers := Passes4()
	require.Len(t, layers, len(quadPasses))
	for p, layer := range layers {
		partner, offset, mask := DerivePass(layer, 4)
		for k := 0; k < 4; k++ {
			require.Equal(t, int32(partner[k]), quadPasses[p].partner[k], "pass %d partner lane %d", p, k)
			require.Equal(t, int32(offset[k]), quadPasses[p].offset[k], "pass %d offset lane %d", p, k)
			require.Equal(t, int32(mask[k]), quadPasses[p].mask[k], "pass %d mask lane %d", p, k)
		}
	}
}

func TestDerivePassMatchesGeneratedSix(t *testing.T) {
	layers := Passes6()
	require.Len(t, layers, len(sixPasses))
	for p, layer := range layers {
		partner, offset, mask := DerivePass(layer, 16)
		for k := 0; k < 16; k++ {
			require.Equal(t, int8(partner[k]), sixPasses[p].partner[k], "pass %d partner lane %d", p, k)
			require.Equal(t, int8(offset[k]), sixPasses[p].offset[k], "pass %d offset lane %d", p, k)
			require.Equal(t, int8(mask[k]), sixPasses[p].mask[k], "pass %d mask lane %d", p, k)
		}
	}
}

func TestDerivePassIdentityLanes(t *testing.T) {
	partner, offset, mask := DerivePass(Network{{2, 3}}, 16)
	for k := 0; k < 16; k++ {
		if k == 2 || k == 3 {
			continue
		}
		require.Equal(t, k, partner[k], "lane %d partner", k)
		require.Equal(t, k, offset[k], "lane %d offset", k)
		require.Zero(t, mask[k], "lane %d mask", k)
	}
	require.Equal(t, 3, partner[2])
	require.Equal(t, 2, partner[3])
	require.Equal(t, 3, offset[2])
	require.Equal(t, 3, offset[3])
	require.Equal(t, -1, mask[2])
	require.Equal(t, -1, mask[3])
}

func TestDerivePassRejectsOverlap(t *testing.T) {
	require.Panics(t, func() {
		DerivePass(Network{{0, 1}, {1, 2}}, 4)
	})
}

func TestDerivePassRejectsBadComparator(t *testing.T) {
	require.Panics(t, func() {
		DerivePass(Network{{3, 1}}, 4) // Low >= High
	})
	require.Panics(t, func() {
		DerivePass(Network{{0, 4}}, 4) // out of range
	})
}
