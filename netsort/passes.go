// Copyright 2025 go-netsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package netsort

import "fmt"

//go:generate go run ../cmd/netgen -output zpasses.go

// quadPass holds the constants for one pass of the 4x32 engine.
type quadPass struct {
	partner [4]int32
	offset  [4]int32
	mask    [4]int32
}

// sixPass holds the constants for one pass of the 6x8 engine. The engine
// runs on a full 16-byte vector; lanes 6 through 15 are identity-mapped
// padding and must never be read back.
type sixPass struct {
	partner [16]int8
	offset  [16]int8
	mask    [16]int8
}

// DerivePass computes, for one layer of disjoint comparators, the constant
// tables that realize the whole layer as a single shuffle/compare/permute
// step over the given lane count:
//
//   - partner[k] is the lane whose value lane k compares against, or k
//     itself for lanes the layer does not touch.
//   - offset[k] is the source lane selected when the partner does not
//     compare greater (idx = (gt AND mask) + offset, with gt being the
//     all-ones/all-zeros compare result).
//   - mask[k] is the signed delta a true compare contributes.
//
// For comparator (i, j) with i < j, both lanes get offset j and mask i-j:
// when lane i's partner value is greater, the selector drops from j to i
// so lane i keeps its own (smaller) value, and symmetrically lane j pulls
// the larger value from i. Untouched lanes compare against themselves,
// which can never be greater, so identity offsets with mask 0 hold them
// fixed unconditionally.
//
// DerivePass panics if the layer's comparators are malformed or share a
// lane; that is a build-time defect, not a runtime condition.
func DerivePass(layer Network, lanes int) (partner, offset, mask []int) {
	partner = make([]int, lanes)
	offset = make([]int, lanes)
	mask = make([]int, lanes)
	for k := 0; k < lanes; k++ {
		partner[k] = k
		offset[k] = k
	}
	for _, c := range layer {
		i, j := c.Low, c.High
		if i < 0 || j < 0 || i >= lanes || j >= lanes || i >= j {
			panic(fmt.Sprintf("netsort: bad comparator (%d,%d) for %d lanes", i, j, lanes))
		}
		if partner[i] != i || partner[j] != j {
			panic(fmt.Sprintf("netsort: comparator (%d,%d) overlaps another in its layer", i, j))
		}
		partner[i], partner[j] = j, i
		offset[i], offset[j] = j, j
		mask[i], mask[j] = i-j, i-j
	}
	return partner, offset, mask
}
