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

import "github.com/ajroetker/go-netsort/lane"

// Read-only vector forms of the six pass constants, built once at startup.
var (
	sixPartner [5]lane.Vec[int8]
	sixOffset  [5]lane.Vec[int8]
	sixMask    [5]lane.Vec[int8]
)

func init() {
	for p := range sixPasses {
		sixPartner[p] = lane.Load(sixPasses[p].partner[:])
		sixOffset[p] = lane.Load(sixPasses[p].offset[:])
		sixMask[p] = lane.Load(sixPasses[p].mask[:])
	}
}

// BaseSort6x8 sorts six int8 values in place in exactly five passes,
// structurally identical to BaseSort4x32 but at byte granularity. The six
// payload bytes occupy lanes 0 through 5 of a 16-byte vector; the
// remaining lanes are zero padding that every pass maps through the
// identity with a zero compare mask, and only the low six lanes are
// stored back.
func BaseSort6x8(v *[6]int8) {
	cur := lane.LoadFull(v[:])
	for p := range sixPasses {
		partner := lane.TableLookupBytes(cur, sixPartner[p])
		gt := lane.VecFromMask(lane.GreaterThan(partner, cur))
		idx := lane.Add(lane.And(gt, sixMask[p]), sixOffset[p])
		cur = lane.TableLookupBytes(cur, idx)
	}
	lane.Store(cur, v[:])
}
