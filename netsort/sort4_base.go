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

// Read-only vector forms of the quad pass constants, built once at startup.
var (
	quadPartner [3]lane.Vec[int32]
	quadOffset  [3]lane.Vec[int32]
	quadMask    [3]lane.Vec[int32]
)

func init() {
	for p := range quadPasses {
		quadPartner[p] = lane.Load(quadPasses[p].partner[:])
		quadOffset[p] = lane.Load(quadPasses[p].offset[:])
		quadMask[p] = lane.Load(quadPasses[p].mask[:])
	}
}

// BaseSort4x32 sorts four int32 lanes in place in exactly three passes.
// Each pass shuffles every lane's comparison partner into position,
// compares (signed, per lane), folds the all-ones compare result into a
// permutation index vector with a masked add, and applies it with a single
// lane gather. No step branches on lane values.
func BaseSort4x32(v *[4]int32) {
	cur := lane.Load(v[:])
	for p := range quadPasses {
		partner := lane.TableLookupLanes(cur, quadPartner[p])
		gt := lane.VecFromMask(lane.GreaterThan(partner, cur))
		idx := lane.Add(lane.And(gt, quadMask[p]), quadOffset[p])
		cur = lane.TableLookupLanes(cur, idx)
	}
	lane.Store(cur, v[:])
}
