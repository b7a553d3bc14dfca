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

// Function variables so architecture-specific builds can install
// specialized implementations at init time. The base implementations are
// the semantic reference; any replacement must produce bit-identical
// results.
var (
	sort4x32Impl = BaseSort4x32
	sort6x8Impl  = BaseSort6x8
)

// Sort4x32 sorts four int32 values in place, ascending, using the 3-pass
// vector engine.
func Sort4x32(v *[4]int32) {
	sort4x32Impl(v)
}

// Sort6x8 sorts six int8 values in place, ascending, using the 5-pass
// vector engine.
func Sort6x8(v *[6]int8) {
	sort6x8Impl(v)
}

// Sort sorts data in place using the best engine for the element type and
// length: the vector engines for the two widths they cover, the scalar
// network engine for other lengths up to 6, and insertion sort beyond.
// The vector fast paths apply to plain []int32 and []int8 only; defined
// element types (type ID int32) always take the scalar engine.
func Sort[T lane.Signed](data []T) {
	switch v := any(data).(type) {
	case []int32:
		if len(v) == 4 {
			Sort4x32((*[4]int32)(v))
			return
		}
	case []int8:
		if len(v) == 6 {
			Sort6x8((*[6]int8)(v))
			return
		}
	}
	SortSlice(data)
}
