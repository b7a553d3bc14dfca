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

// applyNetwork applies every comparator of net to data, in order. The
// min/max builtins lower to conditional moves, so the loop carries no
// data-dependent control flow; the only branches are on the comparator
// count, which is fixed per network.
func applyNetwork[T lane.Signed](data []T, net Network) {
	for _, c := range net {
		lo := min(data[c.Low], data[c.High])
		hi := max(data[c.Low], data[c.High])
		data[c.Low] = lo
		data[c.High] = hi
	}
}

// Sort2 sorts two elements in place, ascending, branch-free.
func Sort2[T lane.Signed](v *[2]T) {
	a, b := v[0], v[1]
	v[0] = min(a, b)
	v[1] = max(a, b)
}

// Sort3 sorts three elements in place, ascending, branch-free.
func Sort3[T lane.Signed](v *[3]T) {
	applyNetwork(v[:], network3)
}

// Sort4 sorts four elements in place, ascending, branch-free.
// For int32 elements, Sort4x32 is the faster route.
func Sort4[T lane.Signed](v *[4]T) {
	applyNetwork(v[:], network4)
}

// Sort5 sorts five elements in place, ascending, branch-free.
func Sort5[T lane.Signed](v *[5]T) {
	applyNetwork(v[:], network5)
}

// Sort6 sorts six elements in place, ascending, branch-free.
// For int8 elements, Sort6x8 is the faster route.
func Sort6[T lane.Signed](v *[6]T) {
	applyNetwork(v[:], network6)
}

// SortSlice sorts data in place, ascending, using the scalar network for
// lengths 2 through 6. The length switch is resolved per call, not per
// element; no branch depends on element values. Longer slices fall back
// to insertion sort.
func SortSlice[T lane.Signed](data []T) {
	switch len(data) {
	case 0, 1:
	case 2:
		Sort2((*[2]T)(data))
	case 3:
		Sort3((*[3]T)(data))
	case 4:
		Sort4((*[4]T)(data))
	case 5:
		Sort5((*[5]T)(data))
	case 6:
		Sort6((*[6]T)(data))
	default:
		insertionSort(data)
	}
}

// insertionSort is the fallback for lengths the networks do not cover.
func insertionSort[T lane.Signed](data []T) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && data[j] > key {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}
