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

// Comparator is one compare-and-order step of a sorting network. After it
// is applied, the value at Low is <= the value at High; other positions
// are untouched.
type Comparator struct {
	Low, High int
}

// Network is an ordered sequence of comparators that sorts any input of a
// fixed length. Networks are immutable; they are defined once per size and
// never mutated at runtime.
type Network []Comparator

// Canonical networks per element count. The 4-network is simultaneously
// size-optimal (5) and depth-optimal (3). The 5-network is the classic
// size-9 construction. The 6-network 3-sorts {0,1,2} and {3,4,5}
// independently, then merges the halves (12 comparators, depth 5).
var (
	network2 = Network{{0, 1}}
	network3 = Network{{1, 2}, {0, 2}, {0, 1}}
	network4 = Network{{0, 1}, {2, 3}, {0, 2}, {1, 3}, {1, 2}}
	network5 = Network{
		{0, 1}, {3, 4}, {2, 4}, {2, 3}, {1, 4},
		{0, 3}, {0, 2}, {1, 3}, {1, 2},
	}
	network6 = Network{
		{1, 2}, {0, 2}, {0, 1},
		{4, 5}, {3, 5}, {3, 4},
		{0, 3}, {1, 4}, {2, 5},
		{2, 4}, {1, 3}, {2, 3},
	}
)

// ForSize returns the canonical comparator sequence for n elements.
// Supported sizes are 2 through 6; other sizes return nil.
func ForSize(n int) Network {
	switch n {
	case 2:
		return network2
	case 3:
		return network3
	case 4:
		return network4
	case 5:
		return network5
	case 6:
		return network6
	default:
		return nil
	}
}

// Sorts reports whether the network sorts every n-element input, using the
// zero-one principle: a network that sorts all 2^n boolean sequences sorts
// all totally ordered inputs. This runs 2^n trials and is meant for tests
// and generators, never for hot paths.
func (net Network) Sorts(n int) bool {
	buf := make([]int8, n)
	for bits := 0; bits < 1<<n; bits++ {
		ones := 0
		for i := range buf {
			buf[i] = int8(bits >> i & 1)
			ones += int(buf[i])
		}
		applyNetwork(buf, net)
		for i, v := range buf {
			want := int8(0)
			if i >= n-ones {
				want = 1
			}
			if v != want {
				return false
			}
		}
	}
	return true
}

// Passes4 returns the comparator schedule of the 4-element network grouped
// into its three layers of disjoint lane pairs. Each layer becomes one
// shuffle/compare/permute pass of the 4x32 vector engine.
func Passes4() []Network {
	return []Network{
		{{0, 1}, {2, 3}},
		{{0, 2}, {1, 3}},
		{{1, 2}},
	}
}

// Passes6 returns the five-layer schedule of a 12-comparator 6-element
// network whose layers all touch disjoint lane pairs. Layer 1 sorts the
// adjacent pairs, layer 2 starts the cross-half merge, layer 3 repeats
// layer 1, and layers 4-5 complete the merge. Each layer becomes one pass
// of the 6x8 vector engine.
func Passes6() []Network {
	return []Network{
		{{0, 1}, {2, 3}, {4, 5}},
		{{0, 2}, {1, 4}, {3, 5}},
		{{0, 1}, {2, 3}, {4, 5}},
		{{1, 2}, {3, 4}},
		{{2, 3}},
	}
}
