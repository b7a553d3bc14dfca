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

package lane

// This file provides pure Go (scalar) implementations of the portable
// operations. They serve as the fallback tier and the semantic reference
// for any architecture-specific implementation installed via dispatch.

// Load creates a vector by loading data from a slice.
// If the slice is shorter than a full vector, only the available lanes
// are populated.
func Load[T Signed](src []T) Vec[T] {
	n := min(len(src), MaxLanes[T]())
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// LoadFull creates a full-width vector from a slice, zero-padding any
// lanes beyond len(src). The padding lanes carry no meaning; callers must
// not read them back.
func LoadFull[T Signed](src []T) Vec[T] {
	lanes := MaxLanes[T]()
	data := make([]T, lanes)
	copy(data, src)
	return Vec[T]{data: data}
}

// Store writes a vector's data to a slice.
func Store[T Signed](v Vec[T], dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Signed](value T) Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Signed]() Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	return Vec[T]{data: data}
}

// Iota creates a vector with lane i set to i.
func Iota[T Signed]() Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	for i := range data {
		data[i] = T(i)
	}
	return Vec[T]{data: data}
}

// Add performs element-wise addition.
func Add[T Signed](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] + b.data[i]
	}
	return Vec[T]{data: result}
}

// And performs element-wise bitwise AND.
func And[T Signed](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = a.data[i] & b.data[i]
	}
	return Vec[T]{data: result}
}

// Min returns the element-wise minimum of two vectors.
func Min[T Signed](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = min(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// Max returns the element-wise maximum of two vectors.
func Max[T Signed](a, b Vec[T]) Vec[T] {
	n := min(len(b.data), len(a.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = max(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

// Equal compares lanes for equality.
func Equal[T Signed](a, b Vec[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.data[i] == b.data[i]
	}
	return Mask[T]{bits: bits}
}

// LessThan returns a mask with lane i active when a[i] < b[i].
// Comparisons are signed at the lane width.
func LessThan[T Signed](a, b Vec[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.data[i] < b.data[i]
	}
	return Mask[T]{bits: bits}
}

// GreaterThan returns a mask with lane i active when a[i] > b[i].
// Comparisons are signed at the lane width.
func GreaterThan[T Signed](a, b Vec[T]) Mask[T] {
	n := min(len(b.data), len(a.data))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.data[i] > b.data[i]
	}
	return Mask[T]{bits: bits}
}

// IfThenElse returns a where mask is true, b otherwise.
func IfThenElse[T Signed](mask Mask[T], a, b Vec[T]) Vec[T] {
	n := min(len(b.data), min(len(a.data), len(mask.bits)))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		if mask.bits[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

// IfThenElseZero returns a where mask is true, zero otherwise.
// Equivalent to IfThenElse(mask, a, Zero()) but more efficient.
func IfThenElseZero[T Signed](mask Mask[T], a Vec[T]) Vec[T] {
	n := min(len(a.data), len(mask.bits))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		if mask.bits[i] {
			result[i] = a.data[i]
		}
		// else: leave as zero value
	}
	return Vec[T]{data: result}
}

// VecFromMask materializes a mask as lanes of all-ones (-1) where active
// and all-zeros where inactive. This is the arithmetic form produced by
// hardware compare instructions, and is what branch-free selection logic
// builds on.
func VecFromMask[T Signed](mask Mask[T]) Vec[T] {
	result := make([]T, len(mask.bits))
	for i := range result {
		if mask.bits[i] {
			result[i] = -1
		}
	}
	return Vec[T]{data: result}
}

// FindFirstTrue returns the index of the first active lane, or -1 if the
// mask is empty.
func FindFirstTrue[T Signed](mask Mask[T]) int {
	for i, bit := range mask.bits {
		if bit {
			return i
		}
	}
	return -1
}
