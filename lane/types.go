// Package lane provides portable fixed-width SIMD primitives for
// signed-integer lanes, with runtime CPU dispatch.
//
// It follows the Highway design philosophy: write once against portable
// vector handles, run optimally everywhere. The pure Go implementations in
// this package are the base tier; architecture-specific builds may install
// specialized implementations through the dispatch layer.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-netsort/lane"
//
//	a := lane.Load(data)
//	b := lane.TableLookupLanes(a, idx)
//	lane.Store(b, data)
package lane

// Signed is a constraint for the signed integer types that can occupy
// vector lanes.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Vec is a portable vector handle. In base (scalar) mode it wraps a slice;
// architecture-specific builds may keep the data in register-shaped state.
//
// Vec instances should not be created directly; use Load, Set, Zero, or
// Iota instead.
type Vec[T Signed] struct {
	// data holds the vector elements in base mode.
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in
// performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's data to a slice.
// This is the method form of the lane.Store function.
func (v Vec[T]) Store(dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Mask represents the result of a per-lane comparison.
// It can be used with IfThenElse and VecFromMask to perform conditional
// operations without data-dependent control flow.
//
// Mask instances should not be created directly; use comparison operations
// like Equal, LessThan, or GreaterThan instead.
type Mask[T Signed] struct {
	// bits stores which lanes are active (true).
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}
