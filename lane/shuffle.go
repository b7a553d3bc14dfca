package lane

// This file provides shuffle and permutation operations for vectors.
// These are the pure Go (scalar) implementations; architecture-specific
// builds map them onto single shuffle/permute instructions.

// Reverse reverses the order of lanes in the vector.
func Reverse[T Signed](v Vec[T]) Vec[T] {
	n := len(v.data)
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = v.data[n-1-i]
	}
	return Vec[T]{data: result}
}

// Broadcast broadcasts a single lane to all lanes in the vector.
func Broadcast[T Signed](v Vec[T], lane int) Vec[T] {
	n := len(v.data)
	if lane < 0 || lane >= n {
		return Zero[T]()
	}
	result := make([]T, n)
	value := v.data[lane]
	for i := range result {
		result[i] = value
	}
	return Vec[T]{data: result}
}

// GetLane extracts a single lane value from the vector.
// Returns zero value if index is out of bounds.
func GetLane[T Signed](v Vec[T], idx int) T {
	if idx < 0 || idx >= len(v.data) {
		var zero T
		return zero
	}
	return v.data[idx]
}

// InsertLane returns a new vector with the value inserted at the given lane.
// Returns the original vector if index is out of bounds.
func InsertLane[T Signed](v Vec[T], idx int, val T) Vec[T] {
	n := len(v.data)
	if idx < 0 || idx >= n {
		return v
	}
	result := make([]T, n)
	copy(result, v.data)
	result[idx] = val
	return Vec[T]{data: result}
}

// TableLookupBytes performs a byte-granularity table lookup: output lane i
// receives tbl[idx[i]]. Out-of-range indices produce zero lanes, matching
// the hardware byte-shuffle convention for negative selectors.
func TableLookupBytes[T Signed](tbl, idx Vec[T]) Vec[T] {
	n := min(len(tbl.data), len(idx.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		idxVal := int(idx.data[i])
		if idxVal >= 0 && idxVal < len(tbl.data) {
			result[i] = tbl.data[idxVal]
		}
		// else: leave as zero
	}
	return Vec[T]{data: result}
}

// TableLookupLanes performs a lane-level table lookup.
// Each lane in idx specifies which lane from tbl to select. Unlike
// TableLookupBytes which works at byte granularity, this operates on full
// lanes (elements).
func TableLookupLanes[T Signed](tbl Vec[T], idx Vec[int32]) Vec[T] {
	n := min(len(tbl.data), len(idx.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		idxVal := int(idx.data[i])
		if idxVal >= 0 && idxVal < len(tbl.data) {
			result[i] = tbl.data[idxVal]
		}
		// else: leave as zero
	}
	return Vec[T]{data: result}
}
