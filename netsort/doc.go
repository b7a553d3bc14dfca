// Package netsort sorts small fixed-length integer arrays using sorting
// networks, with no data-dependent branches.
//
// General comparison sorts cannot amortize their overhead on arrays of two
// to six elements; a sorting network, being a fixed input-independent
// comparator sequence, can. This package provides two engines over the
// same networks:
//
//   - A scalar engine (Sort2 through Sort6, SortSlice) that applies each
//     comparator as a branch-free min/max pair. It works for any signed
//     integer element type and compiles to conditional moves.
//
//   - Vector engines (Sort4x32, Sort6x8) that collapse the network into a
//     constant number of whole-vector passes. Each pass shuffles every
//     lane's comparison partner into place, performs one per-lane signed
//     greater-than compare, turns the compare mask into a permutation
//     index vector with a masked add, and applies it with a single
//     lane gather. Three passes sort 4 int32 lanes; five passes sort
//     6 int8 lanes.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-netsort/netsort"
//
//	v := [4]int32{4, 3, 2, 1}
//	netsort.Sort4x32(&v) // v is now [1, 2, 3, 4]
//
//	b := [6]int8{3, 1, 4, 1, 5, 9}
//	netsort.Sort6x8(&b) // b is now [1, 1, 3, 4, 5, 9]
//
// The fixed-size entry points take array pointers so that a length
// mismatch is a compile error rather than a runtime check.
//
// # Correctness
//
// Every network is validated against the zero-one principle: a network
// that sorts all 2^n boolean sequences sorts every totally ordered input.
// The vector pass constants are derived mechanically from the comparator
// schedules (see DerivePass) and the test suite exercises all n!
// permutations per engine, duplicate values, and lane-width extremes.
package netsort
