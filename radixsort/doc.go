// Copyright 2025 go-radixsort Authors
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

// Package radixsort provides an adaptive hybrid radix sort for contiguous
// slices of fixed-size items ordered by an unsigned integer key.
//
// A Sorter is specialized at construction for one item type and one key
// projection. It exposes two operations:
//   - SortStable: stable sort using a caller-supplied scratch buffer,
//     with control over which buffer receives the result.
//   - SortInPlace: unstable in-place sort with no second buffer.
//
// # Algorithm
//
// SortStable picks between two strategies based on input size, key width
// and item size (overridable with Mode):
//   - LSD radix sort: counting passes from the least significant digit
//     upward, ping-ponging between the two buffers. Preferred for large
//     inputs with narrow keys.
//   - MSD radix sort: one counting pass on the most significant remaining
//     digit, then independent recursion into each bucket. Preferred for
//     small inputs, wide keys, and fat items. Small partitions fall back
//     to a merge sort that bottoms out in insertion sort.
//
// SortInPlace always runs MSD partitioning, relocating items with
// cycle-following swaps instead of scattering into a second buffer.
//
// Neither operation allocates: all working state is O(2^digitWidth) words
// of per-call stack. Passes that find every key in a single bucket skip
// the scatter entirely.
//
// # Keys
//
// The key extractor must be a pure, total projection to an unsigned
// integer; items are ordered by ascending key value. Signed integers and
// IEEE-754 floats need a bit transform to order correctly under unsigned
// comparison; use KeyFromInt32, KeyFromInt64, KeyFromFloat32 and
// KeyFromFloat64. Returning the bitwise NOT of a key sorts descending.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-radixsort/radixsort"
//
//	type entry struct {
//	    Key   uint32
//	    Index uint32 // handle into out-of-band payload
//	}
//
//	func SortEntries(data, scratch []entry) []entry {
//	    s := radixsort.New(func(e entry) uint32 { return e.Key })
//	    return s.SortStable(data, scratch, radixsort.DontCare, radixsort.Auto)
//	}
//
// For fat items, store a compact handle in the sorted slice and keep the
// payload elsewhere; sorting bare keys works as well (see NewKeys).
//
// # Performance
//
// For 32-bit keys the stable sort typically beats comparison sorts by a
// wide margin on large inputs; the in-place variant catches up as keys
// and items grow. Sequential key patterns (0..n-1) degrade the LSD path
// through cache aliasing of power-of-two buckets; forcing MSD helps there.
// Scatter loops issue a prefetch hint for the destination write address on
// amd64 and arm64; set RADIXSORT_NO_PREFETCH=1 to disable it.
package radixsort
