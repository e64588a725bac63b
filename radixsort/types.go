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

package radixsort

import "unsafe"

// Unsigned is a constraint for unsigned integer key types.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Destination selects which buffer SortStable leaves the result in.
type Destination int

const (
	// DontCare lets the engine leave the result in whichever buffer is
	// cheapest; the returned slice says which one that was.
	DontCare Destination = iota

	// DestSource forces the result into the source buffer.
	DestSource

	// DestScratch forces the result into the scratch buffer.
	DestScratch
)

// String returns a human-readable name for the destination preference.
func (d Destination) String() string {
	switch d {
	case DontCare:
		return "dontcare"
	case DestSource:
		return "source"
	case DestScratch:
		return "scratch"
	default:
		return "unknown"
	}
}

// Mode selects the partitioning strategy for SortStable.
type Mode int

const (
	// Auto picks LSD or MSD from input size, key width and item size.
	Auto Mode = iota

	// ForceLSD always runs least-significant-digit passes.
	ForceLSD

	// ForceMSD always runs most-significant-digit recursion.
	ForceMSD
)

// String returns a human-readable name for the mode preference.
func (m Mode) String() string {
	switch m {
	case Auto:
		return "auto"
	case ForceLSD:
		return "lsd"
	case ForceMSD:
		return "msd"
	default:
		return "unknown"
	}
}

// Sorter is a radix sort engine specialized for one item type T and one
// key projection to K. The key width and item size are fixed at
// construction; a Sorter holds no mutable state and is safe to share
// across goroutines operating on independent buffer pairs.
//
// The zero value is not usable; construct with New or NewKeys.
type Sorter[T any, K Unsigned] struct {
	key      func(T) K
	keyBits  int
	itemSize uintptr
}

// New returns a Sorter for items of type T keyed by the given projection.
// The projection must be pure, total and deterministic: no side effects,
// and the same key for the same item every time it is asked.
//
// Panics if key is nil.
func New[T any, K Unsigned](key func(T) K) Sorter[T, K] {
	if key == nil {
		panic("radixsort: nil key extractor")
	}
	var k K
	var item T
	return Sorter[T, K]{
		key:      key,
		keyBits:  int(unsafe.Sizeof(k)) * 8,
		itemSize: unsafe.Sizeof(item),
	}
}

// NewKeys returns a Sorter over bare keys: the item is its own key.
func NewKeys[K Unsigned]() Sorter[K, K] {
	return New(func(k K) K { return k })
}

// overlaps reports whether two slices share any backing memory.
func overlaps[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	var item T
	size := unsafe.Sizeof(item)
	if size == 0 {
		return false
	}
	pa := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	pb := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return pa < pb+uintptr(len(b))*size && pb < pa+uintptr(len(a))*size
}
