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

// Strategy thresholds. Empirically chosen; MSD is generally faster for
// small inputs, wide keys, and fat items on large inputs.
const (
	// msdSizeThreshold: below this, MSD beats LSD regardless of key width.
	msdSizeThreshold = 1500

	// msdKeyBitsThreshold: above this key width, MSD is preferred.
	msdKeyBitsThreshold = 40

	// msdItemBudget, divided by the item size in bytes, bounds the input
	// size past which fat items tip the balance to MSD.
	msdItemBudget = 10_000_000
)

// wideDigit reports whether n falls in one of the bands where an 11-bit
// digit rebalances histogram overhead against recursion depth better than
// the default 8 bits.
func wideDigit(n int) bool {
	return (n > 4000 && n < 60000) || (n > 2_000_000 && n < 9_000_000)
}

// SortStable sorts src ascending by key, stably: items with equal keys
// keep their relative input order. scratch must be at least len(src) long
// and must not overlap src; both are borrowed only for the duration of
// the call. The result lands in the buffer named by dest (DontCare lets
// the engine skip a final copy) and the returned slice is that buffer,
// truncated to len(src).
//
// mode selects the strategy; Auto decides from input size, key width and
// item size.
//
// Panics if scratch is shorter than src or overlaps it: both are caller
// contract violations, not runtime conditions.
func (s Sorter[T, K]) SortStable(src, scratch []T, dest Destination, mode Mode) []T {
	n := len(src)
	if len(scratch) < n {
		panic("radixsort: scratch buffer shorter than source")
	}
	scratch = scratch[:n]
	if overlaps(src, scratch) {
		panic("radixsort: source and scratch buffers overlap")
	}
	if n <= 1 {
		if dest == DestScratch {
			copy(scratch, src)
			return scratch
		}
		return src
	}

	d := -1
	switch dest {
	case DestSource:
		d = 0
	case DestScratch:
		d = 1
	}

	if mode != ForceLSD && (mode == ForceMSD ||
		n < msdSizeThreshold ||
		s.keyBits > msdKeyBitsThreshold ||
		(s.itemSize*8 > 64 && n > msdItemBudget/int(s.itemSize))) {
		bits, threshold := 8, 128
		if wideDigit(n) {
			bits, threshold = maxRadixBits, maxFallback
		}
		if d != 1 {
			d = 0
		}
		return s.msdSort(src, scratch, s.keyBits, bits, threshold, d)
	}

	out := s.lsdSort(src, scratch)
	if d == 0 && unsafe.SliceData(out) != unsafe.SliceData(src) {
		copy(src, out)
		return src
	}
	if d == 1 && unsafe.SliceData(out) != unsafe.SliceData(scratch) {
		copy(scratch, out)
		return scratch
	}
	return out
}

// SortInPlace sorts data ascending by key without a second buffer. The
// order among items with equal keys is unspecified.
func (s Sorter[T, K]) SortInPlace(data []T) {
	n := len(data)
	if n <= 1 {
		return
	}
	bits, threshold := 8, 128
	if wideDigit(n) {
		bits, threshold = maxRadixBits, maxFallback
	}
	s.msdSortInPlace(data, s.keyBits, bits, threshold)
}
