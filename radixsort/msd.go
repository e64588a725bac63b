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

// msdSort stable-sorts src by its width low bits in digits of bits,
// leaving the result in the buffer named by dest (0 = src, 1 = dst) and
// returning that buffer. One counting pass partitions on the most
// significant remaining digit; each bucket then recurses on the bits
// below it with the buffer roles flipped, since the scatter moved the
// data into the other buffer. Partitions below threshold go to the
// fallback sorter.
func (s Sorter[T, K]) msdSort(src, dst []T, width, bits, threshold, dest int) []T {
	n := len(src)
	if n < threshold {
		return s.fallbackSort(src, dst, dest)
	}
	lb := min(bits, width)
	size := 1 << lb
	offset := width - lb

	var table [2 * maxBuckets]int
	counts := table[:2*size]
	if s.histogram(src, offset, size, counts) {
		// Everything is in one bucket: swap the buffer roles instead of
		// scattering, so the rest of the pass sees the data in dst. The
		// scatter normally advances counts from start to end offsets;
		// shift the starts over when it is skipped, or the bucket loop
		// below would segment on the wrong boundaries.
		copy(counts[:size-1], counts[1:size])
		counts[size-1] = n
		src, dst = dst, src
		dest ^= 1
	} else {
		mask := K(size - 1)
		for i := 0; i < n; i++ {
			b := int((s.key(src[i]) >> offset) & mask)
			lookahead(unsafe.Pointer(&dst[counts[b]]))
			dst[counts[b]] = src[i]
			counts[b]++
		}
	}

	out := src
	if dest == 1 {
		out = dst
	}
	if offset > 0 {
		b := 0
		for j := 0; j < size; j++ {
			e := counts[j]
			switch e - b {
			case 0:
			case 1:
				out[b] = dst[b]
			case 2:
				lo, hi := dst[b], dst[b+1]
				if s.key(hi) < s.key(lo) {
					lo, hi = hi, lo
				}
				out[b], out[b+1] = lo, hi
			default:
				s.msdSort(dst[b:e], src[b:e], offset, bits, threshold, dest^1)
			}
			b = e
		}
	} else if dest == 0 {
		// No bits left to recurse on; honor the destination by copying.
		copy(src, dst[:n])
	}
	return out
}
