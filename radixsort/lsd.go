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

// lsdSort runs stable counting passes from the least significant digit
// upward, alternating src and dst each pass, and returns whichever buffer
// holds the result. A pass whose keys all share one digit value leaves the
// data where it is and skips the buffer swap.
func (s Sorter[T, K]) lsdSort(src, dst []T) []T {
	n := len(src)
	var table [2 * maxBuckets]int
	for offset := 0; offset < s.keyBits; offset += lsdRadixBits {
		lb := min(lsdRadixBits, s.keyBits-offset)
		size := 1 << lb
		counts := table[:2*size]
		clear(counts)
		if s.histogram(src, offset, size, counts) {
			continue
		}
		mask := K(size - 1)
		for i := 0; i < n; i++ {
			b := int((s.key(src[i]) >> offset) & mask)
			lookahead(unsafe.Pointer(&dst[counts[b]]))
			dst[counts[b]] = src[i]
			counts[b]++
		}
		src, dst = dst, src
	}
	return src
}
