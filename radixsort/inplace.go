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

// msdSortInPlace sorts data by its width low bits in digits of bits
// without a second buffer. Not stable. Items are relocated by following
// displacement chains: swap the out-of-place item into its bucket's next
// free slot, then chase whatever that displaced until the chain closes in
// the bucket being scanned. Each bucket keeps two cursors, next-to-place
// and end, so closed cycles are never reprocessed.
func (s Sorter[T, K]) msdSortInPlace(data []T, width, bits, threshold int) {
	n := len(data)
	if n < threshold {
		s.fallbackInPlace(data)
		return
	}
	lb := min(bits, width)
	size := 1 << lb
	offset := width - lb
	mask := K(size - 1)

	var table [2 * maxBuckets]int
	counts := table[:2*size]
	degenerate := s.histogram(data, offset, size, counts)

	// The fold left bucket starts in counts[:size]; the upper half is free
	// again, so the end boundaries go there.
	cur := counts[:size]
	end := counts[size : 2*size]
	for j := 0; j < size-1; j++ {
		end[j] = cur[j+1]
	}
	end[size-1] = n

	if !degenerate {
		for j := 0; j < size; j++ {
			for cur[j] != end[j] {
				k := cur[j]
				h := int((s.key(data[k]) >> offset) & mask)
				for h != j {
					item := data[cur[h]]
					lookahead(unsafe.Pointer(&data[cur[h]]))
					data[cur[h]] = data[k]
					data[k] = item
					cur[h]++
					h = int((s.key(item) >> offset) & mask)
				}
				cur[j]++
			}
		}
	}

	if offset > 0 {
		b := 0
		for j := 0; j < size; j++ {
			e := end[j]
			switch e - b {
			case 0, 1:
			case 2:
				if s.key(data[b+1]) < s.key(data[b]) {
					data[b], data[b+1] = data[b+1], data[b]
				}
			default:
				s.msdSortInPlace(data[b:e], offset, bits, threshold)
			}
			b = e
		}
	}
}
