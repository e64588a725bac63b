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

// Digit-width limits for the counting pass.
const (
	// lsdRadixBits is the digit width for LSD passes.
	lsdRadixBits = 8

	// maxRadixBits is the widest digit the dispatcher ever picks.
	maxRadixBits = 11

	// maxBuckets is the bucket count at the widest digit.
	maxBuckets = 1 << maxRadixBits
)

// histogram tallies the digit distribution of src for the size-bucket
// window starting at bit offset, then folds the tallies into exclusive
// prefix-sum bucket offsets in counts[:size].
//
// counts must be zeroed and have length 2*size: tallies go to interleaved
// even/odd slots, two items per iteration, so back-to-back increments of
// the same bucket hit different counters instead of stalling on a
// store-then-load of the one just written.
//
// Returns true if a single bucket holds all of src, in which case the
// caller can skip scattering: the data is already in digit order.
func (s Sorter[T, K]) histogram(src []T, offset, size int, counts []int) bool {
	n := len(src)
	mask := K(size - 1)
	for i, m := 0, n/2; i < m; i++ {
		b0 := int((s.key(src[2*i]) >> offset) & mask)
		b1 := int((s.key(src[2*i+1]) >> offset) & mask)
		counts[2*b0]++
		counts[2*b1+1]++
	}
	if n&1 != 0 {
		counts[2*int((s.key(src[n-1])>>offset)&mask)]++
	}

	// Fold even/odd pairs into exclusive prefix sums. Reads stay ahead of
	// writes (2j >= j), so folding in place is safe.
	degenerate := false
	sum := 0
	for j := 0; j < size; j++ {
		c := counts[2*j] + counts[2*j+1]
		if c == n {
			degenerate = true
		}
		counts[j] = sum
		sum += c
	}
	return degenerate
}
