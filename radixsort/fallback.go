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

const (
	// insertionThreshold: insertion sort for partitions this size or
	// smaller. Empirically chosen.
	insertionThreshold = 18

	// maxFallback is the largest partition the MSD engines hand to the
	// fallback sorter (the recursion threshold at the widest digit).
	maxFallback = 256
)

// fallbackSort stable-sorts src into the buffer named by dest (0 = src,
// 1 = tmp) and returns that buffer. Out-of-place merge sort; each
// recursion level inverts dest so the halves land in the other buffer and
// the merge reads them back from there.
func (s Sorter[T, K]) fallbackSort(src, tmp []T, dest int) []T {
	n := len(src)
	d := src
	if dest != 0 {
		d = tmp
	}
	if n <= insertionThreshold {
		if n > 0 {
			d[0] = src[0]
		}
		for i := 1; i < n; i++ {
			item := src[i]
			k := s.key(item)
			j := i
			for ; j > 0 && k < s.key(d[j-1]); j-- {
				d[j] = d[j-1]
			}
			d[j] = item
		}
		return d
	}

	a := n / 2
	s.fallbackSort(src[:a], tmp[:a], dest^1)
	s.fallbackSort(src[a:], tmp[a:], dest^1)

	from := tmp
	if dest != 0 {
		from = src
	}
	l, r := from[:a], from[a:]
	i, j, k := 0, 0, 0
	for {
		// Take left on ties to keep the merge stable.
		if s.key(r[j]) < s.key(l[i]) {
			d[k] = r[j]
			k++
			j++
			if j == len(r) {
				break
			}
		} else {
			d[k] = l[i]
			k++
			i++
			if i == len(l) {
				break
			}
		}
	}
	if i == len(l) {
		copy(d[k:], r[j:])
	} else {
		copy(d[k:], l[i:])
	}
	return d
}

// fallbackInPlace stable-sorts a small partition in place, routing the
// merge levels through a fixed-capacity stack scratch buffer. Kept out of
// the MSD recursion frames so they stay slim.
func (s Sorter[T, K]) fallbackInPlace(data []T) {
	var scratch [maxFallback]T
	s.fallbackSort(data, scratch[:len(data)], 0)
}
