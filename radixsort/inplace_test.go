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

import (
	"cmp"
	"math"
	"math/rand"
	"slices"
	"testing"
)

// checkSortedPermutation asserts got is non-decreasing by key and a
// permutation of input. It must not assume anything about the order of
// equal keys: the in-place sort is unstable.
func checkSortedPermutation(t *testing.T, got, input []pair) {
	t.Helper()
	for i := 1; i < len(got); i++ {
		if got[i].key < got[i-1].key {
			t.Fatalf("not sorted at index %d: %d after %d", i, got[i].key, got[i-1].key)
		}
	}
	byBoth := func(a, b pair) int {
		if c := cmp.Compare(a.key, b.key); c != 0 {
			return c
		}
		return cmp.Compare(a.index, b.index)
	}
	a := slices.Clone(got)
	b := slices.Clone(input)
	slices.SortFunc(a, byBoth)
	slices.SortFunc(b, byBoth)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("output is not a permutation of input (first diff at %d: %v vs %v)",
				i, a[i], b[i])
		}
	}
}

func TestSortInPlaceEmpty(t *testing.T) {
	s := pairSorter()
	var empty []pair
	s.SortInPlace(empty)
	if len(empty) != 0 {
		t.Error("SortInPlace modified an empty slice")
	}
}

func TestSortInPlaceSingle(t *testing.T) {
	s := pairSorter()
	data := []pair{{key: 42}}
	s.SortInPlace(data)
	if data[0].key != 42 {
		t.Errorf("SortInPlace(single) = %v, want key 42", data)
	}
}

// TestSortInPlaceSizes sweeps boundary sizes around both fallback
// thresholds and through both digit-width bands.
func TestSortInPlaceSizes(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	sizes := []int{0, 1, 2, 17, 18, 19, 100, 127, 128, 129, 255, 256, 257, 1000, 5000, 70000, 100000}
	for _, n := range sizes {
		input := randomPairs(rng, n, 1000)
		data := slices.Clone(input)
		s := pairSorter()
		s.SortInPlace(data)
		checkSortedPermutation(t, data, input)
	}
}

func TestSortInPlaceUniformKeys(t *testing.T) {
	for _, n := range []int{5, 128, 10000} {
		input := make([]pair, n)
		for i := range input {
			input[i] = pair{key: 7, index: uint32(i)}
		}
		data := slices.Clone(input)
		s := pairSorter()
		s.SortInPlace(data)
		checkSortedPermutation(t, data, input)
	}
}

// TestSortInPlaceTopBucketKeys drives the all-in-last-bucket degenerate
// pass through the in-place engine at both digit widths.
func TestSortInPlaceTopBucketKeys(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	cases := []struct {
		n        int
		high     uint32
		lowRange int
	}{
		{200, 0xFF000000, 1 << 24},  // 8-bit digits
		{5000, 0xFFE00000, 1 << 21}, // 11-bit digits
	}
	for _, tc := range cases {
		input := make([]pair, tc.n)
		for i := range input {
			input[i] = pair{key: tc.high | uint32(rng.Intn(tc.lowRange)), index: uint32(i)}
		}
		data := slices.Clone(input)
		pairSorter().SortInPlace(data)
		checkSortedPermutation(t, data, input)
	}
}

func TestSortInPlaceEdgeCases(t *testing.T) {
	tests := []struct {
		name string
		keys []uint32
	}{
		{"all_zeros", []uint32{0, 0, 0, 0, 0}},
		{"min_max", []uint32{math.MaxUint32, 0, math.MaxUint32, 1, 0}},
		{"sorted", []uint32{1, 2, 3, 4, 5}},
		{"reverse", []uint32{5, 4, 3, 2, 1}},
		{"duplicates", []uint32{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}},
		{"two_swapped", []uint32{2, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := slices.Clone(tt.keys)
			want := slices.Clone(tt.keys)
			slices.Sort(want)
			NewKeys[uint32]().SortInPlace(data)
			if !slices.Equal(data, want) {
				t.Errorf("SortInPlace(%s) = %v, want %v", tt.name, data, want)
			}
		})
	}
}

func TestSortInPlaceWideKeys(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, n := range []int{1000, 50000} {
		data := make([]uint64, n)
		for i := range data {
			data[i] = rng.Uint64()
		}
		want := slices.Clone(data)
		slices.Sort(want)
		NewKeys[uint64]().SortInPlace(data)
		if !slices.Equal(data, want) {
			t.Errorf("SortInPlace(uint64, n=%d) produced wrong order", n)
		}
	}
}

// TestSortInPlaceMatchesStdlib cross-checks raw keys against slices.Sort.
func TestSortInPlaceMatchesStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	for _, n := range []int{100, 1000, 10000, 100000} {
		data := make([]uint32, n)
		for i := range data {
			data[i] = rng.Uint32()
		}
		want := slices.Clone(data)
		slices.Sort(want)
		NewKeys[uint32]().SortInPlace(data)
		if !slices.Equal(data, want) {
			t.Errorf("SortInPlace(n=%d) diverged from slices.Sort", n)
		}
	}
}
