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

import "math"

// Key projections for types whose natural order does not survive a plain
// unsigned bit cast. Precomputing keys into the sorted items is faster
// than projecting inside the extractor on every pass.

// KeyFromInt32 maps a signed 32-bit value to an unsigned key that sorts
// in the same order: shift the range up by 2^31, which flips the sign
// bit.
func KeyFromInt32(x int32) uint32 {
	return uint32(x) - (1 << 31)
}

// KeyFromInt64 is KeyFromInt32 for 64-bit values.
func KeyFromInt64(x int64) uint64 {
	return uint64(x) - (1 << 63)
}

// KeyFromFloat32 maps an IEEE-754 binary32 value to an unsigned key that
// sorts in numeric order: flip the sign bit of non-negative values and
// all bits of negative ones, then rotate the range down by the full
// mantissa so that every NaN bit pattern lands above +Inf. -0 orders
// just below +0.
func KeyFromFloat32(x float32) uint32 {
	b := math.Float32bits(x)
	b ^= uint32(int32(b)>>31) | 1<<31
	return b - (1<<23 - 1)
}

// KeyFromFloat64 is KeyFromFloat32 for binary64, with the NaN offset
// scaled to the 52-bit mantissa.
func KeyFromFloat64(x float64) uint64 {
	b := math.Float64bits(x)
	b ^= uint64(int64(b)>>63) | 1<<63
	return b - (1<<52 - 1)
}
