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
	"os"
	"strconv"
	"unsafe"
)

// prefetchEnabled reports whether scatter loops issue the destination
// write lookahead hint. Set by init() in dispatch_*.go files.
var prefetchEnabled bool

// PrefetchEnabled returns whether the scatter loops issue a cache
// prefetch hint for destination writes on this platform.
func PrefetchEnabled() bool {
	return prefetchEnabled
}

// NoPrefetchEnv checks if the RADIXSORT_NO_PREFETCH environment variable
// is set. When set, scatter loops skip the prefetch hint regardless of
// platform. This is useful for testing and benchmarking the bare loops.
func NoPrefetchEnv() bool {
	val := os.Getenv("RADIXSORT_NO_PREFETCH")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// lookahead hints the CPU about an upcoming write to p. Advisory only:
// it never affects results and compiles to nothing where unsupported.
func lookahead(p unsafe.Pointer) {
	if prefetchEnabled {
		prefetch(p)
	}
}
