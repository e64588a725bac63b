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

//go:build arm64

package radixsort

import "unsafe"

// prefetch pulls the cache line one line past p toward L1 with
// PRFM PLDL1KEEP. The instruction tolerates addresses past the end of
// the buffer. Implemented in prefetch_arm64.s.
//
//go:noescape
func prefetch(p unsafe.Pointer)
