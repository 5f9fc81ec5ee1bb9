// Copyright 2025 go-highway Authors
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

package matmul

import (
	"sync"
	"sync/atomic"
)

var (
	cacheInfoOnce  sync.Once
	cacheInfoValue CacheInfo
)

// GetCacheInfo returns the process-wide cache geometry, probing the host
// CPU on first call and caching the immutable result thereafter. Probe
// failure is never fatal: any
// branch that cannot derive real numbers falls back to the static tables
// in fallbackCacheInfo.
func GetCacheInfo() CacheInfo {
	cacheInfoOnce.Do(func() {
		if info, ok := probeCacheInfo(); ok {
			cacheInfoValue = info
		} else {
			cacheInfoValue = fallbackCacheInfo()
		}
	})
	return cacheInfoValue
}

// resetCacheInfoForTest clears the memoized probe result. Test-only.
func resetCacheInfoForTest() {
	cacheInfoOnce = sync.Once{}
	cacheInfoValue = CacheInfo{}
}

// defaultThreadingThreshold is an empirical order-of-magnitude guess, not
// derived from first principles; re-measure on the target fleet before
// tuning it further.
const defaultThreadingThreshold = 100_000

var threadingThreshold atomic.Int64

func init() {
	threadingThreshold.Store(defaultThreadingThreshold)
}

// SetThreadingThreshold updates the process-wide minimum m*n*k below
// which the driver always runs serially, regardless of the requested
// Parallelism.
func SetThreadingThreshold(u int) {
	threadingThreshold.Store(int64(u))
}

// DefaultThreadingThreshold reports the built-in default, ignoring any
// call to SetThreadingThreshold.
func DefaultThreadingThreshold() int {
	return defaultThreadingThreshold
}

func currentThreadingThreshold() int64 {
	return threadingThreshold.Load()
}

var wasmSIMD128 atomic.Bool

// SetWasmSIMD128 records the WASM SIMD128 opt-in flag, which
// WasmSIMD128Enabled reports. No code path in this package reads the
// flag, on any target.
func SetWasmSIMD128(enabled bool) {
	wasmSIMD128.Store(enabled)
}

// WasmSIMD128Enabled reports the current opt-in state.
func WasmSIMD128Enabled() bool {
	return wasmSIMD128.Load()
}
