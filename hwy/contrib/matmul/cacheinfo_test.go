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

import "testing"

// TestGetCacheInfoMemoizes checks that GetCacheInfo probes (or falls
// back) exactly once and returns the same value on subsequent calls:
// initialised lazily on first use, immutable thereafter.
func TestGetCacheInfoMemoizes(t *testing.T) {
	resetCacheInfoForTest()
	defer resetCacheInfoForTest()

	first := GetCacheInfo()
	second := GetCacheInfo()
	if first != second {
		t.Fatalf("GetCacheInfo not memoized: %+v != %+v", first, second)
	}
	if first.L1.Bytes == 0 {
		t.Fatalf("GetCacheInfo returned zero L1, probe and fallback both failed")
	}
}

// TestFallbackCacheInfoNeverZeroL2: the fallback table always supplies
// a non-zero L2, so callers relying on L2 != 0 never see a panic-worthy
// condition.
func TestFallbackCacheInfoNeverZeroL2(t *testing.T) {
	info := fallbackCacheInfo()
	if info.L2.Bytes == 0 {
		t.Fatal("fallback cache info has zero L2 bytes")
	}
	if info.L1.Bytes == 0 {
		t.Fatal("fallback cache info has zero L1 bytes")
	}
}

func TestCacheLevelSets(t *testing.T) {
	lvl := CacheLevel{Bytes: 32 * 1024, LineBytes: 64, Associativity: 8}
	if got, want := lvl.Sets(), 64; got != want {
		t.Errorf("Sets() = %d, want %d", got, want)
	}
	if got := (CacheLevel{}).Sets(); got != 0 {
		t.Errorf("Sets() on zero level = %d, want 0", got)
	}
}

func TestThreadingThresholdRoundTrip(t *testing.T) {
	original := currentThreadingThreshold()
	defer SetThreadingThreshold(int(original))

	SetThreadingThreshold(12345)
	if got := currentThreadingThreshold(); got != 12345 {
		t.Errorf("currentThreadingThreshold() = %d, want 12345", got)
	}
	if got := DefaultThreadingThreshold(); got != defaultThreadingThreshold {
		t.Errorf("DefaultThreadingThreshold() = %d, want %d (must ignore SetThreadingThreshold)", got, defaultThreadingThreshold)
	}
}

func TestWasmSIMD128OptIn(t *testing.T) {
	defer SetWasmSIMD128(false)

	SetWasmSIMD128(true)
	if !WasmSIMD128Enabled() {
		t.Fatal("WasmSIMD128Enabled() = false after SetWasmSIMD128(true)")
	}
	SetWasmSIMD128(false)
	if WasmSIMD128Enabled() {
		t.Fatal("WasmSIMD128Enabled() = true after SetWasmSIMD128(false)")
	}
}

func TestCurrentISAMemoizes(t *testing.T) {
	resetISAForTest()
	defer resetISAForTest()

	first := CurrentISA()
	second := CurrentISA()
	if first != second {
		t.Fatalf("CurrentISA not memoized: %v != %v", first, second)
	}
}
