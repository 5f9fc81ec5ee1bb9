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

func TestPlanBlocksZeroDimension(t *testing.T) {
	info := fallbackCacheInfo()
	cases := []struct {
		name       string
		m, n, k    int
		wantKc, wantMc, wantNc int
	}{
		{"m=0", 0, 8, 8, 8, 0, 8},
		{"n=0", 8, 0, 8, 8, 8, 0},
		{"k=0", 8, 8, 0, 0, 8, 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PlanBlocks(tc.m, tc.n, tc.k, 4, 8, 4, info)
			if got.Kc != tc.wantKc || got.Mc != tc.wantMc || got.Nc != tc.wantNc {
				t.Errorf("PlanBlocks(%d,%d,%d) = %+v, want (kc=%d, mc=%d, nc=%d)",
					tc.m, tc.n, tc.k, got, tc.wantKc, tc.wantMc, tc.wantNc)
			}
		})
	}
}

// TestPlanBlocksInvariants: mc%mr==0, nc%nr==0 (or nc==n), 1<=kc<=k,
// across a spread of shapes with this platform's fallback cache table.
func TestPlanBlocksInvariants(t *testing.T) {
	mr, nr := 4, 8
	sizes := []struct{ m, n, k int }{
		{1, 1, 1},
		{7, 7, 7},
		{64, 64, 64},
		{1024, 1024, 1024},
		{3, 999, 17},
	}
	infos := []CacheInfo{fallbackCacheInfo()}

	for _, info := range infos {
		for _, sz := range sizes {
			kp := PlanBlocks(sz.m, sz.n, sz.k, mr, nr, 4, info)
			if kp.Mc%mr != 0 {
				t.Errorf("PlanBlocks(%+v): mc=%d not a multiple of mr=%d", sz, kp.Mc, mr)
			}
			if kp.Nc != 0 && kp.Nc%nr != 0 && kp.Nc != sz.n {
				t.Errorf("PlanBlocks(%+v): nc=%d neither a multiple of nr=%d nor ==n", sz, kp.Nc, nr)
			}
			if kp.Kc < 1 || kp.Kc > sz.k {
				t.Errorf("PlanBlocks(%+v): kc=%d out of [1, k=%d]", sz, kp.Kc, sz.k)
			}
		}
	}
}

func TestPlanNcNoL3UsesFullN(t *testing.T) {
	info := fallbackCacheInfo()
	info.L3 = CacheLevel{}
	kp := PlanBlocks(100, 200, 300, 4, 8, 4, info)
	if kp.Nc != 0 {
		t.Errorf("planNc with absent L3: got nc=%d, want 0 (driver interprets as full n)", kp.Nc)
	}
}

// TestPlanBlocksPanicsOnUnknownL2: a zero L2 size is fatal to block
// planning; L1 merely gets clamped to its minimums.
func TestPlanBlocksPanicsOnUnknownL2(t *testing.T) {
	info := fallbackCacheInfo()
	info.L2 = CacheLevel{}

	defer func() {
		if recover() == nil {
			t.Fatal("PlanBlocks with zero L2 did not panic")
		}
	}()
	PlanBlocks(64, 64, 64, 4, 8, 8, info)
}

// TestPlanBlocksClampsTinyL1 checks that an under-reported L1 is clamped
// rather than fatal: planning with a zeroed L1 must succeed and still
// satisfy the block-size invariants.
func TestPlanBlocksClampsTinyL1(t *testing.T) {
	info := fallbackCacheInfo()
	info.L1 = CacheLevel{}

	kp := PlanBlocks(128, 128, 128, 4, 8, 8, info)
	if kp.Kc < 1 || kp.Kc > 128 {
		t.Errorf("kc=%d out of [1, 128]", kp.Kc)
	}
	if kp.Mc%4 != 0 {
		t.Errorf("mc=%d not a multiple of mr=4", kp.Mc)
	}
}

func TestGcdAndNextPowerOfTwo(t *testing.T) {
	if got := gcd(12, 18); got != 6 {
		t.Errorf("gcd(12,18) = %d, want 6", got)
	}
	if got := gcd(0, 5); got != 5 {
		t.Errorf("gcd(0,5) = %d, want 5", got)
	}
	for _, tc := range []struct{ in, want int }{
		{0, 1}, {1, 1}, {2, 2}, {3, 4}, {5, 8}, {8, 8}, {9, 16},
	} {
		if got := nextPowerOfTwo(tc.in); got != tc.want {
			t.Errorf("nextPowerOfTwo(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
