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
	"github.com/samber/lo"
)

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}

func roundDownToMultiple(x, m int) int {
	if m <= 0 {
		return x
	}
	return (x / m) * m
}

// PlanBlocks derives (kc, mc, nc) from the matrix dimensions, the
// microkernel's register-blocking factors and the process cache
// geometry. It returns (k, m, n) unchanged when any dimension is zero.
//
// L1 geometry is clamped to sane minimums (32 KiB, 64-byte lines, 2-way)
// before use, so a probe that under-reports L1 degrades gracefully. An
// unknown L2, by contrast, is fatal: mc cannot be derived without it,
// and once a probe has affirmatively reported the size as zero there is
// no value that is safe to guess. The fallback table always carries a
// non-zero L2, so the panic is unreachable through GetCacheInfo; it
// fires only when a probe reports a disabled L2 or a caller hands in a
// zero-valued CacheInfo.
func PlanBlocks(m, n, k, mr, nr, sizeofT int, info CacheInfo) KernelParams {
	if m == 0 || n == 0 || k == 0 {
		return KernelParams{Kc: k, Mc: m, Nc: n}
	}

	l1Bytes := lo.Max([]int{info.L1.Bytes, 32 * 1024})
	l1Line := lo.Max([]int{info.L1.LineBytes, 64})
	l1Assoc := lo.Max([]int{info.L1.Associativity, 2})
	l2Assoc := lo.Max([]int{info.L2.Associativity, 2})
	l3Assoc := lo.Max([]int{info.L3.Associativity, 2})

	kc := planKc(k, mr, nr, sizeofT, l1Bytes, l1Line, l1Assoc)
	if info.L2.Bytes == 0 {
		panic("matmul: L2 cache size unknown")
	}
	mc := planMc(m, kc, mr, nr, sizeofT, info.L2.Bytes, l2Assoc, info.L2.SmallMcHint)
	nc := planNc(n, kc, nr, sizeofT, info.L3.Bytes, l3Assoc)

	return KernelParams{Kc: kc, Mc: mc, Nc: nc}
}

// planKc derives kc so that an mr x kc A-micropanel occupies distinct
// L1 sets from its predecessor while it is reused across the nr columns
// of the B-micropanel: mr*kc*sizeof must be a multiple of the set
// stride (line bytes times set count), and the set-way counts of the A
// and B micropanels together must fit the L1 associativity.
func planKc(k, mr, nr, sizeofT, l1Bytes, l1Line, l1Assoc int) int {
	l1Sets := l1Bytes / (l1Line * l1Assoc)
	setStride := l1Line * l1Sets

	g := gcd(mr*sizeofT, setStride)
	kc0 := setStride / g
	cLHS := (mr * sizeofT) / g
	cRHS := (nr * kc0 * sizeofT) / setStride
	multiplier := l1Assoc / (cLHS + cRHS)

	raw := kc0 * nextPowerOfTwo(multiplier)

	lowerBound := 512
	if k < lowerBound {
		lowerBound = k
	}
	kc := lo.Clamp(raw, lowerBound, k)

	kIter := ceilDiv(k, kc)
	return ceilDiv(k, kIter)
}

// planMc derives mc by reserving L2 associativity for a full
// B-micropanel (nr*kc*sizeof) and giving A the remainder minus one way.
// smallMc halves A's share and adds one way back, which measures faster
// on the CPUs whose probe sets the hint.
func planMc(m, kc, mr, nr, sizeofT, l2Bytes, l2Assoc int, smallMc bool) int {
	rhsBytes := nr * kc * sizeofT
	rhsAssoc := ceilDiv(rhsBytes, l2Bytes/l2Assoc)

	lhsAssoc := lo.Max([]int{1, l2Assoc - 1 - rhsAssoc})
	if smallMc {
		lhsAssoc = lhsAssoc/2 + 1
	}

	mcRaw := (lhsAssoc * l2Bytes) / (l2Assoc * sizeofT * kc)
	mcRaw = roundDownToMultiple(mcRaw, mr)
	if mcRaw < mr {
		mcRaw = mr
	}

	mIter := ceilDiv(m, mcRaw)
	return ceilDiv(m, mIter*mr) * mr
}

// planNc derives nc from the remaining L3 associativity, leaving one
// way for the resident A macropanel. nc=0 signals "L3 unavailable"; the
// driver treats that as "use the full n".
func planNc(n, kc, nr, sizeofT, l3Bytes, l3Assoc int) int {
	if l3Bytes == 0 {
		return 0
	}
	rhsBytesMax := ((l3Assoc - 1) * l3Bytes) / l3Assoc

	ncRaw := roundDownToMultiple(rhsBytesMax/(sizeofT*kc), nr)
	if ncRaw < nr {
		ncRaw = nr
	}

	nIter := ceilDiv(n, ncRaw)
	return ceilDiv(n, nIter*nr) * nr
}
