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
	"unsafe"

	"github.com/gemmkit/gemmkit/hwy"
)

// blockStarts returns the starting offsets of total split into blocks of
// at most block elements each (block <= 0 yields a single block).
func blockStarts(total, block int) []int {
	if block <= 0 || block >= total {
		return []int{0}
	}
	starts := make([]int, 0, (total+block-1)/block)
	for s := 0; s < total; s += block {
		starts = append(starts, s)
	}
	return starts
}

// gebp performs one GEneral-Block-Panel multiply: it drives the two
// innermost blocking loops (jr over nr-wide micro-panel columns, ir over
// mr-tall micro-panel rows), invoking Microkernel once per tile
// and directly applying alpha/beta/readC against the strided c view
// through the full alpha/beta fusion state machine.
func gebp[T hwy.Floats](
	packedA, packedB []T,
	c View[T],
	mr, nr int,
	icStart, jcStart, panelRows, panelCols, panelK int,
	activeRowsLast, activeColsLast int,
	alpha, beta T,
	readC bool,
) {
	numA := (panelRows + mr - 1) / mr
	numB := (panelCols + nr - 1) / nr

	for jp := 0; jp < numB; jp++ {
		jr := jcStart + jp*nr
		bOff := jp * panelK * nr
		cols := nr
		if jp == numB-1 {
			cols = activeColsLast
		}

		for ip := 0; ip < numA; ip++ {
			ir := icStart + ip*mr
			aOff := ip * panelK * mr
			rows := mr
			if ip == numA-1 {
				rows = activeRowsLast
			}

			Microkernel(packedA[aOff:], packedB[bOff:], panelK, mr, nr, rows, cols, c, ir, jr, alpha, beta, readC)
		}
	}
}

// processJCColumn drives loop 4 (pc, over k by kc) and loop 3 (ic, over m
// by mc) for one jc-column panel [jcStart, jcEnd) of n. Pack-B is
// produced once per (jc, pc) pair by the jc-owner and shared read-only
// across every ic iteration in that pc step. When icFanout is set (the
// single-jc-block case, where jc alone yields no parallelism) each ic
// block additionally runs on its own pool worker with private Pack-A
// scratch; otherwise the ic loop runs inline because the caller is
// already one of several parallel jc workers.
func processJCColumn[T hwy.Floats](
	jcStart, jcEnd int,
	m, k, mc, kc, mr, nr int,
	c View[T], readC bool,
	a, b View[T],
	alpha, beta T,
	pool *WorkersPool,
	icFanout bool,
) {
	panelCols := jcEnd - jcStart
	packedB := make([]T, PackedBSize(kc, panelCols, nr))
	icStarts := blockStarts(m, mc)

	for pcStart := 0; pcStart < k; pcStart += kc {
		pcEnd := min(pcStart+kc, k)
		panelK := pcEnd - pcStart

		effBeta := beta
		effReadC := readC
		if pcStart > 0 {
			// After the first pc step C already holds the running
			// partial sum, so later steps accumulate with beta=1 and
			// are always safe to read back.
			effBeta = 1
			effReadC = true
		}

		activeColsLast := PackB(b, pcStart, jcStart, panelK, panelCols, nr, packedB)

		doIc := func(idx int) {
			icStart := icStarts[idx]
			icEnd := min(icStart+mc, m)
			panelRows := icEnd - icStart

			packedA := make([]T, PackedASize(panelRows, panelK, mr))
			activeRowsLast := PackA(a, icStart, pcStart, panelRows, panelK, mr, packedA)

			gebp(packedA, packedB, c, mr, nr, icStart, jcStart, panelRows, panelCols, panelK,
				activeRowsLast, activeColsLast, alpha, effBeta, effReadC)
		}

		if icFanout {
			fanOut(pool, len(icStarts), doIc)
		} else {
			for idx := range icStarts {
				doIc(idx)
			}
		}
	}
}

// gemmDriver is the macrokernel: block-size planning followed by the
// jc/pc/ic loop nest, with parallel fan-out chosen along whichever of
// jc/ic actually has more than one slice to give to workers.
func gemmDriver[T hwy.Floats](
	m, n, k int,
	c View[T], readC bool,
	a, b View[T],
	alpha, beta T,
	parallelism Parallelism,
	mr, nr int,
) {
	if m == 0 || n == 0 || k == 0 {
		return
	}

	var zero T
	sizeofT := int(unsafe.Sizeof(zero))
	kp := PlanBlocks(m, n, k, mr, nr, sizeofT, GetCacheInfo())
	kc, mc, nc := kp.Kc, kp.Mc, kp.Nc
	if nc <= 0 {
		// nc == 0 means the planner saw no L3; use the full n as one
		// jc-block.
		nc = n
	}

	pool := parallelism.resolve(m, n, k)
	jcStarts := blockStarts(n, nc)

	if len(jcStarts) > 1 {
		fanOut(pool, len(jcStarts), func(idx int) {
			jcStart := jcStarts[idx]
			jcEnd := min(jcStart+nc, n)
			processJCColumn(jcStart, jcEnd, m, k, mc, kc, mr, nr, c, readC, a, b, alpha, beta, pool, false)
		})
		return
	}

	processJCColumn(0, n, m, k, mc, kc, mr, nr, c, readC, a, b, alpha, beta, pool, true)
}
