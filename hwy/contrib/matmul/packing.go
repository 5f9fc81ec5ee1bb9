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

import "github.com/gemmkit/gemmkit/hwy"

// PackA gathers an mc x kc panel of a (arbitrary-strided) A view into a
// contiguous, microkernel-ready layout.
//
// Input is addressed through a View so row/col strides, including
// negative ones, are the only place strides are interpreted; the
// microkernel itself only ever sees the resulting contiguous buffer.
// A transpose of A is simply A.Transposed() passed in here — there is
// no separate transpose pass.
//
// The packed layout is ⌈panelRows/mr⌉ micropanels of shape mr x panelK,
// column-major within a micropanel (mr contiguous for each k),
// micropanels concatenated in row order. The tail micropanel's unused
// rows are zero-padded.
//
// Returns the number of active (non-padded) rows in the last
// micropanel.
func PackA[T hwy.Floats](a View[T], rowStart, colStart, panelRows, panelK, mr int, packed []T) int {
	numMicroPanels := (panelRows + mr - 1) / mr
	activeRowsLast := panelRows - (numMicroPanels-1)*mr

	fullPanels := numMicroPanels
	if activeRowsLast < mr {
		fullPanels--
	}

	idx := 0
	for panel := 0; panel < fullPanels; panel++ {
		baseRow := rowStart + panel*mr
		for kk := 0; kk < panelK; kk++ {
			for r := 0; r < mr; r++ {
				packed[idx] = a.At(baseRow+r, colStart+kk)
				idx++
			}
		}
	}

	if activeRowsLast < mr && activeRowsLast > 0 {
		baseRow := rowStart + fullPanels*mr
		for kk := 0; kk < panelK; kk++ {
			for r := 0; r < activeRowsLast; r++ {
				packed[idx] = a.At(baseRow+r, colStart+kk)
				idx++
			}
			for r := activeRowsLast; r < mr; r++ {
				packed[idx] = 0
				idx++
			}
		}
	}

	return activeRowsLast
}

// PackB gathers a kc x nc panel of a (arbitrary-strided) B view into a
// contiguous, microkernel-ready layout, symmetric to PackA.
//
// The packed layout is ⌈panelCols/nr⌉ micropanels of shape panelK x nr,
// row-major within a micropanel (nr contiguous for each k), micropanels
// concatenated in column order. The tail micropanel's unused columns are
// zero-padded.
//
// Returns the number of active (non-padded) columns in the last
// micropanel.
func PackB[T hwy.Floats](b View[T], rowStart, colStart, panelK, panelCols, nr int, packed []T) int {
	numMicroPanels := (panelCols + nr - 1) / nr
	activeColsLast := panelCols - (numMicroPanels-1)*nr

	// When B is row-major contiguous with a positive row stride (the
	// common case), BasePackRHSFast packs whole nr-wide strips with
	// vector loads instead of one element at a time; arbitrarily
	// strided views (including transposed or negative-stride B) fall
	// through to the generic element-at-a-time loop below, which is the
	// only place that correctly honors arbitrary and negative strides.
	if b.ColStride == 1 && b.RowStride > 0 {
		BasePackRHSFast(b.Data, b.Offset, packed, b.RowStride, rowStart, colStart, panelK, panelCols, nr)
		if activeColsLast >= nr {
			return nr
		}
		return activeColsLast
	}

	fullPanels := numMicroPanels
	if activeColsLast < nr {
		fullPanels--
	}

	idx := 0
	for panel := 0; panel < fullPanels; panel++ {
		baseCol := colStart + panel*nr
		for kk := 0; kk < panelK; kk++ {
			row := rowStart + kk
			for c := 0; c < nr; c++ {
				packed[idx] = b.At(row, baseCol+c)
				idx++
			}
		}
	}

	if activeColsLast < nr && activeColsLast > 0 {
		baseCol := colStart + fullPanels*nr
		for kk := 0; kk < panelK; kk++ {
			row := rowStart + kk
			for c := 0; c < activeColsLast; c++ {
				packed[idx] = b.At(row, baseCol+c)
				idx++
			}
			for c := activeColsLast; c < nr; c++ {
				packed[idx] = 0
				idx++
			}
		}
	}

	return activeColsLast
}

// UnpackA is the inverse of PackA over the active (non-padded) region,
// used to exercise the packing round-trip invariant in tests.
func UnpackA[T hwy.Floats](packed []T, mr, panelRows, panelK int) View[T] {
	out := make([]T, panelRows*panelK)
	view := NewRowMajor(out, panelK)

	numMicroPanels := (panelRows + mr - 1) / mr
	activeRowsLast := panelRows - (numMicroPanels-1)*mr
	fullPanels := numMicroPanels
	if activeRowsLast < mr {
		fullPanels--
	}

	idx := 0
	for panel := 0; panel < fullPanels; panel++ {
		baseRow := panel * mr
		for kk := 0; kk < panelK; kk++ {
			for r := 0; r < mr; r++ {
				view.Set(baseRow+r, kk, packed[idx])
				idx++
			}
		}
	}
	if activeRowsLast < mr && activeRowsLast > 0 {
		baseRow := fullPanels * mr
		for kk := 0; kk < panelK; kk++ {
			for r := 0; r < activeRowsLast; r++ {
				view.Set(baseRow+r, kk, packed[idx])
				idx++
			}
			idx += mr - activeRowsLast
		}
	}
	return view
}

// PackedASize returns the scratch size (in elements) needed to pack an
// mc x kc A panel.
func PackedASize(mc, kc, mr int) int {
	numPanels := (mc + mr - 1) / mr
	return numPanels * mr * kc
}

// PackedBSize returns the scratch size (in elements) needed to pack a
// kc x nc B panel.
func PackedBSize(kc, nc, nr int) int {
	numPanels := (nc + nr - 1) / nr
	return numPanels * kc * nr
}
