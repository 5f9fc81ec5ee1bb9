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

// rawMicrokernel accumulates one mr x nr tile of the product of a packed
// A micropanel (mr x kc, column-major within the micropanel) and a packed
// B micropanel (kc x nr, row-major within the micropanel) into tile, a
// contiguous mr x nr row-major staging buffer. Accumulation order is
// p-major, left-to-right in k.
//
// Holds mr rows x ceil(nr/lanes) hwy.Vec accumulators in registers
// across the whole kc loop, broadcasting one A scalar against one B
// vector per lane group.
func rawMicrokernel[T hwy.Floats](packedA, packedB []T, kc, mr, nr int, tile []T) {
	lanes := hwy.Zero[T]().NumLanes()
	if lanes <= 0 {
		lanes = 1
	}
	nVecs := (nr + lanes - 1) / lanes

	acc := make([]hwy.Vec[T], mr*nVecs)
	for i := range acc {
		acc[i] = hwy.Zero[T]()
	}

	aIdx, bIdx := 0, 0
	for p := 0; p < kc; p++ {
		for v := 0; v < nVecs; v++ {
			vb := hwy.Load(packedB[bIdx+v*lanes:])
			for r := 0; r < mr; r++ {
				va := hwy.Set(packedA[aIdx+r])
				acc[r*nVecs+v] = hwy.MulAdd(va, vb, acc[r*nVecs+v])
			}
		}
		aIdx += mr
		bIdx += nr
	}

	for r := 0; r < mr; r++ {
		rowOff := r * nr
		for v := 0; v < nVecs; v++ {
			hwy.Store(acc[r*nVecs+v], tile[rowOff+v*lanes:])
		}
	}
}

// Microkernel computes the mr x nr tile at (rowOff, colOff) of c from a
// kc-deep slice of packed A/B micropanels and stores
// alpha*(A-panel . B-panel) [+ beta*C] into the active rows x cols region.
// rows <= mr, cols <= nr handles the mr/nr edge through the staging
// buffer, copied out element-wise; Go has no fixed-size generic stack
// arrays, so the staging buffer is heap allocated once per call.
//
// Arbitrary (including negative) strides on c are honored: the fast
// vectorized apply path in packing_ops.go slices c.Data forward from the
// tile's (rowOff, colOff) offset and then walks it with increasing row
// indices, which only lands on valid positions when c.RowStride > 0; it
// is taken only then. Everything else, including any negative row
// stride, falls back to the scalar loop here, which is always correct
// regardless of stride sign or tile edge.
func Microkernel[T hwy.Floats](packedA, packedB []T, kc, mr, nr int, rows, cols int, c View[T], rowOff, colOff int, alpha, beta T, readC bool) {
	tile := make([]T, mr*nr)
	rawMicrokernel(packedA, packedB, kc, mr, nr, tile)

	if c.ColStride == 1 && c.RowStride > 0 && rows == mr && cols == nr {
		base := c.Index(rowOff, colOff)
		out := c.Data[base:]
		switch {
		case alpha == 1 && beta == 0:
			applyTileSimple(tile, out, nr, 0, 0, c.RowStride, rows, cols)
		case alpha == 1 && beta == 1 && readC:
			applyTileAccum(tile, out, nr, 0, 0, c.RowStride, rows, cols)
		case !readC:
			applyTileScaled(tile, out, alpha, nr, 0, 0, c.RowStride, rows, cols)
		default:
			applyTile(tile, out, alpha, beta, nr, 0, 0, c.RowStride, rows, cols)
		}
		return
	}

	for r := 0; r < rows; r++ {
		for cc := 0; cc < cols; cc++ {
			val := tile[r*nr+cc]
			if !readC {
				c.Set(rowOff+r, colOff+cc, alpha*val)
				continue
			}
			old := c.At(rowOff+r, colOff+cc)
			c.Set(rowOff+r, colOff+cc, alpha*val+beta*old)
		}
	}
}
