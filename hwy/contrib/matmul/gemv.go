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

// smallDimWidth is the width, in elements, below which a dimension is
// considered tiny enough to bypass the macrokernel entirely: one SIMD
// vector. Both the GEMV-style n-tiny case and its symmetric m-tiny case
// use this same threshold.
func smallDimWidth[T hwy.Floats]() int {
	lanes := hwy.Zero[T]().NumLanes()
	if lanes <= 0 {
		return 1
	}
	return lanes
}

// usesGemvPath reports whether the GEMV fast-path should bypass the
// macrokernel for this shape; the dispatcher checks it before any block
// planning happens.
func usesGemvPath[T hwy.Floats](m, n int) bool {
	w := smallDimWidth[T]()
	return n <= w || m <= w
}

// dotProduct computes the length-k dot product of two strided scalar
// runs starting at absolute offsets aBase0/bBase0 into aData/bData,
// vectorizing with hwy when both runs are contiguous (stride 1, which
// also implies forward-addressed) and falling back to a scalar stride
// walk otherwise. This is the only place in the GEMV path that
// interprets strides, mirroring the packing phase's role in the
// macrokernel path. Indices are always computed from the absolute base rather
// than from a pre-sliced sub-slice, so a negative stride walks backward
// into still-valid, non-negative positions in aData/bData instead of
// underflowing a forward-only slice.
func dotProduct[T hwy.Floats](aData []T, aBase0, aStride int, bData []T, bBase0, bStride int, k int) T {
	if aStride == 1 && bStride == 1 {
		aBase := aData[aBase0:]
		bBase := bData[bBase0:]
		lanes := hwy.Zero[T]().NumLanes()
		acc := hwy.Zero[T]()
		p := 0
		for ; p+lanes <= k; p += lanes {
			va := hwy.Load(aBase[p:])
			vb := hwy.Load(bBase[p:])
			acc = hwy.MulAdd(va, vb, acc)
		}
		sum := hwy.ReduceSum(acc)
		for ; p < k; p++ {
			sum += aBase[p] * bBase[p]
		}
		return sum
	}

	var sum T
	idxA, idxB := aBase0, bBase0
	for p := 0; p < k; p++ {
		sum += aData[idxA] * bData[idxB]
		idxA += aStride
		idxB += bStride
	}
	return sum
}

// gemvPath computes C <- alpha*A*B + beta*C directly, one dot product
// per C element, bypassing cache blocking and packing entirely.
// It is only efficient (and only selected) when one of m, n is tiny, so
// the O(m*n*k) work it performs is bounded by that tiny dimension; it is
// also used as the reference path proving bit-for-bit equivalence with
// the macrokernel at β=0.
func gemvPath[T hwy.Floats](m, n, k int, c View[T], readC bool, a, b View[T], alpha, beta T) {
	for i := 0; i < m; i++ {
		aBase0 := a.Index(i, 0)
		for j := 0; j < n; j++ {
			bBase0 := b.Index(0, j)
			sum := dotProduct(a.Data, aBase0, a.ColStride, b.Data, bBase0, b.RowStride, k)

			if !readC {
				c.Set(i, j, alpha*sum)
				continue
			}
			old := c.At(i, j)
			c.Set(i, j, alpha*sum+beta*old)
		}
	}
}
