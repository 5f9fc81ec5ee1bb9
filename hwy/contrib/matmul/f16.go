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

// promoteF16 widens an m x n hwy.Float16 view into a row-major float32
// view.
func promoteF16(v View[hwy.Float16], rows, cols int, par Parallelism) View[float32] {
	out := make([]float32, rows*cols)
	forEachRow(par, rows, cols, func(i int) {
		idx := i * cols
		for j := 0; j < cols; j++ {
			out[idx] = hwy.Float16ToFloat32(v.At(i, j))
			idx++
		}
	})
	return NewRowMajor(out, cols)
}

// GemmF16 computes C <- alpha*A*B + beta*C over hwy.Float16 operands,
// promoting A and B (and C, when read) to float32 accumulators and
// truncating the result back to Float16 on store. Alpha and beta are
// float32 since the accumulation itself always happens at f32 precision.
func GemmF16(m, n, k int, c View[hwy.Float16], readC bool, a, b View[hwy.Float16], alpha, beta float32, parallelism Parallelism) {
	if m == 0 || n == 0 || k == 0 {
		return
	}

	af := promoteF16(a, m, k, parallelism)
	bf := promoteF16(b, k, n, parallelism)

	cfData := make([]float32, m*n)
	cf := NewRowMajor(cfData, n)
	if readC {
		forEachRow(parallelism, m, n, func(i int) {
			for j := 0; j < n; j++ {
				cf.Set(i, j, hwy.Float16ToFloat32(c.At(i, j)))
			}
		})
	}

	Gemm(m, n, k, cf, readC, af, bf, alpha, beta, parallelism)

	forEachRow(parallelism, m, n, func(i int) {
		for j := 0; j < n; j++ {
			c.Set(i, j, hwy.Float32ToFloat16(cf.At(i, j)))
		}
	})
}
