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

// Complex GEMM is realized as four real GEMM invocations over
// de-interleaved real/imag planes: for C = alpha*A*B + beta*C
// with A = Ar + i*Ai, B = Br + i*Bi,
//
//	Cr = Ar*Br - Ai*Bi
//	Ci = Ar*Bi + Ai*Br
//
// conjA/conjB negate the imaginary plane before the real GEMMs run;
// conjC negates C's imaginary plane before it is read for the beta
// accumulation. Conjugation is only ever a sign flip on the imaginary
// plane, never a separate pass over the operands.

// deinterleaveComplex64 splits a strided complex64 view into separate
// row-major real and imaginary float32 planes, negating the imaginary
// plane when conj is set. Rows are independent, so the pass fans out
// over the conversion pool for large operands.
func deinterleaveComplex64(v View[complex64], rows, cols int, conj bool, par Parallelism) (re, im View[float32]) {
	reData := make([]float32, rows*cols)
	imData := make([]float32, rows*cols)
	forEachRow(par, rows, cols, func(i int) {
		idx := i * cols
		for j := 0; j < cols; j++ {
			z := v.At(i, j)
			reData[idx] = real(z)
			if conj {
				imData[idx] = -imag(z)
			} else {
				imData[idx] = imag(z)
			}
			idx++
		}
	})
	return NewRowMajor(reData, cols), NewRowMajor(imData, cols)
}

func deinterleaveComplex128(v View[complex128], rows, cols int, conj bool, par Parallelism) (re, im View[float64]) {
	reData := make([]float64, rows*cols)
	imData := make([]float64, rows*cols)
	forEachRow(par, rows, cols, func(i int) {
		idx := i * cols
		for j := 0; j < cols; j++ {
			z := v.At(i, j)
			reData[idx] = real(z)
			if conj {
				imData[idx] = -imag(z)
			} else {
				imData[idx] = imag(z)
			}
			idx++
		}
	})
	return NewRowMajor(reData, cols), NewRowMajor(imData, cols)
}

// GemmComplex64 computes C <- alpha*A*B + beta*C over complex64 via the
// four-real-GEMM schedule above. The conj flags have no analogue on the
// real entry points; they exist only here.
func GemmComplex64(m, n, k int, c View[complex64], readC bool, a, b View[complex64], alpha, beta complex64, conjA, conjB, conjC bool, parallelism Parallelism) {
	if m == 0 || n == 0 || k == 0 {
		return
	}

	ar, ai := deinterleaveComplex64(a, m, k, conjA, parallelism)
	br, bi := deinterleaveComplex64(b, k, n, conjB, parallelism)

	crData := make([]float32, m*n)
	ciData := make([]float32, m*n)
	cr := NewRowMajor(crData, n)
	ci := NewRowMajor(ciData, n)

	// Cr = Ar*Br - Ai*Bi
	Gemm(m, n, k, cr, false, ar, br, float32(1), float32(0), parallelism)
	Gemm(m, n, k, cr, true, ai, bi, float32(-1), float32(1), parallelism)

	// Ci = Ar*Bi + Ai*Br
	Gemm(m, n, k, ci, false, ar, bi, float32(1), float32(0), parallelism)
	Gemm(m, n, k, ci, true, ai, br, float32(1), float32(1), parallelism)

	forEachRow(parallelism, m, n, func(i int) {
		for j := 0; j < n; j++ {
			prod := complex(cr.At(i, j), ci.At(i, j))
			result := alpha * prod
			if readC {
				old := c.At(i, j)
				if conjC {
					old = complex(real(old), -imag(old))
				}
				result += beta * old
			}
			c.Set(i, j, result)
		}
	})
}

// GemmComplex128 is the complex128 analogue of GemmComplex64.
func GemmComplex128(m, n, k int, c View[complex128], readC bool, a, b View[complex128], alpha, beta complex128, conjA, conjB, conjC bool, parallelism Parallelism) {
	if m == 0 || n == 0 || k == 0 {
		return
	}

	ar, ai := deinterleaveComplex128(a, m, k, conjA, parallelism)
	br, bi := deinterleaveComplex128(b, k, n, conjB, parallelism)

	crData := make([]float64, m*n)
	ciData := make([]float64, m*n)
	cr := NewRowMajor(crData, n)
	ci := NewRowMajor(ciData, n)

	Gemm(m, n, k, cr, false, ar, br, float64(1), float64(0), parallelism)
	Gemm(m, n, k, cr, true, ai, bi, float64(-1), float64(1), parallelism)

	Gemm(m, n, k, ci, false, ar, bi, float64(1), float64(0), parallelism)
	Gemm(m, n, k, ci, true, ai, br, float64(1), float64(1), parallelism)

	forEachRow(parallelism, m, n, func(i int) {
		for j := 0; j < n; j++ {
			prod := complex(cr.At(i, j), ci.At(i, j))
			result := alpha * prod
			if readC {
				old := c.At(i, j)
				if conjC {
					old = complex(real(old), -imag(old))
				}
				result += beta * old
			}
			c.Set(i, j, result)
		}
	})
}
