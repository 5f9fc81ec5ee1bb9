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
	"math/cmplx"
	"testing"

	"github.com/gemmkit/gemmkit/hwy"
)

// TestGemmComplex64Scenario: A=B=diag(1+i) => A*B = diag(2i).
func TestGemmComplex64Scenario(t *testing.T) {
	aData := []complex64{1 + 1i, 0, 0, 1 + 1i}
	bData := []complex64{1 + 1i, 0, 0, 1 + 1i}
	a := NewRowMajor(aData, 2)
	b := NewRowMajor(bData, 2)
	cData := make([]complex64, 4)
	c := NewRowMajor(cData, 2)

	GemmComplex64(2, 2, 2, c, false, a, b, 1+0i, 0+0i, false, false, false, ParallelismNone())

	want := []complex64{2i, 0, 0, 2i}
	for i, v := range cData {
		if v != want[i] {
			t.Fatalf("C[%d] = %v, want %v", i, v, want[i])
		}
	}
}

// TestGemmComplex128AgainstNaive checks GemmComplex128 against a
// reference triple loop across alpha/beta combinations.
func TestGemmComplex128AgainstNaive(t *testing.T) {
	m, n, k := 4, 5, 6
	aData := make([]complex128, m*k)
	bData := make([]complex128, k*n)
	for i := range aData {
		aData[i] = complex(float64(i%3)-1, float64((i+1)%3)-1)
	}
	for i := range bData {
		bData[i] = complex(float64(i%4)-2, float64((i+2)%4)-2)
	}
	a := NewRowMajor(aData, k)
	b := NewRowMajor(bData, n)

	c0Data := make([]complex128, m*n)
	for i := range c0Data {
		c0Data[i] = complex(float64(i), -float64(i))
	}

	alpha, beta := complex(2.0, -1.0), complex(0.5, 0.5)

	gotData := append([]complex128(nil), c0Data...)
	got := NewRowMajor(gotData, n)
	GemmComplex128(m, n, k, got, true, a, b, alpha, beta, false, false, false, ParallelismNone())

	want := make([]complex128, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			var sum complex128
			for p := 0; p < k; p++ {
				sum += a.At(i, p) * b.At(p, j)
			}
			want[i*n+j] = alpha*sum + beta*c0Data[i*n+j]
		}
	}

	for i := range want {
		if cmplx.Abs(gotData[i]-want[i]) > 1e-9*(cmplx.Abs(want[i])+1) {
			t.Fatalf("C[%d] = %v, want %v", i, gotData[i], want[i])
		}
	}
}

// TestGemmComplex64ConjA checks that conjA conjugates A before the
// product is formed.
func TestGemmComplex64ConjA(t *testing.T) {
	aData := []complex64{0 + 1i}
	bData := []complex64{0 + 1i}
	a := NewRowMajor(aData, 1)
	b := NewRowMajor(bData, 1)
	cData := make([]complex64, 1)
	c := NewRowMajor(cData, 1)

	// conj(i) * i = -i * i = 1
	GemmComplex64(1, 1, 1, c, false, a, b, 1+0i, 0+0i, true, false, false, ParallelismNone())

	want := complex64(1 + 0i)
	if cData[0] != want {
		t.Fatalf("conjA product = %v, want %v", cData[0], want)
	}
}

// TestGemmF16PromotesAndTruncates checks GemmF16 against a float32
// reference computed on the promoted operands.
func TestGemmF16PromotesAndTruncates(t *testing.T) {
	m, n, k := 3, 3, 4
	toF16 := func(vals []float32) []hwy.Float16 {
		out := make([]hwy.Float16, len(vals))
		for i, v := range vals {
			out[i] = hwy.Float32ToFloat16(v)
		}
		return out
	}

	aVals := make([]float32, m*k)
	bVals := make([]float32, k*n)
	for i := range aVals {
		aVals[i] = float32(i%3) - 1
	}
	for i := range bVals {
		bVals[i] = float32(i%4) - 2
	}

	a := NewRowMajor(toF16(aVals), k)
	b := NewRowMajor(toF16(bVals), n)
	cData := make([]hwy.Float16, m*n)
	c := NewRowMajor(cData, n)

	GemmF16(m, n, k, c, false, a, b, 1.0, 0.0, ParallelismNone())

	af := NewRowMajor(aVals, k)
	bf := NewRowMajor(bVals, n)
	wantData := make([]float32, m*n)
	want := NewRowMajor(wantData, n)
	Gemm(m, n, k, want, false, af, bf, float32(1), float32(0), ParallelismNone())

	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			got := hwy.Float16ToFloat32(c.At(i, j))
			diff := got - want.At(i, j)
			if diff < 0 {
				diff = -diff
			}
			// Float16 has ~3 decimal digits of precision; allow a
			// generous tolerance for the round-trip through promotion.
			if diff > 0.05*(abs32(want.At(i, j))+1) {
				t.Fatalf("C[%d][%d] = %v, want ~%v", i, j, got, want.At(i, j))
			}
		}
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
