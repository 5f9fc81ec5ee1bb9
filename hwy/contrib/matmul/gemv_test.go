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
	"math"
	"testing"
)

// TestGemvPathAllOnes: m=1024, n=1, k=1024, A=B=ones => C=1024
// everywhere, and the n-tiny shape must select the GEMV fast-path
// before any block planning.
func TestGemvPathAllOnes(t *testing.T) {
	const m, k = 1024, 1024
	if !usesGemvPath[float64](m, 1) {
		t.Fatalf("usesGemvPath(m=%d, n=1) = false, want true", m)
	}

	ones := func(sz int) []float64 {
		d := make([]float64, sz)
		for i := range d {
			d[i] = 1
		}
		return d
	}
	a := NewRowMajor(ones(m*k), k)
	b := NewRowMajor(ones(k*1), 1)
	cData := make([]float64, m*1)
	c := NewRowMajor(cData, 1)

	Gemm(m, 1, k, c, false, a, b, 1.0, 0.0, ParallelismNone())

	maxErr := float64(k) * math.Pow(2, -52)
	for i, v := range cData {
		if math.Abs(v-float64(k)) > maxErr {
			t.Fatalf("C[%d] = %v, want ~%v", i, v, k)
		}
	}
}

// TestGemvPathMatchesMacrokernelAtBetaZero checks that the GEMV
// fast-path and the full macrokernel driver agree bit-for-bit at
// beta=0. The operands are small integers so every summation order
// yields identical bits.
func TestGemvPathMatchesMacrokernelAtBetaZero(t *testing.T) {
	const m, k = 37, 53
	data := make([]float64, m*k)
	for i := range data {
		data[i] = float64(i%7) - 3
	}
	a := NewRowMajor(data, k)
	bData := make([]float64, k)
	for i := range bData {
		bData[i] = float64(i%5) - 2
	}
	b := NewRowMajor(bData, 1)

	viaGemv := make([]float64, m)
	cGemv := NewRowMajor(viaGemv, 1)
	gemvPath(m, 1, k, cGemv, false, a, b, 1.0, 0.0)

	viaDriver := make([]float64, m)
	cDriver := NewRowMajor(viaDriver, 1)
	mr, nr := kernelShape[float64]()
	gemmDriver(m, 1, k, cDriver, false, a, b, 1.0, 0.0, ParallelismNone(), mr, nr)

	for i := 0; i < m; i++ {
		if viaGemv[i] != viaDriver[i] {
			t.Fatalf("C[%d]: gemv path = %v, macrokernel = %v", i, viaGemv[i], viaDriver[i])
		}
	}
}

// TestGemvPathSymmetricMTiny exercises the m-tiny mirror of the GEMV
// fast-path.
func TestGemvPathSymmetricMTiny(t *testing.T) {
	const n, k = 40, 30
	if !usesGemvPath[float32](1, n) {
		t.Fatalf("usesGemvPath(m=1, n=%d) = false, want true", n)
	}

	ones := func(sz int) []float32 {
		d := make([]float32, sz)
		for i := range d {
			d[i] = 1
		}
		return d
	}
	a := NewRowMajor(ones(1*k), k)
	b := NewRowMajor(ones(k*n), n)
	cData := make([]float32, n)
	c := NewRowMajor(cData, n)

	Gemm(1, n, k, c, false, a, b, float32(1), float32(0), ParallelismNone())

	for i, v := range cData {
		if v != float32(k) {
			t.Fatalf("C[%d] = %v, want %v", i, v, k)
		}
	}
}
