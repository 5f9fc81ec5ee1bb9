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

// Package matmul implements a general matrix-multiply (GEMM) engine:
// C <- alpha*A*B + beta*C for arbitrarily strided m x k, k x n, m x n
// views of a scalar element type, dispatched to SIMD microkernels via
// the hwy package.
//
// Three subsystems do the work: a cache-geometry probe and block-size
// planner (cacheinfo.go, planner.go) choose (kc, mc, nc) from the host's
// L1/L2/L3 topology; packing (packing.go) re-lays strided A/B panels
// into contiguous microkernel-ready buffers; and the macrokernel driver
// (driver.go) runs the three nested blocking loops, optionally fanning
// work out across a WorkersPool.
//
// Example usage:
//
//	a := matmul.NewRowMajor(aData, k) // m x k
//	b := matmul.NewRowMajor(bData, n) // k x n
//	c := matmul.NewRowMajor(cData, n) // m x n, written in place
//
//	matmul.Gemm(m, n, k, c, false, a, b, float32(1), float32(0), matmul.ParallelismNone())
//
// Gemm is generic over float32/float64; GemmComplex64/GemmComplex128
// and GemmF16 cover the complex and half-precision element types by
// reducing to the real-valued driver.
package matmul
