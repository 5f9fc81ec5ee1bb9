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
	"sync"

	"github.com/gemmkit/gemmkit/hwy"
)

// isaLevel names the microkernel family the dispatcher bound to on
// this process.
type isaLevel int

const (
	isaScalar isaLevel = iota
	isaSSE
	isaAVX
	isaAVX2
	isaFMA
	isaAVX512
	isaNEON
)

func (l isaLevel) String() string {
	switch l {
	case isaSSE:
		return "sse"
	case isaAVX:
		return "avx"
	case isaAVX2:
		return "avx2"
	case isaFMA:
		return "fma"
	case isaAVX512:
		return "avx512"
	case isaNEON:
		return "neon"
	default:
		return "scalar"
	}
}

var (
	isaOnce  sync.Once
	isaValue isaLevel
)

// CurrentISA detects once, on first call, the highest supported ISA per
// golang.org/x/sys/cpu feature bits, and caches the choice for the life
// of the process. The generic microkernel in microkernel.go already tracks
// hwy.CurrentLevel()'s vector width automatically regardless of this
// value; CurrentISA exists so callers and tests can observe and log
// which family the dispatcher believes it is running, even though a
// single generic kernel body serves every family.
func CurrentISA() isaLevel {
	isaOnce.Do(func() {
		isaValue = detectISA()
	})
	return isaValue
}

// resetISAForTest clears the memoized ISA detection. Test-only.
func resetISAForTest() {
	isaOnce = sync.Once{}
	isaValue = 0
}

// kernelShape returns the (mr, nr) register-blocking factors used for
// type T: mr is a fixed 4 rows of scalar broadcast regardless of ISA,
// and nr is two full hwy vectors wide, so the
// generic microkernel automatically gets wider on a machine with wider
// vectors without needing a separate kernel per ISA name; a hand-written
// kernel per (T, isa, mr, nr) combination would explode in line count.
func kernelShape[T hwy.Floats]() (mr, nr int) {
	lanes := hwy.Zero[T]().NumLanes()
	if lanes <= 0 {
		lanes = 1
	}
	return 4, 2 * lanes
}

// Gemm computes C <- alpha*A*B + beta*C for the two Go-native floating
// point element types. It selects the GEMV fast-path before any block
// planning when m or n is tiny, otherwise drives the full three-loop
// macrokernel.
func Gemm[T hwy.FloatsNative](m, n, k int, c View[T], readC bool, a, b View[T], alpha, beta T, parallelism Parallelism) {
	if m == 0 || n == 0 || k == 0 {
		return
	}

	CurrentISA() // force the one-time detection before the hot path

	if usesGemvPath[T](m, n) {
		gemvPath(m, n, k, c, readC, a, b, alpha, beta)
		return
	}

	mr, nr := kernelShape[T]()
	gemmDriver(m, n, k, c, readC, a, b, alpha, beta, parallelism, mr, nr)
}
