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

//go:build amd64

package hwy

import "golang.org/x/sys/cpu"

// Scalar-mode configuration for amd64: vector ops run through the
// portable base implementations on 16-byte Vec values, while float16
// and bfloat16 feature bits are still detected for the conversion
// helpers.

// CPU feature flags for float16/bfloat16 support
var (
	// hasF16C indicates F16C support: float16 <-> float32 conversions (Haswell+)
	hasF16C bool

	// hasAVX512FP16 indicates AVX-512 FP16 support: native float16 arithmetic (Sapphire Rapids+)
	hasAVX512FP16 bool

	// hasAVX512BF16 indicates AVX-512 BF16 support: bfloat16 dot products (Cooper Lake+)
	hasAVX512BF16 bool
)

func init() {
	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
	detectFP16BF16Features()
}

func detectCPUFeatures() {
	// The portable base ops serve every amd64 level; wider dispatch
	// levels are reserved for arch-specific kernel overrides.
	setScalarMode()
}

func detectFP16BF16Features() {
	// F16C detection: use FMA as a proxy (F16C is present on all FMA-capable CPUs)
	if cpu.X86.HasAVX {
		hasF16C = cpu.X86.HasFMA
	}

	// AVX-512 BF16 detection via x/sys/cpu
	if cpu.X86.HasAVX512 {
		hasAVX512BF16 = cpu.X86.HasAVX512BF16
	}

	// AVX-512 FP16: not yet supported in x/sys/cpu
	hasAVX512FP16 = false
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
}

// HasF16C returns true if the CPU supports F16C instructions.
// F16C provides hardware-accelerated float16 <-> float32 conversions.
// Present on Intel Haswell+ and AMD Piledriver+ CPUs.
func HasF16C() bool {
	return hasF16C
}

// HasAVX512FP16 returns true if the CPU supports AVX-512 FP16 instructions.
// AVX-512 FP16 provides native float16 arithmetic operations.
// Present on Intel Sapphire Rapids+ CPUs (2023+).
func HasAVX512FP16() bool {
	return hasAVX512FP16
}

// HasAVX512BF16 returns true if the CPU supports AVX-512 BF16 instructions.
// AVX-512 BF16 provides bfloat16 dot product operations.
// Present on Intel Cooper Lake+ and AMD Zen 4+ CPUs.
func HasAVX512BF16() bool {
	return hasAVX512BF16
}

// HasARMFP16 returns false on x86 (ARM FP16 is ARM-specific).
// Use HasF16C() or HasAVX512FP16() for x86 float16 support.
func HasARMFP16() bool {
	return false
}

// HasARMBF16 returns false on x86 (ARM BF16 is ARM-specific).
// Use HasAVX512BF16() for x86 bfloat16 support.
func HasARMBF16() bool {
	return false
}
