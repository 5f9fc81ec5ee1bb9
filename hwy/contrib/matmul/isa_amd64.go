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

package matmul

import "golang.org/x/sys/cpu"

// detectISA reports the highest microkernel family x86_64 supports,
// from avx512f down through fma, avx2, avx and sse. amd64 always has
// SSE2, so isaScalar is unreachable here.
func detectISA() isaLevel {
	switch {
	case cpu.X86.HasAVX512F:
		return isaAVX512
	case cpu.X86.HasFMA:
		return isaFMA
	case cpu.X86.HasAVX2:
		return isaAVX2
	case cpu.X86.HasAVX:
		return isaAVX
	default:
		return isaSSE
	}
}
