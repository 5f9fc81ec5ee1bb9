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

//go:build darwin && arm64

package matmul

import "golang.org/x/sys/unix"

// probeCacheInfo reads Apple Silicon's cache sizes via sysctl. The
// silicon reports unified per-cluster values, so both levels are halved
// for a per-core estimate; lines are 128 bytes, 8-way, and there is no
// L3.
func probeCacheInfo() (CacheInfo, bool) {
	l1, err := unix.SysctlUint64("hw.l1dcachesize")
	if err != nil || l1 == 0 {
		return CacheInfo{}, false
	}
	l2, err := unix.SysctlUint64("hw.l2cachesize")
	if err != nil || l2 == 0 {
		l2, err = unix.SysctlUint64("hw.l2dcachesize")
		if err != nil || l2 == 0 {
			return CacheInfo{}, false
		}
	}

	const lineBytes = 128
	const assoc = 8

	info := CacheInfo{
		L1: CacheLevel{Bytes: int(l1 / 2), LineBytes: lineBytes, Associativity: assoc},
		L2: CacheLevel{Bytes: int(l2 / 2), LineBytes: lineBytes, Associativity: assoc},
	}
	return info, true
}
