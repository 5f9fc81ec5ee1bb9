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

// cpuidex issues the CPUID instruction with EAX=eaxArg, ECX=ecxArg and
// returns the resulting EAX/EBX/ECX/EDX. Implemented in cpuid_amd64.s;
// golang.org/x/sys/cpu exposes decoded feature bits but no raw leaf
// query, so the cache-parameter leaves (4, 0x80000005, 0x80000006) are
// queried directly here.
func cpuidex(eaxArg, ecxArg uint32) (eax, ebx, ecx, edx uint32)

// probeCacheInfo queries CPUID for L1/L2/L3 geometry. It returns
// ok=false only when the vendor is unrecognised or the cache leaves are
// absent; a present leaf that decodes to a zero-sized level is reported
// as-is, and the planner decides whether that level is required.
func probeCacheInfo() (CacheInfo, bool) {
	maxLeaf, _, _, _ := cpuidex(0, 0)
	_, ebx, ecx, edx := cpuidex(0, 0)
	vendor := vendorString(ebx, edx, ecx)

	switch vendor {
	case "GenuineIntel":
		return probeIntelCacheInfo(maxLeaf)
	case "AuthenticAMD", "HygonGenuine":
		maxExtLeaf, _, _, _ := cpuidex(0x80000000, 0)
		return probeAMDCacheInfo(maxExtLeaf)
	default:
		return CacheInfo{}, false
	}
}

func vendorString(ebx, edx, ecx uint32) string {
	b := make([]byte, 0, 12)
	for _, reg := range [3]uint32{ebx, edx, ecx} {
		b = append(b, byte(reg), byte(reg>>8), byte(reg>>16), byte(reg>>24))
	}
	return string(b)
}

// probeIntelCacheInfo iterates the deterministic cache parameter leaf
// (CPUID.4) for every (Data | Unified) cache of level 1..3.
func probeIntelCacheInfo(maxLeaf uint32) (CacheInfo, bool) {
	if maxLeaf < 4 {
		return CacheInfo{}, false
	}

	var info CacheInfo
	for _, lvl := range []*CacheLevel{&info.L1, &info.L2, &info.L3} {
		lvl.LineBytes = 64
		lvl.SmallMcHint = true
	}
	for idx := uint32(0); idx < 32; idx++ {
		eax, ebx, ecx, _ := cpuidex(4, idx)
		cacheType := eax & 0x1f
		if cacheType == 0 {
			break // no more cache descriptors
		}
		if cacheType == 2 {
			continue // instruction cache, not modeled
		}
		level := (eax >> 5) & 0x7

		ways := (ebx>>22)&0x3ff + 1
		partitions := (ebx>>12)&0x3ff + 1
		lineSize := ebx&0xfff + 1
		sets := ecx + 1
		bytes := int(ways * partitions * lineSize * sets)

		lvl := CacheLevel{
			Bytes:         bytes,
			LineBytes:     int(lineSize),
			Associativity: int(ways),
			SmallMcHint:   true,
		}
		switch level {
		case 1:
			info.L1 = lvl
		case 2:
			info.L2 = lvl
		case 3:
			info.L3 = lvl
		}
	}
	return info, true
}

// amdAssocWays decodes the AMD L2/L3 associativity nibble from CPUID
// Fn8000_0006. fullyAssocBytes
// is used to turn the "fully associative" sentinel into a ways count.
func amdAssocWays(nibble uint32, fullyAssocBytes, lineBytes int) (ways int, unknown bool) {
	switch nibble {
	case 0x0:
		return 0, true // disabled
	case 0x1:
		return 1, false // direct mapped
	case 0x2:
		return 2, false
	case 0x4:
		return 4, false
	case 0x6:
		return 8, false
	case 0x8:
		return 16, false
	case 0xA:
		return 32, false
	case 0xB:
		return 48, false
	case 0xC:
		return 64, false
	case 0xD:
		return 96, false
	case 0xE:
		return 128, false
	case 0xF:
		if lineBytes == 0 {
			return 0, true
		}
		return fullyAssocBytes / lineBytes, false
	default:
		return 0, true // reserved encoding
	}
}

// probeAMDCacheInfo decodes the legacy L1 (Fn8000_0005) and L2/L3
// (Fn8000_0006) descriptor leaves.
func probeAMDCacheInfo(maxExtLeaf uint32) (CacheInfo, bool) {
	if maxExtLeaf < 0x80000006 {
		return CacheInfo{}, false
	}

	var info CacheInfo

	_, _, l1dECX, _ := cpuidex(0x80000005, 0)
	l1Size := int((l1dECX>>24)&0xff) * 1024
	l1Assoc := (l1dECX >> 16) & 0xff
	l1Line := int(l1dECX & 0xff)
	var l1Ways int
	switch {
	case l1Assoc == 0:
		l1Ways = 0
	case l1Assoc == 0xff:
		if l1Line > 0 {
			l1Ways = l1Size / l1Line
		}
	default:
		l1Ways = int(l1Assoc)
	}
	info.L1 = CacheLevel{Bytes: l1Size, LineBytes: l1Line, Associativity: l1Ways, SmallMcHint: false}

	_, _, l2ECX, l3EDX := cpuidex(0x80000006, 0)

	l2Size := int((l2ECX>>16)&0xffff) * 1024
	l2Line := int(l2ECX & 0xff)
	l2AssocNibble := (l2ECX >> 12) & 0xf
	l2Ways, l2Unknown := amdAssocWays(l2AssocNibble, l2Size, l2Line)
	if l2Unknown {
		l2Ways = 0
		l2Size = 0
	}
	info.L2 = CacheLevel{Bytes: l2Size, LineBytes: l2Line, Associativity: l2Ways, SmallMcHint: false}

	l3Size := int((l3EDX>>18)&0x3fff) * 512 * 1024 // reported in 512 KiB units
	l3Line := int(l3EDX & 0xff)
	l3AssocNibble := (l3EDX >> 12) & 0xf
	l3Ways, l3Unknown := amdAssocWays(l3AssocNibble, l3Size, l3Line)
	if l3Unknown {
		l3Ways = 0
		l3Size = 0
	}
	info.L3 = CacheLevel{Bytes: l3Size, LineBytes: l3Line, Associativity: l3Ways, SmallMcHint: false}

	return info, true
}
