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

//go:build !amd64 && !(darwin && arm64)

package matmul

// probeCacheInfo has no runtime probe on this platform; the static
// fallback tables apply. This
// covers linux/arm64 and every other GOARCH/GOOS combination that has
// neither a CPUID-compatible cache leaf nor Apple's sysctl names.
func probeCacheInfo() (CacheInfo, bool) {
	return CacheInfo{}, false
}
