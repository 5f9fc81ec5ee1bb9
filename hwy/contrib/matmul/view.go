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

// View is a non-owning (base, row stride, col stride) description of an
// m x n array of T. Strides are measured in elements, not bytes, and may
// be negative. Element (i, j) is Data[Offset + i*RowStride + j*ColStride].
//
// Offset carries the logical origin separately from Data so that a
// negative stride (e.g. a bottom-up view whose row 0 is the last
// physical row) still indexes Data at a non-negative position: Go slices
// panic on a negative index, unlike C pointer arithmetic, so Data must
// always span the full backing allocation and Offset must place every
// valid (i, j) at Offset+i*RowStride+j*ColStride >= 0.
//
// Views never copy or own memory; the caller guarantees C does not alias
// A or B except for the trivial Beta=1 in-place identity.
type View[T any] struct {
	Data      []T
	Offset    int
	RowStride int
	ColStride int
}

// NewRowMajor returns a view over a row-major m x n slice (col stride 1,
// row stride n).
func NewRowMajor[T any](data []T, n int) View[T] {
	return View[T]{Data: data, RowStride: n, ColStride: 1}
}

// NewColMajor returns a view over a column-major m x n slice (row stride
// 1, col stride m).
func NewColMajor[T any](data []T, m int) View[T] {
	return View[T]{Data: data, RowStride: 1, ColStride: m}
}

// At returns the element at (i, j).
func (v View[T]) At(i, j int) T {
	return v.Data[v.Index(i, j)]
}

// Set assigns the element at (i, j).
func (v View[T]) Set(i, j int, val T) {
	v.Data[v.Index(i, j)] = val
}

// Index returns the flat offset of (i, j) into Data, including Offset.
func (v View[T]) Index(i, j int) int {
	return v.Offset + i*v.RowStride + j*v.ColStride
}

// Transposed swaps the two strides, absorbing a logical transpose
// without copying or touching Data; there is no separate transpose pass
// anywhere in the engine.
func (v View[T]) Transposed() View[T] {
	return View[T]{Data: v.Data, Offset: v.Offset, RowStride: v.ColStride, ColStride: v.RowStride}
}

// Sub returns a view of the sub-block starting at (rowOff, colOff). The
// caller is responsible for keeping the resulting view's accesses within
// bounds; Sub itself only re-bases Offset, never reslices Data, so a
// negative RowStride/ColStride remains valid after the rebase.
func (v View[T]) Sub(rowOff, colOff int) View[T] {
	return View[T]{
		Data:      v.Data,
		Offset:    v.Index(rowOff, colOff),
		RowStride: v.RowStride,
		ColStride: v.ColStride,
	}
}

// CacheLevel is one L1/L2/L3 entry of a CacheInfo. Bytes == 0 means the
// level was not recognised by the probe (absent level).
type CacheLevel struct {
	Bytes         int
	LineBytes     int
	Associativity int
	SmallMcHint   bool
}

// Sets returns the number of cache sets in this level, or 0 if the level
// is absent or under-specified.
func (l CacheLevel) Sets() int {
	if l.Bytes == 0 || l.LineBytes == 0 || l.Associativity == 0 {
		return 0
	}
	return l.Bytes / (l.LineBytes * l.Associativity)
}

// CacheInfo is the process-wide cache geometry descriptor. Exactly
// three levels are recognised.
type CacheInfo struct {
	L1, L2, L3 CacheLevel
}

// KernelParams is the (kc, mc, nc) triple the block-size planner
// produces for a given (m, n, k, mr, nr, sizeof(T)) and CacheInfo.
type KernelParams struct {
	Kc, Mc, Nc int
}
