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

	"github.com/gemmkit/gemmkit/hwy/contrib/workerpool"
)

// ParallelismKind selects one of the parallelism descriptor variants:
// None, FixedWorkers(w), Rayon(w).
type ParallelismKind int

const (
	// KindNone disables parallel dispatch; the driver runs strictly
	// serially regardless of shape.
	KindNone ParallelismKind = iota
	// KindFixedWorkers caps parallelism at exactly Workers goroutines.
	KindFixedWorkers
	// KindRayon mirrors the "rayon-default" knob: Workers == 0 means
	// "use all available parallelism".
	KindRayon
)

// Parallelism is the driver's parallelism descriptor. The zero value is
// ParallelismNone().
type Parallelism struct {
	Kind    ParallelismKind
	Workers uint32
}

// ParallelismNone returns the None variant: the driver never fans out.
func ParallelismNone() Parallelism {
	return Parallelism{Kind: KindNone}
}

// FixedWorkers returns the FixedWorkers(w) variant: the driver uses at
// most w goroutines (w == 0 behaves like None).
func FixedWorkers(w uint32) Parallelism {
	return Parallelism{Kind: KindFixedWorkers, Workers: w}
}

// Rayon returns the Rayon(w) variant; w == 0 means "use all available
// parallelism".
func Rayon(w uint32) Parallelism {
	return Parallelism{Kind: KindRayon, Workers: w}
}

// maxParallelism maps the descriptor onto WorkersPool's convention: 0
// disabled, -1 unlimited, >0 limited.
func (p Parallelism) maxParallelism() int {
	switch p.Kind {
	case KindFixedWorkers:
		return int(p.Workers)
	case KindRayon:
		if p.Workers == 0 {
			return -1
		}
		return int(p.Workers)
	default:
		return 0
	}
}

// resolve collapses the descriptor against the process-wide threading
// threshold: below the threshold the driver always runs serially,
// regardless of what the caller requested.
func (p Parallelism) resolve(m, n, k int) *WorkersPool {
	max := p.maxParallelism()
	if max == 0 {
		return NewWorkersPoolWithMax(0)
	}
	total := int64(m) * int64(n) * int64(k)
	if total < currentThreadingThreshold() {
		return NewWorkersPoolWithMax(0)
	}
	return NewWorkersPoolWithMax(max)
}

// fanOut runs task(i) for i in [0, count) using pool, joining on a
// WaitGroup that wraps WorkersPool.WaitToStart. Execution within one
// block stays strictly sequential and synchronous; the only blocking
// point is the fork/join boundary around the parallel loop.
func fanOut(pool *WorkersPool, count int, task func(i int)) {
	if count <= 1 || !pool.IsEnabled() {
		for i := 0; i < count; i++ {
			task(i)
		}
		return
	}

	var wg sync.WaitGroup
	for i := 0; i < count; i++ {
		i := i
		wg.Add(1)
		pool.WaitToStart(func() {
			defer wg.Done()
			task(i)
		})
	}
	wg.Wait()
}

var (
	rowPoolOnce sync.Once
	rowPool     *workerpool.Pool
)

// forEachRow runs fn(i) for every row i in [0, rows), fanning out over
// the persistent conversion pool when the descriptor allows parallelism
// and the pass is large enough to beat the dispatch overhead. The
// complex de-interleave and f16 promotion passes are row-wise
// independent, so contiguous range splitting is always safe.
func forEachRow(p Parallelism, rows, cols int, fn func(i int)) {
	if p.maxParallelism() == 0 || rows < 2 || int64(rows)*int64(cols) < currentThreadingThreshold() {
		for i := 0; i < rows; i++ {
			fn(i)
		}
		return
	}
	rowPoolOnce.Do(func() {
		rowPool = workerpool.New(0)
	})
	rowPool.ParallelFor(rows, func(start, end int) {
		for i := start; i < end; i++ {
			fn(i)
		}
	})
}
