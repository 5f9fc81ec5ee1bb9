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
	"sync/atomic"
)

// WorkersPool manages a pool of workers for parallel execution.
// It provides controlled parallelism with proper coordination.
//
// This is inspired by gomlx's workerspool implementation for packgemm.
type WorkersPool struct {
	// maxParallelism is the soft target for parallel workers.
	// 0 = disabled, -1 = unlimited, >0 = limited
	maxParallelism int

	mu         sync.Mutex
	cond       sync.Cond
	numRunning int

	// extraParallelism is added to the limit in lockedIsFull; nothing in
	// this package changes it, so it stays 0
	extraParallelism atomic.Int32
}

// NewWorkersPoolWithMax creates a pool with specified max parallelism.
func NewWorkersPoolWithMax(maxParallelism int) *WorkersPool {
	p := &WorkersPool{
		maxParallelism: maxParallelism,
	}
	p.cond = sync.Cond{L: &p.mu}
	return p
}

// IsEnabled returns whether parallelism is enabled.
func (p *WorkersPool) IsEnabled() bool {
	return p.maxParallelism != 0
}

// lockedIsFull returns whether all workers are busy (must hold lock).
func (p *WorkersPool) lockedIsFull() bool {
	if p.maxParallelism == 0 {
		return true // disabled
	}
	if p.maxParallelism < 0 {
		return false // unlimited
	}
	return p.numRunning >= p.maxParallelism+int(p.extraParallelism.Load())
}

// lockedRunTask starts a task in a goroutine (must hold lock).
func (p *WorkersPool) lockedRunTask(task func()) {
	p.numRunning++
	go func() {
		task()
		p.mu.Lock()
		p.numRunning--
		p.cond.Signal()
		p.mu.Unlock()
	}()
}

// WaitToStart blocks until a worker is available, then runs the task.
// If parallelism is disabled, runs inline.
func (p *WorkersPool) WaitToStart(task func()) {
	if p.maxParallelism < 0 {
		go task()
		return
	}

	if p.maxParallelism == 0 {
		// Disabled: run inline
		task()
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for p.lockedIsFull() {
		p.cond.Wait()
	}
	p.lockedRunTask(task)
}
