//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package driver implements the iterative-deepening loop that spawns one
// team of workers per depth, joins them with a sync.WaitGroup (the
// idiomatic Go replacement for std::thread::join, the same fan-out/join
// shape FrankyGo's transpositiontable.AgeEntries uses), and publishes
// the first worker to finish at each depth.
package driver

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/abdada-go/engine/internal/chesscore"
	"github.com/abdada-go/engine/internal/cooperation"
	"github.com/abdada-go/engine/internal/deferredcache"
	"github.com/abdada-go/engine/internal/enginelog"
	"github.com/abdada-go/engine/internal/searchworker"
	"github.com/abdada-go/engine/internal/ttable"
)

// Result is the per-depth (and final) outcome a Driver publishes.
type Result = searchworker.Result

// Driver owns the shared TT, the shared deferred-position cache (used
// only by Simplified ABDADA; nil otherwise) and the cooperation policy
// for one engine instance.
type Driver struct {
	tt            *ttable.Table
	cache         *deferredcache.Cache
	policy        cooperation.Policy
	numThreads    int
	useQuiescence bool
	seedCounter   atomic.Int64
}

// NewDriver builds a Driver with numThreads workers per depth, searching
// through tt under the given cooperation mode. useQuiescence toggles
// §4.3.1's quiescence extension.
func NewDriver(numThreads int, tt *ttable.Table, mode cooperation.Mode, useQuiescence bool) *Driver {
	if numThreads < 1 {
		numThreads = 1
	}
	d := &Driver{
		tt:            tt,
		policy:        cooperation.New(mode),
		numThreads:    numThreads,
		useQuiescence: useQuiescence,
	}
	if mode == cooperation.SimplifiedABDADA {
		d.cache = deferredcache.New()
	}
	return d
}

// Search runs iterative deepening from depth 1 to upToDepth on pos,
// returning a channel with one Result per completed depth (the last
// value is the final result). The channel is closed once upToDepth
// completes or ctx is cancelled, whichever comes first.
func (d *Driver) Search(ctx context.Context, pos *chesscore.Board, upToDepth int8) <-chan Result {
	out := make(chan Result, int(upToDepth)+1)

	go func() {
		defer close(out)
		for depth := int8(1); depth <= upToDepth; depth++ {
			res, ok := d.searchDepth(ctx, pos, depth)
			if !ok {
				return
			}
			select {
			case out <- res:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

func (d *Driver) searchDepth(ctx context.Context, pos *chesscore.Board, depth int8) (Result, bool) {
	finished := &atomic.Bool{}
	resultCh := make(chan Result, 1)
	var totalNodes atomic.Uint64
	var wg sync.WaitGroup

	watchDone := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			finished.Store(true)
		case <-watchDone:
		}
	}()

	start := time.Now()
	for i := 0; i < d.numThreads; i++ {
		wg.Add(1)
		workerPos := pos.Clone()
		seed := d.seedCounter.Add(1)
		w := searchworker.NewWorker(workerPos, d.tt, d.cache, d.policy, finished, seed, d.useQuiescence)
		go func() {
			defer wg.Done()
			move, eval, published, _ := w.RootMax(depth)
			totalNodes.Add(w.Nodes())
			if published {
				select {
				case resultCh <- Result{Move: move, Eval: eval, Depth: depth}:
				default:
				}
			}
		}()
	}

	wg.Wait()
	close(watchDone)
	close(resultCh)

	res, ok := <-resultCh
	if !ok {
		// No worker reached the finished.CAS(false, true) race - every
		// worker returned from the root without publishing, either because
		// it aborted on the externally cancelled context or because the
		// root position was resolved by a TT cutoff.
		if enginelog.Debug {
			enginelog.GetLog().Debugf("depth %d: no worker published a result before cancellation", depth)
		}
		return Result{}, false
	}
	res.Nodes = totalNodes.Load()
	res.Duration = time.Since(start)
	return res, true
}

// Clear resets the shared transposition table. Per §4.4, this happens
// only between unrelated searches, never between depths of the same
// iterative-deepening run.
func (d *Driver) Clear() { d.tt.Clear() }

// TT exposes the shared table for diagnostics (print_size, hashfull).
func (d *Driver) TT() *ttable.Table { return d.tt }

// DeferredResearches reports how many times a worker's second pass has
// re-searched a move it deferred in the first pass, summed across every
// worker this Driver has spawned (they all share one cooperation.Policy
// instance). Nonzero only under ABDADA; see §8 scenario 5.
func (d *Driver) DeferredResearches() uint64 { return d.policy.DeferredResearches() }
