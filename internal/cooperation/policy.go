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

// Package cooperation holds the strategy interface that lets a single
// negamax worker body serve all four search variants (sequential/None,
// Lazy-SMP, ABDADA, Simplified ABDADA): "a single generic worker
// parameterized by a cooperation policy" rather than four copies of the
// same tree walk differing only in their coordination protocol.
package cooperation

import (
	"sync/atomic"

	"github.com/abdada-go/engine/internal/deferredcache"
)

// Mode names one of the four cooperation strategies, selected once per
// Driver/Table pair at construction.
type Mode uint8

const (
	None Mode = iota
	LazySMP
	ABDADA
	SimplifiedABDADA
)

func (m Mode) String() string {
	switch m {
	case None:
		return "none"
	case LazySMP:
		return "lazy-smp"
	case ABDADA:
		return "abdada"
	case SimplifiedABDADA:
		return "simplified-abdada"
	default:
		return "?"
	}
}

// Policy is the strategy a search worker consults at two points in its
// move loop: how to probe the TT for a candidate move (Exclusive), and
// whether to defer to a peer already on that subtree (EnterChild /
// ExitChild), which only Simplified ABDADA answers with real work.
type Policy interface {
	Mode() Mode

	// Exclusive is the `exclusive` argument the worker passes into
	// tt.Probe when it is about to search move index i (0 = first
	// move). Only ABDADA ever asks the TT to report PEER_SEARCHING;
	// everyone else always probes non-exclusively.
	Exclusive(i int) bool

	// EnterChild is consulted immediately before recursing into a
	// child, independently of the TT. Returning true means "a peer is
	// already searching this - defer it" and the worker must not
	// recurse at all. Only Simplified ABDADA uses the deferred-position
	// cache here; every other policy always returns false.
	EnterChild(cache *deferredcache.Cache, key uint64, depth int8) bool

	// ExitChild releases whatever EnterChild reserved. A no-op for
	// every policy but Simplified ABDADA.
	ExitChild(cache *deferredcache.Cache, key uint64, depth int8)

	// PropagatesOnEvaluation reports whether a recursive call under
	// this policy may return ttable.OnEvaluation to mean "a peer is
	// searching this, try it again later" - true only for ABDADA
	// (Design Notes Open Question 4: the sequential/Lazy-SMP/Simplified
	// variants never produce this sentinel from a child call).
	PropagatesOnEvaluation() bool

	// RecordDeferredResearch is called once per move a worker's second
	// pass re-searches after deferring it in the first pass (§8 scenario
	// 5: "at least one deferred-move re-search path is executed"). Only
	// ABDADA's counter is meaningful; every other policy no-ops.
	RecordDeferredResearch()

	// DeferredResearches reports how many times RecordDeferredResearch
	// has fired across every worker sharing this policy instance.
	DeferredResearches() uint64
}

// New returns the Policy implementation for mode.
func New(mode Mode) Policy {
	switch mode {
	case ABDADA:
		return abdadaPolicy{researches: new(atomic.Uint64)}
	case SimplifiedABDADA:
		return simplifiedPolicy{}
	default:
		// None and LazySMP are identical at the node level; they
		// differ only in how many workers the Driver spawns and in
		// each worker's independent PRNG stream for move shuffling.
		return uncooperativePolicy{mode: mode}
	}
}

type uncooperativePolicy struct{ mode Mode }

func (p uncooperativePolicy) Mode() Mode                 { return p.mode }
func (uncooperativePolicy) Exclusive(int) bool           { return false }
func (uncooperativePolicy) PropagatesOnEvaluation() bool { return false }
func (uncooperativePolicy) EnterChild(*deferredcache.Cache, uint64, int8) bool {
	return false
}
func (uncooperativePolicy) ExitChild(*deferredcache.Cache, uint64, int8) {}
func (uncooperativePolicy) RecordDeferredResearch()                      {}
func (uncooperativePolicy) DeferredResearches() uint64                   { return 0 }

// abdadaPolicy's researches counter is a pointer so that every Worker
// sharing this Policy value (one per Driver, copied into each worker at
// construction) increments the same underlying atomic.Uint64 instead of
// a private copy.
type abdadaPolicy struct{ researches *atomic.Uint64 }

func (abdadaPolicy) Mode() Mode                   { return ABDADA }
func (abdadaPolicy) Exclusive(i int) bool         { return i > 0 }
func (abdadaPolicy) PropagatesOnEvaluation() bool { return true }
func (abdadaPolicy) EnterChild(*deferredcache.Cache, uint64, int8) bool {
	return false
}
func (abdadaPolicy) ExitChild(*deferredcache.Cache, uint64, int8) {}
func (p abdadaPolicy) RecordDeferredResearch()                    { p.researches.Add(1) }
func (p abdadaPolicy) DeferredResearches() uint64                 { return p.researches.Load() }

type simplifiedPolicy struct{}

func (simplifiedPolicy) Mode() Mode                   { return SimplifiedABDADA }
func (simplifiedPolicy) Exclusive(int) bool           { return false }
func (simplifiedPolicy) PropagatesOnEvaluation() bool { return false }

func (simplifiedPolicy) EnterChild(cache *deferredcache.Cache, key uint64, depth int8) bool {
	return cache.Defer(key, depth)
}

func (simplifiedPolicy) ExitChild(cache *deferredcache.Cache, key uint64, depth int8) {
	cache.Release(key, depth)
}
func (simplifiedPolicy) RecordDeferredResearch()    {}
func (simplifiedPolicy) DeferredResearches() uint64 { return 0 }
