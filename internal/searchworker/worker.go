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

package searchworker

import (
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/abdada-go/engine/internal/chesscore"
	"github.com/abdada-go/engine/internal/cooperation"
	"github.com/abdada-go/engine/internal/deferredcache"
	"github.com/abdada-go/engine/internal/enginelog"
	"github.com/abdada-go/engine/internal/ttable"
)

// Worker owns a private cloned Position and everything else a search
// needs that must not be shared between goroutines: its node counter and
// its move-shuffling PRNG. The TT, the deferred-position cache, the
// cooperation policy and the shared `finished` flag are references into
// state the Driver owns and every worker on a team shares.
type Worker struct {
	pos    *chesscore.Board
	tt     *ttable.Table
	cache  *deferredcache.Cache
	policy cooperation.Policy

	finished *atomic.Bool

	rng           *rand.Rand
	nodes         uint64
	useQuiescence bool
}

// NewWorker builds a worker over its own private position clone. seed
// gives this worker's move-shuffling PRNG its own stream - per §4.3.5,
// Lazy-SMP diversification depends on every worker seeing a different
// order, never a shared *rand.Rand.
func NewWorker(pos *chesscore.Board, tt *ttable.Table, cache *deferredcache.Cache, policy cooperation.Policy, finished *atomic.Bool, seed int64, useQuiescence bool) *Worker {
	return &Worker{
		pos:           pos,
		tt:            tt,
		cache:         cache,
		policy:        policy,
		finished:      finished,
		rng:           rand.New(rand.NewSource(seed)),
		useQuiescence: useQuiescence,
	}
}

// Nodes returns the number of positions this worker has evaluated since
// construction.
func (w *Worker) Nodes() uint64 { return w.nodes }

func toTTMove(m chesscore.Move) ttable.Move { return ttable.Move(m) }
func fromTTMove(m ttable.Move) chesscore.Move { return chesscore.Move(m) }

// shuffle Fisher-Yates shuffles moves in place using this worker's own
// PRNG stream, run at every node before TT-move hoisting (§4.3.5).
func (w *Worker) shuffle(moves []chesscore.Move) {
	for i := len(moves) - 1; i > 0; i-- {
		j := w.rng.Intn(i + 1)
		moves[i], moves[j] = moves[j], moves[i]
	}
}

// hoistTTMove swaps the TT's suggested move to the front of moves, if
// present. A TT move that the Position Service didn't actually generate
// (stale or corrupted entry) is ignored - per §4.5/§7 it is simply
// treated as "no TT move", never trusted blindly - and logged only when
// enginelog.Debug is set.
func hoistTTMove(moves []chesscore.Move, ttMove chesscore.Move) {
	if ttMove == chesscore.MoveNone {
		return
	}
	for i, m := range moves {
		if m == ttMove {
			moves[0], moves[i] = moves[i], moves[0]
			return
		}
	}
	if enginelog.Debug {
		enginelog.GetSearchLog().Debugf("TT move %v not in move list, ignoring", ttMove)
	}
}

func clampMinEval(e chesscore.Eval) chesscore.Eval {
	if e < minEval {
		return minEval
	}
	return e
}

// qSearch is the full-window quiescence search of §4.3.1.
func (w *Worker) qSearch(alpha, beta chesscore.Eval) chesscore.Eval {
	standPat := clampMinEval(w.pos.Evaluate())
	w.nodes++

	if !w.useQuiescence {
		return standPat
	}
	if standPat >= beta {
		return standPat
	}
	if standPat > alpha {
		alpha = standPat
	}

	best := standPat
	moves := w.pos.GenerateMoves(chesscore.Captures)
	w.shuffle(moves)

	for _, m := range moves {
		w.pos.Make(m)
		score := -w.qSearch(-beta, -alpha)
		w.pos.Unmake()

		if score > best {
			best = score
		}
		if best >= beta {
			break
		}
		if best > alpha {
			alpha = best
		}
	}
	return best
}

// nwQSearch is the null-window quiescence variant of §4.3.1: no alpha
// bookkeeping, returns as soon as a capture fails high.
func (w *Worker) nwQSearch(beta chesscore.Eval) chesscore.Eval {
	standPat := clampMinEval(w.pos.Evaluate())
	w.nodes++

	if !w.useQuiescence || standPat >= beta {
		return standPat
	}

	best := standPat
	moves := w.pos.GenerateMoves(chesscore.Captures)
	w.shuffle(moves)

	for _, m := range moves {
		w.pos.Make(m)
		score := -w.nwQSearch(-beta + 1)
		w.pos.Unmake()

		if score >= beta {
			return score
		}
		if score > best {
			best = score
		}
	}
	return best
}

// nullWindowSearch implements §4.3.2. depth is always ≥ 1; a child at
// depth-1 == 0 is handed to nwQSearch rather than recursing into another
// call at depth 0, matching the spec's note that "deferred moves at
// depth == 1 go to nw_q_search directly".
func (w *Worker) nullWindowSearch(beta chesscore.Eval, depth int8, exclusive bool) chesscore.Eval {
	alpha := beta - 1
	key := w.pos.Key()

	found, info, cutoff := w.tt.Probe(key, depth, exclusive)
	switch cutoff {
	case ttable.TTCutoff:
		return info.Eval
	case ttable.PeerSearching:
		return onEvaluation
	}

	var ttMove chesscore.Move = chesscore.MoveNone
	if found {
		switch info.Bound {
		case ttable.BoundLower:
			if info.Eval >= beta {
				w.tt.DecrementProc(key, depth)
				return info.Eval
			}
		case ttable.BoundUpper:
			if info.Eval <= alpha {
				w.tt.DecrementProc(key, depth)
				return info.Eval
			}
		}
		if info.Move != ttable.NoMove {
			ttMove = fromTTMove(info.Move)
		}
	}
	if ttMove == chesscore.MoveNone {
		if m, ok := w.tt.PeekMove(key, depth-1); ok {
			ttMove = fromTTMove(m)
		}
	}

	moves := w.pos.GenerateMoves(chesscore.All)
	w.shuffle(moves)
	hoistTTMove(moves, ttMove)

	best := minEval
	bestMove := chesscore.MoveNone
	bound := ttable.BoundUpper
	var deferred []chesscore.Move

	for i, m := range moves {
		w.pos.Make(m)
		childKey := w.pos.Key()
		childDepth := depth - 1

		if w.policy.EnterChild(w.cache, childKey, childDepth) {
			w.pos.Unmake()
			deferred = append(deferred, m)
			continue
		}

		var score chesscore.Eval
		if childDepth == 0 {
			score = -w.nwQSearch(-beta + 1)
		} else {
			score = -w.nullWindowSearch(-beta+1, childDepth, w.policy.Exclusive(i))
		}
		w.pos.Unmake()
		w.policy.ExitChild(w.cache, childKey, childDepth)

		if w.policy.PropagatesOnEvaluation() && score == onEvaluation {
			deferred = append(deferred, m)
		} else if score > best {
			best = score
			bestMove = m
			if best >= beta {
				bound = ttable.BoundLower
			}
		}
		if w.finished.Load() {
			w.tt.DecrementProc(key, depth)
			return best
		}
		if best >= beta {
			break
		}
	}

	if best < beta {
		for _, m := range deferred {
			w.policy.RecordDeferredResearch()
			w.pos.Make(m)
			childDepth := depth - 1
			var score chesscore.Eval
			if childDepth == 0 {
				score = -w.nwQSearch(-beta + 1)
			} else {
				score = -w.nullWindowSearch(-beta+1, childDepth, false)
			}
			w.pos.Unmake()

			if score > best {
				best = score
				bestMove = m
				if best >= beta {
					bound = ttable.BoundLower
				}
			}
			if w.finished.Load() {
				w.tt.DecrementProc(key, depth)
				return best
			}
			if best >= beta {
				break
			}
		}
	}

	w.tt.Insert(key, ttable.Info{Eval: best, Move: toTTMove(bestMove), Depth: depth, Bound: bound}, depth)
	return best
}

// pvSearch implements §4.3.3: a full-window search for the first move at
// every node, a null-window scout (through the cooperation policy) for
// every subsequent move, re-searched with the full window only when the
// scout beats alpha.
func (w *Worker) pvSearch(alpha, beta chesscore.Eval, depth int8) chesscore.Eval {
	if depth == 0 {
		return w.qSearch(alpha, beta)
	}

	key := w.pos.Key()
	found, info, cutoff := w.tt.Probe(key, depth, false)
	if cutoff == ttable.TTCutoff {
		return info.Eval
	}

	var ttMove chesscore.Move = chesscore.MoveNone
	if found && info.Move != ttable.NoMove {
		ttMove = fromTTMove(info.Move)
	}
	if ttMove == chesscore.MoveNone {
		if m, ok := w.tt.PeekMove(key, depth-1); ok {
			ttMove = fromTTMove(m)
		}
	}

	moves := w.pos.GenerateMoves(chesscore.All)
	w.shuffle(moves)
	hoistTTMove(moves, ttMove)

	best := minEval
	bestMove := chesscore.MoveNone
	bound := ttable.BoundUpper
	var deferred []chesscore.Move
	anySearched := false

	searchChild := func(childDepth int8, isFirst bool, exclusiveFlag bool) chesscore.Eval {
		if isFirst {
			if childDepth == 0 {
				return -w.qSearch(-beta, -alpha)
			}
			return -w.pvSearch(-beta, -alpha, childDepth)
		}
		var nw chesscore.Eval
		if childDepth == 0 {
			nw = -w.nwQSearch(-alpha)
		} else {
			nw = -w.nullWindowSearch(-alpha, childDepth, exclusiveFlag)
		}
		if w.policy.PropagatesOnEvaluation() && nw == onEvaluation {
			return onEvaluation
		}
		if nw > alpha {
			if childDepth == 0 {
				return -w.qSearch(-beta, -alpha)
			}
			return -w.pvSearch(-beta, -alpha, childDepth)
		}
		return nw
	}

	for i, m := range moves {
		w.pos.Make(m)
		childKey := w.pos.Key()
		childDepth := depth - 1
		isFirst := !anySearched

		if !isFirst && w.policy.EnterChild(w.cache, childKey, childDepth) {
			w.pos.Unmake()
			deferred = append(deferred, m)
			continue
		}

		score := searchChild(childDepth, isFirst, w.policy.Exclusive(i))
		w.pos.Unmake()
		if !isFirst {
			w.policy.ExitChild(w.cache, childKey, childDepth)
		}

		if score == onEvaluation {
			deferred = append(deferred, m)
		} else {
			anySearched = true
			if score > best {
				best = score
				bestMove = m
			}
			if best > alpha {
				alpha = best
				bound = ttable.BoundExact
			}
			if best >= beta {
				bound = ttable.BoundLower
			}
		}
		if w.finished.Load() {
			w.tt.DecrementProc(key, depth)
			return best
		}
		if best >= beta {
			break
		}
	}

	if best < beta {
		for _, m := range deferred {
			w.policy.RecordDeferredResearch()
			w.pos.Make(m)
			childDepth := depth - 1
			isFirst := !anySearched
			score := searchChild(childDepth, isFirst, false)
			w.pos.Unmake()

			anySearched = true
			if score > best {
				best = score
				bestMove = m
			}
			if best > alpha {
				alpha = best
				bound = ttable.BoundExact
			}
			if best >= beta {
				bound = ttable.BoundLower
			}
			if w.finished.Load() {
				w.tt.DecrementProc(key, depth)
				return best
			}
			if best >= beta {
				break
			}
		}
	}

	w.tt.Insert(key, ttable.Info{Eval: best, Move: toTTMove(bestMove), Depth: depth, Bound: bound}, depth)
	return best
}

// RootMax implements §4.3.4: root_max is pv_search plus the
// first-finisher protocol. It reports whether this worker was the one
// to publish (so the Driver knows whether dur/nodes are meaningful) and
// the move/eval it found regardless.
func (w *Worker) RootMax(depth int8) (move chesscore.Move, eval chesscore.Eval, published bool, elapsed time.Duration) {
	start := time.Now()

	alpha, beta := minEval, maxEval
	key := w.pos.Key()

	found, info, cutoff := w.tt.Probe(key, depth, false)
	if cutoff == ttable.TTCutoff {
		// Another thread (or an earlier iteration) already settled this
		// node with an EXACT result - report it without doing any work
		// and without touching the table, exactly like pv_search.
		return fromTTMove(info.Move), info.Eval, false, time.Since(start)
	}

	var ttMove chesscore.Move = chesscore.MoveNone
	if found && info.Move != ttable.NoMove {
		ttMove = fromTTMove(info.Move)
	}
	if ttMove == chesscore.MoveNone {
		if m, ok := w.tt.PeekMove(key, depth-1); ok {
			ttMove = fromTTMove(m)
		}
	}

	moves := w.pos.GenerateMoves(chesscore.All)
	w.shuffle(moves)
	hoistTTMove(moves, ttMove)

	best := minEval
	bestMove := chesscore.MoveNone
	bound := ttable.BoundUpper
	var deferred []chesscore.Move
	anySearched := false

	searchChild := func(childDepth int8, isFirst bool, exclusiveFlag bool, childKey uint64) chesscore.Eval {
		if isFirst {
			if childDepth == 0 {
				return -w.qSearch(-beta, -alpha)
			}
			return -w.pvSearch(-beta, -alpha, childDepth)
		}
		var nw chesscore.Eval
		if childDepth == 0 {
			nw = -w.nwQSearch(-alpha)
		} else {
			nw = -w.nullWindowSearch(-alpha, childDepth, exclusiveFlag)
		}
		if w.policy.PropagatesOnEvaluation() && nw == onEvaluation {
			return onEvaluation
		}
		if nw > alpha {
			if childDepth == 0 {
				return -w.qSearch(-beta, -alpha)
			}
			return -w.pvSearch(-beta, -alpha, childDepth)
		}
		return nw
	}

	aborted := false
loop:
	for i, m := range moves {
		if w.finished.Load() {
			aborted = true
			break
		}
		w.pos.Make(m)
		childKey := w.pos.Key()
		childDepth := depth - 1
		isFirst := !anySearched

		if !isFirst && w.policy.EnterChild(w.cache, childKey, childDepth) {
			w.pos.Unmake()
			deferred = append(deferred, m)
			continue
		}

		score := searchChild(childDepth, isFirst, w.policy.Exclusive(i), childKey)
		w.pos.Unmake()
		if !isFirst {
			w.policy.ExitChild(w.cache, childKey, childDepth)
		}

		if score == onEvaluation {
			deferred = append(deferred, m)
			continue
		}
		anySearched = true
		if score > best || bestMove == chesscore.MoveNone {
			best = score
			bestMove = m
		}
		if best > alpha {
			alpha = best
			bound = ttable.BoundExact
		}
		if best >= beta {
			bound = ttable.BoundLower
			break loop
		}
	}

	if !aborted && best < beta {
		for _, m := range deferred {
			if w.finished.Load() {
				aborted = true
				break
			}
			w.policy.RecordDeferredResearch()
			w.pos.Make(m)
			childDepth := depth - 1
			isFirst := !anySearched
			score := searchChild(childDepth, isFirst, false, 0)
			w.pos.Unmake()

			anySearched = true
			if score > best || bestMove == chesscore.MoveNone {
				best = score
				bestMove = m
			}
			if best > alpha {
				alpha = best
				bound = ttable.BoundExact
			}
			if best >= beta {
				bound = ttable.BoundLower
				break
			}
		}
	}

	if !aborted && w.finished.Load() {
		aborted = true
	}
	if aborted {
		w.tt.DecrementProc(key, depth)
		return bestMove, best, false, time.Since(start)
	}

	w.tt.Insert(key, ttable.Info{Eval: best, Move: toTTMove(bestMove), Depth: depth, Bound: bound}, depth)

	// Open Question #1: the first worker to finish must set finished
	// false->true ("I am the first to finish, tell everyone else"),
	// never exchange(true->false) as the source mistakenly does.
	published = w.finished.CompareAndSwap(false, true)
	return bestMove, best, published, time.Since(start)
}
