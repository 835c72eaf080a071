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

package ttable

import (
	"fmt"
	"sync/atomic"

	"github.com/abdada-go/engine/internal/assert"
)

// bucketSizeBytes approximates one cache line: a 4-byte lock word plus
// four slots of an 8-byte key and a handful of payload bytes. It is used
// only to size the table from a megabyte budget, the same way FrankyGo's
// TtTable sizes itself from sizeInMB in internal/transpositiontable/tt.go.
const bucketSizeBytes = 64

// Table is the shared transposition table: N cache-line buckets, each
// independently spin-locked, sized once at construction and never
// resized (the spec never re-sizes it mid-engine).
type Table struct {
	buckets []bucket
	mask    uint64
	writes  atomic.Uint64
	policy  ReplacementPolicy
}

// NewTable allocates a table sized to approximately sizeInMB megabytes,
// rounded down to a power of two number of buckets, using policy for
// replacement on a full-bucket miss.
func NewTable(sizeInMB int, policy ReplacementPolicy) *Table {
	if sizeInMB < 1 {
		sizeInMB = 1
	}
	want := (sizeInMB * 1024 * 1024) / bucketSizeBytes
	n := uint64(1)
	for n*2 <= uint64(want) {
		n *= 2
	}
	if n == 0 {
		n = 1
	}
	return &Table{
		buckets: make([]bucket, n),
		mask:    n - 1,
		policy:  policy,
	}
}

func (t *Table) bucketIndex(key uint64, depth int8) uint64 {
	return (key - uint64(depth)) & t.mask
}

// Probe is the combined look-up-and-reserve primitive described in
// §4.1: it returns whether key was found, its Info, and what the caller
// should do about it.
func (t *Table) Probe(key uint64, depth int8, exclusive bool) (found bool, info Info, cutoff CutoffClass) {
	idx := t.bucketIndex(key, depth)
	bk := &t.buckets[idx]
	bk.lock.lock()
	defer bk.lock.unlock()

	if i := bk.find(key); i >= 0 {
		e := &bk.entries[i]
		switch {
		case e.info.Bound == BoundEvaluating && exclusive:
			return true, e.info, PeerSearching
		case e.info.Bound == BoundExact:
			// Open Question #3: short-circuit - no increment, so no
			// decrement is owed and the entry is excluded from the
			// bubble-up reorder.
			return true, e.info, TTCutoff
		default:
			if e.info.Proc < 127 {
				e.info.Proc++
			}
			bk.bubbleUp(i)
			return true, e.info, None
		}
	}

	if depth >= DeferDepth {
		t.placeNew(bk, slot{key: key, info: Info{Eval: 0, Move: NoMove, Depth: depth, Bound: BoundEvaluating, Proc: 1}})
		return false, Info{}, None
	}
	return false, Info{}, None
}

// placeNew runs the bucket's replacement policy for a brand-new key and
// bumps the write counter - writes counts only new-key insertions, never
// overwrites of an existing key.
func (t *Table) placeNew(bk *bucket, incoming slot) {
	if assert.DEBUG {
		assert.Assert(bk.find(incoming.key) < 0, "placeNew called for a key already resident in the bucket")
	}
	if t.policy.place(bk, incoming, t.writes.Load()) {
		t.writes.Add(1)
	}
}

// Insert writes the final result for key: if the key is already
// resident (the common case - this worker's own Probe installed or
// found it), overwrite eval/move/depth/bound in place and release this
// worker's reservation by decrementing Proc, then bubble the slot back
// down to its new rank. If the key is not resident, run the replacement
// policy as a fresh insert with Proc as given in info.
func (t *Table) Insert(key uint64, info Info, depth int8) {
	idx := t.bucketIndex(key, depth)
	bk := &t.buckets[idx]
	bk.lock.lock()
	defer bk.lock.unlock()

	if i := bk.find(key); i >= 0 {
		e := &bk.entries[i]
		e.info.Eval = info.Eval
		e.info.Move = info.Move
		e.info.Depth = depth
		e.info.Bound = info.Bound
		if e.info.Proc > 0 {
			e.info.Proc--
		}
		bk.bubbleDown(i)
		return
	}
	t.placeNew(bk, slot{key: key, info: info})
}

// DecrementProc releases a held reservation without writing a result -
// the early-exit cleanup path a worker takes when it observed `finished`
// mid-search. A missing key is a no-op: the entry may already have been
// evicted, which is harmless (§7).
func (t *Table) DecrementProc(key uint64, depth int8) {
	idx := t.bucketIndex(key, depth)
	bk := &t.buckets[idx]
	bk.lock.lock()
	defer bk.lock.unlock()

	i := bk.find(key)
	if i < 0 {
		return
	}
	if bk.entries[i].info.Proc > 0 {
		bk.entries[i].info.Proc--
	}
	bk.bubbleDown(i)
}

// Clear zeroes every slot and resets the write counter. Per §4, it is
// not required to be safe against concurrent searches.
func (t *Table) Clear() {
	for i := range t.buckets {
		t.buckets[i] = bucket{}
	}
	t.writes.Store(0)
}

// Writes returns the total number of new-key insertions since
// construction or the last Clear.
func (t *Table) Writes() uint64 { return t.writes.Load() }

// Len returns the number of buckets.
func (t *Table) Len() int { return len(t.buckets) }

// ProcCounts returns the Proc field of every occupied slot across every
// bucket, for tests asserting invariant 2/6 of §8 (proc counts never go
// negative and return to zero once every worker has exited).
func (t *Table) ProcCounts() []int8 {
	var out []int8
	for i := range t.buckets {
		for _, e := range t.buckets[i].entries {
			if e.key != 0 {
				out = append(out, e.info.Proc)
			}
		}
	}
	return out
}

// Hashfull estimates table occupancy in permille, FrankyGo-style
// (internal/transpositiontable/tt.go's Hashfull), by sampling the first
// 1000 buckets.
func (t *Table) Hashfull() int {
	sample := len(t.buckets)
	if sample > 1000 {
		sample = 1000
	}
	if sample == 0 {
		return 0
	}
	used := 0
	for i := 0; i < sample; i++ {
		bk := &t.buckets[i]
		for _, e := range bk.entries {
			if e.key != 0 {
				used++
			}
		}
	}
	return used * 1000 / (sample * EntriesPerBucket)
}

// PeekMove looks up the move stored for key at depth without touching
// Proc or installing anything - the "try the same key at depth-1
// without incrementing" fallback null_window_search/pv_search use when
// their own probe found no usable move.
func (t *Table) PeekMove(key uint64, depth int8) (Move, bool) {
	found, info, _ := t.probeReadOnly(key, depth)
	if !found || info.Move == NoMove {
		return NoMove, false
	}
	return info.Move, true
}

func (t *Table) String() string {
	return fmt.Sprintf("ttable: %d buckets (%s), %d writes, %d‰ full",
		len(t.buckets), t.policy.Name(), t.Writes(), t.Hashfull())
}

// pvPosition is the minimal capability PvWalk needs from a Position: a
// Zobrist key, make/unmake, and a way to get a scratch copy so the walk
// never mutates the caller's position.
type pvPosition interface {
	Key() uint64
	Make(Move)
	Unmake()
	Clone() pvPosition
}

// PvWalk repeatedly probes at decreasing depth, playing the retrieved
// move on a private copy of pos, and stops on a miss, a NoMove, or a
// repeated key (a cycle).
func (t *Table) PvWalk(pos pvPosition, depth int8) []Move {
	cur := pos.Clone()
	seen := make(map[uint64]bool)
	var line []Move

	for d := depth; d > 0; d-- {
		key := cur.Key()
		if seen[key] {
			break
		}
		seen[key] = true

		found, info, _ := t.probeReadOnly(key, d)
		if !found || info.Move == NoMove {
			break
		}
		line = append(line, info.Move)
		cur.Make(info.Move)
	}
	return line
}

// probeReadOnly looks up an entry without mutating proc counts or
// installing new markers - PvWalk is a diagnostic, not a search.
func (t *Table) probeReadOnly(key uint64, depth int8) (bool, Info, CutoffClass) {
	idx := t.bucketIndex(key, depth)
	bk := &t.buckets[idx]
	bk.lock.lock()
	defer bk.lock.unlock()
	if i := bk.find(key); i >= 0 {
		return true, bk.entries[i].info, None
	}
	return false, Info{}, None
}
