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

// Package ttable implements the shared, bucketed transposition table: a
// fixed-size array of cache-line-sized buckets, each guarded by its own
// spin-lock, holding entries in weak priority order so replacement and
// the ABDADA proc-counter protocol can share one data structure. The
// table is deliberately ignorant of chess - it stores an opaque 16-bit
// Move handle and an application-supplied Eval, the way FrankyGo's
// internal/transpositiontable keeps TtEntry free of position.Position.
package ttable

// Move is the opaque 16-bit move handle the table stores. It carries no
// chess semantics of its own; the caller (internal/chesscore's Move, in
// this engine) and the table agree only on the bit width.
type Move uint16

// NoMove is the "no move" sentinel, matching chesscore.MoveNone's zero
// value so the two can be cast between freely.
const NoMove Move = 0

// Eval is a signed evaluation from the side-to-move's perspective.
type Eval = int16

const (
	MinEval      Eval = -30000
	MaxEval      Eval = 30000
	OnEvaluation Eval = -32768 // math.MinInt16; never a real evaluation
)

// BoundType tags what kind of bound a stored Eval represents.
type BoundType uint8

const (
	BoundExact BoundType = iota
	BoundLower
	BoundUpper
	BoundEvaluating
)

func (b BoundType) String() string {
	switch b {
	case BoundExact:
		return "EXACT"
	case BoundLower:
		return "LOWER"
	case BoundUpper:
		return "UPPER"
	case BoundEvaluating:
		return "EVALUATING"
	default:
		return "?"
	}
}

// Info is the payload carried by one TT slot.
type Info struct {
	Eval  Eval
	Move  Move
	Depth int8
	Bound BoundType
	Proc  int8
}

// CutoffClass is Probe's verdict on what the caller should do next.
type CutoffClass uint8

const (
	// None: proceed to search; Proc has been incremented on the caller's
	// behalf (or no entry existed to increment).
	None CutoffClass = iota
	// TTCutoff: an EXACT entry was found; use Info.Eval directly.
	TTCutoff
	// PeerSearching: a peer holds this node under EVALUATING; the caller
	// must treat this as ON_EVALUATION and defer the move.
	PeerSearching
)

// DeferDepth is the minimum depth at which a TT miss installs an
// EVALUATING marker - shallower misses are too cheap to bother
// coordinating over.
const DeferDepth = 3

// EntriesPerBucket (B) is the fixed bucket width.
const EntriesPerBucket = 4
