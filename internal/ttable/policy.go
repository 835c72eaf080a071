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

// ReplacementPolicy decides which slot of a bucket, if any, an incoming
// new-key entry takes. The choice is made once at table
// construction - the source selects this at compile time via template
// specialization; Go has no equivalent, so a strategy interface stands
// in, dispatched once per table rather than once per call.
type ReplacementPolicy interface {
	// place picks a slot in bk for incoming and writes it there,
	// returning true if it was placed. Returning false means the
	// incoming entry loses to every resident and is simply dropped.
	place(bk *bucket, incoming slot, writes uint64) bool
	Name() string
}

// DepthFirst walks the bucket front to back; wherever the carried entry
// outranks the resident it swaps the two and carries the displaced
// resident on, so the bucket stays sorted and only the lowest-ranked
// entry falls off the end. An incoming entry that outranks nothing is
// dropped.
type DepthFirst struct{}

func (DepthFirst) Name() string { return "depth-first" }

func (DepthFirst) place(bk *bucket, incoming slot, _ uint64) bool {
	placed := false
	for i := range bk.entries {
		if outranks(incoming, bk.entries[i]) {
			bk.entries[i], incoming = incoming, bk.entries[i]
			placed = true
		}
	}
	return placed
}

// ReplaceLastEntry behaves like DepthFirst, but if the incoming entry
// outranks nothing it is forced into the last slot anyway.
type ReplaceLastEntry struct{}

func (ReplaceLastEntry) Name() string { return "replace-last-entry" }

func (ReplaceLastEntry) place(bk *bucket, incoming slot, _ uint64) bool {
	placed := false
	for i := range bk.entries {
		if outranks(incoming, bk.entries[i]) {
			bk.entries[i], incoming = incoming, bk.entries[i]
			placed = true
		}
	}
	if !placed {
		bk.entries[EntriesPerBucket-1] = incoming
	}
	return true
}

// TwoTwoSplit behaves like DepthFirst, but on a total loss forces the
// incoming entry into one of the two lowest slots, alternating between
// them on successive writes so neither starves the other, and then
// moves it down past any resident that outranks it.
type TwoTwoSplit struct{}

func (TwoTwoSplit) Name() string { return "two-two-split" }

func (TwoTwoSplit) place(bk *bucket, incoming slot, writes uint64) bool {
	placed := false
	for i := range bk.entries {
		if outranks(incoming, bk.entries[i]) {
			bk.entries[i], incoming = incoming, bk.entries[i]
			placed = true
		}
	}
	if !placed {
		i := 2 + int(writes&1)
		bk.entries[i] = incoming
		bk.bubbleDown(i)
	}
	return true
}

// RandomReplace ignores priority when choosing the slot: it takes the
// first empty slot, or otherwise the slot selected by the write counter
// modulo the bucket width (a cheap stand-in for true randomness, reusing
// the counter the table already maintains). The new entry is then moved
// up or down to its rank so the bucket stays sorted.
type RandomReplace struct{}

func (RandomReplace) Name() string { return "random-replace" }

func (RandomReplace) place(bk *bucket, incoming slot, writes uint64) bool {
	i := bk.firstEmpty()
	if i < 0 {
		i = int(writes % EntriesPerBucket)
	}
	bk.entries[i] = incoming
	bk.bubbleDown(bk.bubbleUp(i))
	return true
}
