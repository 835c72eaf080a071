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

// slot is one bucket entry: a full Zobrist key plus its payload. key == 0
// means the slot is empty; a real position that happens to hash to 0 is
// re-hashed by the caller before it ever reaches the table (see §6).
type slot struct {
	key  uint64
	info Info
}

// bucket is a cache-line-sized, spin-locked group of EntriesPerBucket
// slots kept in weak priority order: index 0 is the highest-priority
// (least evictable) entry.
type bucket struct {
	lock    spinLock
	entries [EntriesPerBucket]slot
}

// outranks reports whether a deserves to sit ahead of b in priority
// order, per the table's replacement ordering:
//  1. proc_number > 0 beats everything.
//  2. EXACT beats non-EXACT.
//  3. Otherwise greater depth wins.
//
// Empty slots (key == 0) always lose.
func outranks(a, b slot) bool {
	if a.key == 0 {
		return false
	}
	if b.key == 0 {
		return true
	}
	aBusy, bBusy := a.info.Proc > 0, b.info.Proc > 0
	if aBusy != bBusy {
		return aBusy
	}
	aExact, bExact := a.info.Bound == BoundExact, b.info.Bound == BoundExact
	if aExact != bExact {
		return aExact
	}
	return a.info.Depth > b.info.Depth
}

// bubbleUp moves entries[i] toward index 0 while it outranks its
// predecessor, restoring weak priority order after a proc increment.
func (bk *bucket) bubbleUp(i int) int {
	for i > 0 && outranks(bk.entries[i], bk.entries[i-1]) {
		bk.entries[i], bk.entries[i-1] = bk.entries[i-1], bk.entries[i]
		i--
	}
	return i
}

// bubbleDown moves entries[i] toward the end while it is outranked by
// its successor, restoring weak priority order after a proc decrement.
func (bk *bucket) bubbleDown(i int) int {
	for i < EntriesPerBucket-1 && outranks(bk.entries[i+1], bk.entries[i]) {
		bk.entries[i], bk.entries[i+1] = bk.entries[i+1], bk.entries[i]
		i++
	}
	return i
}

// find returns the index of the slot holding key, or -1.
func (bk *bucket) find(key uint64) int {
	for i := range bk.entries {
		if bk.entries[i].key == key {
			return i
		}
	}
	return -1
}

// firstEmpty returns the index of the first empty slot, or -1.
func (bk *bucket) firstEmpty() int {
	for i := range bk.entries {
		if bk.entries[i].key == 0 {
			return i
		}
	}
	return -1
}
