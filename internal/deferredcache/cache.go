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

// Package deferredcache implements the small concurrent cache Simplified
// ABDADA uses instead of TT-resident EVALUATING markers: a fixed-size,
// open-addressed table of spin-locked slots recording "a peer is
// currently searching this (hash, depth)". It is independent of
// internal/ttable - the two never share a lock.
package deferredcache

import (
	"runtime"

	"github.com/abdada-go/engine/internal/util"
)

// size is the fixed power-of-two slot count (the reference
// implementation's 32768).
const size = 32768

// width (C) is how many simultaneously-searched hashes one slot can
// remember before duplicates are accepted as a minor inefficiency.
const width = 3

// DeferDepth mirrors ttable.DeferDepth: below this depth, deferring is
// not worth its coordination cost.
const DeferDepth = 3

type cell struct {
	held util.Bool
	hash [width]uint64
}

func (c *cell) lock() {
	for !c.held.CAS(false, true) {
		runtime.Gosched()
	}
}

func (c *cell) unlock() { c.held.Store(false) }

// Cache is the deferred-position cache. The zero value is not usable;
// use New.
type Cache struct {
	cells [size]cell
}

// New returns an empty Cache.
func New() *Cache { return &Cache{} }

func slotFor(hash uint64, depth int8) uint64 {
	return (hash + uint64(depth)) & (size - 1)
}

// Defer reports whether a peer is already searching (hash, depth): false
// and depth < DeferDepth is a no-op. Otherwise it scans the slot; if
// hash is present it returns true (defer this move). If absent, it
// records hash in the first empty slot (if any) and returns false.
func (c *Cache) Defer(hash uint64, depth int8) bool {
	if depth < DeferDepth {
		return false
	}
	cl := &c.cells[slotFor(hash, depth)]
	cl.lock()
	defer cl.unlock()

	empty := -1
	for i, h := range cl.hash {
		if h == hash {
			return true
		}
		if h == 0 && empty < 0 {
			empty = i
		}
	}
	if empty >= 0 {
		cl.hash[empty] = hash
	}
	return false
}

// Release removes hash from its slot, if present. Idempotent. A no-op
// below DeferDepth, matching Defer's gate.
func (c *Cache) Release(hash uint64, depth int8) {
	if depth < DeferDepth {
		return
	}
	cl := &c.cells[slotFor(hash, depth)]
	cl.lock()
	defer cl.unlock()
	for i, h := range cl.hash {
		if h == hash {
			cl.hash[i] = 0
			return
		}
	}
}
