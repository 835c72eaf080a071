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

// Package searchworker implements the PVS/null-window/quiescence negamax
// worker shared by all four cooperation modes. The node-level algorithm
// is written once here; internal/cooperation.Policy supplies the two
// decision points that differ between sequential search, Lazy-SMP,
// ABDADA and Simplified ABDADA: whether to ask the TT for PEER_SEARCHING
// on a given move, and whether to defer to the deferred-position cache.
package searchworker

import "github.com/abdada-go/engine/internal/ttable"

// minEval/maxEval/onEvaluation give the node-level search its own names
// for the ttable sentinels so this file reads self-contained.
const (
	minEval      = ttable.MinEval
	maxEval      = ttable.MaxEval
	onEvaluation = ttable.OnEvaluation
)
