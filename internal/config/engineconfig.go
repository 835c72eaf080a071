/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/abdada-go/engine/internal/cooperation"
	"github.com/abdada-go/engine/internal/ttable"
)

// engineConfiguration is a data structure to hold the configuration of an
// instance of the engine: the shared transposition table, the worker
// pool and the cooperation protocol the workers run under.
type engineConfiguration struct {
	// Worker pool
	NumThreads int

	// Transposition Table
	TTSizeMB int
	TTPolicy string // one of DepthFirst, ReplaceLastEntry, TwoTwoSplit, RandomReplace

	// Cooperation protocol
	CooperationMode string // one of None, LazySMP, ABDADA, SimplifiedABDADA

	// Search
	UseQuiescence bool
	SearchDepth   int8
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Engine.NumThreads = runtime.NumCPU()

	Settings.Engine.TTSizeMB = 128
	Settings.Engine.TTPolicy = "TwoTwoSplit"

	Settings.Engine.CooperationMode = "ABDADA"

	Settings.Engine.UseQuiescence = true
	Settings.Engine.SearchDepth = 6
}

// set defaults for configurations here in case a configuration
// is not available from the config file
func setupEngine() {
	if Settings.Engine.NumThreads < 1 {
		Settings.Engine.NumThreads = 1
	}
}

// ReplacementPolicy resolves the configured TTPolicy name to a concrete
// ttable.ReplacementPolicy, falling back to TwoTwoSplit for an unknown
// or empty name.
func (e *engineConfiguration) ReplacementPolicy() ttable.ReplacementPolicy {
	switch strings.ToLower(e.TTPolicy) {
	case "depthfirst":
		return ttable.DepthFirst{}
	case "replacelastentry":
		return ttable.ReplaceLastEntry{}
	case "randomreplace":
		return ttable.RandomReplace{}
	case "twotwosplit", "":
		return ttable.TwoTwoSplit{}
	default:
		return ttable.TwoTwoSplit{}
	}
}

// Mode resolves the configured CooperationMode name to a
// cooperation.Mode. An empty name gives None; an unknown name gives None
// together with an error.
func (e *engineConfiguration) Mode() (cooperation.Mode, error) {
	switch strings.ToLower(e.CooperationMode) {
	case "none", "":
		return cooperation.None, nil
	case "lazysmp":
		return cooperation.LazySMP, nil
	case "abdada":
		return cooperation.ABDADA, nil
	case "simplifiedabdada":
		return cooperation.SimplifiedABDADA, nil
	default:
		return cooperation.None, fmt.Errorf("unknown cooperation mode %q", e.CooperationMode)
	}
}
