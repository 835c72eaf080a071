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

package config

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdada-go/engine/internal/cooperation"
	"github.com/abdada-go/engine/internal/ttable"
)

// make tests run in the projects root directory.
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestSetupAppliesDefaults(t *testing.T) {
	initialized = false
	Setup()
	assert.Equal(t, "TwoTwoSplit", Settings.Engine.TTPolicy)
	assert.Equal(t, "ABDADA", Settings.Engine.CooperationMode)
	assert.True(t, Settings.Engine.UseQuiescence)
	assert.GreaterOrEqual(t, Settings.Engine.NumThreads, 1)
	assert.Equal(t, 5, LogLevel)
}

func TestSetupIsIdempotent(t *testing.T) {
	initialized = false
	Setup()
	Settings.Engine.NumThreads = 99
	Setup() // second call must be a no-op
	assert.Equal(t, 99, Settings.Engine.NumThreads)
}

func TestReplacementPolicyResolvesKnownNames(t *testing.T) {
	e := engineConfiguration{TTPolicy: "DepthFirst"}
	assert.Equal(t, ttable.DepthFirst{}, e.ReplacementPolicy())
	e.TTPolicy = "RandomReplace"
	assert.Equal(t, ttable.RandomReplace{}, e.ReplacementPolicy())
	e.TTPolicy = "unknown"
	assert.Equal(t, ttable.TwoTwoSplit{}, e.ReplacementPolicy())
}

func TestModeResolvesKnownNames(t *testing.T) {
	e := engineConfiguration{CooperationMode: "LazySMP"}
	mode, err := e.Mode()
	require.NoError(t, err)
	assert.Equal(t, cooperation.LazySMP, mode)

	e.CooperationMode = "bogus"
	_, err = e.Mode()
	assert.Error(t, err)
}

func TestStringIncludesEngineFields(t *testing.T) {
	Setup()
	out := Settings.String()
	assert.Contains(t, out, "Engine Config:")
	assert.Contains(t, out, "TTSizeMB")
}
