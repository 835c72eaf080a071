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

// Package enginelog is a helper for the "github.com/op/go-logging" package
// to reduce the lines of code within each go file to one line. The
// functions return Logger instances which are configured with the
// necessary backends and formatters.
package enginelog

import (
	"log"
	"os"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/abdada-go/engine/internal/config"
)

// Out is a locale-aware printer, used by callers that want thousands
// separators on node counts and NPS figures in log output.
var Out = message.NewPrinter(language.English)

// Debug gates the defensive-branch diagnostics: the search log's note
// that a stale TT move was discarded, and the engine log's note that no
// worker published a result for a depth. These are expected under
// contention, not errors, so they only print when Debug is set.
var Debug = false

var (
	engineLog *logging.Logger
	searchLog *logging.Logger
	testLog   *logging.Logger

	standardFormat = logging.MustStringFormatter(`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
)

func init() {
	engineLog = logging.MustGetLogger("engine")
	searchLog = logging.MustGetLogger("search")
	testLog = logging.MustGetLogger("test")
}

// GetLog returns the engine-wide logger (config, driver setup, CLI),
// preconfigured with a stdout backend at the configured level.
func GetLog() *logging.Logger {
	backend := logging.AddModuleLevel(logging.NewBackendFormatter(logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix), standardFormat))
	backend.SetLevel(logging.Level(config.LogLevel), "")
	engineLog.SetBackend(backend)
	return engineLog
}

// GetSearchLog returns the logger used from within the search workers
// themselves - hot-path callers should guard calls with Debug, since
// the logging package itself is not on the hot path's critical section.
func GetSearchLog() *logging.Logger {
	backend := logging.AddModuleLevel(logging.NewBackendFormatter(logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix), standardFormat))
	backend.SetLevel(logging.Level(config.LogLevel), "")
	searchLog.SetBackend(backend)
	return searchLog
}

// GetTestLog returns a logger for use from _test.go files, always at
// debug level regardless of the configured engine log level.
func GetTestLog() *logging.Logger {
	backend := logging.AddModuleLevel(logging.NewBackendFormatter(logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix), standardFormat))
	backend.SetLevel(logging.DEBUG, "")
	testLog.SetBackend(backend)
	return testLog
}
