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

package main

import (
	"context"
	"flag"
	"os"
	"runtime"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/abdada-go/engine/internal/chesscore"
	"github.com/abdada-go/engine/internal/config"
	"github.com/abdada-go/engine/internal/driver"
	"github.com/abdada-go/engine/internal/enginelog"
	"github.com/abdada-go/engine/internal/ttable"
	"github.com/abdada-go/engine/internal/util"
)

var out = message.NewPrinter(language.English)

const version = "0.1"

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(critical|error|warning|notice|info|debug)")
	debug := flag.Bool("debug", false, "log defensive-branch diagnostics (stale TT moves, early-exit races)")
	fen := flag.String("fen", chesscore.StartFEN, "FEN of the position to search")
	depth := flag.Int("depth", 0, "search depth (0 = use config.toml's SearchDepth)")
	threads := flag.Int("threads", 0, "number of worker goroutines per depth (0 = use config.toml's NumThreads)")
	mode := flag.String("mode", "", "cooperation mode: None|LazySMP|ABDADA|SimplifiedABDADA (empty = use config.toml)")
	ttSizeMB := flag.Int("ttsize", 0, "transposition table size in MB (0 = use config.toml)")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile of the search to ./cpu.pprof")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.ConfFile = *configFile
	config.Setup()

	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	enginelog.Debug = *debug
	log := enginelog.GetLog()

	if *threads > 0 {
		config.Settings.Engine.NumThreads = *threads
	}
	if *ttSizeMB > 0 {
		config.Settings.Engine.TTSizeMB = *ttSizeMB
	}
	if *mode != "" {
		config.Settings.Engine.CooperationMode = *mode
	}
	searchDepth := config.Settings.Engine.SearchDepth
	if *depth > 0 {
		searchDepth = int8(*depth)
	}

	coopMode, err := config.Settings.Engine.Mode()
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	pos, err := chesscore.ParseFEN(*fen)
	if err != nil {
		log.Errorf("invalid FEN %q: %v", *fen, err)
		os.Exit(1)
	}

	tt := ttable.NewTable(config.Settings.Engine.TTSizeMB, config.Settings.Engine.ReplacementPolicy())
	d := driver.NewDriver(config.Settings.Engine.NumThreads, tt, coopMode, config.Settings.Engine.UseQuiescence)

	log.Infof("searching %q to depth %d with %d threads under %s", *fen, searchDepth, config.Settings.Engine.NumThreads, coopMode)

	for res := range d.Search(context.Background(), pos, searchDepth) {
		out.Printf("depth %2d  eval %6d  move %-6s  nodes %12d  nps %10d  time %v\n",
			res.Depth, res.Eval, res.Move, res.Nodes, util.Nps(res.Nodes, res.Duration), res.Duration)
	}

	out.Println(tt.String())
}

func printVersionInfo() {
	out.Printf("abdada-go %s\n", version)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
