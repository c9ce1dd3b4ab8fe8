/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mkarpov/tabiya/internal/board"
	"github.com/mkarpov/tabiya/internal/config"
	"github.com/mkarpov/tabiya/internal/engine"
	"github.com/mkarpov/tabiya/internal/logging"
	"github.com/mkarpov/tabiya/internal/movegen"
)

var out = message.NewPrinter(language.German)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	maxDepth := flag.Int("maxdepth", 0, "iterative-deepening ceiling, 0 uses the config/default")
	perftDepth := flag.Int("perft", 0, "run perft to the given depth on -fen and exit")
	fen := flag.String("fen", "", "fen for -perft; empty uses the standard starting position")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile of the run to ./cpu.pprof")
	memProfile := flag.Bool("memprofile", false, "write a memory profile of the run to ./mem.pprof")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	logging.GetLog()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	} else if *memProfile {
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	if *perftDepth > 0 {
		runPerft(*perftDepth, *fen)
		return
	}

	runLoop(*maxDepth)
}

func runPerft(depth int, fen string) {
	b := board.NewBoard()
	if fen != "" {
		parsed, err := board.ParseFEN(fen)
		if err != nil {
			out.Println("invalid fen:", err)
			return
		}
		b = parsed
	}
	var p movegen.Perft
	for d := 1; d <= depth; d++ {
		p.Run(b, d)
		out.Printf("perft %d: %d nodes\n", d, p.Nodes)
	}
}

// runLoop is a minimal position/go/quit command loop (SPEC_FULL.md
// §6.5), not a full UCI implementation:
//
//	position startpos [moves e2e4 e7e5 ...]
//	position fen <fen> [moves ...]
//	go movetime <ms>
//	quit
func runLoop(maxDepth int) {
	e := engine.NewEngine(maxDepth)
	b := board.NewBoard()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "quit":
			return
		case "position":
			nb, err := applyPosition(fields[1:])
			if err != nil {
				out.Println("error:", err)
				continue
			}
			b = nb
		case "go":
			moveTimeMs := 1000
			for i := 0; i < len(fields)-1; i++ {
				if fields[i] == "movetime" {
					if v, err := strconv.Atoi(fields[i+1]); err == nil {
						moveTimeMs = v
					}
				}
			}
			result, err := e.FindBestMove(b, float64(moveTimeMs)/1000.0, nil)
			if err != nil {
				out.Println("error:", err)
				continue
			}
			fmt.Printf("bestmove %s\n", result.Move)
		default:
			out.Println("unknown command:", fields[0])
		}
	}
}

func applyPosition(fields []string) (*board.Board, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("position: missing startpos/fen")
	}

	var b *board.Board
	var rest []string

	switch fields[0] {
	case "startpos":
		b = board.NewBoard()
		rest = fields[1:]
	case "fen":
		end := 1
		for end < len(fields) && fields[end] != "moves" {
			end++
		}
		parsed, err := board.ParseFEN(strings.Join(fields[1:end], " "))
		if err != nil {
			return nil, err
		}
		b = parsed
		rest = fields[end:]
	default:
		return nil, fmt.Errorf("position: expected startpos or fen, got %q", fields[0])
	}

	if len(rest) == 0 {
		return b, nil
	}
	if rest[0] != "moves" {
		return nil, fmt.Errorf("position: expected moves, got %q", rest[0])
	}

	for _, uciMove := range rest[1:] {
		legalMoves, _ := movegen.GenerateLegalMoves(b)
		m, err := board.ParseAlgebraic(legalMoves, uciMove)
		if err != nil {
			return nil, err
		}
		b.MakeMove(&m)
	}
	return b, nil
}
