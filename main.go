package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"torus-snake/ai"
	"torus-snake/audio"
	"torus-snake/game"
	"torus-snake/game/manager"
	"torus-snake/game/rng"
	"torus-snake/game/types"
	"torus-snake/ui"
)

// frontend is a manager.Frontend that owns a window or terminal
type frontend interface {
	manager.Frontend
	Close()
}

func main() {
	os.Exit(run())
}

func run() int {
	width := flag.Int("width", types.DefaultWidth, "Grid width in cells")
	height := flag.Int("height", types.DefaultHeight, "Grid height in cells")
	length := flag.Int("length", types.DefaultInitialLength, "Initial snake length")
	tick := flag.Duration("tick", types.DefaultTickInterval, "Simulation tick interval (lower = faster)")
	seed := flag.Uint64("seed", 0, "Random seed (time based when not given)")
	terminal := flag.Bool("terminal", false, "Play in the terminal instead of a window")
	autopilot := flag.Bool("autopilot", false, "Let the Q-learning agent steer")
	train := flag.Int("train", 0, "Headless episodes the autopilot plays before the visible game")
	music := flag.String("music", audio.DefaultTrack, "WAV file looped as background music (empty = silent)")
	logFile := flag.String("log", "", "Write log output to this file")
	windowWidth := flag.Int("window-width", 800, "Initial window width in pixels")
	windowHeight := flag.Int("window-height", 800, "Initial window height in pixels")
	flag.Parse()

	closeLog, err := setupLog(*logFile, *terminal)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer closeLog()

	if *tick <= 0 {
		fmt.Fprintf(os.Stderr, "invalid tick interval %v\n", *tick)
		return 1
	}

	if !isFlagSet(flag.CommandLine, "seed") {
		*seed = uint64(time.Now().UnixNano())
	}
	r := rng.New(*seed)

	cfg := game.Config{
		Grid:          types.Grid{Width: *width, Height: *height},
		InitialLength: *length,
	}
	g, err := game.New(cfg, r)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	log.Printf("game %s seed=%d", g.UUID, *seed)

	var pilot *ai.QLearning
	if *autopilot {
		pilot = ai.NewQLearning(r)
		if *train > 0 {
			stats, err := pilot.Train(cfg, *train, r)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
			log.Printf("autopilot trained: %d games, best %d, average %.2f, median %.1f",
				stats.Games, stats.BestScore, stats.AverageScore, stats.MedianScore)
		}
	}

	var fe frontend
	if *terminal {
		t, err := ui.OpenTerminal()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fe = t
	} else {
		fe = ui.OpenWindow(int32(*windowWidth), int32(*windowHeight), "Snake")
	}

	if *music != "" {
		player := audio.NewMusic(*music)
		if err := player.Start(); err != nil {
			log.Printf("audio initialization failed, playing silent: %v", err)
		}
		defer player.Close()
	}

	session := manager.NewSession(g, manager.NewFramePacer(*tick), fe, manager.SystemClock{})
	if pilot != nil {
		session.SetPilot(pilot)
	}
	result := session.Run()
	fe.Close()

	if result.Died {
		fmt.Printf("You died! Score: %d\n", result.Score)
	} else {
		fmt.Printf("Score: %d\n", result.Score)
	}
	return 0
}

// isFlagSet reports whether name was given on the command line, so an
// explicit zero is told apart from the default.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// setupLog points the standard logger at path. In terminal mode the screen
// belongs to tcell, so without a path the log is discarded.
func setupLog(path string, terminal bool) (func(), error) {
	if path == "" {
		if terminal {
			log.SetOutput(io.Discard)
		}
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}
