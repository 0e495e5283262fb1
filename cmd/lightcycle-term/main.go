package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lightcycle/lightcycle/internal/game"
	"github.com/lightcycle/lightcycle/internal/term"
)

func main() {
	var envFile string
	var walls string
	var mute bool
	var logFile string

	flag.StringVar(&envFile, "env", "", "optional .env file with LIGHTCYCLE_* settings; size, speed and arena keys are ignored")
	flag.StringVar(&walls, "walls", "", "wall policy override (kill|clamp)")
	flag.BoolVar(&mute, "mute", false, "disable sound")
	flag.StringVar(&logFile, "log", "", "write diagnostics to this file instead of discarding them")
	flag.Parse()

	// The terminal is the display, so diagnostics must not go to stderr.
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	s, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := s.Init(); err != nil {
		log.Fatal(err)
	}
	if logFile == "" {
		log.SetOutput(io.Discard)
	}

	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}
	cols, rows := s.Size()
	// The bottom row is the HUD.
	cfg, err := game.LoadTermConfig(cols, rows-1, files...)
	if err == nil && walls != "" {
		cfg.Walls, err = game.ParseWallPolicy(walls)
	}
	var m *game.Match
	if err == nil {
		m, err = game.NewMatch(cfg)
	}
	if err != nil {
		s.Fini()
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}

	term.New(s, m, mute).Run()
	s.Fini()
}
