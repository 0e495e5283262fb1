package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lightcycle/lightcycle/internal/game"
	"github.com/lightcycle/lightcycle/internal/screen"
)

func main() {
	var envFile string
	var walls string
	var probe string
	var noMenus bool
	var mute bool

	flag.StringVar(&envFile, "env", ".env", "optional .env file with LIGHTCYCLE_* settings")
	flag.StringVar(&walls, "walls", "", "wall policy override (kill|clamp)")
	flag.StringVar(&probe, "probe", "", "self-collision probe override (leading-half|body)")
	flag.BoolVar(&noMenus, "no-menus", false, "start playing immediately, without menu or pause")
	flag.BoolVar(&mute, "mute", false, "disable sound")
	flag.Parse()

	cfg, err := game.LoadConfig(game.DefaultConfig(), envFile)
	if err != nil {
		log.Fatal(err)
	}
	if walls != "" {
		if cfg.Walls, err = game.ParseWallPolicy(walls); err != nil {
			log.Fatal(err)
		}
	}
	if probe != "" {
		if cfg.Probe, err = game.ParseProbe(probe); err != nil {
			log.Fatal(err)
		}
	}
	if noMenus {
		cfg.Menus = false
	}

	m, err := game.NewMatch(cfg)
	if err != nil {
		log.Fatal(err)
	}
	var opts []screen.Option
	if mute {
		opts = append(opts, screen.WithoutSound())
	}

	ebiten.SetWindowTitle("Tron")
	ebiten.SetWindowSize(cfg.ArenaWidth, cfg.ArenaHeight)
	ebiten.SetTPS(screen.TPS(cfg))
	if err := ebiten.RunGame(screen.New(m, opts...)); err != nil {
		log.Fatal(err)
	}
}
