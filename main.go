package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/MarcBasas/constellations/internal/config"
	"github.com/MarcBasas/constellations/internal/game"
)

func main() {
	flag.Parse()
	log.SetPrefix("constellations: ")

	if *cpuProfileFlag != "" {
		stop, err := startCPUProfile(*cpuProfileFlag)
		if err != nil {
			log.Fatalf("CPU profiling: %v", err)
		}
		defer stop()
	}

	s := seed()
	log.Printf("Starting with seed %d", s)

	g, err := game.NewGame(game.Options{
		Seed:   s,
		Debug:  *debugFlag,
		Tone:   *toneFlag,
		ToneHz: *toneHzFlag,
	})
	if err != nil {
		_ = zenity.Error(err.Error(), zenity.Title(config.WindowTitle))
		log.Fatalf("Initialization failed: %v", err)
	}
	defer g.Close()

	scale := *scaleFlag
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(config.WindowWidth*scale), int(config.WindowHeight*scale))
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(config.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("Game loop failed: %v", err)
		_ = zenity.Error(err.Error(), zenity.Title(config.WindowTitle))
	}
}
