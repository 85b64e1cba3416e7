package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ladderfall/prefabs"
)

func main() {
	levelName := flag.String("level", "intro", "level name in levels/ (basename, .json optional)")
	tapeName := flag.String("tape", "", "drive the player from a tengo tape in prefabs/scripts instead of the keyboard")
	record := flag.String("record", "", "write a recording of the session to this path")
	debug := flag.Bool("debug", false, "draw grid and steering state")
	watch := flag.Bool("watch", true, "reload the level when level or prefab files change")
	mute := flag.Bool("mute", false, "disable sound cues")
	flag.Parse()

	cfg := prefabs.LoadMovementConfig()
	ebiten.SetTPS(cfg.TickRate)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("ladderfall")

	game, err := NewGame(Options{
		Level:  *levelName,
		Tape:   *tapeName,
		Record: *record,
		Debug:  *debug,
		Watch:  *watch,
		Mute:   *mute,
		Config: cfg,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
