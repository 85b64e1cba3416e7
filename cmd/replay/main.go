package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/ladderfall/ecs/system"
	"github.com/milk9111/ladderfall/levels"
	"github.com/milk9111/ladderfall/prefabs"
	"github.com/milk9111/ladderfall/recording"
	"github.com/milk9111/ladderfall/script"
	"github.com/milk9111/ladderfall/sim"
)

func main() {
	var (
		levelName = flag.String("level", "intro", "level name in levels/ (taken from the recording header with -verify)")
		tapeName  = flag.String("script", "", "tengo tape in prefabs/scripts driving the input")
		ticks     = flag.Int("ticks", 600, "number of ticks to simulate (ignored with -verify)")
		outPath   = flag.String("out", "", "write the run to this .jsonl.zst recording")
		verify    = flag.String("verify", "", "replay the inputs of this recording and check it tick by tick")
		speed     = flag.Float64("speed", 0, "override player_speed (tiles per second, ignored when the recording has a header)")
	)
	flag.Parse()

	if *tapeName == "" && *verify == "" {
		fmt.Fprintln(os.Stderr, "missing -script or -verify")
		os.Exit(2)
	}

	cfg := prefabs.LoadMovementConfig()
	if *speed > 0 {
		cfg.PlayerSpeed = *speed
	}

	var (
		src  system.InputSource
		want []recording.Frame
		n    = *ticks
	)
	if *verify != "" {
		header, frames, err := recording.Open(*verify)
		if err != nil {
			log.Fatalf("read %s: %v", *verify, err)
		}
		if header != nil {
			cfg = header.Config()
			if header.Level != "" {
				*levelName = header.Level
			}
		} else {
			log.Printf("replay: %s has no header; using flags and movement.yaml", *verify)
		}
		want = frames
		src = recording.Inputs(want)
		n = len(want)
	} else {
		tape, err := script.Load(*tapeName)
		if err != nil {
			log.Fatal(err)
		}
		src = tape
	}

	lvl, err := levels.Load(*levelName)
	if err != nil {
		log.Fatal(err)
	}
	reg, err := prefabs.LoadTileRegistry()
	if err != nil {
		log.Fatal(err)
	}
	s, err := sim.New(lvl, reg, cfg)
	if err != nil {
		log.Fatal(err)
	}

	if n <= 0 {
		log.Fatal("nothing to simulate")
	}
	got := recording.FromSnapshots(s.Run(src, n))
	last := got[len(got)-1]
	fmt.Printf("level=%s ticks=%d speed=%g final pos=%v mode=%s history=%d\n",
		*levelName, len(got), cfg.PlayerSpeed, last.Pos, last.Mode, s.History.Len())

	if *outPath != "" {
		if err := writeFrames(*outPath, recording.NewHeader(*levelName, cfg), got); err != nil {
			log.Fatalf("write %s: %v", *outPath, err)
		}
	}

	if want != nil {
		if tick, ok := recording.Compare(want, got); !ok {
			fmt.Fprintf(os.Stderr, "diverged at tick %d\n", tick)
			os.Exit(1)
		}
		fmt.Println("verified")
	}
}

func writeFrames(path string, header recording.Header, frames []recording.Frame) error {
	w, err := recording.Create(path)
	if err != nil {
		return err
	}
	if err := w.WriteHeader(header); err != nil {
		_ = w.Close()
		return err
	}
	for _, f := range frames {
		if err := w.Write(f); err != nil {
			_ = w.Close()
			return err
		}
	}
	return w.Close()
}
