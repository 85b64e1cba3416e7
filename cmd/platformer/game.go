package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/ladderfall/common"
	"github.com/milk9111/ladderfall/ecs/system"
	"github.com/milk9111/ladderfall/levels"
	"github.com/milk9111/ladderfall/movement"
	"github.com/milk9111/ladderfall/prefabs"
	"github.com/milk9111/ladderfall/recording"
	"github.com/milk9111/ladderfall/script"
	"github.com/milk9111/ladderfall/sim"
)

const (
	baseWidth  = 1280
	baseHeight = 720
	tileSize   = 32.0
	// cameraFollow is the fraction of the distance to the player the camera
	// covers each tick.
	cameraFollow = 0.15
)

type Options struct {
	Level  string
	Tape   string
	Record string
	Debug  bool
	Watch  bool
	Mute   bool
	Config movement.Config
}

type Game struct {
	opts Options

	sim      *sim.Simulation
	input    system.InputSource
	watcher  *prefabs.Watcher
	sounds   *SoundBank
	recorder *recording.Writer
	// takes counts the recordings started this session; each level
	// rebuild restarts the tick count and so begins a new file.
	takes int

	camX, camY float64
	lastSounds []movement.Sound
}

func NewGame(opts Options) (*Game, error) {
	g := &Game{opts: opts}
	if !opts.Mute {
		g.sounds = NewSoundBank()
	}

	if opts.Tape != "" {
		tape, err := script.Load(opts.Tape)
		if err != nil {
			return nil, err
		}
		g.input = tape
	} else {
		g.input = NewKeyboardInput()
	}

	if err := g.loadLevel(); err != nil {
		return nil, err
	}
	pos := g.sim.Body().Position
	g.camX, g.camY = pos.X, pos.Y

	if opts.Record != "" {
		if err := g.startRecording(); err != nil {
			return nil, fmt.Errorf("record: %w", err)
		}
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher("levels", "prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("watch: %v; live reload disabled", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) loadLevel() error {
	lvl, err := levels.Load(g.opts.Level)
	if err != nil {
		return err
	}
	reg, err := prefabs.LoadTileRegistry()
	if err != nil {
		return err
	}
	s, err := sim.New(lvl, reg, g.opts.Config)
	if err != nil {
		return err
	}
	g.sim = s
	return nil
}

// startRecording closes the current recording, if any, and opens the next
// take with a header describing the running level.
func (g *Game) startRecording() error {
	g.stopRecording()
	path := recording.RotatePath(g.opts.Record, g.takes)
	w, err := recording.Create(path)
	if err != nil {
		return err
	}
	if err := w.WriteHeader(recording.NewHeader(g.opts.Level, g.opts.Config)); err != nil {
		_ = w.Close()
		return err
	}
	g.takes++
	g.recorder = w
	return nil
}

func (g *Game) stopRecording() {
	if g.recorder == nil {
		return
	}
	if err := g.recorder.Close(); err != nil {
		log.Printf("record: %v", err)
	}
	g.recorder = nil
}

// reload rebuilds the level in place. A broken file keeps the running level.
func (g *Game) reload(reason string) {
	prevSim, prevConfig := g.sim, g.opts.Config
	g.opts.Config = prefabs.LoadMovementConfig()
	if err := g.loadLevel(); err != nil {
		log.Printf("reload %s: %v", reason, err)
		g.sim, g.opts.Config = prevSim, prevConfig
		return
	}
	log.Printf("reload: %s", reason)

	if g.opts.Record != "" {
		if err := g.startRecording(); err != nil {
			log.Printf("record: %v; recording stopped", err)
		}
	}
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("watch: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) Update() error {
	g.drainWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.opts.Debug = !g.opts.Debug
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reload("restart")
	}

	tick := g.sim.Tick()
	in := g.input.Input(tick)
	g.lastSounds = g.sim.Step(in)
	g.sounds.Play(g.lastSounds)

	if g.recorder != nil {
		snap := g.sim.Snapshot()
		snap.Tick = tick
		snap.Input = in
		snap.Sounds = g.lastSounds
		if err := g.recorder.Write(recording.FromSnapshot(snap)); err != nil {
			log.Printf("record: %v; recording stopped", err)
			g.stopRecording()
		}
	}

	pos := g.sim.Body().Position
	g.camX = common.Lerp(g.camX, pos.X, cameraFollow)
	g.camY = common.Lerp(g.camY, pos.Y, cameraFollow)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.drawTiles(screen)
	g.drawPlayer(screen)
	g.drawHUD(screen)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	g.stopRecording()
}
