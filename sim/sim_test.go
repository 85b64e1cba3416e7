package sim

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/milk9111/ladderfall/ecs/component"
	"github.com/milk9111/ladderfall/ecs/system"
	"github.com/milk9111/ladderfall/grid"
	"github.com/milk9111/ladderfall/levels"
	"github.com/milk9111/ladderfall/movement"
	"github.com/milk9111/ladderfall/prefabs"
	"github.com/milk9111/ladderfall/script"
	"github.com/milk9111/ladderfall/tile"
)

func registry(t *testing.T) *tile.Registry {
	t.Helper()
	reg, err := prefabs.LoadTileRegistry()
	if err != nil {
		t.Fatalf("tiles: %v", err)
	}
	return reg
}

func fastConfig() movement.Config {
	cfg := movement.DefaultConfig()
	cfg.PlayerSpeed = 8
	return cfg
}

func newSim(t *testing.T, lvl *levels.Level, cfg movement.Config) *Simulation {
	t.Helper()
	s, err := New(lvl, registry(t), cfg)
	if err != nil {
		t.Fatalf("new sim: %v", err)
	}
	return s
}

func jumpRightOnce() system.InputSource {
	return system.InputFunc(func(tick int) component.Input {
		if tick == 0 {
			return component.Input{MoveX: 1, Jump: true}
		}
		return component.Input{}
	})
}

func countSound(snaps []Snapshot, want movement.Sound) int {
	n := 0
	for _, snap := range snaps {
		for _, s := range snap.Sounds {
			if s == want {
				n++
			}
		}
	}
	return n
}

func TestJumpClearsTwoTileGap(t *testing.T) {
	lvl := levels.FromRows(
		"...P......",
		"####..####",
	)
	lvl.Origin = grid.Pos{X: -3, Y: 0}
	lvl.Bounds = &tile.Bounds{X: -3, Y: -20, Width: 10, Height: 40}
	s := newSim(t, lvl, fastConfig())

	snaps := s.Run(jumpRightOnce(), 60)
	if snaps[0].Mode.Kind != movement.Jumping {
		t.Fatalf("tick 0 mode = %v, want jumping", snaps[0].Mode.Kind)
	}
	if countSound(snaps[:1], movement.SoundJump) != 1 {
		t.Fatalf("expected a jump cue on tick 0, got %v", snaps[0].Sounds)
	}

	landed := -1
	sawFalling := false
	for _, snap := range snaps {
		if snap.Mode.Kind == movement.Falling {
			sawFalling = true
		}
		if snap.Tick > 0 && snap.Mode.Kind == movement.Grounded {
			landed = snap.Tick
			break
		}
	}
	if !sawFalling {
		t.Fatalf("jump never passed its apex")
	}
	if landed < 0 || landed > 30 {
		t.Fatalf("landed at tick %d, want within 30 ticks", landed)
	}

	last := snaps[len(snaps)-1]
	if last.Mode.Kind != movement.Grounded || last.Pos != (grid.Pos{X: 3, Y: 1}) {
		t.Fatalf("final state = %v at %v, want grounded at (3,1)", last.Mode.Kind, last.Pos)
	}
	if n := countSound(snaps, movement.SoundCannotPerformAction); n != 0 {
		t.Fatalf("unexpected cannot-perform cues: %d", n)
	}
}

func TestJumpFallsIntoFourTileGap(t *testing.T) {
	lvl := levels.FromRows(
		"...P........",
		"####....####",
	)
	lvl.Origin = grid.Pos{X: -3, Y: 0}
	lvl.Bounds = &tile.Bounds{X: -50, Y: -200, Width: 200, Height: 400}
	s := newSim(t, lvl, fastConfig())

	snaps := s.Run(jumpRightOnce(), 120)
	sawFalling := false
	for _, snap := range snaps[1:] {
		if snap.Mode.Kind == movement.Falling {
			sawFalling = true
		}
		if snap.Mode.Kind == movement.Grounded {
			t.Fatalf("tick %d: landed at %v across a four tile gap", snap.Tick, snap.Pos)
		}
	}
	if !sawFalling {
		t.Fatalf("jump never converted to a fall")
	}
	if y := snaps[len(snaps)-1].Position.Y; y >= 0 {
		t.Fatalf("final y = %v, want below the floor", y)
	}
}

func TestJumpGapTape(t *testing.T) {
	lvl, err := levels.Load("gaps")
	if err != nil {
		t.Fatalf("level: %v", err)
	}
	tape, err := script.Load("jump_gap")
	if err != nil {
		t.Fatalf("tape: %v", err)
	}
	s := newSim(t, lvl, fastConfig())

	snaps := s.Run(tape, 60)
	last := snaps[len(snaps)-1]
	if last.Mode.Kind != movement.Grounded || last.Pos != (grid.Pos{X: 3, Y: 1}) {
		t.Fatalf("final state = %v at %v, want grounded at (3,1)", last.Mode.Kind, last.Pos)
	}
}

func TestLadderTape(t *testing.T) {
	lvl, err := levels.Load("intro")
	if err != nil {
		t.Fatalf("level: %v", err)
	}
	tape, err := script.Load("ladder")
	if err != nil {
		t.Fatalf("tape: %v", err)
	}
	s := newSim(t, lvl, movement.DefaultConfig())

	snaps := s.Run(tape, 140)
	sawClimbing := false
	for _, snap := range snaps {
		if snap.Mode.Kind == movement.Climbing {
			sawClimbing = true
			break
		}
	}
	if !sawClimbing {
		t.Fatalf("player never climbed")
	}

	last := snaps[len(snaps)-1]
	if last.Mode.Kind != movement.Grounded {
		t.Fatalf("final mode = %v, want grounded", last.Mode.Kind)
	}
	if last.Pos.Y != 4 || last.Pos.X < 5 {
		t.Fatalf("final pos = %v, want on the upper floor", last.Pos)
	}
	if n := countSound(snaps, movement.SoundLadderStep); n != 3 {
		t.Fatalf("ladder steps = %d, want 3", n)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	lvl, err := levels.Load("intro")
	if err != nil {
		t.Fatalf("level: %v", err)
	}
	run := func() []Snapshot {
		tape, err := script.Load("ladder")
		if err != nil {
			t.Fatalf("tape: %v", err)
		}
		return newSim(t, lvl, movement.DefaultConfig()).Run(tape, 200)
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		for i := range a {
			if !reflect.DeepEqual(a[i], b[i]) {
				t.Fatalf("runs diverge at tick %d: %+v vs %+v", i, a[i], b[i])
			}
		}
		t.Fatalf("runs diverge")
	}
}

func TestRewindRestoresPreviousCell(t *testing.T) {
	lvl, err := levels.Load("intro")
	if err != nil {
		t.Fatalf("level: %v", err)
	}
	s := newSim(t, lvl, movement.DefaultConfig())

	for i := 0; i < 40; i++ {
		s.Step(component.Input{MoveX: 1})
	}
	positions := s.History.Positions()
	if len(positions) < 2 {
		t.Fatalf("history too short after walking: %v", positions)
	}
	want := positions[len(positions)-2]

	s.Step(component.Input{Rewind: true})
	if got := s.Steering().Pos; got != want {
		t.Fatalf("pos after rewind = %v, want %v", got, want)
	}
	if got := s.Body().Position; got != movement.Centered(want) {
		t.Fatalf("body after rewind = %v, want %v", got, movement.Centered(want))
	}

	// Holding the button does not rewind again.
	s.Step(component.Input{Rewind: true})
	if got := s.Steering().Pos; got != want {
		t.Fatalf("held rewind moved the player to %v", got)
	}
}

func TestToolBlocksJump(t *testing.T) {
	lvl, err := levels.Load("intro")
	if err != nil {
		t.Fatalf("level: %v", err)
	}
	s := newSim(t, lvl, movement.DefaultConfig())

	s.Step(component.Input{Tool: true})
	s.Step(component.Input{})
	for i := 0; i < 5; i++ {
		s.Step(component.Input{Jump: i == 0})
		if kind := s.Steering().Mode.Kind; kind != movement.Grounded {
			t.Fatalf("step %d: mode = %v with the tool equipped", i, kind)
		}
	}

	s.Step(component.Input{Tool: true})
	s.Step(component.Input{Jump: true})
	if kind := s.Steering().Mode.Kind; kind != movement.Jumping {
		t.Fatalf("mode = %v after unequipping, want jumping", kind)
	}
}

func TestTickCounts(t *testing.T) {
	lvl, err := levels.Load("intro")
	if err != nil {
		t.Fatalf("level: %v", err)
	}
	s := newSim(t, lvl, movement.DefaultConfig())
	snaps := s.Run(system.InputFunc(nil), 3)
	for i, snap := range snaps {
		if snap.Tick != i {
			t.Fatalf("snapshot %d has tick %d", i, snap.Tick)
		}
	}
	if s.Tick() != 3 {
		t.Fatalf("Tick() = %d, want 3", s.Tick())
	}
}

// randomInputs holds each random input for a few ticks so that walks, climbs
// and jumps get far enough to interact with the level.
func randomInputs(seed int64) system.InputSource {
	rng := rand.New(rand.NewSource(seed))
	var (
		current component.Input
		left    int
	)
	axis := func() float64 {
		switch rng.Intn(4) {
		case 0:
			return -1
		case 1:
			return 1
		case 2:
			return rng.Float64()*2 - 1
		default:
			return 0
		}
	}
	return system.InputFunc(func(int) component.Input {
		if left <= 0 {
			current = component.Input{
				MoveX:  axis(),
				MoveY:  axis(),
				Jump:   rng.Intn(3) == 0,
				Tool:   rng.Intn(20) == 0,
				Rewind: rng.Intn(25) == 0,
			}
			left = 1 + rng.Intn(30)
		}
		left--
		return current
	})
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestRandomInputKeepsSteeringConsistent(t *testing.T) {
	configs := []struct {
		name string
		cfg  movement.Config
	}{
		{"default", movement.DefaultConfig()},
		{"fast", fastConfig()},
	}
	for _, name := range []string{"intro", "gaps"} {
		lvl, err := levels.Load(name)
		if err != nil {
			t.Fatalf("level %s: %v", name, err)
		}
		for _, c := range configs {
			t.Run(name+"/"+c.name, func(t *testing.T) {
				for seed := int64(1); seed <= 25; seed++ {
					runRandom(t, lvl, c.cfg, seed, 2000)
				}
			})
		}
	}
}

func runRandom(t *testing.T, lvl *levels.Level, cfg movement.Config, seed int64, ticks int) {
	t.Helper()
	s := newSim(t, lvl, cfg)
	src := randomInputs(seed)

	tick := 0
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("seed %d tick %d: panic: %v", seed, tick, r)
		}
	}()
	for ; tick < ticks; tick++ {
		s.Step(src.Input(tick))
		st := s.Steering()
		dx := abs(st.Destination.X - st.Pos.X)
		dy := abs(st.Destination.Y - st.Pos.Y)
		if dx > 1 || dy > 1 || (dx != 0 && dy != 0) {
			t.Fatalf("seed %d tick %d: destination %v too far from pos %v in %v",
				seed, tick, st.Destination, st.Pos, st.Mode.Kind)
		}
	}
}
