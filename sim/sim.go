// Package sim runs a level headlessly: one fixed tick per Step, no rendering
// and no wall clock.
package sim

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ladderfall/ecs"
	"github.com/milk9111/ladderfall/ecs/component"
	"github.com/milk9111/ladderfall/ecs/entity"
	"github.com/milk9111/ladderfall/ecs/system"
	"github.com/milk9111/ladderfall/grid"
	"github.com/milk9111/ladderfall/levels"
	"github.com/milk9111/ladderfall/movement"
	"github.com/milk9111/ladderfall/tile"
)

// Simulation owns one loaded level and its player.
type Simulation struct {
	Config  movement.Config
	Level   *levels.Level
	Tiles   *tile.Map
	World   *ecs.World
	History *movement.History
	Player  ecs.Entity

	scheduler *ecs.Scheduler
	input     *system.InputSystem
	pending   component.Input
}

// Snapshot is the observable state of the player after a tick.
type Snapshot struct {
	Tick        int
	Input       component.Input
	Pos         grid.Pos
	Destination grid.Pos
	Facing      grid.Direction1D
	Mode        movement.Mode
	Position    cp.Vector
	Sounds      []movement.Sound
}

func New(lvl *levels.Level, reg *tile.Registry, cfg movement.Config) (*Simulation, error) {
	w := ecs.NewWorld()
	built, player, err := entity.LoadLevelToWorld(w, lvl, reg)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	steering, ok := ecs.Get(w, player, component.SteeringComponent.Kind())
	if !ok {
		return nil, fmt.Errorf("sim: player has no steering")
	}

	s := &Simulation{
		Config:  cfg,
		Level:   lvl,
		Tiles:   built.Tiles,
		World:   w,
		History: movement.NewHistory(steering.Pos),
		Player:  player,
	}
	s.input = system.NewInputSystem(system.InputFunc(func(int) component.Input { return s.pending }))
	s.scheduler = ecs.NewScheduler(
		s.input,
		system.NewRewindSystem(s.History),
		system.NewIntentSystem(cfg),
		system.NewSteeringSystem(s.Tiles, s.History, cfg.TickDuration()),
		system.NewKinematicSystem(cfg),
		system.NewWrapSystem(),
	)
	return s, nil
}

// Tick is the number of completed ticks.
func (s *Simulation) Tick() int {
	return s.input.Tick()
}

// Step runs one tick with in and returns the sounds it raised.
func (s *Simulation) Step(in component.Input) []movement.Sound {
	s.pending = in
	s.scheduler.Update(s.World)
	return system.Sounds(s.World.Events().Drain())
}

// Run steps ticks times, polling src for each tick's input.
func (s *Simulation) Run(src system.InputSource, ticks int) []Snapshot {
	out := make([]Snapshot, 0, ticks)
	for i := 0; i < ticks; i++ {
		tick := s.Tick()
		in := src.Input(tick)
		sounds := s.Step(in)
		snap := s.Snapshot()
		snap.Tick = tick
		snap.Input = in
		snap.Sounds = sounds
		out = append(out, snap)
	}
	return out
}

// Snapshot reports the player state without the per-tick fields.
func (s *Simulation) Snapshot() Snapshot {
	steering := s.Steering()
	return Snapshot{
		Tick:        s.Tick(),
		Pos:         steering.Pos,
		Destination: steering.Destination,
		Facing:      steering.Facing.X,
		Mode:        steering.Mode,
		Position:    s.Body().Position,
	}
}

func (s *Simulation) Steering() movement.Steering {
	steering, _ := ecs.Get(s.World, s.Player, component.SteeringComponent.Kind())
	if steering == nil {
		return movement.Steering{}
	}
	return *steering
}

func (s *Simulation) Body() component.Transform {
	t, _ := ecs.Get(s.World, s.Player, component.TransformComponent.Kind())
	if t == nil {
		return component.Transform{}
	}
	return *t
}
