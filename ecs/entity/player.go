package entity

import (
	"fmt"
	"log"

	"github.com/milk9111/ladderfall/ecs"
	"github.com/milk9111/ladderfall/ecs/component"
	"github.com/milk9111/ladderfall/grid"
	"github.com/milk9111/ladderfall/movement"
	"github.com/milk9111/ladderfall/prefabs"
)

// NewPlayerAt builds the player from player.yaml, resting on pos. A broken
// player.yaml falls back to a 1x1 player facing right.
func NewPlayerAt(w *ecs.World, pos grid.Pos) (ecs.Entity, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Printf("entity: %v; using default player", err)
		spec = &prefabs.PlayerSpec{Name: "player", Dimens: grid.Pos{X: 1, Y: 1}}
	}
	return NewPlayerFromSpec(w, spec, pos)
}

func NewPlayerFromSpec(w *ecs.World, spec *prefabs.PlayerSpec, pos grid.Pos) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	steering := movement.NewSteering(pos, spec.Dimens, spec.FacingDirection())

	adds := []func() error{
		func() error { return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}) },
		func() error { return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}) },
		func() error { return ecs.Add(w, e, component.ControlsComponent.Kind(), &movement.Controls{}) },
		func() error { return ecs.Add(w, e, component.SteeringComponent.Kind(), &steering) },
		func() error { return ecs.Add(w, e, component.IntentComponent.Kind(), &movement.Intent{}) },
		func() error {
			return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: movement.Centered(pos)})
		},
	}
	for _, add := range adds {
		if err := add(); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("player: %w", err)
		}
	}
	return e, nil
}
