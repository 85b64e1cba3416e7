package system

import (
	"github.com/milk9111/ladderfall/ecs"
	"github.com/milk9111/ladderfall/ecs/component"
	"github.com/milk9111/ladderfall/movement"
)

// IntentSystem turns polled input into steering intent.
type IntentSystem struct {
	Config movement.Config
	Dt     float64
}

func NewIntentSystem(cfg movement.Config) *IntentSystem {
	return &IntentSystem{Config: cfg, Dt: cfg.TickDuration()}
}

func (s *IntentSystem) Update(w *ecs.World) {
	ecs.ForEach4(w,
		component.InputComponent.Kind(),
		component.ControlsComponent.Kind(),
		component.SteeringComponent.Kind(),
		component.IntentComponent.Kind(),
		func(_ ecs.Entity, input *component.Input, ctl *movement.Controls, steering *movement.Steering, intent *movement.Intent) {
			if input.ToolPressed {
				ctl.ToolEquipped = !ctl.ToolEquipped
			}
			raw := movement.Input{MoveX: input.MoveX, MoveY: input.MoveY, Jump: input.Jump}
			movement.ResolveIntent(raw, ctl, *steering, intent, s.Dt, s.Config)
		})
}
