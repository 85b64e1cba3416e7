package system

import (
	"github.com/milk9111/ladderfall/ecs"
	"github.com/milk9111/ladderfall/ecs/component"
	"github.com/milk9111/ladderfall/movement"
)

type KinematicSystem struct {
	Speed float64
	Dt    float64
}

func NewKinematicSystem(cfg movement.Config) *KinematicSystem {
	return &KinematicSystem{Speed: cfg.PlayerSpeed, Dt: cfg.TickDuration()}
}

func (s *KinematicSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.SteeringComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, steering *movement.Steering, t *component.Transform) {
		movement.Integrate(steering, t, s.Speed, s.Dt)
	})
}
