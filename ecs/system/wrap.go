package system

import (
	"github.com/milk9111/ladderfall/ecs"
	"github.com/milk9111/ladderfall/ecs/component"
	"github.com/milk9111/ladderfall/movement"
)

// WrapSystem wraps actors around the bounds of the loaded level. It does
// nothing until a LevelBounds entity exists.
type WrapSystem struct{}

func NewWrapSystem() *WrapSystem {
	return &WrapSystem{}
}

func (s *WrapSystem) Update(w *ecs.World) {
	boundsEntity, ok := ecs.First(w, component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}
	lb, ok := ecs.Get(w, boundsEntity, component.LevelBoundsComponent.Kind())
	if !ok || lb.Bounds.Width <= 0 || lb.Bounds.Height <= 0 {
		return
	}
	bb := lb.Bounds.BB()

	ecs.ForEach2(w, component.SteeringComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, steering *movement.Steering, t *component.Transform) {
		movement.Wrap(steering, t, bb)
	})
}
