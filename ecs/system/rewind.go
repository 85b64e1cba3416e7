package system

import (
	"log"

	"github.com/milk9111/ladderfall/ecs"
	"github.com/milk9111/ladderfall/ecs/component"
	"github.com/milk9111/ladderfall/movement"
)

type RewindSystem struct {
	History *movement.History
}

func NewRewindSystem(history *movement.History) *RewindSystem {
	return &RewindSystem{History: history}
}

// Update performs pending rewind requests. It runs before intent resolution so
// the restored cell is what the steering pass starts from.
func (s *RewindSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.RewindRequestComponent.Kind(), func(e ecs.Entity, _ *component.RewindRequest) {
		defer ecs.Remove(w, e, component.RewindRequestComponent.Kind())

		steering, sok := ecs.Get(w, e, component.SteeringComponent.Kind())
		t, tok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !sok || !tok {
			return
		}
		if !movement.Rewind(steering, t, s.History) {
			log.Printf("rewind: nothing to rewind to")
			return
		}
		if intent, ok := ecs.Get(w, e, component.IntentComponent.Kind()); ok {
			*intent = movement.Intent{}
		}
	})
}
