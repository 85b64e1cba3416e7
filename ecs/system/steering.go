package system

import (
	"github.com/milk9111/ladderfall/ecs"
	"github.com/milk9111/ladderfall/ecs/component"
	"github.com/milk9111/ladderfall/movement"
)

// SoundEvent carries a movement.Sound in Event.Data.
const SoundEvent ecs.EventType = "sound"

// SteeringSystem runs the steering state machine for every actor. Only the
// player's committed cells are recorded in History.
type SteeringSystem struct {
	Tiles   movement.TileQuery
	History *movement.History
	Dt      float64
}

func NewSteeringSystem(tiles movement.TileQuery, history *movement.History, dt float64) *SteeringSystem {
	return &SteeringSystem{Tiles: tiles, History: history, Dt: dt}
}

func (s *SteeringSystem) Update(w *ecs.World) {
	if w == nil || s.Tiles == nil {
		return
	}

	ecs.ForEach3(w,
		component.SteeringComponent.Kind(),
		component.IntentComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, steering *movement.Steering, intent *movement.Intent, t *component.Transform) {
			ctx := movement.StepContext{
				Tiles: s.Tiles,
				Sounds: movement.SoundFunc(func(sound movement.Sound) {
					w.Events().Push(ecs.Event{Type: SoundEvent, Entity: e, Data: sound})
				}),
				Dt: s.Dt,
			}
			if ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
				ctx.History = s.History
			}
			movement.Steer(steering, intent, t.Position, ctx)
		})
}

// Sounds extracts the sound cues from drained events, in emission order.
func Sounds(events []ecs.Event) []movement.Sound {
	var out []movement.Sound
	for _, evt := range events {
		if evt.Type != SoundEvent {
			continue
		}
		if sound, ok := evt.Data.(movement.Sound); ok {
			out = append(out, sound)
		}
	}
	return out
}
