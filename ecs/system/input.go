package system

import (
	"github.com/milk9111/ladderfall/ecs"
	"github.com/milk9111/ladderfall/ecs/component"
)

// InputSource supplies the raw input for a tick. Keyboards, scripted tapes
// and recordings all implement it.
type InputSource interface {
	Input(tick int) component.Input
}

// InputFunc adapts a function to InputSource.
type InputFunc func(tick int) component.Input

func (f InputFunc) Input(tick int) component.Input {
	if f == nil {
		return component.Input{}
	}
	return f(tick)
}

type InputSystem struct {
	Source InputSource
	tick   int
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{Source: source}
}

// Tick is the number of ticks polled so far.
func (i *InputSystem) Tick() int {
	return i.tick
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var polled component.Input
	if i.Source != nil {
		polled = i.Source.Input(i.tick)
	}
	i.tick++

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		toolPressed := polled.Tool && !input.Tool
		rewindPressed := polled.Rewind && !input.Rewind
		*input = polled
		input.ToolPressed = toolPressed
		input.RewindPressed = rewindPressed

		if rewindPressed && ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
			_ = ecs.Add(w, e, component.RewindRequestComponent.Kind(), &component.RewindRequest{})
		}
	})
}
