package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ladderfall/ecs/component"
)

const stickDeadzone = 0.2

// KeyboardInput polls the keyboard and the first standard gamepad.
type KeyboardInput struct{}

func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{}
}

func (k *KeyboardInput) Input(int) component.Input {
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	up := ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	down := ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)

	var in component.Input
	in.Jump = ebiten.IsKeyPressed(ebiten.KeySpace)
	in.Tool = ebiten.IsKeyPressed(ebiten.KeyE)
	in.Rewind = ebiten.IsKeyPressed(ebiten.KeyZ) || ebiten.IsKeyPressed(ebiten.KeyBackspace)

	if left {
		in.MoveX -= 1
	}
	if right {
		in.MoveX += 1
	}
	if up {
		in.MoveY += 1
	}
	if down {
		in.MoveY -= 1
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Abs(lx) > stickDeadzone {
			in.MoveX = lx
		}
		// Stick y grows downward.
		if math.Abs(ly) > stickDeadzone {
			in.MoveY = -ly
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft) {
			in.MoveX = -1
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight) {
			in.MoveX = 1
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftTop) {
			in.MoveY = 1
		}
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftBottom) {
			in.MoveY = -1
		}

		in.Jump = in.Jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		in.Tool = in.Tool || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightLeft)
		in.Rewind = in.Rewind || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomLeft)
	}
	return in
}
