package movement

import "github.com/jakecoffman/cp"

// Wrap moves a body that left the world bounds back in from the opposite edge,
// shifting the committed cell and destination with it.
//
// Only a wrap across the bottom edge shifts a fall's starting height. A fall
// that wraps across the top keeps its old curve origin.
// TODO: confirm whether top wraps while falling should also move StartingY.
func Wrap(s *Steering, body *Body, bounds cp.BB) {
	width := bounds.R - bounds.L
	height := bounds.T - bounds.B

	if width > 0 {
		switch {
		case body.Position.X >= bounds.R:
			shiftX(s, body, -width)
		case body.Position.X < bounds.L:
			shiftX(s, body, width)
		}
	}

	if height > 0 {
		switch {
		case body.Position.Y >= bounds.T:
			shiftY(s, body, -height)
		case body.Position.Y < bounds.B:
			shiftY(s, body, height)
			if s.Mode.Kind == Falling {
				s.Mode.StartingY += height
			}
		}
	}
}

func shiftX(s *Steering, body *Body, dx float64) {
	body.Position.X += dx
	s.Pos.X += int(dx)
	s.Destination.X += int(dx)
}

func shiftY(s *Steering, body *Body, dy float64) {
	body.Position.Y += dy
	s.Pos.Y += int(dy)
	s.Destination.Y += int(dy)
}
