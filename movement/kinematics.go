package movement

import (
	"math"

	"github.com/milk9111/ladderfall/common"
	"github.com/milk9111/ladderfall/grid"
)

// Integrate moves body toward the steering destination for one tick.
func Integrate(s *Steering, body *Body, speed, dt float64) {
	switch s.Mode.Kind {
	case Grounded:
		body.Position.Y = float64(s.Pos.Y)
		body.Velocity.Y = 0
		body.Position.X, body.Velocity.X = approach(body.Position.X, float64(s.Destination.X), speed, dt)
	case Climbing:
		body.Position.X = float64(s.Pos.X)
		body.Velocity.X = 0
		body.Position.Y, body.Velocity.Y = approach(body.Position.Y, float64(s.Destination.Y), speed, dt)
	case Falling, Jumping:
		y := s.Mode.StartingY + Height(s.Mode)
		if dt > 0 {
			body.Velocity.Y = (y - body.Position.Y) / dt
		}
		body.Position.Y = y
		body.Position.X, body.Velocity.X = approach(body.Position.X, float64(s.Destination.X), speed, dt)
	}
}

// approach steps actual toward target at speed without overshooting. Once
// within epsilon the position snaps onto the target and stops.
func approach(actual, target, speed, dt float64) (pos, vel float64) {
	delta := target - actual
	dir := grid.NewDirection1D(delta)
	if dir == grid.Neutral {
		return target, 0
	}
	if dt <= 0 {
		return actual, 0
	}
	step := float64(speed * dt)
	if math.Abs(delta)-step <= common.Epsilon {
		return target, delta / dt
	}
	vel = dir.Float() * speed
	return actual + float64(vel*dt), vel
}
