package movement

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ladderfall/common"
	"github.com/milk9111/ladderfall/grid"
)

// jumpClearance is how many rows above the footprint must be free of ceilings
// before a jump may start.
const jumpClearance = 2

// StepContext carries the shared resources a steering pass reads or writes.
type StepContext struct {
	Tiles  TileQuery
	Sounds SoundSink
	// History is optional; when set, committed cell changes are appended.
	History *History
	Dt      float64
}

// Steer runs one tick of the steering state machine. actual is the continuous
// position left by the previous integration pass.
func Steer(s *Steering, intent *Intent, actual cp.Vector, ctx StepContext) {
	prev := s.Pos
	s.Pos = RoundPos(actual)

	if s.Mode.IsMidAir() {
		s.Mode = AddToDuration(s.Mode, ctx.Dt)
	}

	if s.Mode.Kind == Grounded && intent.Face != grid.Neutral {
		s.Facing.X = intent.Face
	}

	transition(s, intent, actual, ctx)

	switch s.Mode.Kind {
	case Grounded:
		steerGrounded(s, intent, actual, ctx)
	case Climbing:
		steerClimbing(s, intent, actual, ctx)
	case Falling:
		steerFalling(s, actual, ctx)
	case Jumping:
		steerJumping(s, intent, actual, ctx)
	}

	if ctx.History != nil && (s.Pos != prev || ctx.History.ForceKeyFrame) {
		ctx.History.Push(s.Pos)
	}
}

// transition applies at most one mode change. The order of the cases is
// significant: several conditions can hold in the same tick.
func transition(s *Steering, intent *Intent, actual cp.Vector, ctx StepContext) {
	t := ctx.Tiles
	switch {
	case s.Mode.Kind == Falling &&
		AlignedWithGrid(s.Pos.Y, actual.Y, grid.Negative) &&
		OnSolidGround(t, s.Pos, s.Dimens):
		s.Mode = GroundedMode()
		s.Destination = s.Pos

	case (s.Mode.Kind == Grounded &&
		!IsGrounded(t, s.Pos, s.Dimens) &&
		AlignedWithGrid(s.Destination.X, actual.X, intent.Walk)) ||
		(s.Mode.Kind == Climbing && intent.Jump):
		s.Mode = FallingMode(grid.Neutral, actual.Y)

	case s.Mode.Kind == Grounded && intent.Jump:
		if ceilingWithin(t, s.Pos, s.Dimens, jumpClearance) {
			emit(ctx.Sounds, SoundCannotPerformAction)
			return
		}
		emit(ctx.Sounds, SoundJump)
		s.Mode = JumpingMode(intent.Face, actual.Y)

	case s.Mode.Kind == Jumping && s.Mode.Elapsed > JumpApex:
		s.Mode = JumpToFall(s.Mode)

	case s.Mode.Kind == Grounded &&
		common.ApproxEqual(actual.X, float64(s.Destination.X)) &&
		((intent.Climb == grid.Positive && CanClimbUp(t, s.Pos, s.Dimens)) ||
			(intent.Climb == grid.Negative && CanClimbDown(t, s.Pos, s.Dimens))):
		s.Mode = ClimbingMode()
		s.Destination = s.Pos
		if intent.Face != grid.Neutral {
			intent.WalkInvalidated = true
		}

	case s.Mode.Kind == Climbing &&
		common.ApproxEqual(actual.Y, float64(s.Destination.Y)) &&
		!intent.WalkInvalidated &&
		intent.Walk != grid.Neutral &&
		!IsAgainstWall(t, s.Pos.X, actual.Y, s.Dimens, intent.Walk):
		s.Mode = GroundedMode()
		s.Destination = s.Pos
	}
}

func steerGrounded(s *Steering, intent *Intent, actual cp.Vector, ctx StepContext) {
	walk := intent.Walk
	if walk == grid.Neutral {
		return
	}
	if walk.IsOpposite(grid.NewDirection1D(float64(s.Destination.X - s.Pos.X))) {
		s.Destination.X = s.Pos.X
	}
	if AlignedWithGrid(s.Destination.X, actual.X, walk) &&
		!IsAgainstWall(ctx.Tiles, s.Destination.X, actual.Y, s.Dimens, walk) {
		s.Destination.X += walk.Int()
		emit(ctx.Sounds, SoundStep)
	}
}

func steerClimbing(s *Steering, intent *Intent, actual cp.Vector, ctx StepContext) {
	climb := intent.Climb
	if climb == grid.Neutral {
		return
	}
	if climb.IsOpposite(grid.NewDirection1D(float64(s.Destination.Y - s.Pos.Y))) {
		s.Destination.Y = s.Pos.Y
	}
	if !AlignedWithGrid(s.Destination.Y, actual.Y, climb) {
		return
	}

	at := s.Destination
	if climb == grid.Positive {
		if CanClimbUp(ctx.Tiles, at, s.Dimens) {
			s.Destination.Y++
			emit(ctx.Sounds, SoundLadderStep)
		}
		return
	}
	if CanClimbDown(ctx.Tiles, at, s.Dimens) {
		s.Destination.Y--
		emit(ctx.Sounds, SoundLadderStep)
		return
	}
	if AboveAir(ctx.Tiles, at, s.Dimens) {
		s.Mode = FallingMode(grid.Neutral, actual.Y)
		s.Destination = s.Pos
	}
}

func steerFalling(s *Steering, actual cp.Vector, ctx StepContext) {
	s.Destination.Y = s.Pos.Y
	xm := s.Mode.XMovement
	if xm != grid.Neutral && AlignedWithGrid(s.Destination.X, actual.X, xm) {
		if IsAgainstWall(ctx.Tiles, s.Destination.X, actual.Y, s.Dimens, xm) {
			s.Mode.XMovement = grid.Neutral
			xm = grid.Neutral
		} else {
			s.Destination.X += xm.Int()
		}
	}
	if xm == grid.Neutral {
		s.Destination.X = s.Pos.X
	}
}

// steerJumping differs from steerFalling in that a wall only stops the
// horizontal advance; the jump keeps its x movement.
func steerJumping(s *Steering, intent *Intent, actual cp.Vector, ctx StepContext) {
	if jd := intent.JumpDirection; jd != grid.Neutral {
		s.Mode.XMovement = jd
		s.Facing.X = jd
	}
	s.Destination.Y = s.Pos.Y
	xm := s.Mode.XMovement
	if xm == grid.Neutral {
		s.Destination.X = s.Pos.X
		return
	}
	if AlignedWithGrid(s.Destination.X, actual.X, xm) &&
		!IsAgainstWall(ctx.Tiles, s.Destination.X, actual.Y, s.Dimens, xm) {
		s.Destination.X += xm.Int()
	}
}
