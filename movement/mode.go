package movement

import (
	"fmt"

	"github.com/milk9111/ladderfall/grid"
)

// Jump and fall curve constants. JumpApex is the elapsed time at which the
// jump curve peaks; it must stay in sync with JumpCurvature and JumpPeak.
const (
	JumpApex      = 0.209
	JumpPeak      = 2.2
	JumpCurvature = 50.0
	FallSpeed     = 15.0
)

// ModeKind identifies one of the four movement regimes.
type ModeKind uint8

const (
	Grounded ModeKind = iota
	Climbing
	Falling
	Jumping
)

func (k ModeKind) String() string {
	switch k {
	case Grounded:
		return "grounded"
	case Climbing:
		return "climbing"
	case Falling:
		return "falling"
	case Jumping:
		return "jumping"
	default:
		return fmt.Sprintf("mode(%d)", uint8(k))
	}
}

// Mode is the active movement regime. XMovement, StartingY and Elapsed are
// only meaningful while Falling or Jumping.
type Mode struct {
	Kind      ModeKind
	XMovement grid.Direction1D
	StartingY float64
	Elapsed   float64
}

func GroundedMode() Mode {
	return Mode{Kind: Grounded}
}

func ClimbingMode() Mode {
	return Mode{Kind: Climbing}
}

func FallingMode(x grid.Direction1D, startingY float64) Mode {
	return Mode{Kind: Falling, XMovement: x, StartingY: startingY}
}

func JumpingMode(x grid.Direction1D, startingY float64) Mode {
	return Mode{Kind: Jumping, XMovement: x, StartingY: startingY}
}

// IsMidAir reports whether the mode follows a jump or fall curve.
func (m Mode) IsMidAir() bool {
	return m.Kind == Falling || m.Kind == Jumping
}

// AddToDuration advances the curve clock of a mid-air mode. Other modes are
// returned unchanged.
func AddToDuration(m Mode, dt float64) Mode {
	if m.IsMidAir() {
		m.Elapsed += dt
	}
	return m
}

// JumpCurve is the height above the take-off point t seconds into a jump.
func JumpCurve(t float64) float64 {
	d := t - JumpApex
	return float64(-JumpCurvature*d*d) + JumpPeak
}

// FallCurve is the height relative to the start of a fall t seconds in.
func FallCurve(t float64) float64 {
	return t * -FallSpeed
}

// Height returns the curve offset for a mid-air mode and zero otherwise.
func Height(m Mode) float64 {
	switch m.Kind {
	case Jumping:
		return JumpCurve(m.Elapsed)
	case Falling:
		return FallCurve(m.Elapsed)
	default:
		return 0
	}
}

// JumpToFall converts a jump past its apex into the equivalent fall, keeping
// the height at the conversion instant. It panics on any other mode.
func JumpToFall(m Mode) Mode {
	if m.Kind != Jumping {
		panic(fmt.Sprintf("movement: JumpToFall called on %s mode", m.Kind))
	}
	return Mode{
		Kind:      Falling,
		XMovement: m.XMovement,
		StartingY: m.StartingY + JumpCurve(JumpApex),
		Elapsed:   m.Elapsed - JumpApex,
	}
}
