package movement

import "github.com/milk9111/ladderfall/grid"

// Input is the raw per-tick signal set polled from the input collaborator.
type Input struct {
	MoveX float64
	MoveY float64
	Jump  bool
}

// Grace is an optional elapsed time. It is inactive when unset.
type Grace struct {
	Elapsed float64
	Active  bool
}

// Controls is the per-player record intent resolution keeps between ticks.
type Controls struct {
	JumpHeld     bool
	JumpGrace    Grace
	TurnGrace    Grace
	ToolEquipped bool
}

// Intent is the structured movement request derived from input each tick.
type Intent struct {
	Walk          grid.Direction1D
	Climb         grid.Direction1D
	JumpDirection grid.Direction1D
	Face          grid.Direction1D
	Jump          bool
	// WalkInvalidated blocks stepping off a ladder until the walk direction
	// changes. The state machine sets it; a walk change clears it.
	WalkInvalidated bool
}

// ResolveIntent turns raw input into intent, updating the grace timers held in
// ctl. intent holds last tick's values on entry.
func ResolveIntent(in Input, ctl *Controls, s Steering, intent *Intent, dt float64, cfg Config) {
	initiated := in.Jump && !ctl.JumpHeld
	ctl.JumpHeld = in.Jump
	switch {
	case initiated:
		ctl.JumpGrace = Grace{Active: true}
	case ctl.JumpGrace.Active && ctl.JumpGrace.Elapsed < cfg.JumpAllowance:
		ctl.JumpGrace.Elapsed += dt
	default:
		ctl.JumpGrace = Grace{}
	}

	raw := grid.NewDirection1D(in.MoveX)
	prevWalk := intent.Walk

	if s.Mode.Kind == Grounded &&
		s.Facing.X != grid.Neutral &&
		raw.IsOpposite(s.Facing.X) &&
		prevWalk == grid.Neutral &&
		!ctl.TurnGrace.Active {
		ctl.TurnGrace = Grace{Active: true}
	}

	walk := raw
	if ctl.TurnGrace.Active {
		switch {
		case raw == grid.Neutral:
			ctl.TurnGrace = Grace{}
		case ctl.TurnGrace.Elapsed < cfg.TurnAllowance:
			ctl.TurnGrace.Elapsed += dt
			walk = prevWalk
		default:
			ctl.TurnGrace = Grace{}
		}
	}

	intent.Face = raw
	if walk != prevWalk {
		intent.WalkInvalidated = false
	}
	intent.Walk = walk
	intent.Climb = grid.NewDirection1D(in.MoveY)
	intent.Jump = !ctl.ToolEquipped && initiated
	if ctl.JumpGrace.Active {
		intent.JumpDirection = walk
	} else {
		intent.JumpDirection = grid.Neutral
	}
}
