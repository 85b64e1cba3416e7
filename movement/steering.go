package movement

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ladderfall/grid"
)

// Steering is the motion state owned by a single actor.
type Steering struct {
	// Pos is the last committed cell of the footprint's bottom-left corner.
	Pos grid.Pos
	// Dimens is the footprint size, fixed at spawn.
	Dimens grid.Pos
	// Facing keeps the last non-neutral direction per axis.
	Facing grid.Direction2D
	// Destination is the cell being approached; equal to Pos at rest.
	Destination grid.Pos
	Mode        Mode
}

// NewSteering returns a grounded actor at rest on pos.
func NewSteering(pos, dimens grid.Pos, facing grid.Direction1D) Steering {
	if dimens.X < 1 {
		dimens.X = 1
	}
	if dimens.Y < 1 {
		dimens.Y = 1
	}
	return Steering{
		Pos:         pos,
		Dimens:      dimens,
		Facing:      grid.Direction2D{X: facing},
		Destination: pos,
		Mode:        GroundedMode(),
	}
}

// Body is the continuous position collaborators draw from, in tile units.
// Cell (x, y) is centred on (x, y).
type Body struct {
	Position cp.Vector
	Velocity cp.Vector
}

// Centered returns the continuous coordinate of a cell.
func Centered(p grid.Pos) cp.Vector {
	return cp.Vector{X: float64(p.X), Y: float64(p.Y)}
}

// RoundPos returns the cell nearest to a continuous position.
func RoundPos(v cp.Vector) grid.Pos {
	return grid.Pos{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
}
