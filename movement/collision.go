package movement

import (
	"math"

	"github.com/milk9111/ladderfall/common"
	"github.com/milk9111/ladderfall/grid"
	"github.com/milk9111/ladderfall/tile"
)

// TileQuery is the read side of the tile world.
type TileQuery interface {
	Get(pos grid.Pos) tile.Definition
}

// OnSolidGround reports whether the footprint rests on a platform it can land
// on. A platform that is part of a ladder continuing into the footprint does
// not count.
func OnSolidGround(t TileQuery, pos, dimens grid.Pos) bool {
	for x := pos.X; x < pos.X+dimens.X; x++ {
		below := t.Get(grid.Pos{X: x, Y: pos.Y - 1})
		if !below.ProvidesPlatform() {
			continue
		}
		if !below.IsClimbable() || !t.Get(grid.Pos{X: x, Y: pos.Y}).IsClimbable() {
			return true
		}
	}
	return false
}

// IsGrounded reports whether any footprint column has a platform beneath it.
func IsGrounded(t TileQuery, pos, dimens grid.Pos) bool {
	for x := pos.X; x < pos.X+dimens.X; x++ {
		if t.Get(grid.Pos{X: x, Y: pos.Y - 1}).ProvidesPlatform() {
			return true
		}
	}
	return false
}

// IsUnderneathCeiling reports a bottom-colliding tile directly above the footprint.
func IsUnderneathCeiling(t TileQuery, pos, dimens grid.Pos) bool {
	return ceilingWithin(t, pos, dimens, 1)
}

// ceilingWithin checks the given number of rows above the footprint.
func ceilingWithin(t TileQuery, pos, dimens grid.Pos, rows int) bool {
	top := pos.Y + dimens.Y
	for y := top; y < top+rows; y++ {
		for x := pos.X; x < pos.X+dimens.X; x++ {
			if t.Get(grid.Pos{X: x, Y: y}).CollidesBottom() {
				return true
			}
		}
	}
	return false
}

// IsAgainstWall reports whether the column next to a footprint whose left edge
// is at x collides sideways in dir. Only the near face of a wall counts: a
// colliding cell with another colliding cell behind it is ignored. At a
// fractional y the band grows by one row to cover both cells the body overlaps.
func IsAgainstWall(t TileQuery, x int, actualY float64, dimens grid.Pos, dir grid.Direction1D) bool {
	var near, far int
	switch dir {
	case grid.Positive:
		near = x + dimens.X
		far = near + 1
	case grid.Negative:
		near = x - 1
		far = near - 1
	default:
		return false
	}
	bottom, rows := wallBand(actualY, dimens.Y)
	for y := bottom; y < bottom+rows; y++ {
		if t.Get(grid.Pos{X: near, Y: y}).CollidesHorizontally() &&
			!t.Get(grid.Pos{X: far, Y: y}).CollidesHorizontally() {
			return true
		}
	}
	return false
}

func wallBand(actualY float64, height int) (bottom, rows int) {
	rounded := math.Round(actualY)
	if common.ApproxEqual(actualY, rounded) {
		return int(rounded), height
	}
	return int(math.Floor(actualY)), height + 1
}

// CanClimbUp reports a climbable row directly above the footprint with no
// ceiling in the way.
func CanClimbUp(t TileQuery, pos, dimens grid.Pos) bool {
	y := pos.Y + dimens.Y
	for x := pos.X; x < pos.X+dimens.X; x++ {
		if !t.Get(grid.Pos{X: x, Y: y}).IsClimbable() {
			return false
		}
	}
	return !IsUnderneathCeiling(t, pos, dimens)
}

// CanClimbDown reports a climbable row directly below the footprint.
func CanClimbDown(t TileQuery, pos, dimens grid.Pos) bool {
	y := pos.Y - 1
	for x := pos.X; x < pos.X+dimens.X; x++ {
		if !t.Get(grid.Pos{X: x, Y: y}).IsClimbable() {
			return false
		}
	}
	return true
}

// AboveAir reports that nothing below the footprint provides a platform.
func AboveAir(t TileQuery, pos, dimens grid.Pos) bool {
	y := pos.Y - 1
	for x := pos.X; x < pos.X+dimens.X; x++ {
		if t.Get(grid.Pos{X: x, Y: y}).ProvidesPlatform() {
			return false
		}
	}
	return true
}

// AlignedWithGrid reports whether actual has reached or passed destination
// travelling in dir, or sits within epsilon of it.
func AlignedWithGrid(destination int, actual float64, dir grid.Direction1D) bool {
	target := float64(destination)
	switch dir {
	case grid.Positive:
		return actual >= target-common.Epsilon
	case grid.Negative:
		return actual <= target+common.Epsilon
	default:
		return common.ApproxEqual(actual, target)
	}
}
