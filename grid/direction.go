package grid

import (
	"math"

	"github.com/milk9111/ladderfall/common"
)

// Direction1D is a tri-state direction along one axis.
type Direction1D int8

const (
	Negative Direction1D = -1
	Neutral  Direction1D = 0
	Positive Direction1D = 1
)

// NewDirection1D derives a direction from a signed scalar. Values within
// common.Epsilon of zero are Neutral.
func NewDirection1D(v float64) Direction1D {
	if math.Abs(v) <= common.Epsilon {
		return Neutral
	}
	if v > 0 {
		return Positive
	}
	return Negative
}

// IsOpposite reports whether one direction is Positive and the other Negative.
// Neutral is never opposite to anything.
func (d Direction1D) IsOpposite(o Direction1D) bool {
	return (d == Positive && o == Negative) || (d == Negative && o == Positive)
}

// AlignsWith reports whether d is non-neutral and points the same way as v.
func (d Direction1D) AlignsWith(v float64) bool {
	return d != Neutral && d == NewDirection1D(v)
}

// Int returns -1, 0 or 1.
func (d Direction1D) Int() int {
	return int(d)
}

// Float returns -1, 0 or 1.
func (d Direction1D) Float() float64 {
	return float64(d)
}

func (d Direction1D) String() string {
	switch d {
	case Negative:
		return "negative"
	case Positive:
		return "positive"
	default:
		return "neutral"
	}
}

// Direction2D composes one direction per axis.
type Direction2D struct {
	X Direction1D
	Y Direction1D
}

func (d Direction2D) IsNeutral() bool {
	return d.X == Neutral && d.Y == Neutral
}

// IsOpposite is true when either axis reverses.
func (d Direction2D) IsOpposite(o Direction2D) bool {
	return d.X.IsOpposite(o.X) || d.Y.IsOpposite(o.Y)
}
