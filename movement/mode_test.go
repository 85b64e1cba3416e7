package movement

import (
	"math"
	"testing"

	"github.com/milk9111/ladderfall/common"
	"github.com/milk9111/ladderfall/grid"
)

func TestJumpCurveSymmetry(t *testing.T) {
	start := JumpCurve(0)
	end := JumpCurve(2 * JumpApex)
	if !common.ApproxEqual(start, end) {
		t.Fatalf("jump curve not symmetric: %v vs %v", start, end)
	}
	if got := JumpCurve(JumpApex); got != JumpPeak {
		t.Fatalf("apex height = %v, want %v", got, JumpPeak)
	}
	for _, d := range []float64{0.01, 0.05, 0.1, 0.2} {
		if JumpCurve(JumpApex+d) >= JumpPeak || JumpCurve(JumpApex-d) >= JumpPeak {
			t.Fatalf("curve exceeds peak %v away from apex", d)
		}
	}
}

func TestApexConversionContinuity(t *testing.T) {
	const startY = 3.0
	jump := JumpingMode(grid.Positive, startY)
	jump.Elapsed = JumpApex

	before := jump.StartingY + Height(jump)
	fall := JumpToFall(jump)
	after := fall.StartingY + Height(fall)

	if fall.Kind != Falling || fall.XMovement != grid.Positive {
		t.Fatalf("unexpected converted mode %+v", fall)
	}
	if fall.Elapsed != 0 {
		t.Fatalf("elapsed after conversion at apex = %v", fall.Elapsed)
	}
	if !common.ApproxEqual(before, after) {
		t.Fatalf("height jumps across conversion: %v -> %v", before, after)
	}

	const h = 1e-4
	rise := (JumpCurve(JumpApex) - JumpCurve(JumpApex-h)) / h
	if rise < 0 || rise > 0.01 {
		t.Fatalf("jump should flatten out at the apex, velocity %v", rise)
	}
	drop := (FallCurve(h) - FallCurve(0)) / h
	if math.Abs(drop+FallSpeed) > 1e-6 {
		t.Fatalf("fall velocity = %v, want %v", drop, -FallSpeed)
	}
}

func TestJumpToFallLate(t *testing.T) {
	jump := JumpingMode(grid.Neutral, 1)
	jump.Elapsed = JumpApex + 0.01
	fall := JumpToFall(jump)
	if !common.ApproxEqual(fall.Elapsed, 0.01) {
		t.Fatalf("elapsed = %v", fall.Elapsed)
	}
	if !common.ApproxEqual(fall.StartingY, 1+JumpPeak) {
		t.Fatalf("starting y = %v", fall.StartingY)
	}
}

func TestJumpToFallPanicsOutsideJump(t *testing.T) {
	for _, m := range []Mode{GroundedMode(), ClimbingMode(), FallingMode(grid.Neutral, 0)} {
		t.Run(m.Kind.String(), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic")
				}
			}()
			JumpToFall(m)
		})
	}
}

func TestAddToDuration(t *testing.T) {
	cases := []struct {
		mode Mode
		want float64
	}{
		{GroundedMode(), 0},
		{ClimbingMode(), 0},
		{FallingMode(grid.Neutral, 0), 0.5},
		{JumpingMode(grid.Positive, 0), 0.5},
	}
	for _, c := range cases {
		t.Run(c.mode.Kind.String(), func(t *testing.T) {
			if got := AddToDuration(c.mode, 0.5).Elapsed; got != c.want {
				t.Fatalf("elapsed = %v, want %v", got, c.want)
			}
		})
	}
}

func TestHeight(t *testing.T) {
	fall := FallingMode(grid.Neutral, 0)
	fall.Elapsed = 0.2
	if got := Height(fall); !common.ApproxEqual(got, -3) {
		t.Fatalf("fall height = %v", got)
	}
	if Height(GroundedMode()) != 0 || Height(ClimbingMode()) != 0 {
		t.Fatalf("grounded and climbing modes have no curve")
	}
}
