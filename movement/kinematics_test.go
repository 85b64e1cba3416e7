package movement

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ladderfall/common"
	"github.com/milk9111/ladderfall/grid"
)

func TestApproachNeverOvershoots(t *testing.T) {
	x, target := 0.0, 1.0
	for i := 0; i < 100; i++ {
		var v float64
		x, v = approach(x, target, 4, tick)
		if x > target {
			t.Fatalf("call %d: overshot to %v", i, x)
		}
		if x == target {
			if i > 15 {
				t.Fatalf("took %d calls to arrive", i+1)
			}
			if next, nv := approach(x, target, 4, tick); next != target || nv != 0 {
				t.Fatalf("at rest should stay put, got %v %v", next, nv)
			}
			return
		}
		if v != 4 {
			t.Fatalf("call %d: velocity %v, want 4", i, v)
		}
	}
	t.Fatalf("never reached the target, x=%v", x)
}

func TestIntegrateGrounded(t *testing.T) {
	s := NewSteering(grid.Pos{X: 2, Y: 1}, unit, grid.Positive)
	s.Destination.X = 3
	body := Body{Position: cp.Vector{X: 2, Y: 1.4}, Velocity: cp.Vector{Y: -5}}
	Integrate(&s, &body, 4, tick)
	if body.Position.Y != 1 || body.Velocity.Y != 0 {
		t.Fatalf("grounded y should snap to the row, got %v", body)
	}
	if body.Position.X <= 2 || body.Velocity.X != 4 {
		t.Fatalf("expected to move right, got %v", body)
	}
}

func TestIntegrateClimbing(t *testing.T) {
	s := NewSteering(grid.Pos{X: 2, Y: 1}, unit, grid.Positive)
	s.Mode = ClimbingMode()
	s.Destination.Y = 0
	body := Body{Position: cp.Vector{X: 2.2, Y: 1}}
	Integrate(&s, &body, 4, tick)
	if body.Position.X != 2 || body.Velocity.X != 0 {
		t.Fatalf("climbing x should snap to the column, got %v", body)
	}
	if body.Position.Y >= 1 || body.Velocity.Y != -4 {
		t.Fatalf("expected to move down, got %v", body)
	}
}

func TestIntegrateAirborne(t *testing.T) {
	s := NewSteering(grid.Pos{X: 0, Y: 3}, unit, grid.Positive)
	s.Mode = JumpingMode(grid.Neutral, 1)
	s.Mode.Elapsed = JumpApex
	body := Body{Position: cp.Vector{X: 0, Y: 3}}
	Integrate(&s, &body, 4, tick)
	if !common.ApproxEqual(body.Position.Y, 1+JumpPeak) {
		t.Fatalf("y = %v, want %v", body.Position.Y, 1+JumpPeak)
	}
	if want := (body.Position.Y - 3) / tick; body.Velocity.Y != want {
		t.Fatalf("vy = %v, want %v", body.Velocity.Y, want)
	}

	s.Mode = FallingMode(grid.Neutral, 4)
	s.Mode.Elapsed = 0.1
	Integrate(&s, &body, 4, tick)
	if body.Position.Y != 4+FallCurve(0.1) {
		t.Fatalf("fall y = %v", body.Position.Y)
	}
}
