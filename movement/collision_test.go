package movement

import (
	"testing"

	"github.com/milk9111/ladderfall/grid"
)

var unit = grid.Pos{X: 1, Y: 1}

func TestLadderMidClimbLanding(t *testing.T) {
	m := buildMap(t, grid.Pos{},
		"H",
		"H",
		"H",
		"H",
		"H",
	)

	mid := grid.Pos{X: 0, Y: 3}
	if OnSolidGround(m, mid, unit) {
		t.Fatalf("mid-ladder should not count as solid ground")
	}
	if !IsGrounded(m, mid, unit) {
		t.Fatalf("mid-ladder still has a platform below")
	}

	top := grid.Pos{X: 0, Y: 5}
	if !OnSolidGround(m, top, unit) {
		t.Fatalf("the ladder top should be solid ground")
	}
}

func TestOnSolidGroundWideFootprint(t *testing.T) {
	m := buildMap(t, grid.Pos{},
		"H.",
		"H#",
	)
	// Left column is mid-ladder, right column stands on a block.
	if !OnSolidGround(m, grid.Pos{X: 0, Y: 1}, grid.Pos{X: 2, Y: 1}) {
		t.Fatalf("any solid column should be enough")
	}
	if OnSolidGround(m, grid.Pos{X: 0, Y: 1}, unit) {
		t.Fatalf("left column alone is mid-ladder")
	}
}

func TestIsUnderneathCeiling(t *testing.T) {
	m := buildMap(t, grid.Pos{},
		".=#",
		"...",
	)
	cases := []struct {
		pos  grid.Pos
		want bool
	}{
		{grid.Pos{X: 0, Y: 0}, false},
		{grid.Pos{X: 1, Y: 0}, false},
		{grid.Pos{X: 2, Y: 0}, true},
	}
	for _, c := range cases {
		if got := IsUnderneathCeiling(m, c.pos, unit); got != c.want {
			t.Fatalf("ceiling at %v = %v, want %v", c.pos, got, c.want)
		}
	}
	if !IsUnderneathCeiling(m, grid.Pos{X: 1, Y: 0}, grid.Pos{X: 2, Y: 1}) {
		t.Fatalf("wide footprint should see the block")
	}
}

func TestIsAgainstWallNearFace(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		x    int
		dir  grid.Direction1D
		want bool
	}{
		{"right_single", []string{"..#."}, 1, grid.Positive, true},
		{"right_double", []string{"..##"}, 1, grid.Positive, false},
		{"left_single", []string{".#.."}, 2, grid.Negative, true},
		{"left_double", []string{"##.."}, 2, grid.Negative, false},
		{"pillar", []string{"..|."}, 1, grid.Positive, true},
		{"platform_is_not_a_wall", []string{"..=."}, 1, grid.Positive, false},
		{"neutral", []string{".#.#."}, 2, grid.Neutral, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := buildMap(t, grid.Pos{}, c.rows...)
			if got := IsAgainstWall(m, c.x, 0, unit, c.dir); got != c.want {
				t.Fatalf("IsAgainstWall = %v, want %v", got, c.want)
			}
		})
	}
}

func TestIsAgainstWallFractionalBand(t *testing.T) {
	m := buildMap(t, grid.Pos{},
		"..#.",
		"....",
	)
	if IsAgainstWall(m, 1, 0, unit, grid.Positive) {
		t.Fatalf("aligned actor only checks its own row")
	}
	if !IsAgainstWall(m, 1, 0.5, unit, grid.Positive) {
		t.Fatalf("actor between rows should see the wall above")
	}
	if !IsAgainstWall(m, 1, 1.0004, unit, grid.Positive) {
		t.Fatalf("within epsilon of row 1 should check row 1")
	}
}

func TestClimbPredicates(t *testing.T) {
	m := buildMap(t, grid.Pos{},
		"#.",
		"HH",
		"H.",
		"##",
	)
	cases := []struct {
		name string
		pos  grid.Pos
		up   bool
		down bool
		air  bool
	}{
		{"bottom_of_ladder", grid.Pos{X: 0, Y: 1}, true, false, false},
		{"below_ceiling", grid.Pos{X: 0, Y: 2}, false, true, false},
		{"short_ladder_top", grid.Pos{X: 1, Y: 2}, false, false, true},
		{"open_ladder", grid.Pos{X: 1, Y: 1}, true, false, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := CanClimbUp(m, c.pos, unit); got != c.up {
				t.Fatalf("CanClimbUp = %v, want %v", got, c.up)
			}
			if got := CanClimbDown(m, c.pos, unit); got != c.down {
				t.Fatalf("CanClimbDown = %v, want %v", got, c.down)
			}
			if got := AboveAir(m, c.pos, unit); got != c.air {
				t.Fatalf("AboveAir = %v, want %v", got, c.air)
			}
		})
	}
}

func TestAlignedWithGrid(t *testing.T) {
	cases := []struct {
		dest   int
		actual float64
		dir    grid.Direction1D
		want   bool
	}{
		{2, 1.5, grid.Positive, false},
		{2, 1.9995, grid.Positive, true},
		{2, 2.3, grid.Positive, true},
		{2, 2.5, grid.Negative, false},
		{2, 1.7, grid.Negative, true},
		{2, 2.0005, grid.Neutral, true},
		{2, 2.1, grid.Neutral, false},
	}
	for _, c := range cases {
		if got := AlignedWithGrid(c.dest, c.actual, c.dir); got != c.want {
			t.Fatalf("AlignedWithGrid(%d, %v, %v) = %v, want %v", c.dest, c.actual, c.dir, got, c.want)
		}
	}
}
