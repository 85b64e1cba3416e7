package movement

import (
	"testing"

	"github.com/milk9111/ladderfall/grid"
	"github.com/milk9111/ladderfall/levels"
	"github.com/milk9111/ladderfall/tile"
)

func testRegistry() *tile.Registry {
	return tile.NewRegistry(map[string]tile.Definition{
		"block":    {Collision: &tile.Collision{Top: true, Side: true, Bottom: true}},
		"platform": {Collision: &tile.Collision{Top: true}},
		"pillar":   {Collision: &tile.Collision{Side: true}},
		"ladder":   {Climbable: true, Collision: &tile.Collision{Top: true}},
		"player":   {Archetype: tile.ArchetypePlayer},
	})
}

// buildMap lays rows out top row first with the bottom row at origin.Y.
func buildMap(t *testing.T, origin grid.Pos, rows ...string) *tile.Map {
	t.Helper()
	lvl := levels.FromRows(rows...)
	lvl.Origin = origin
	built, err := lvl.Build(testRegistry())
	if err != nil {
		t.Fatalf("build map: %v", err)
	}
	return built.Tiles
}

type soundLog []Sound

func (l *soundLog) Emit(s Sound) {
	*l = append(*l, s)
}

func (l soundLog) count(s Sound) int {
	n := 0
	for _, got := range l {
		if got == s {
			n++
		}
	}
	return n
}
