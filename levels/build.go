package levels

import (
	"fmt"
	"unicode/utf8"

	"github.com/milk9111/ladderfall/grid"
	"github.com/milk9111/ladderfall/tile"
)

// DefaultLegend maps row symbols to tile keys when a level does not override them.
var DefaultLegend = map[string]string{
	"#": "block",
	"=": "platform",
	"H": "ladder",
	"|": "pillar",
	"P": "player",
	"K": "key",
	"D": "door",
	"T": "tool",
	"x": "crumble",
}

// FromRows builds an unnamed level from rows using the default legend.
func FromRows(rows ...string) *Level {
	return &Level{Rows: rows}
}

// Built is a level expanded into a tile map.
type Built struct {
	Tiles  *tile.Map
	Spawns []grid.Pos
}

// Spawn returns the first player spawn.
func (b *Built) Spawn() (grid.Pos, error) {
	if b == nil || len(b.Spawns) == 0 {
		return grid.Pos{}, ErrNoSpawn
	}
	return b.Spawns[0], nil
}

// Build expands every placed tile into the map. Player tiles become spawn
// points instead of map entries. '.' and ' ' are open air.
func (l *Level) Build(reg *tile.Registry) (*Built, error) {
	height := len(l.Rows)
	width := 0
	for _, row := range l.Rows {
		if n := utf8.RuneCountInString(row); n > width {
			width = n
		}
	}

	bounds := tile.Bounds{X: l.Origin.X, Y: l.Origin.Y, Width: width, Height: height}
	if l.Bounds != nil {
		bounds = *l.Bounds
	}

	built := &Built{Tiles: tile.NewMap(reg, bounds)}
	place := func(pos grid.Pos, key string) {
		if reg.Lookup(key).Archetype == tile.ArchetypePlayer {
			built.Spawns = append(built.Spawns, pos)
			return
		}
		built.Tiles.PutTile(pos, key)
	}

	for i, row := range l.Rows {
		y := l.Origin.Y + height - 1 - i
		x := l.Origin.X
		for _, r := range row {
			if r != '.' && r != ' ' {
				key, ok := l.symbol(string(r))
				if !ok {
					return nil, fmt.Errorf("levels: unknown symbol %q at row %d", r, i)
				}
				place(grid.Pos{X: x, Y: y}, key)
			}
			x++
		}
	}
	for _, p := range l.Tiles {
		place(grid.Pos{X: p.X, Y: p.Y}, p.Key)
	}
	return built, nil
}

func (l *Level) symbol(s string) (string, bool) {
	if key, ok := l.Legend[s]; ok {
		return key, true
	}
	key, ok := DefaultLegend[s]
	return key, ok
}
