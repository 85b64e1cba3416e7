package component

import "github.com/milk9111/ladderfall/tile"

// LevelBounds stores the wrap-around rectangle of the current level in cells.
type LevelBounds struct {
	Bounds tile.Bounds
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
