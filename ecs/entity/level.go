package entity

import (
	"fmt"

	"github.com/milk9111/ladderfall/ecs"
	"github.com/milk9111/ladderfall/ecs/component"
	"github.com/milk9111/ladderfall/levels"
	"github.com/milk9111/ladderfall/tile"
)

// LoadLevelToWorld expands lvl into a tile map, records its bounds on a level
// entity and spawns the player on the first spawn tile.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level, reg *tile.Registry) (*levels.Built, ecs.Entity, error) {
	built, err := lvl.Build(reg)
	if err != nil {
		return nil, 0, err
	}
	spawn, err := built.Spawn()
	if err != nil {
		return nil, 0, fmt.Errorf("level %q: %w", lvl.Name, err)
	}

	boundsEntity := ecs.CreateEntity(w)
	if err := ecs.Add(w, boundsEntity, component.LevelBoundsComponent.Kind(), &component.LevelBounds{
		Bounds: built.Tiles.Bounds(),
	}); err != nil {
		return nil, 0, err
	}

	player, err := NewPlayerAt(w, spawn)
	if err != nil {
		return nil, 0, err
	}
	return built, player, nil
}
