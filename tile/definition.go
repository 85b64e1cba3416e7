package tile

import (
	"fmt"
	"strings"

	"github.com/milk9111/ladderfall/grid"
	"gopkg.in/yaml.v3"
)

// Archetype tags tiles that carry gameplay meaning beyond collision.
type Archetype int

const (
	ArchetypePlain Archetype = iota
	ArchetypePlayer
	ArchetypeKey
	ArchetypeDoor
	ArchetypeTool
)

var archetypeNames = map[Archetype]string{
	ArchetypePlain:  "plain",
	ArchetypePlayer: "player",
	ArchetypeKey:    "key",
	ArchetypeDoor:   "door",
	ArchetypeTool:   "tool",
}

func (a Archetype) String() string {
	if name, ok := archetypeNames[a]; ok {
		return name
	}
	return "plain"
}

// ParseArchetype maps a name to an archetype. Unknown names are plain.
func ParseArchetype(name string) Archetype {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range archetypeNames {
		if n == name {
			return a
		}
	}
	return ArchetypePlain
}

func (a *Archetype) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("archetype must be a string")
	}
	*a = ParseArchetype(value.Value)
	return nil
}

// Collision describes which faces of a tile block movement.
type Collision struct {
	Top    bool `yaml:"top"`
	Side   bool `yaml:"side"`
	Bottom bool `yaml:"bottom"`
}

// Definition holds the static properties shared by every placement of a tile.
type Definition struct {
	Name      string     `yaml:"name"`
	Dimens    grid.Pos   `yaml:"dimens"`
	Climbable bool       `yaml:"climbable"`
	Collision *Collision `yaml:"collision"`
	Breakable bool       `yaml:"breakable"`
	Archetype Archetype  `yaml:"archetype"`
}

// Fallback is substituted whenever a definition cannot be resolved.
func Fallback() Definition {
	return Definition{Name: "fallback", Dimens: grid.Pos{X: 1, Y: 1}}
}

// Air is what an unoccupied cell resolves to.
func Air() Definition {
	return Definition{Name: "air", Dimens: grid.Pos{X: 1, Y: 1}}
}

// ProvidesPlatform reports whether an actor can stand on top of the tile.
func (d Definition) ProvidesPlatform() bool {
	return d.Collision != nil && d.Collision.Top
}

func (d Definition) CollidesHorizontally() bool {
	return d.Collision != nil && d.Collision.Side
}

// CollidesBottom reports whether the tile blocks jumping or climbing up into it.
func (d Definition) CollidesBottom() bool {
	return d.Collision != nil && d.Collision.Bottom
}

func (d Definition) IsClimbable() bool {
	return d.Climbable
}

func (d Definition) IsBreakable() bool {
	return d.Breakable
}

// Footprint returns the tile dimensions, never smaller than 1x1.
func (d Definition) Footprint() grid.Pos {
	fp := d.Dimens
	if fp.X < 1 {
		fp.X = 1
	}
	if fp.Y < 1 {
		fp.Y = 1
	}
	return fp
}
