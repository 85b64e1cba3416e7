package levels

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/ladderfall/grid"
	"github.com/milk9111/ladderfall/tile"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed *.json
var LevelsFS embed.FS

//go:embed schema/level.schema.json
var levelSchemaJSON string

var levelSchema = jsonschema.MustCompileString("level.schema.json", levelSchemaJSON)

// ErrNoSpawn is returned when a level has no player spawn tile.
var ErrNoSpawn = errors.New("levels: no player spawn")

// Level is a saved level. Rows are listed top row first; the last row sits at
// Origin.Y and y grows upward.
type Level struct {
	Name   string            `json:"name"`
	Rows   []string          `json:"rows"`
	Legend map[string]string `json:"legend,omitempty"`
	Origin grid.Pos          `json:"origin"`
	Tiles  []Placement       `json:"tiles,omitempty"`
	Bounds *tile.Bounds      `json:"bounds,omitempty"`
}

// Placement puts a tile, usually a multi-cell one, with its anchor at X, Y.
type Placement struct {
	Key string `json:"key"`
	X   int    `json:"x"`
	Y   int    `json:"y"`
}

// Load reads a level by name from levels/ on disk, falling back to the
// embedded copy. The .json extension is optional.
func Load(name string) (*Level, error) {
	clean := cleanLevelPath(name)
	data, err := os.ReadFile(filepath.Join("levels", filepath.FromSlash(clean)))
	if err != nil {
		data, err = LevelsFS.ReadFile(clean)
		if err != nil {
			return nil, fmt.Errorf("levels: read %s: %w", clean, err)
		}
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", clean, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(clean, ".json")
	}
	return lvl, nil
}

// Parse validates data against the level schema and decodes it.
func Parse(data []byte) (*Level, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := levelSchema.Validate(raw); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return &lvl, nil
}

func cleanLevelPath(name string) string {
	s := filepath.ToSlash(strings.TrimSpace(name))
	s = strings.TrimPrefix(s, "levels/")
	if !strings.HasSuffix(s, ".json") {
		s += ".json"
	}
	return s
}
