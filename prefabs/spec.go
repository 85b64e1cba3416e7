package prefabs

import (
	"fmt"
	"log"

	"github.com/milk9111/ladderfall/grid"
	"github.com/milk9111/ladderfall/movement"
	"github.com/milk9111/ladderfall/tile"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type MovementSpec struct {
	PlayerSpeed   float64 `yaml:"player_speed"`
	JumpAllowance float64 `yaml:"jump_allowance"`
	TurnAllowance float64 `yaml:"turn_allowance"`
	TickRate      int     `yaml:"tick_rate"`
}

func LoadMovementSpec() (*MovementSpec, error) {
	spec, err := LoadSpec[MovementSpec]("movement.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Config fills unset or invalid fields from movement.DefaultConfig.
func (s *MovementSpec) Config() movement.Config {
	cfg := movement.DefaultConfig()
	if s == nil {
		return cfg
	}
	if s.PlayerSpeed > 0 {
		cfg.PlayerSpeed = s.PlayerSpeed
	}
	if s.JumpAllowance > 0 {
		cfg.JumpAllowance = s.JumpAllowance
	}
	if s.TurnAllowance > 0 {
		cfg.TurnAllowance = s.TurnAllowance
	}
	if s.TickRate > 0 {
		cfg.TickRate = s.TickRate
	}
	return cfg
}

// LoadMovementConfig never fails: a broken movement.yaml is logged and the
// defaults are used instead.
func LoadMovementConfig() movement.Config {
	spec, err := LoadMovementSpec()
	if err != nil {
		log.Printf("prefabs: %v; using default movement config", err)
		return movement.DefaultConfig()
	}
	return spec.Config()
}

type PlayerSpec struct {
	Name   string   `yaml:"name"`
	Dimens grid.Pos `yaml:"dimens"`
	Facing string   `yaml:"facing"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// FacingDirection decodes the facing field; anything but "negative" faces right.
func (s *PlayerSpec) FacingDirection() grid.Direction1D {
	if s != nil && s.Facing == "negative" {
		return grid.Negative
	}
	return grid.Positive
}

// LoadTileRegistry decodes tiles.yaml.
func LoadTileRegistry() (*tile.Registry, error) {
	data, err := Load("tiles.yaml")
	if err != nil {
		return nil, fmt.Errorf("prefabs: load tiles.yaml: %w", err)
	}
	reg, err := tile.ParseRegistry(data)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %w", err)
	}
	return reg, nil
}
