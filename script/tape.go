// Package script runs tengo input tapes. A tape defines
//
//	input := func(tick) { return {move_x: 1, jump: tick == 0} }
//
// and is asked for one input per tick.
package script

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/ladderfall/ecs/component"
	"github.com/milk9111/ladderfall/prefabs"
)

const tapeDispatchScript = `
__out = input(__tick)
`

// Tape is a compiled input script. It is not safe for concurrent use.
type Tape struct {
	Name     string
	compiled *tengo.Compiled
	failed   bool
}

// Load compiles a tape from prefabs/scripts.
func Load(name string) (*Tape, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", name, err)
	}
	return Compile(name, src)
}

func Compile(name string, src []byte) (*Tape, error) {
	full := string(src) + "\n" + tapeDispatchScript
	s := tengo.NewScript([]byte(full))
	_ = s.Add("__tick", 0)
	_ = s.Add("__out", nil)
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}
	return &Tape{Name: name, compiled: compiled}, nil
}

// Eval runs the tape for one tick.
func (t *Tape) Eval(tick int) (component.Input, error) {
	if err := t.compiled.Set("__tick", tick); err != nil {
		return component.Input{}, err
	}
	if err := t.compiled.Run(); err != nil {
		return component.Input{}, fmt.Errorf("script: %s tick %d: %w", t.Name, tick, err)
	}
	out := t.compiled.Get("__out").Map()
	return component.Input{
		MoveX:  clampAxis(toFloat(out["move_x"])),
		MoveY:  clampAxis(toFloat(out["move_y"])),
		Jump:   toBool(out["jump"]),
		Tool:   toBool(out["tool"]),
		Rewind: toBool(out["rewind"]),
	}, nil
}

// Input implements system.InputSource. A failing tape logs once and then
// yields no input.
func (t *Tape) Input(tick int) component.Input {
	if t == nil || t.failed {
		return component.Input{}
	}
	in, err := t.Eval(tick)
	if err != nil {
		log.Printf("%v", err)
		t.failed = true
		return component.Input{}
	}
	return in
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case int64:
		return float64(n)
	case float64:
		return n
	case bool:
		if n {
			return 1
		}
	}
	return 0
}

func toBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case int64:
		return b != 0
	}
	return false
}

func clampAxis(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v < -1:
		return -1
	default:
		return v
	}
}
