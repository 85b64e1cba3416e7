package script

import (
	"testing"

	"github.com/milk9111/ladderfall/ecs/component"
)

func TestTapeConvertsValues(t *testing.T) {
	tape, err := Compile("inline", []byte(`
input := func(tick) {
	if tick == 0 {
		return {move_x: 1, jump: true}
	}
	if tick == 1 {
		return {move_x: -0.5, move_y: 3, tool: true}
	}
	if tick == 2 {
		return {rewind: 1}
	}
}
`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	cases := []struct {
		tick int
		want component.Input
	}{
		{0, component.Input{MoveX: 1, Jump: true}},
		{1, component.Input{MoveX: -0.5, MoveY: 1, Tool: true}},
		{2, component.Input{Rewind: true}},
		{3, component.Input{}},
	}
	for _, c := range cases {
		got, err := tape.Eval(c.tick)
		if err != nil {
			t.Fatalf("tick %d: %v", c.tick, err)
		}
		if got != c.want {
			t.Fatalf("tick %d: got %+v, want %+v", c.tick, got, c.want)
		}
	}
}

func TestCompileError(t *testing.T) {
	if _, err := Compile("broken", []byte(`input := func(tick) {`)); err == nil {
		t.Fatalf("expected a compile error")
	}
	if _, err := Compile("no_input", []byte(`x := 1`)); err == nil {
		t.Fatalf("a tape without input should not compile")
	}
}

func TestRuntimeErrorStopsTape(t *testing.T) {
	tape, err := Compile("runtime", []byte(`
input := func(tick) {
	if tick == 1 {
		f := tick
		return f()
	}
	return {move_x: 1}
}
`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if got := tape.Input(0); got.MoveX != 1 {
		t.Fatalf("tick 0 = %+v", got)
	}
	if got := tape.Input(1); got != (component.Input{}) {
		t.Fatalf("failing tick should yield no input, got %+v", got)
	}
	if got := tape.Input(2); got != (component.Input{}) {
		t.Fatalf("tape should stay stopped after an error, got %+v", got)
	}
}

func TestEmbeddedTapes(t *testing.T) {
	for _, name := range []string{"walk_right", "jump_gap", "ladder"} {
		t.Run(name, func(t *testing.T) {
			tape, err := Load(name)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if _, err := tape.Eval(0); err != nil {
				t.Fatalf("eval: %v", err)
			}
		})
	}
}
