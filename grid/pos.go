package grid

import "fmt"

// Pos is an integer cell coordinate. The world is y-up: y+1 is the cell above.
type Pos struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

func (p Pos) Add(o Pos) Pos {
	return Pos{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Pos) Sub(o Pos) Pos {
	return Pos{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p Pos) OffsetX(dx int) Pos {
	return Pos{X: p.X + dx, Y: p.Y}
}

func (p Pos) OffsetY(dy int) Pos {
	return Pos{X: p.X, Y: p.Y + dy}
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
