package tile

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ladderfall/grid"
)

type cellKind uint8

const (
	cellAnchor cellKind = iota + 1
	cellDummy
)

// cell is either an anchor naming a tile key or a dummy pointing at its anchor.
type cell struct {
	kind   cellKind
	key    string
	anchor grid.Pos
}

// Bounds is the world rectangle in cells, used for wrap-around.
type Bounds struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// BB converts the bounds to continuous coordinates. The left and bottom edges
// are inclusive, the right and top edges exclusive.
func (b Bounds) BB() cp.BB {
	return cp.BB{
		L: float64(b.X),
		B: float64(b.Y),
		R: float64(b.X + b.Width),
		T: float64(b.Y + b.Height),
	}
}

// Map is a sparse grid of placed tiles. Multi-cell tiles occupy one anchor
// cell at their bottom-left and dummy cells for the rest of the footprint.
// Cells without an entry are open air.
type Map struct {
	registry *Registry
	cells    map[grid.Pos]cell
	bounds   Bounds
}

func NewMap(registry *Registry, bounds Bounds) *Map {
	if registry == nil {
		registry = NewRegistry(nil)
	}
	return &Map{
		registry: registry,
		cells:    make(map[grid.Pos]cell),
		bounds:   bounds,
	}
}

func (m *Map) Registry() *Registry {
	return m.registry
}

func (m *Map) Bounds() Bounds {
	return m.bounds
}

func (m *Map) SetBounds(b Bounds) {
	m.bounds = b
}

// Len returns the number of occupied cells, dummies included.
func (m *Map) Len() int {
	return len(m.cells)
}

// Get resolves the definition at pos. It never fails: open air resolves to
// Air and broken references resolve to Fallback.
func (m *Map) Get(pos grid.Pos) Definition {
	if m == nil {
		return Air()
	}
	c, ok := m.cells[pos]
	if !ok {
		return Air()
	}
	switch c.kind {
	case cellAnchor:
		return m.registry.Lookup(c.key)
	case cellDummy:
		anchor, ok := m.cells[c.anchor]
		if !ok || anchor.kind != cellAnchor {
			log.Printf("tile: dummy at %v points to missing anchor %v, using fallback", pos, c.anchor)
			return Fallback()
		}
		return m.registry.Lookup(anchor.key)
	}
	return Fallback()
}

// KeyAt returns the tile key covering pos, if any.
func (m *Map) KeyAt(pos grid.Pos) (string, bool) {
	anchor, ok := m.AnchorOf(pos)
	if !ok {
		return "", false
	}
	c, ok := m.cells[anchor]
	if !ok || c.kind != cellAnchor {
		return "", false
	}
	return c.key, true
}

// AnchorOf returns the anchor cell of the footprint covering pos.
func (m *Map) AnchorOf(pos grid.Pos) (grid.Pos, bool) {
	c, ok := m.cells[pos]
	if !ok {
		return grid.Pos{}, false
	}
	if c.kind == cellDummy {
		return c.anchor, true
	}
	return pos, true
}

// PutTile places key with its bottom-left at pos, filling the whole footprint.
// Anything already occupying the footprint is logged and removed first.
func (m *Map) PutTile(pos grid.Pos, key string) {
	fp := m.registry.Lookup(key).Footprint()
	for dy := 0; dy < fp.Y; dy++ {
		for dx := 0; dx < fp.X; dx++ {
			p := pos.Add(grid.Pos{X: dx, Y: dy})
			if _, taken := m.cells[p]; taken {
				log.Printf("tile: placing %q at %v overwrites cell %v", key, pos, p)
				m.RemoveTile(p)
			}
		}
	}
	for dy := 0; dy < fp.Y; dy++ {
		for dx := 0; dx < fp.X; dx++ {
			p := pos.Add(grid.Pos{X: dx, Y: dy})
			if p == pos {
				m.cells[p] = cell{kind: cellAnchor, key: key}
				continue
			}
			m.cells[p] = cell{kind: cellDummy, anchor: pos}
		}
	}
}

// RemoveTile clears the whole footprint that pos belongs to and reports
// whether anything was removed.
func (m *Map) RemoveTile(pos grid.Pos) bool {
	anchor, ok := m.AnchorOf(pos)
	if !ok {
		return false
	}
	c, ok := m.cells[anchor]
	if !ok || c.kind != cellAnchor {
		delete(m.cells, pos)
		return true
	}
	fp := m.registry.Lookup(c.key).Footprint()
	for dy := 0; dy < fp.Y; dy++ {
		for dx := 0; dx < fp.X; dx++ {
			p := anchor.Add(grid.Pos{X: dx, Y: dy})
			if other, ok := m.cells[p]; ok && (p == anchor || (other.kind == cellDummy && other.anchor == anchor)) {
				delete(m.cells, p)
			}
		}
	}
	return true
}

func (m *Map) ProvidesPlatform(pos grid.Pos) bool {
	return m.Get(pos).ProvidesPlatform()
}

func (m *Map) CollidesHorizontally(pos grid.Pos) bool {
	return m.Get(pos).CollidesHorizontally()
}

func (m *Map) CollidesBottom(pos grid.Pos) bool {
	return m.Get(pos).CollidesBottom()
}

func (m *Map) IsClimbable(pos grid.Pos) bool {
	return m.Get(pos).IsClimbable()
}

func (m *Map) IsBreakable(pos grid.Pos) bool {
	return m.Get(pos).IsBreakable()
}
