package movement

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ladderfall/grid"
)

// History is the rewindable stack of committed cells for a level.
type History struct {
	stack []grid.Pos
	// ForceKeyFrame makes the next steering pass record its cell even if it
	// did not change. Push clears it.
	ForceKeyFrame bool
}

func NewHistory(initial grid.Pos) *History {
	return &History{stack: []grid.Pos{initial}}
}

func (h *History) Push(p grid.Pos) {
	h.stack = append(h.stack, p)
	h.ForceKeyFrame = false
}

func (h *History) Pop() (grid.Pos, bool) {
	if len(h.stack) == 0 {
		return grid.Pos{}, false
	}
	last := h.stack[len(h.stack)-1]
	h.stack = h.stack[:len(h.stack)-1]
	return last, true
}

func (h *History) Peek() (grid.Pos, bool) {
	if len(h.stack) == 0 {
		return grid.Pos{}, false
	}
	return h.stack[len(h.stack)-1], true
}

func (h *History) Len() int {
	return len(h.stack)
}

// Positions returns a copy of the recorded cells, oldest first.
func (h *History) Positions() []grid.Pos {
	return append([]grid.Pos(nil), h.stack...)
}

// Rewind drops the current cell, restores the actor to the one before it and
// requests a key frame so the restored cell is recorded again next tick.
func Rewind(s *Steering, body *Body, h *History) bool {
	if h == nil || h.Len() < 2 {
		return false
	}
	h.Pop()
	p, _ := h.Pop()
	s.Pos = p
	s.Destination = p
	s.Mode = GroundedMode()
	body.Position = Centered(p)
	body.Velocity = cp.Vector{}
	h.ForceKeyFrame = true
	return true
}
