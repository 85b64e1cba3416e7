package component

// Input stores the signals polled for an entity this tick. The *Pressed
// fields are true only on the tick the button went down.
type Input struct {
	MoveX  float64
	MoveY  float64
	Jump   bool
	Tool   bool
	Rewind bool

	ToolPressed   bool
	RewindPressed bool
}

var InputComponent = NewComponent[Input]()
