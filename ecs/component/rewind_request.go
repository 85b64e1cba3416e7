package component

// RewindRequest is a marker asking the rewind system to step the player back
// to the previous recorded cell. It is removed once handled.
type RewindRequest struct{}

var RewindRequestComponent = NewComponent[RewindRequest]()
