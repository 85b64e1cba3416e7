package movement

// Sound is a fire-and-forget audio cue raised by the steering state machine.
type Sound uint8

const (
	SoundJump Sound = iota + 1
	SoundStep
	SoundLadderStep
	SoundCannotPerformAction
)

var soundNames = map[Sound]string{
	SoundJump:                "jump",
	SoundStep:                "step",
	SoundLadderStep:          "ladder_step",
	SoundCannotPerformAction: "cannot_perform_action",
}

func (s Sound) String() string {
	if name, ok := soundNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseSound is the inverse of Sound.String.
func ParseSound(name string) (Sound, bool) {
	for s, n := range soundNames {
		if n == name {
			return s, true
		}
	}
	return 0, false
}

// SoundSink receives sound cues.
type SoundSink interface {
	Emit(s Sound)
}

// SoundFunc adapts a function to SoundSink.
type SoundFunc func(s Sound)

func (f SoundFunc) Emit(s Sound) {
	if f != nil {
		f(s)
	}
}

func emit(sink SoundSink, s Sound) {
	if sink != nil {
		sink.Emit(s)
	}
}
