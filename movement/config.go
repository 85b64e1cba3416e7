package movement

// Config holds the tunables read by intent resolution and kinematics.
type Config struct {
	// PlayerSpeed is in tiles per second.
	PlayerSpeed float64
	// JumpAllowance is how long after pressing jump a direction still steers it.
	JumpAllowance float64
	// TurnAllowance is how long a tap against the facing direction only turns.
	TurnAllowance float64
	TickRate      int
}

func DefaultConfig() Config {
	return Config{
		PlayerSpeed:   4,
		JumpAllowance: 0.1,
		TurnAllowance: 0.1,
		TickRate:      60,
	}
}

// TickDuration is the fixed delta time in seconds.
func (c Config) TickDuration() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(c.TickRate)
}
