package game

// Input is the discrete input applied to a single tick.
type Input int

const (
	InputNone Input = iota
	InputUp
	InputLeft
	InputDown
	InputRight
	InputQuit
)

// String returns a human-readable name for the input.
func (in Input) String() string {
	switch in {
	case InputNone:
		return "none"
	case InputUp:
		return "up"
	case InputLeft:
		return "left"
	case InputDown:
		return "down"
	case InputRight:
		return "right"
	case InputQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// IsDirection reports whether the input steers the snake.
func (in Input) IsDirection() bool {
	return in >= InputUp && in <= InputRight
}
