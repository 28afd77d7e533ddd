package game

// Snapshot is the read-only view of a state used for drawing.
type Snapshot struct {
	Board       Board
	Head        int
	Status      Status
	ApplesEaten int
}

// Snapshot returns a copy of the parts of the state a renderer needs.
func (s State) Snapshot() Snapshot {
	return Snapshot{
		Board:       s.Board,
		Head:        s.Head,
		Status:      s.Status,
		ApplesEaten: s.ApplesEaten,
	}
}

// Score returns the displayed score.
func (s Snapshot) Score() int {
	return s.ApplesEaten * ScorePerApple
}

// HeadDir returns the direction of the head segment, used for its glyph.
func (s Snapshot) HeadDir() Direction {
	return s.Board[s.Head].Dir()
}
