package game

import (
	"fmt"
	"strings"
)

const (
	// BaseSpeed is the speed of a fresh game; each apple adds one.
	BaseSpeed = 850
	// ScorePerApple is the score shown for every apple eaten.
	ScorePerApple = 100
	// InitialLength is the number of segments of a fresh snake.
	InitialLength = 3
)

// Status is the phase of a game.
type Status int

const (
	StatusExited Status = iota
	StatusRunning
	StatusOver
)

func (s Status) String() string {
	switch s {
	case StatusExited:
		return "exited"
	case StatusRunning:
		return "running"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// State is a complete game value. Copying a State copies its board.
type State struct {
	Status      Status
	Board       Board
	Head        int
	Tail        int
	ApplesEaten int
	Speed       int
}

// Score returns the displayed score.
func (s State) Score() int {
	return s.ApplesEaten * ScorePerApple
}

// HeadDir returns the direction stored in the head cell.
func (s State) HeadDir() Direction {
	return s.Board[s.Head].Dir()
}

// Body returns the snake's cell indices from tail to head, following the
// direction stored in each segment. The walk stops early if it leaves the
// snake or would revisit a cell.
func (s State) Body() []int {
	body := make([]int, 0, InitialLength)
	seen := make(map[int]bool, InitialLength)

	i := s.Tail
	for len(body) < Size {
		if !s.Board[i].IsSnake() || seen[i] {
			break
		}
		body = append(body, i)
		seen[i] = true
		if i == s.Head {
			break
		}
		i = Neighbor(i, s.Board[i].Dir())
	}

	return body
}

// Length returns the number of snake cells on the board.
func (s State) Length() int {
	return s.Board.Count(KindSnake)
}

// String returns a debug dump of the state with the board drawn as text.
func (s State) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Status: %s, Apples: %d, Speed: %d\n", s.Status, s.ApplesEaten, s.Speed)
	fmt.Fprintf(&b, "Head: (%d, %d) %s, Tail: (%d, %d)\n", X(s.Head), Y(s.Head), s.HeadDir(), X(s.Tail), Y(s.Tail))

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			i := Index(x, y)
			c := s.Board[i]
			switch {
			case c.IsApple():
				b.WriteByte('*')
			case c.IsSnake() && i == s.Head:
				b.WriteByte('@')
			case c.IsSnake():
				b.WriteString("^<v>"[c.Dir() : c.Dir()+1])
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
