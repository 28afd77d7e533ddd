package game

import "math/rand"

// Engine runs the state machine. It only holds the random source used to
// place apples; game state is passed in and returned by value.
type Engine struct {
	rng Rand
}

// NewEngine creates an engine drawing apple positions from rng.
func NewEngine(rng Rand) *Engine {
	return &Engine{rng: rng}
}

// New creates an engine with a seeded math/rand source.
func New(seed int64) *Engine {
	return NewEngine(rand.New(rand.NewSource(seed)))
}

// Init returns a fresh running game: a three cell snake in the middle of the
// board heading right, and one apple.
func (e *Engine) Init() State {
	var s State
	s.reset(e.rng)
	return s
}

func (s *State) reset(rng Rand) {
	s.Status = StatusRunning
	s.Board.Clear()
	s.Head = Index(Width/2, Height/2)
	s.Tail = s.Head - (InitialLength - 1)
	s.ApplesEaten = 0
	s.Speed = BaseSpeed

	for i := s.Tail; i <= s.Head; i++ {
		s.Board[i] = NewSnake(DirRight)
	}

	SpawnApple(&s.Board, rng)
}

// Step advances prev by one tick and returns the new state. prev is never
// modified.
func (e *Engine) Step(in Input, prev State) State {
	next := prev

	switch prev.Status {
	case StatusExited:
		// Dead state.

	case StatusOver:
		switch in {
		case InputQuit:
			next.Status = StatusExited
		case InputNone:
		default:
			next.reset(e.rng)
		}

	case StatusRunning:
		e.advance(in, prev, &next)
	}

	return next
}

// advance applies one running tick to next, which starts as a copy of prev.
func (e *Engine) advance(in Input, prev State, next *State) {
	headDir := prev.Board[prev.Head].Dir()

	switch in {
	case InputQuit:
		next.Status = StatusExited
		return
	case InputNone:
		// Full step in the current heading.
	default:
		// Only turns onto the other axis are taken; everything else,
		// including reversing, leaves the state as it was.
		userDir := DirectionFor(in)
		if !userDir.Perpendicular(headDir) {
			return
		}
		headDir = userDir
	}

	next.Board[prev.Head] = NewSnake(headDir)

	nextHead := Neighbor(prev.Head, headDir)
	nextKind := prev.Board[nextHead].Kind()
	next.Board[nextHead] = NewSnake(headDir)
	next.Head = nextHead

	switch nextKind {
	case KindSnake:
		next.Status = StatusOver
	case KindEmpty:
		next.Board[prev.Tail] = CellEmpty
		next.Tail = Neighbor(prev.Tail, prev.Board[prev.Tail].Dir())
	case KindApple:
		next.ApplesEaten++
		next.Speed = BaseSpeed + next.ApplesEaten
		SpawnApple(&next.Board, e.rng)
	}
}
