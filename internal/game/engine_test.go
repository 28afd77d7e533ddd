package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// segment is one snake cell for building test states.
type segment struct {
	x, y int
	dir  Direction
}

// buildState lays out a running snake from tail to head.
func buildState(body ...segment) State {
	s := State{Status: StatusRunning, Speed: BaseSpeed}
	for _, seg := range body {
		s.Board[Index(seg.x, seg.y)] = NewSnake(seg.dir)
	}
	s.Tail = Index(body[0].x, body[0].y)
	s.Head = Index(body[len(body)-1].x, body[len(body)-1].y)
	return s
}

// requireValidBody checks that the snake cells form one path from tail to
// head without repeats.
func requireValidBody(t *testing.T, s State) {
	t.Helper()

	body := s.Body()
	require.NotEmpty(t, body, "no snake found from tail\n%s", s)
	require.Equal(t, s.Length(), len(body), "path from tail does not cover the snake\n%s", s)
	require.Equal(t, s.Head, body[len(body)-1], "path from tail does not end at head\n%s", s)
	require.Equal(t, s.Tail, body[0])
}

func TestInit(t *testing.T) {
	s := New(42).Init()

	require.Equal(t, StatusRunning, s.Status)
	require.Equal(t, Index(Width/2, Height/2), s.Head)
	require.Equal(t, s.Head-2, s.Tail)
	require.Equal(t, 0, s.ApplesEaten)
	require.Equal(t, BaseSpeed, s.Speed)
	require.Equal(t, InitialLength, s.Length())
	require.Equal(t, 1, s.Board.Count(KindApple))

	for i := s.Tail; i <= s.Head; i++ {
		require.Equal(t, NewSnake(DirRight), s.Board[i])
	}
	requireValidBody(t, s)
}

func TestInitDeterminism(t *testing.T) {
	require.Equal(t, New(12345).Init(), New(12345).Init())
}

func TestStepDoesNotModifyInput(t *testing.T) {
	e := New(7)
	s := e.Init()
	before := s

	for _, in := range []Input{InputNone, InputUp, InputLeft, InputQuit} {
		_ = e.Step(in, s)
		require.Equal(t, before, s, "Step(%s) changed its input", in)
	}
}

func TestSameAxisInputIsNoop(t *testing.T) {
	e := New(3)
	right := e.Init()

	require.Equal(t, right, e.Step(InputRight, right), "repeating the heading")
	require.Equal(t, right, e.Step(InputLeft, right), "reversing")

	up := buildState(
		segment{5, 9, DirUp},
		segment{5, 8, DirUp},
		segment{5, 7, DirUp},
	)
	require.Equal(t, up, e.Step(InputUp, up))
	require.Equal(t, up, e.Step(InputDown, up))
}

func TestFullStepKeepsLength(t *testing.T) {
	e := New(11)
	s := buildState(
		segment{3, 4, DirRight},
		segment{4, 4, DirRight},
		segment{5, 4, DirRight},
	)

	next := e.Step(InputNone, s)

	require.Equal(t, StatusRunning, next.Status)
	require.Equal(t, Index(6, 4), next.Head)
	require.Equal(t, Index(4, 4), next.Tail)
	require.True(t, next.Board[Index(3, 4)].IsEmpty())
	require.Equal(t, s.Length(), next.Length())
	require.Equal(t, s.Board.Count(KindEmpty), next.Board.Count(KindEmpty))
	requireValidBody(t, next)
}

func TestTurnAdvancesSameTick(t *testing.T) {
	e := New(11)
	s := buildState(
		segment{3, 4, DirRight},
		segment{4, 4, DirRight},
		segment{5, 4, DirRight},
	)

	next := e.Step(InputUp, s)

	require.Equal(t, Index(5, 3), next.Head)
	require.Equal(t, DirUp, next.Board[Index(5, 4)].Dir(), "old head must point to the new head")
	require.Equal(t, DirUp, next.HeadDir())
	require.Equal(t, Index(4, 4), next.Tail)
	requireValidBody(t, next)

	// The tail follows the recorded path around the corner.
	next = e.Step(InputNone, next)
	require.Equal(t, Index(5, 4), next.Tail)
	require.Equal(t, Index(5, 2), next.Head)
	requireValidBody(t, next)
}

func TestEatingAppleGrows(t *testing.T) {
	e := New(5)
	s := e.Init()
	s.Board[Index(X(s.Head)+1, Y(s.Head))] = CellApple
	// Drop any other apple so the count below is exact.
	for i, c := range s.Board {
		if c.IsApple() && i != s.Head+1 {
			s.Board[i] = CellEmpty
		}
	}

	next := e.Step(InputNone, s)

	require.Equal(t, StatusRunning, next.Status)
	require.Equal(t, 1, next.ApplesEaten)
	require.Equal(t, BaseSpeed+1, next.Speed)
	require.Equal(t, ScorePerApple, next.Score())
	require.Equal(t, s.Length()+1, next.Length())
	require.Equal(t, s.Tail, next.Tail, "tail must not retract while growing")
	require.Equal(t, 1, next.Board.Count(KindApple), "a new apple must be spawned")
	requireValidBody(t, next)
}

func TestSpeedFollowsApplesEaten(t *testing.T) {
	e := New(5)
	s := buildState(
		segment{1, 1, DirRight},
		segment{2, 1, DirRight},
		segment{3, 1, DirRight},
	)
	s.ApplesEaten = 9
	s.Speed = BaseSpeed + 9
	s.Board[Index(4, 1)] = CellApple

	next := e.Step(InputNone, s)
	require.Equal(t, 10, next.ApplesEaten)
	require.Equal(t, BaseSpeed+10, next.Speed)
}

func TestSelfCollision(t *testing.T) {
	e := New(1)
	// Hook shape: right, right, down, left; turning up bites the body.
	s := buildState(
		segment{5, 5, DirRight},
		segment{6, 5, DirRight},
		segment{7, 5, DirDown},
		segment{7, 6, DirLeft},
		segment{6, 6, DirLeft},
	)

	next := e.Step(InputUp, s)

	require.Equal(t, StatusOver, next.Status)
	require.Equal(t, Index(6, 5), next.Head)
	require.Equal(t, s.Tail, next.Tail, "tail is left alone on collision")
}

func TestCollisionWithTail(t *testing.T) {
	e := New(1)
	// The tail cell still counts as body on the tick it would move away.
	s := buildState(
		segment{6, 5, DirRight},
		segment{7, 5, DirDown},
		segment{7, 6, DirLeft},
		segment{6, 6, DirLeft},
	)

	require.Equal(t, StatusOver, e.Step(InputUp, s).Status)
}

func TestWallCollision(t *testing.T) {
	tests := []struct {
		name string
		body []segment
		in   Input
	}{
		{
			name: "right edge",
			body: []segment{{Width - 3, 4, DirRight}, {Width - 2, 4, DirRight}, {Width - 1, 4, DirRight}},
			in:   InputNone,
		},
		{
			name: "left edge",
			body: []segment{{2, 4, DirLeft}, {1, 4, DirLeft}, {0, 4, DirLeft}},
			in:   InputNone,
		},
		{
			name: "top edge after turn",
			body: []segment{{3, 0, DirRight}, {4, 0, DirRight}, {5, 0, DirRight}},
			in:   InputUp,
		},
		{
			name: "bottom edge",
			body: []segment{{8, Height - 3, DirDown}, {8, Height - 2, DirDown}, {8, Height - 1, DirDown}},
			in:   InputNone,
		},
	}

	e := New(1)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := buildState(tt.body...)
			next := e.Step(tt.in, s)

			require.Equal(t, StatusOver, next.Status)
			require.Equal(t, s.Head, next.Head, "clamped head stays on the edge")
			require.GreaterOrEqual(t, next.Head, 0)
			require.Less(t, next.Head, Size)
		})
	}
}

func TestQuitWhileRunning(t *testing.T) {
	e := New(2)
	s := e.Init()

	next := e.Step(InputQuit, s)

	require.Equal(t, StatusExited, next.Status)
	require.Equal(t, s.Board, next.Board, "quitting must not move the snake")
	require.Equal(t, s.Head, next.Head)
}

func TestExitedIsDead(t *testing.T) {
	e := New(2)
	s := e.Init()
	s.Status = StatusExited

	for _, in := range []Input{InputNone, InputUp, InputLeft, InputDown, InputRight, InputQuit, Input(99)} {
		require.Equal(t, s, e.Step(in, s), "input %s", in)
	}
}

func TestOverTransitions(t *testing.T) {
	e := New(8)
	over := buildState(
		segment{1, 1, DirRight},
		segment{2, 1, DirRight},
		segment{3, 1, DirRight},
	)
	over.Status = StatusOver
	over.ApplesEaten = 4
	over.Speed = BaseSpeed + 4

	require.Equal(t, over, e.Step(InputNone, over), "idle while over")
	require.Equal(t, StatusExited, e.Step(InputQuit, over).Status)

	for _, in := range []Input{InputUp, InputLeft, InputDown, InputRight} {
		restarted := e.Step(in, over)
		fresh := New(0).Init()

		require.Equal(t, StatusRunning, restarted.Status, "input %s", in)
		require.Equal(t, 0, restarted.ApplesEaten)
		require.Equal(t, BaseSpeed, restarted.Speed)
		require.Equal(t, fresh.Head, restarted.Head)
		require.Equal(t, fresh.Tail, restarted.Tail)
		require.Equal(t, fresh.Body(), restarted.Body())
		require.Equal(t, InitialLength, restarted.Length())
		require.Equal(t, 1, restarted.Board.Count(KindApple))
	}
}

func TestRandomPlayKeepsBodyValid(t *testing.T) {
	e := New(2024)
	inputs := rand.New(rand.NewSource(77))
	choices := []Input{InputNone, InputNone, InputNone, InputUp, InputLeft, InputDown, InputRight}

	s := e.Init()
	restarts := 0
	for tick := 0; tick < 20000; tick++ {
		prev := s
		in := choices[inputs.Intn(len(choices))]
		s = e.Step(in, s)

		switch s.Status {
		case StatusRunning:
			requireValidBody(t, s)
			if s.ApplesEaten == prev.ApplesEaten && prev.Status == StatusRunning {
				require.Equal(t, prev.Length(), s.Length(), "tick %d", tick)
			}
			require.Equal(t, BaseSpeed+s.ApplesEaten, s.Speed)
			require.Equal(t, 1, s.Board.Count(KindApple))
		case StatusOver:
			s = e.Step(InputRight, s)
			restarts++
		default:
			t.Fatalf("unexpected status %s at tick %d", s.Status, tick)
		}
	}
	require.Positive(t, restarts, "random play should end at least one game")
}
