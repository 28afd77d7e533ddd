package game

import "github.com/vovakirdan/tui-snake/internal/core"

// Board dimensions are fixed; there is no configurable board shape.
const (
	Width  = 20
	Height = 20
	Size   = Width * Height
)

// Board is the row-major grid of cells. It is an array so that assigning a
// State copies the whole board.
type Board [Size]Cell

// Index converts (x, y) to a linear board index.
func Index(x, y int) int {
	return Width*y + x
}

// X returns the column of a linear index.
func X(i int) int {
	return i % Width
}

// Y returns the row of a linear index.
func Y(i int) int {
	return i / Width
}

// Neighbor returns the cell next to i in direction dir.
// Moving off an edge stays on that edge: the board never wraps.
func Neighbor(i int, dir Direction) int {
	x, y := X(i), Y(i)

	switch dir {
	case DirUp:
		y = core.Clamp(y-1, 0, Height-1)
	case DirLeft:
		x = core.Clamp(x-1, 0, Width-1)
	case DirDown:
		y = core.Clamp(y+1, 0, Height-1)
	case DirRight:
		x = core.Clamp(x+1, 0, Width-1)
	}

	return Index(x, y)
}

// DirectionFor maps a directional input to a direction.
// Anything that is not a direction falls back to Up.
func DirectionFor(in Input) Direction {
	switch in {
	case InputUp:
		return DirUp
	case InputDown:
		return DirDown
	case InputLeft:
		return DirLeft
	case InputRight:
		return DirRight
	default:
		return DirUp
	}
}

// Count returns how many cells have the given kind.
func (b *Board) Count(k Kind) int {
	n := 0
	for _, c := range b {
		if c.Kind() == k {
			n++
		}
	}
	return n
}

// Clear resets every cell to empty.
func (b *Board) Clear() {
	for i := range b {
		b[i] = CellEmpty
	}
}
