// Package game implements the snake board and its state machine.
// It has no terminal dependencies: the platform layer feeds it inputs and
// paints the snapshots it returns.
package game

// Kind is the occupancy part of a cell.
type Kind uint8

const (
	KindEmpty Kind = 0x00
	KindApple Kind = 0x04
	KindSnake Kind = 0x08

	kindMask = 0x0C
)

// Direction is the travel direction stored in snake cells.
// The order matters: Up/Down and Left/Right differ in parity.
type Direction uint8

const (
	DirUp Direction = iota
	DirLeft
	DirDown
	DirRight

	dirCount = 4
	dirMask  = 0x03
)

// Axis returns 0 for vertical and 1 for horizontal directions.
func (d Direction) Axis() int {
	return int(d) % 2
}

// Perpendicular reports whether d and other lie on different axes.
func (d Direction) Perpendicular(other Direction) bool {
	return d.Axis() != other.Axis()
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Cell packs an occupancy kind and a direction into one byte.
// The direction bits only mean something for snake cells.
type Cell uint8

const (
	CellEmpty = Cell(KindEmpty)
	CellApple = Cell(KindApple)
)

// NewSnake returns a snake cell travelling in dir.
func NewSnake(dir Direction) Cell {
	return Cell(KindSnake) | Cell(dir&dirMask)
}

// Kind returns the occupancy kind.
func (c Cell) Kind() Kind {
	return Kind(c & kindMask)
}

// Dir returns the stored direction. Only valid for snake cells.
func (c Cell) Dir() Direction {
	return Direction(c & dirMask)
}

// IsEmpty reports whether the cell is free.
func (c Cell) IsEmpty() bool {
	return c.Kind() == KindEmpty
}

// IsSnake reports whether the cell holds a snake segment.
func (c Cell) IsSnake() bool {
	return c.Kind() == KindSnake
}

// IsApple reports whether the cell holds an apple.
func (c Cell) IsApple() bool {
	return c.Kind() == KindApple
}

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindApple:
		return "apple"
	case KindSnake:
		return "snake"
	default:
		return "unknown"
	}
}
