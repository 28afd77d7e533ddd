package core

// Color identifies how a screen cell is styled.
// The platform layer maps each value to a terminal style.
type Color uint8

const (
	ColorDefault Color = iota
	ColorText
	ColorBorder
	ColorSnake
	ColorApple
	ColorAlert
)

// String returns the theme key for the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorText:
		return "text"
	case ColorBorder:
		return "border"
	case ColorSnake:
		return "snake"
	case ColorApple:
		return "apple"
	case ColorAlert:
		return "alert"
	default:
		return "unknown"
	}
}
