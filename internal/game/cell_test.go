package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCellPacking(t *testing.T) {
	for d := DirUp; d < dirCount; d++ {
		c := NewSnake(d)
		require.Equal(t, KindSnake, c.Kind())
		require.Equal(t, d, c.Dir())
		require.True(t, c.IsSnake())
		require.False(t, c.IsEmpty())
		require.False(t, c.IsApple())
	}

	require.Equal(t, Cell(0), CellEmpty, "zero value must be an empty cell")
	require.True(t, CellEmpty.IsEmpty())
	require.True(t, CellApple.IsApple())
	require.Equal(t, KindApple, CellApple.Kind())
}

func TestPerpendicular(t *testing.T) {
	tests := []struct {
		a, b     Direction
		expected bool
	}{
		{DirUp, DirLeft, true},
		{DirUp, DirRight, true},
		{DirDown, DirLeft, true},
		{DirLeft, DirDown, true},
		{DirUp, DirUp, false},
		{DirUp, DirDown, false},
		{DirLeft, DirRight, false},
		{DirRight, DirRight, false},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, tt.a.Perpendicular(tt.b), "%s vs %s", tt.a, tt.b)
	}
}

func TestStrings(t *testing.T) {
	require.Equal(t, "right", DirRight.String())
	require.Equal(t, "snake", KindSnake.String())
	require.Equal(t, "quit", InputQuit.String())
	require.Equal(t, "over", StatusOver.String())
	require.Equal(t, "unknown", Status(7).String())
}
