package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/input"
)

// Screen layout. The board starts at column 2, row 1 and every cell is two
// columns wide so the board looks square. The sidebar sits right of the
// frame.
const (
	boardX    = 2
	boardY    = 1
	cellW     = 2
	sidebarX  = boardX + game.Width*cellW + 2
	sidebarW  = 12
	LayoutW   = sidebarX + sidebarW
	LayoutH   = boardY + game.Height + 1
	scoreFmt  = "%08d"
	gameOver  = "GAME OVER!"
	scoreHead = "SCORE   "
)

// Palette maps screen colors to terminal styles.
type Palette map[core.Color]lipgloss.Style

// NewPalette builds the styles for a theme.
func NewPalette(theme config.ThemeConfig) Palette {
	return Palette{
		core.ColorDefault: lipgloss.NewStyle(),
		core.ColorText:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Text)).Bold(true),
		core.ColorBorder:  lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Border)).Faint(true),
		core.ColorSnake: lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color(theme.Snake)),
		core.ColorApple: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Apple)).
			Background(lipgloss.Color(theme.Apple)),
		core.ColorAlert: lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color(theme.Alert)).
			Bold(true).
			Blink(true),
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, palette Palette) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := palette[startColor]
			if !ok {
				style = palette[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// headGlyphs are the two-column head drawings per direction.
var headGlyphs = [...]string{
	game.DirUp:    "''",
	game.DirLeft:  ": ",
	game.DirDown:  "..",
	game.DirRight: " :",
}

// Renderer paints game snapshots into a screen buffer.
type Renderer struct {
	keys input.KeyMap
}

// NewRenderer creates a renderer that lists the given bindings in the sidebar.
func NewRenderer(keys input.KeyMap) Renderer {
	return Renderer{keys: keys}
}

// Draw paints snap into dst.
func (r Renderer) Draw(dst *core.Screen, snap game.Snapshot) {
	dst.Clear()

	if dst.Width() < LayoutW || dst.Height() < LayoutH {
		r.drawTooSmall(dst)
		return
	}

	dst.DrawFrame(core.NewRect(boardX-1, boardY-1, game.Width*cellW+2, game.Height+2), core.ColorBorder)
	r.drawBoard(dst, snap)
	r.drawSidebar(dst, snap)

	if snap.Status == game.StatusOver {
		dst.DrawText(boardX+game.Width-len(gameOver)/2, boardY+game.Height/2, gameOver, core.ColorAlert)
	}
}

func (r Renderer) drawBoard(dst *core.Screen, snap game.Snapshot) {
	for i, c := range snap.Board {
		sx := boardX + game.X(i)*cellW
		sy := boardY + game.Y(i)

		switch {
		case c.IsApple():
			dst.DrawText(sx, sy, "  ", core.ColorApple)
		case c.IsSnake() && i == snap.Head:
			dst.DrawText(sx, sy, headGlyphs[snap.HeadDir()], core.ColorSnake)
		case c.IsSnake():
			dst.DrawText(sx, sy, "  ", core.ColorSnake)
		}
	}
}

func (r Renderer) drawSidebar(dst *core.Screen, snap game.Snapshot) {
	dst.DrawText(sidebarX, boardY, scoreHead, core.ColorText)
	dst.DrawText(sidebarX, boardY+1, fmt.Sprintf(scoreFmt, snap.Score()), core.ColorText)

	// Controls sit at the bottom of the sidebar, level with the frame.
	bottom := boardY + game.Height
	dst.DrawText(sidebarX, bottom-6, "Move Snake", core.ColorText)
	dst.DrawText(sidebarX, bottom-5, r.moveKeys(), core.ColorDefault)
	dst.DrawText(sidebarX, bottom-2, "Quit", core.ColorText)
	dst.DrawText(sidebarX, bottom-1, r.quitKeys(), core.ColorDefault)
}

// moveKeys describes the steering keys in at most sidebarW columns.
func (r Renderer) moveKeys() string {
	bindings := []struct {
		keys  []string
		arrow string
	}{
		{r.keys.Up.Keys(), "up"},
		{r.keys.Left.Keys(), "left"},
		{r.keys.Down.Keys(), "down"},
		{r.keys.Right.Keys(), "right"},
	}

	arrows := true
	first := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !contains(b.keys, b.arrow) {
			arrows = false
		}
		if len(b.keys) > 0 {
			first = append(first, b.keys[0])
		}
	}
	if arrows {
		return "Arrow Keys"
	}
	return clip(strings.Join(first, " "), sidebarW)
}

func (r Renderer) quitKeys() string {
	keys := r.keys.Quit.Keys()
	if len(keys) > 2 {
		keys = keys[:2]
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		if k == "esc" {
			k = "ESC"
		}
		names[i] = k
	}
	return clip(strings.Join(names, " or "), sidebarW)
}

func (r Renderer) drawTooSmall(dst *core.Screen) {
	area := core.NewRect(0, 0, dst.Width(), dst.Height())
	mid := dst.Height() / 2
	dst.DrawTextCentered(area, mid-1, "Window too small", core.ColorAlert)
	dst.DrawTextCentered(area, mid+1, fmt.Sprintf("Resize to %dx%d", LayoutW, LayoutH+1), core.ColorDefault)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
