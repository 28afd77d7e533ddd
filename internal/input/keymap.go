// Package input translates Bubble Tea key messages into game inputs.
package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// KeyMap holds the bindings for each game input.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

// NewKeyMap builds bindings from the configured key lists.
func NewKeyMap(keys config.KeysConfig) KeyMap {
	return KeyMap{
		Up:    newBinding(keys.Up, "up"),
		Down:  newBinding(keys.Down, "down"),
		Left:  newBinding(keys.Left, "left"),
		Right: newBinding(keys.Right, "right"),
		Quit:  newBinding(keys.Quit, "quit"),
	}
}

// DefaultKeyMap returns the bindings of the default configuration.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.Default().Keys)
}

func newBinding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKeys(keys), desc),
	)
}

// helpKeys renders key names the way the help line shows them.
func helpKeys(keys []string) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		switch k {
		case "up":
			names[i] = "↑"
		case "down":
			names[i] = "↓"
		case "left":
			names[i] = "←"
		case "right":
			names[i] = "→"
		default:
			names[i] = k
		}
	}
	return strings.Join(names, "/")
}

// Map returns the input for a key press. Unbound keys map to InputNone.
func (k KeyMap) Map(msg tea.KeyMsg) game.Input {
	switch {
	case key.Matches(msg, k.Quit):
		return game.InputQuit
	case key.Matches(msg, k.Up):
		return game.InputUp
	case key.Matches(msg, k.Down):
		return game.InputDown
	case key.Matches(msg, k.Left):
		return game.InputLeft
	case key.Matches(msg, k.Right):
		return game.InputRight
	default:
		return game.InputNone
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Quit},
	}
}

// Collector keeps the most recent input of a frame. Several presses within
// one frame collapse to the last one.
type Collector struct {
	pending game.Input
}

// Push records an input. InputNone is ignored.
func (c *Collector) Push(in game.Input) {
	if in == game.InputNone {
		return
	}
	c.pending = in
}

// Pending reports whether an input is waiting.
func (c *Collector) Pending() bool {
	return c.pending != game.InputNone
}

// Take returns the waiting input and clears it.
func (c *Collector) Take() game.Input {
	in := c.pending
	c.pending = game.InputNone
	return in
}
