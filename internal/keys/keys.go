package keys

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnknownKey = errors.New("no escape sequence for key")

// Input sequences a VT100-style terminal sends for the cursor keys
// in normal (non-application) cursor mode.
var sequences = map[tea.KeyType]string{
	tea.KeyUp:    "\x1b[A",
	tea.KeyDown:  "\x1b[B",
	tea.KeyRight: "\x1b[C",
	tea.KeyLeft:  "\x1b[D",
}

// Arrow key bindings, named the way progress output refers to them
type ArrowKeys struct {
	Up    key.Binding
	Down  key.Binding
	Right key.Binding
	Left  key.Binding
}

func NewArrowKeys() ArrowKeys {
	return ArrowKeys{
		Up: key.NewBinding(
			key.WithKeys(tea.KeyUp.String()),
			key.WithHelp("↑", "up arrow"),
		),
		Down: key.NewBinding(
			key.WithKeys(tea.KeyDown.String()),
			key.WithHelp("↓", "down arrow"),
		),
		Right: key.NewBinding(
			key.WithKeys(tea.KeyRight.String()),
			key.WithHelp("→", "right arrow"),
		),
		Left: key.NewBinding(
			key.WithKeys(tea.KeyLeft.String()),
			key.WithHelp("←", "left arrow"),
		),
	}
}

// Binding returns the binding for k
func (a ArrowKeys) Binding(k tea.KeyType) (key.Binding, error) {
	switch k {
	case tea.KeyUp:
		return a.Up, nil
	case tea.KeyDown:
		return a.Down, nil
	case tea.KeyRight:
		return a.Right, nil
	case tea.KeyLeft:
		return a.Left, nil
	default:
		return key.Binding{}, ErrUnknownKey
	}
}

// Sequence returns a fresh copy of the bytes a terminal emits for k
func Sequence(k tea.KeyType) ([]byte, error) {
	seq, ok := sequences[k]
	if !ok {
		return nil, ErrUnknownKey
	}
	return []byte(seq), nil
}

// Describe returns the human-readable name of k, e.g. "up arrow"
func Describe(k tea.KeyType) (string, error) {
	b, err := NewArrowKeys().Binding(k)
	if err != nil {
		return "", err
	}
	return b.Help().Desc, nil
}
