package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	tests := []struct {
		key      tea.KeyType
		expected []byte
	}{
		{tea.KeyUp, []byte{0x1b, '[', 'A'}},
		{tea.KeyDown, []byte{0x1b, '[', 'B'}},
		{tea.KeyRight, []byte{0x1b, '[', 'C'}},
		{tea.KeyLeft, []byte{0x1b, '[', 'D'}},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			seq, err := Sequence(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, seq)
		})
	}
}

func TestSequenceReturnsCopy(t *testing.T) {
	first, err := Sequence(tea.KeyUp)
	require.NoError(t, err)
	first[2] = 'Z'

	second, err := Sequence(tea.KeyUp)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x1b[A"), second)
}

func TestSequenceUnknownKey(t *testing.T) {
	_, err := Sequence(tea.KeyEnter)
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestDescribe(t *testing.T) {
	desc, err := Describe(tea.KeyUp)
	require.NoError(t, err)
	assert.Equal(t, "up arrow", desc)

	desc, err = Describe(tea.KeyDown)
	require.NoError(t, err)
	assert.Equal(t, "down arrow", desc)

	_, err = Describe(tea.KeyTab)
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestBindingsMatchKeyMsgs(t *testing.T) {
	arrows := NewArrowKeys()

	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyUp}, arrows.Up))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyDown}, arrows.Down))
	assert.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyUp}, arrows.Down))
}
