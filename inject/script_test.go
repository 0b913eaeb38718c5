package inject

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allbin/serial-inject/internal/keys"
)

func TestDefaultScript(t *testing.T) {
	s := DefaultScript()

	assert.Equal(t, "/dev/ttyUSB0", s.Device)
	assert.Equal(t, 115200, s.BaudRate)
	assert.Equal(t, time.Second, s.ReadTimeout)
	assert.Equal(t, 2*time.Second, s.Settle)
	require.Len(t, s.Steps, 6)

	assert.Equal(t, []byte("help\r\nls\r\nclear\r\n\x1b[A\x1b[B\x1b[A"), s.Payload())
	assert.Len(t, s.Delays(), 7)
}

func TestDefaultScriptIsFresh(t *testing.T) {
	a := DefaultScript()
	a.Steps[0].Data[0] = 'X'
	a.Steps = a.Steps[:1]

	b := DefaultScript()
	assert.Len(t, b.Steps, 6)
	assert.Equal(t, []byte("help\r\n"), b.Steps[0].Data)
}

func TestCommandStep(t *testing.T) {
	step := CommandStep("ls")
	assert.Equal(t, "Sending command: ls", step.Message)
	assert.Equal(t, []byte("ls\r\n"), step.Data)
	assert.Equal(t, StepDelay, step.Delay)
}

func TestKeyStep(t *testing.T) {
	step, err := KeyStep(tea.KeyDown, "")
	require.NoError(t, err)
	assert.Equal(t, "Sending down arrow key", step.Message)
	assert.Equal(t, []byte("\x1b[B"), step.Data)

	step, err = KeyStep(tea.KeyUp, " again")
	require.NoError(t, err)
	assert.Equal(t, "Sending up arrow key again", step.Message)

	_, err = KeyStep(tea.KeyEnter, "")
	assert.ErrorIs(t, err, keys.ErrUnknownKey)
}
