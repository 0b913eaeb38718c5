package inject

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/allbin/serial-inject/internal/keys"
)

const (
	DefaultDevice      = "/dev/ttyUSB0"
	DefaultBaudRate    = 115200
	DefaultReadTimeout = time.Second

	// SettleDelay gives the remote side time to come up after open
	SettleDelay = 2 * time.Second
	// StepDelay follows every write
	StepDelay = time.Second

	lineTerminator = "\r\n"
)

// Step is a single write followed by a pause
type Step struct {
	Message string // Printed before the write
	Data    []byte
	Delay   time.Duration
}

// Script is the full injection sequence for one run
type Script struct {
	Device      string
	BaudRate    int
	ReadTimeout time.Duration
	Settle      time.Duration
	Steps       []Step
}

// DefaultCommands are sent in order before the arrow keys
func DefaultCommands() []string {
	return []string{"help", "ls", "clear"}
}

// DefaultScript returns the fixed sequence: help, ls and clear as
// CRLF-terminated lines, then up, down, up arrow keys.
func DefaultScript() Script {
	s := Script{
		Device:      DefaultDevice,
		BaudRate:    DefaultBaudRate,
		ReadTimeout: DefaultReadTimeout,
		Settle:      SettleDelay,
	}

	for _, cmd := range DefaultCommands() {
		s.Steps = append(s.Steps, CommandStep(cmd))
	}
	s.Steps = append(s.Steps,
		mustKeyStep(tea.KeyUp, ""),
		mustKeyStep(tea.KeyDown, ""),
		mustKeyStep(tea.KeyUp, " again"),
	)
	return s
}

// CommandStep sends cmd followed by CRLF in a single write
func CommandStep(cmd string) Step {
	return Step{
		Message: "Sending command: " + cmd,
		Data:    []byte(cmd + lineTerminator),
		Delay:   StepDelay,
	}
}

// KeyStep sends the escape sequence for k. suffix is appended to the
// progress message.
func KeyStep(k tea.KeyType, suffix string) (Step, error) {
	seq, err := keys.Sequence(k)
	if err != nil {
		return Step{}, fmt.Errorf("key %s: %w", k, err)
	}
	desc, err := keys.Describe(k)
	if err != nil {
		return Step{}, fmt.Errorf("key %s: %w", k, err)
	}
	return Step{
		Message: fmt.Sprintf("Sending %s key%s", desc, suffix),
		Data:    seq,
		Delay:   StepDelay,
	}, nil
}

func mustKeyStep(k tea.KeyType, suffix string) Step {
	step, err := KeyStep(k, suffix)
	if err != nil {
		panic(err)
	}
	return step
}

// Payload returns every byte the script puts on the wire, in order
func (s Script) Payload() []byte {
	var out []byte
	for _, step := range s.Steps {
		out = append(out, step.Data...)
	}
	return out
}

// Delays returns every pause the script takes, in order
func (s Script) Delays() []time.Duration {
	delays := []time.Duration{s.Settle}
	for _, step := range s.Steps {
		delays = append(delays, step.Delay)
	}
	return delays
}
