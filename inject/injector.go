// Package inject drives a remote device shell over a serial line by
// writing a fixed sequence of commands and arrow keys with pauses between
// them. It never reads the device's responses.
package inject

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	serial "github.com/allbin/serial-inject"
)

var ErrShortWrite = errors.New("short write to serial port")

// Port is the subset of a serial connection the injector needs
type Port interface {
	Write(data []byte) (int, error)
	Close() error
}

// Opener opens the serial connection for a run
type Opener func(device string, baudRate int, readTimeout time.Duration) (Port, error)

// Sleeper pauses between writes
type Sleeper func(time.Duration)

// SerialOpener opens a real tty through the serial package
func SerialOpener(device string, baudRate int, readTimeout time.Duration) (Port, error) {
	p, err := serial.Open(device,
		serial.WithBaudRate(baudRate),
		serial.WithReadTimeout(readTimeout),
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Injector runs a Script against a serial port
type Injector struct {
	open   Opener
	sleep  Sleeper
	report *reporter
	logger *zap.Logger
	script Script
}

// Option configures an Injector
type Option func(*Injector)

// WithOpener replaces the serial opener
func WithOpener(open Opener) Option {
	return func(in *Injector) { in.open = open }
}

// WithSleeper replaces time.Sleep
func WithSleeper(sleep Sleeper) Option {
	return func(in *Injector) { in.sleep = sleep }
}

// WithOutput sets where progress lines are printed
func WithOutput(w io.Writer) Option {
	return func(in *Injector) { in.report = newReporter(w) }
}

func WithLogger(logger *zap.Logger) Option {
	return func(in *Injector) { in.logger = logger }
}

func WithScript(script Script) Option {
	return func(in *Injector) { in.script = script }
}

// New returns an injector for the default script on the real device
func New(opts ...Option) *Injector {
	in := &Injector{
		open:   SerialOpener,
		sleep:  time.Sleep,
		report: newReporter(os.Stdout),
		logger: zap.NewNop(),
		script: DefaultScript(),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Script returns the sequence Run will send
func (in *Injector) Script() Script {
	return in.script
}

// Run opens the port, waits for it to settle, sends every step and closes
// the port. Any open or write error aborts the run. The port is closed
// exactly once, on the error path as well as the normal one.
func (in *Injector) Run() error {
	s := in.script
	logger := in.logger.With(zap.String("device", s.Device))

	port, err := in.open(s.Device, s.BaudRate, s.ReadTimeout)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", s.Device, err)
	}
	logger.Info("port opened",
		zap.Int("baud", s.BaudRate),
		zap.Duration("read_timeout", s.ReadTimeout),
	)

	closed := false
	defer func() {
		if closed {
			return
		}
		if err := port.Close(); err != nil {
			logger.Warn("close after failure", zap.Error(err))
		}
	}()

	in.pause(logger, "settle", s.Settle)

	for i, step := range s.Steps {
		in.report.progress(step.Message)
		if err := writeAll(port, step.Data); err != nil {
			logger.Error("write failed", zap.Int("step", i), zap.Error(err))
			return fmt.Errorf("step %d (%s): %w", i+1, step.Message, err)
		}
		logger.Debug("wrote step",
			zap.Int("step", i),
			zap.ByteString("data", step.Data),
			zap.Int("bytes", len(step.Data)),
		)
		in.pause(logger, "step", step.Delay)
	}

	closed = true
	if err := port.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", s.Device, err)
	}
	logger.Info("port closed")

	in.report.done("Test completed")
	return nil
}

func (in *Injector) pause(logger *zap.Logger, reason string, d time.Duration) {
	logger.Debug("sleeping", zap.String("reason", reason), zap.Duration("delay", d))
	in.sleep(d)
}

// writeAll issues one Write for data and treats a partial write as an error
func writeAll(port Port, data []byte) error {
	n, err := port.Write(data)
	if err != nil {
		return err
	}
	if n != len(data) {
		return fmt.Errorf("%w: %d of %d bytes", ErrShortWrite, n, len(data))
	}
	return nil
}
