// Package serial opens Linux serial ports in raw mode for writing scripted
// input to a device console.
//
// The root package is the tty layer; package inject drives the scripted
// command and arrow-key sequence on top of it, and cmd/serial-inject is the
// command-line entry point.
//
// # Basic Usage
//
// Open a serial port with default configuration (115200 8N1, 1s read timeout):
//
//	port, err := serial.Open("/dev/ttyUSB0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
//	n, err := port.Write([]byte("help\r\n"))
//
// # Configuration Options
//
//	port, err := serial.Open("/dev/ttyUSB0",
//	    serial.WithBaudRate(115200),
//	    serial.WithReadTimeout(time.Second),
//	)
//
// The read timeout maps onto termios VTIME, so it must be a whole number of
// 100ms steps no larger than 25.5s.
//
// # Error Handling
//
// Open classifies common errno values so callers can use errors.Is:
//
//	if errors.Is(err, serial.ErrDeviceNotFound) {
//	    // wrong --device, or the adapter is unplugged
//	}
//
// Every operation on a closed port returns ErrPortClosed.
package serial
