/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	serial "github.com/allbin/serial-inject"
	"github.com/allbin/serial-inject/internal/keys"
)

// openPort is swapped in tests
var openPort = func(device string, baud int) (serial.Port, error) {
	return serial.Open(device, serial.WithBaudRate(baud))
}

// sendCmd represents the send command
var sendCmd = &cobra.Command{
	Use:   "send [command]",
	Short: "Send a single command line or arrow key",
	Long: `Send one command line or one arrow key, outside of the full script.

A command is written with a CRLF terminator, the same way the script sends
help, ls and clear. With --key the ANSI sequence for that arrow key is
written instead.

Example usage:
  serial-inject send help
  serial-inject send --key up
  serial-inject send ls --device /dev/ttyACM0`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		keyName, _ := cmd.Flags().GetString("key")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		data, err := sendPayload(args, keyName)
		if err != nil {
			return err
		}

		if err := bindDeviceFlags(cmd); err != nil {
			return err
		}

		logger := newLogger()
		defer logger.Sync()

		return sendData(cmd.OutOrStdout(), logger, viper.GetString("device"), viper.GetInt("baud"), data, timeout)
	},
}

func init() {
	rootCmd.AddCommand(sendCmd)
	addDeviceFlags(sendCmd)

	sendCmd.Flags().StringP("key", "k", "", "Arrow key to send instead of a command: up, down, left, right")
	sendCmd.Flags().DurationP("timeout", "t", 5*time.Second, "Timeout for the write")
}

// arrowKeys maps --key values to key types
var arrowKeys = map[string]tea.KeyType{
	"up":    tea.KeyUp,
	"down":  tea.KeyDown,
	"left":  tea.KeyLeft,
	"right": tea.KeyRight,
}

// sendPayload picks the bytes to send from the positional command or --key
func sendPayload(args []string, keyName string) ([]byte, error) {
	switch {
	case keyName != "" && len(args) > 0:
		return nil, fmt.Errorf("give either a command or --key, not both")
	case keyName != "":
		k, ok := arrowKeys[strings.ToLower(keyName)]
		if !ok {
			return nil, fmt.Errorf("unknown key %q: %w", keyName, keys.ErrUnknownKey)
		}
		return keys.Sequence(k)
	case len(args) == 1:
		return []byte(args[0] + "\r\n"), nil
	default:
		return nil, fmt.Errorf("nothing to send: give a command or --key")
	}
}

func sendData(out io.Writer, logger *zap.Logger, device string, baud int, data []byte, timeout time.Duration) error {
	r := lipgloss.NewRenderer(out)
	infoStyle := r.NewStyle().
		Foreground(lipgloss.Color("99")).
		Bold(true)
	successStyle := r.NewStyle().
		Foreground(lipgloss.Color("40")).
		Bold(true)

	fmt.Fprintf(out, "%s Opening %s...\n", infoStyle.Render("⚡"), device)

	port, err := openPort(device, baud)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", device, err)
	}
	defer port.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	fmt.Fprintf(out, "%s Sending %q\n", infoStyle.Render("📤"), data)

	n, err := port.WriteContext(ctx, data)
	if err != nil {
		return fmt.Errorf("failed to send data: %w", err)
	}
	if err := port.Drain(); err != nil {
		logger.Warn("drain failed", zap.String("device", device), zap.Error(err))
	}
	logger.Debug("sent", zap.String("device", device), zap.ByteString("data", data))

	fmt.Fprintf(out, "%s Successfully sent %d bytes\n", successStyle.Render("✓"), n)
	return nil
}
