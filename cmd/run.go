/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/allbin/serial-inject/inject"
)

const (
	defaultDevice   = inject.DefaultDevice
	defaultBaudRate = inject.DefaultBaudRate
)

// newInjector is swapped in tests to avoid touching real hardware
var newInjector = inject.New

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the injection script (default action)",
	Long: `Run the injection script against the serial device.

Same as running serial-inject without a subcommand. Bytes written, in order:
  help\r\n  ls\r\n  clear\r\n  ESC[A  ESC[B  ESC[A

Example usage:
  serial-inject run
  serial-inject run --device /dev/ttyUSB1 --baud 9600`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInject(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	addDeviceFlags(runCmd)
}

func runInject(cmd *cobra.Command) error {
	if err := bindDeviceFlags(cmd); err != nil {
		return err
	}

	logger := newLogger()
	defer logger.Sync()

	script := inject.DefaultScript()
	script.Device = viper.GetString("device")
	script.BaudRate = viper.GetInt("baud")

	logger.Debug("starting injection",
		zap.String("device", script.Device),
		zap.Int("baud", script.BaudRate),
		zap.Int("steps", len(script.Steps)),
	)

	in := newInjector(
		inject.WithScript(script),
		inject.WithOutput(cmd.OutOrStdout()),
		inject.WithLogger(logger),
	)
	return in.Run()
}
