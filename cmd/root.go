/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/allbin/serial-inject/internal/logging"
)

const envPrefix = "SERIAL_INJECT"

var cfgFile string

// rootCmd runs the injection script when called without a subcommand
var rootCmd = &cobra.Command{
	Use:   "serial-inject",
	Short: "Send a scripted set of commands and arrow keys to a serial shell",
	Long: `Exercise a device's command-line handling over a serial port.

Opens /dev/ttyUSB0 at 115200 baud, waits 2s for the link to settle, then
sends the commands help, ls and clear (each terminated with CRLF) followed
by the up, down and up arrow keys, pausing 1s after every write.

Nothing is read back from the device; watch its console to judge the result.

Example usage:
  serial-inject
  serial-inject run --device /dev/ttyACM0
  serial-inject list --table`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInject(cmd)
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (yaml, toml or json)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log diagnostics to stderr")
	rootCmd.PersistentFlags().String("log-file", "", "Also write JSON logs to this file (rotated)")

	addDeviceFlags(rootCmd)

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log-file", rootCmd.PersistentFlags().Lookup("log-file"))
}

// addDeviceFlags registers --device and --baud on cmd. The defaults are
// the fixed target of the injection script.
func addDeviceFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("device", "d", defaultDevice, "Serial device path")
	cmd.Flags().IntP("baud", "b", defaultBaudRate, "Baud rate")
}

// bindDeviceFlags points viper's device and baud keys at cmd's flags.
// Called from the running command so each subcommand reads its own flags.
func bindDeviceFlags(cmd *cobra.Command) error {
	if err := viper.BindPFlag("device", cmd.Flags().Lookup("device")); err != nil {
		return err
	}
	return viper.BindPFlag("baud", cmd.Flags().Lookup("baud"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading config %s: %v\n", cfgFile, err)
			os.Exit(1)
		}
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func newLogger() *zap.Logger {
	return logging.New(logging.Config{
		Verbose: viper.GetBool("verbose"),
		File:    viper.GetString("log-file"),
	})
}
