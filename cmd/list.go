/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	serial "github.com/allbin/serial-inject"
)

// listPorts is swapped in tests
var listPorts = serial.ListPorts

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List serial ports that can be used as --device",
	Long: `List the serial devices present on this machine.

Useful for finding the right --device when the target is not on
/dev/ttyUSB0. Virtual terminals and pseudo-terminals are not listed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ports, err := listPorts()
		if err != nil {
			return fmt.Errorf("listing ports: %w", err)
		}

		filterType, _ := cmd.Flags().GetString("filter")
		tableFormat, _ := cmd.Flags().GetBool("table")

		out := cmd.OutOrStdout()
		filtered := filterPorts(ports, filterType)
		if len(filtered) == 0 {
			if filterType != "" {
				fmt.Fprintf(out, "No serial ports found matching filter: %s\n", filterType)
			} else {
				fmt.Fprintln(out, "No serial ports found")
			}
			return nil
		}

		if tableFormat {
			renderTable(out, filtered)
		} else {
			for _, port := range filtered {
				fmt.Fprintln(out, port)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("filter", "f", "", "Filter by port type: usb, standard, arm, all")
	listCmd.Flags().BoolP("table", "t", false, "Display output in a styled table format")
}

// filterPorts filters the port list by device name prefix
func filterPorts(ports []string, filterType string) []string {
	var prefixes []string
	switch strings.ToLower(filterType) {
	case "", "all":
		return ports
	case "usb":
		prefixes = []string{"ttyusb", "ttyacm"}
	case "standard":
		prefixes = []string{"ttys"}
	case "arm":
		prefixes = []string{"ttyama"}
	}

	var filtered []string
	for _, port := range ports {
		name := strings.ToLower(port[strings.LastIndex(port, "/")+1:])
		for _, prefix := range prefixes {
			// ttysac is Samsung, not a standard UART
			if strings.HasPrefix(name, prefix) && !(prefix == "ttys" && strings.HasPrefix(name, "ttysac")) {
				filtered = append(filtered, port)
				break
			}
		}
	}
	return filtered
}

// renderTable renders the port list in a styled static table format
func renderTable(out io.Writer, ports []string) {
	fmt.Fprintf(out, "Found %d serial port(s):\n\n", len(ports))

	const (
		portWidth = 15
		descWidth = 30
	)

	r := lipgloss.NewRenderer(out)
	headerStyle := r.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("240"))
	cellStyle := r.NewStyle().PaddingRight(2)

	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%-*s %-*s", portWidth, "Port", descWidth, "Description")))

	for _, port := range ports {
		info, err := serial.GetPortInfo(port)
		if err != nil {
			fmt.Fprintln(out, cellStyle.Render(fmt.Sprintf("%-*s %-*s", portWidth, port, descWidth, "Error: "+err.Error())))
			continue
		}
		fmt.Fprintln(out, cellStyle.Render(fmt.Sprintf("%-*s %-*s", portWidth, info.Name, descWidth, info.Description)))
	}
}
