package serial

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPorts(t *testing.T) {
	ports, err := ListPorts()
	require.NoError(t, err)

	for _, port := range ports {
		assert.True(t, strings.HasPrefix(port, "/dev/"), "port path %s", port)
		assert.True(t, isCharacterDevice(port), "port %s is not a character device", port)
	}

	for i := 1; i < len(ports); i++ {
		assert.LessOrEqual(t, ports[i-1], ports[i], "ports are not sorted")
	}
}

func TestListPortsInSkipsRegularFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"ttyUSB0", "ttyACM3", "random"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	// Regular files match the names but are not character devices
	ports, err := listPortsIn(dir)
	require.NoError(t, err)
	assert.Empty(t, ports)
}

func TestListPortsInMissingDir(t *testing.T) {
	_, err := listPortsIn(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestIsCharacterDevice(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"/dev/null", true},
		{"/dev/zero", true},
		{os.TempDir(), false},
		{"/nonexistent", false},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, isCharacterDevice(test.path), "isCharacterDevice(%s)", test.path)
	}
}

func TestMatchesPortPattern(t *testing.T) {
	tests := []struct {
		name        string
		shouldMatch bool
	}{
		{"ttyUSB0", true},
		{"ttyUSB12", true},
		{"ttyACM0", true},
		{"ttyS0", true},
		{"ttyAMA0", true},
		{"ttyTHS2", true},
		{"tty1", false},
		{"console", false},
		{"ptmx", false},
		{"ptyp0", false},
		{"ttyUSB", false},
		{"urandom", false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.shouldMatch, matchesPortPattern(test.name))
		})
	}
}

func TestGetPortDescription(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"ttyUSB0", "USB Serial Port"},
		{"ttyACM0", "USB CDC/ACM Device"},
		{"ttyS0", "Standard Serial Port"},
		{"ttyAMA0", "ARM Serial Port"},
		{"ttymxc0", "i.MX Serial Port"},
		{"ttyO0", "OMAP Serial Port"},
		{"ttySAC0", "Samsung Serial Port"},
		{"ttyTHS0", "Tegra Serial Port"},
		{"unknown", "Serial Port"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, getPortDescription(test.name), "getPortDescription(%s)", test.name)
	}
}

func TestGetPortInfo(t *testing.T) {
	info, err := GetPortInfo("/dev/null")
	require.NoError(t, err)
	assert.Equal(t, "null", info.Name)
	assert.Equal(t, "/dev/null", info.Path)
	assert.NotEmpty(t, info.Description)

	_, err = GetPortInfo("/dev/nonexistent")
	assert.ErrorIs(t, err, ErrDeviceNotFound)
}
