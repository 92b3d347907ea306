package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigDefaults(t *testing.T) {
	c, err := parseConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "openlcd.eeprom", c.EEPROM)
	assert.Equal(t, "GPIO15", c.RXPin)
	assert.Equal(t, uint16(0x60), c.DACAddress)
	assert.Equal(t, ":8090", c.Console)
	assert.True(t, c.ConsoleEnabled())
	assert.Equal(t, 500*time.Millisecond, c.SystemMessageDelay())
	assert.Equal(t, 8, c.LedCount)
	assert.Empty(t, c.UART)
}

func TestParseConfig(t *testing.T) {
	c, err := parseConfig([]byte(`
eeprom: /var/lib/openlcd/eeprom
uart: /dev/serial0
rxPin: GPIO16
dacAddress: 0x61
console: "off"
messageDelay: 1000
ledCount: 12
`))
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/openlcd/eeprom", c.EEPROM)
	assert.Equal(t, "/dev/serial0", c.UART)
	assert.Equal(t, "GPIO16", c.RXPin)
	assert.Equal(t, uint16(0x61), c.DACAddress)
	assert.False(t, c.ConsoleEnabled())
	assert.Equal(t, time.Second, c.SystemMessageDelay())
	assert.Equal(t, 12, c.LedCount)
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		err     string
	}{
		{"dac address", "dacAddress: 0x80", "DAC address 0x80 is not a 7 bit I2C address"},
		{"message delay", "messageDelay: -1", "message delay can not be negative"},
		{"led count", "ledCount: -4", "LED count can not be negative"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseConfig([]byte(tc.content))
			assert.EqualError(t, err, tc.err)
		})
	}
}

func TestReadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "openlcd.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ledCount: 3\n"), 0o644))

	c, err := readConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, c.LedCount)

	_, err = readConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
