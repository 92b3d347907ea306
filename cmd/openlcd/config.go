package main

import (
	"fmt"
	"os"
	"time"

	"github.com/callebjorkell/openlcd/internal/backlight"
	"github.com/callebjorkell/openlcd/internal/console"
	"github.com/callebjorkell/openlcd/internal/contrast"
	"github.com/callebjorkell/openlcd/internal/device"
	"github.com/callebjorkell/openlcd/internal/rxpin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFile = "openlcd.yaml"
	defaultEEPROM     = "openlcd.eeprom"
	consoleOff        = "off"
)

type Config struct {
	EEPROM string `yaml:"eeprom"`
	// UART is the serial device of the host link. Stdin is used when it is empty.
	UART         string `yaml:"uart"`
	RXPin        string `yaml:"rxPin"`
	DACAddress   uint16 `yaml:"dacAddress"`
	Console      string `yaml:"console"`
	MessageDelay int    `yaml:"messageDelay"`
	LedCount     int    `yaml:"ledCount"`
}

func (c Config) ConsoleEnabled() bool {
	return c.Console != consoleOff
}

func (c Config) SystemMessageDelay() time.Duration {
	return time.Duration(c.MessageDelay) * time.Millisecond
}

func parseConfig(content []byte) (*Config, error) {
	c := &Config{}
	err := yaml.Unmarshal(content, c)
	if err != nil {
		return nil, err
	}

	if c.EEPROM == "" {
		c.EEPROM = defaultEEPROM
	}
	if c.RXPin == "" {
		c.RXPin = rxpin.DefaultPin
	}
	if c.DACAddress == 0 {
		c.DACAddress = contrast.DefaultAddress
	}
	if c.DACAddress > 0x7F {
		return nil, fmt.Errorf("DAC address 0x%x is not a 7 bit I2C address", c.DACAddress)
	}
	if c.Console == "" {
		c.Console = console.DefaultAddress
	}
	if c.MessageDelay < 0 {
		return nil, fmt.Errorf("message delay can not be negative")
	}
	if c.MessageDelay == 0 {
		c.MessageDelay = int(device.DefaultMessageDelay / time.Millisecond)
	}
	if c.LedCount < 0 {
		return nil, fmt.Errorf("LED count can not be negative")
	}
	if c.LedCount == 0 {
		c.LedCount = backlight.DefaultLedCount
	}

	return c, nil
}

// readConfig parses the config file. A missing default file gives the default config.
func readConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) && path == defaultConfigFile {
		log.Infof("No %s found, using defaults", path)
		return parseConfig(nil)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read %s", path)
	}
	return parseConfig(content)
}
