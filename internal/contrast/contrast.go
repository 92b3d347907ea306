// Package contrast drives the panel contrast voltage through an MCP4725 DAC.
package contrast

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/i2c"
)

// DefaultAddress is the MCP4725 address with A0 tied low.
const DefaultAddress = 0x60

// DAC is an MCP4725 on an I2C bus.
type DAC struct {
	dev i2c.Dev
}

func New(bus i2c.Bus, addr uint16) *DAC {
	return &DAC{dev: i2c.Dev{Bus: bus, Addr: addr}}
}

// SetContrast writes the level as the top 8 bits of the 12 bit output, using a fast mode write with
// the output powered on.
func (d *DAC) SetContrast(level byte) error {
	value := uint16(level) << 4
	log.Debugf("Contrast %d, DAC output 0x%03x", level, value)
	if err := d.dev.Tx([]byte{byte(value>>8) & 0x0F, byte(value)}, nil); err != nil {
		return errors.Wrapf(err, "unable to write contrast to DAC at 0x%02x", d.dev.Addr)
	}
	return nil
}
