//go:build pi

package contrast

import (
	"github.com/pkg/errors"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// Open finds the first I2C bus and the DAC on it.
func Open(addr uint16) (*DAC, func() error, error) {
	if _, err := host.Init(); err != nil {
		return nil, nil, errors.Wrap(err, "unable to initialize periph")
	}
	bus, err := i2creg.Open("")
	if err != nil {
		return nil, nil, errors.Wrap(err, "unable to open I2C bus")
	}
	return New(bus, addr), bus.Close, nil
}
