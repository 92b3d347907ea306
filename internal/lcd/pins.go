//go:build pi

package lcd

import (
	"fmt"

	"github.com/callebjorkell/openlcd/internal/device"
	"github.com/pkg/errors"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

func byName(name string) (gpio.PinIO, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("no pin named %s", name)
	}
	return p, nil
}

// Open initializes the display on the Raspberry Pi header.
func Open() (device.Display, error) {
	if _, err := host.Init(); err != nil {
		return nil, errors.Wrap(err, "unable to initialize periph")
	}

	var pins Pins
	var err error
	if pins.RegisterSelection, err = byName(registerSelectionPin); err != nil {
		return nil, err
	}
	if pins.ClockEdge, err = byName(clockEdgePin); err != nil {
		return nil, err
	}
	for i, name := range []string{data4Pin, data5Pin, data6Pin, data7Pin} {
		if pins.Data[i], err = byName(name); err != nil {
			return nil, err
		}
	}

	d := New(pins)
	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}
