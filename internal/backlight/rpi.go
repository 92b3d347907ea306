//go:build pi

package backlight

import (
	"github.com/pkg/errors"
	ws "github.com/rpi-ws281x/rpi-ws281x-go"
)

func NewLedController(ledCount int) (*LedController, error) {
	if ledCount <= 0 {
		ledCount = DefaultLedCount
	}
	opt := ws.DefaultOptions
	opt.Channels[0].Brightness = brightness
	opt.Channels[0].LedCount = ledCount

	dev, err := ws.MakeWS2811(&opt)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create ws281x device")
	}
	if err := dev.Init(); err != nil {
		return nil, errors.Wrap(err, "unable to initialize ws281x device")
	}

	return newLedController(dev), nil
}
