//go:build !pi

package backlight

import (
	log "github.com/sirupsen/logrus"
)

type mockEngine struct {
	colors []uint32
}

func (d *mockEngine) Init() error {
	return nil
}

func (d *mockEngine) Render() error {
	log.Debugf("backlight: render %06x", d.colors)
	return nil
}

func (d *mockEngine) Wait() error {
	return nil
}

func (d *mockEngine) Fini() {
	log.Debug("backlight: fini")
}

func (d *mockEngine) Leds(_ int) []uint32 {
	return d.colors
}

func NewLedController(ledCount int) (*LedController, error) {
	if ledCount <= 0 {
		ledCount = DefaultLedCount
	}
	return newLedController(&mockEngine{colors: make([]uint32, ledCount)}), nil
}
