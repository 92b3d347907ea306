//go:build !pi

package rxpin

import (
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

// Open returns an idle line. Use Held to simulate a recovery boot.
func Open(name string) (*Debounced, error) {
	log.Infoln("Initializing mock RX pin", name)
	return NewDebounced(&gpiotest.Pin{N: name, L: gpio.High}), nil
}
