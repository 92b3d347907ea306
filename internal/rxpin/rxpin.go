// Package rxpin samples the host RX line at boot.
package rxpin

import (
	"time"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

// DefaultPin is the UART receive line on the Raspberry Pi header.
const DefaultPin = "GPIO15"

const (
	settleTime  = 15 * time.Millisecond
	maxSettling = 5
)

// Debounced reads a level only once it is stable over the settle time.
type Debounced struct {
	pin   gpio.PinIn
	sleep func(time.Duration)
}

func NewDebounced(pin gpio.PinIn) *Debounced {
	return &Debounced{pin: pin, sleep: time.Sleep}
}

func (d *Debounced) Read() gpio.Level {
	l := d.pin.Read()
	for i := 0; i < maxSettling; i++ {
		d.sleep(settleTime)
		next := d.pin.Read()
		if next == l {
			break
		}
		l = next
	}
	log.Debugf("RX line is %v", l)
	return l
}

// Held simulates a host holding the RX line low.
func Held() *Debounced {
	return NewDebounced(&gpiotest.Pin{N: "RX", L: gpio.Low})
}
