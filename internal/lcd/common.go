// Package lcd drives an HD44780 character display in 4 bit mode.
package lcd

import (
	"time"

	"periph.io/x/conn/v3/gpio"
)

const (
	registerSelectionPin = "GPIO4"
	clockEdgePin         = "GPIO17"
	data4Pin             = "GPIO25"
	data5Pin             = "GPIO22"
	data6Pin             = "GPIO23"
	data7Pin             = "GPIO24"

	character = gpio.High
	command   = gpio.Low

	signalPulse = 500 * time.Microsecond
	signalDelay = 500 * time.Microsecond
	// clear and home need a lot longer than the other instructions
	clearDelay = 2 * time.Millisecond
)

// HD44780 instructions.
const (
	cmdClear       = 0x01
	cmdEntryMode   = 0x06
	cmdDisplayOn   = 0x0C
	cmdFunctionSet = 0x20
	cmdTwoLines    = 0x08
	cmdCGRAM       = 0x40
)

// Pins wires the controller to the host. Only the upper four data lines are used.
type Pins struct {
	RegisterSelection gpio.PinOut
	ClockEdge         gpio.PinOut
	Data              [4]gpio.PinOut
}
