package lcd

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
)

// HD44780 writes to the controller one nibble at a time. The controller is never read, so every
// instruction is followed by a fixed delay.
type HD44780 struct {
	pins  Pins
	sleep func(time.Duration)
}

func New(pins Pins) *HD44780 {
	return &HD44780{pins: pins, sleep: time.Sleep}
}

// Init runs the 4 bit initialisation sequence.
func (d *HD44780) Init() error {
	log.Infoln("Initializing LCD")
	for _, b := range []byte{0x33, 0x32, 0x28, cmdDisplayOn, cmdEntryMode} {
		if err := d.sendByte(b, command); err != nil {
			return err
		}
	}
	return d.Clear()
}

// Configure sets the number of lines. The controller does not care about the width, it only
// changes how DDRAM addresses map to the panel.
func (d *HD44780) Configure(cols, lines int) error {
	fn := byte(cmdFunctionSet)
	if lines > 1 {
		fn |= cmdTwoLines
	}
	log.Debugf("Configuring LCD for %dx%d", cols, lines)
	for _, b := range []byte{fn, cmdDisplayOn, cmdEntryMode} {
		if err := d.sendByte(b, command); err != nil {
			return err
		}
	}
	return nil
}

func (d *HD44780) Clear() error {
	return d.Command(cmdClear)
}

func (d *HD44780) Write(c byte) error {
	return d.sendByte(c, character)
}

func (d *HD44780) Command(code byte) error {
	if err := d.sendByte(code, command); err != nil {
		return err
	}
	if code == cmdClear || code&0xFE == 0x02 {
		d.sleep(clearDelay)
	}
	return nil
}

// CreateChar loads a bitmap into one of the eight CGRAM slots. The caller has to set the DDRAM
// address again afterwards.
func (d *HD44780) CreateChar(slot uint8, bitmap [8]byte) error {
	if err := d.sendByte(cmdCGRAM|(slot&0x07)<<3, command); err != nil {
		return err
	}
	for _, row := range bitmap {
		if err := d.sendByte(row, character); err != nil {
			return err
		}
	}
	return nil
}

func (d *HD44780) sendByte(bits byte, mode gpio.Level) error {
	if err := d.pins.RegisterSelection.Out(mode); err != nil {
		return errors.Wrap(err, "unable to set register selection")
	}
	if err := d.pulseNibble(bits, 0x10); err != nil {
		return err
	}
	return d.pulseNibble(bits, 0x01)
}

func (d *HD44780) pulseNibble(bits, mask byte) error {
	for i, pin := range d.pins.Data {
		level := bits&(mask<<uint(i)) != 0
		if err := pin.Out(gpio.Level(level)); err != nil {
			return errors.Wrapf(err, "unable to set %v", pin)
		}
	}
	d.sleep(signalDelay)
	if err := d.pins.ClockEdge.Out(gpio.High); err != nil {
		return errors.Wrap(err, "unable to raise clock")
	}
	d.sleep(signalPulse)
	if err := d.pins.ClockEdge.Out(gpio.Low); err != nil {
		return errors.Wrap(err, "unable to lower clock")
	}
	d.sleep(signalDelay)
	return nil
}
