//go:build !pi

package lcd

import (
	"github.com/callebjorkell/openlcd/internal/device"
	log "github.com/sirupsen/logrus"
)

// Dummy logs everything that would have been sent to the display.
type Dummy struct {
	line []byte
}

func Open() (device.Display, error) {
	log.Infoln("Starting the dummy LCD")
	return &Dummy{}, nil
}

func (d *Dummy) Configure(cols, lines int) error {
	log.Infof("Configure LCD %dx%d", cols, lines)
	return nil
}

func (d *Dummy) Clear() error {
	d.flush()
	log.Infoln("Clear LCD")
	return nil
}

func (d *Dummy) Write(c byte) error {
	d.line = append(d.line, c)
	return nil
}

func (d *Dummy) Command(code byte) error {
	d.flush()
	log.Debugf("LCD command 0x%02x", code)
	return nil
}

func (d *Dummy) CreateChar(slot uint8, bitmap [8]byte) error {
	log.Debugf("Custom character %d: % x", slot, bitmap)
	return nil
}

func (d *Dummy) flush() {
	if len(d.line) == 0 {
		return
	}
	log.Infof("Print %q", d.line)
	d.line = d.line[:0]
}
