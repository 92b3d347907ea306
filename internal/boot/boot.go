// Package boot decides at power-up whether the persisted settings can be trusted.
package boot

import (
	"bytes"
	"fmt"

	"github.com/callebjorkell/openlcd/internal/device"
	"github.com/callebjorkell/openlcd/internal/eeprom"
	"github.com/callebjorkell/openlcd/internal/settings"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
)

type Mode int

const (
	Normal Mode = iota
	EmergencyReset
)

func (m Mode) String() string {
	switch m {
	case Normal:
		return "normal"
	case EmergencyReset:
		return "emergency reset"
	}
	return "N/A"
}

// DefaultSplash is shown when splash is enabled but nothing has been recorded.
const DefaultSplash = "SparkFun OpenLCD"

// Pin is the RX line, sampled once at boot.
type Pin interface {
	Read() gpio.Level
}

type Controller struct {
	store eeprom.Store
	rx    Pin
}

func NewController(store eeprom.Store, rx Pin) *Controller {
	return &Controller{store: store, rx: rx}
}

// Boot produces the settings to start with. A low RX line forces the factory settings unless the
// ignore flag has been stored. The forced settings are never persisted.
func (c *Controller) Boot() (settings.Runtime, Mode, error) {
	r, corrupted, err := settings.Load(c.store)
	if err != nil {
		return settings.Defaults(), Normal, errors.Wrap(err, "unable to load settings")
	}

	if !r.IgnoreRX && c.rx.Read() == gpio.Low {
		log.Warn("RX held low at boot, using factory settings")
		return settings.Defaults(), EmergencyReset, nil
	}

	for _, f := range corrupted {
		log.Warnf("Stored %v is invalid, using the default", f)
	}
	log.Infof("Booting with %v", r)
	return r, Normal, nil
}

// Start brings the outputs in line with the booted settings, and shows either the splash screen or
// the recovery message.
func (c *Controller) Start(e *device.Executor, mode Mode) error {
	if err := e.Restore(); err != nil {
		return err
	}
	if mode == EmergencyReset {
		return e.ShowMessage("System reset", "Power cycle me")
	}

	if err := e.LoadChars(); err != nil {
		return errors.Wrap(err, "unable to restore custom characters")
	}
	if !e.Settings().Splash {
		return nil
	}
	return c.splash(e)
}

func (c *Controller) splash(e *device.Executor) error {
	text, err := c.store.ReadField(eeprom.SplashContent)
	if err != nil {
		return errors.Wrap(err, "unable to read splash")
	}

	if blank(text) {
		r := e.Settings()
		line := fmt.Sprintf("Baud:%d", r.Baud.Rate())
		text = []byte(DefaultSplash)
		if len(text) < int(r.Width) {
			text = append(text, bytes.Repeat([]byte{' '}, int(r.Width)-len(text))...)
		}
		text = append(text[:r.Width], line...)
	}
	log.Debugf("Showing splash %q", text)
	return e.ShowSplash(text)
}

func blank(b []byte) bool {
	for _, v := range b {
		if v != eeprom.Blank {
			return false
		}
	}
	return true
}
