// Package device applies decoded commands to the settings, the store and the display hardware.
package device

import (
	"fmt"

	"github.com/callebjorkell/openlcd/internal/eeprom"
	"github.com/callebjorkell/openlcd/internal/protocol"
	"github.com/callebjorkell/openlcd/internal/settings"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Executor owns the runtime settings. Every action is applied synchronously before the next byte is
// decoded.
type Executor struct {
	settings  settings.Runtime
	store     eeprom.Store
	display   Display
	backlight Backlight
	contrast  Contrast
	baud      BaudSwitcher
	frame     *frame
	conf      config
}

func NewExecutor(
	r settings.Runtime,
	store eeprom.Store,
	display Display,
	backlight Backlight,
	contrast Contrast,
	baud BaudSwitcher,
	opts ...Option,
) *Executor {
	conf := defaultConfig()
	for _, o := range opts {
		o(&conf)
	}

	return &Executor{
		settings:  r,
		store:     store,
		display:   display,
		backlight: backlight,
		contrast:  contrast,
		baud:      baud,
		frame:     newFrame(int(r.Width), int(r.Lines)),
		conf:      conf,
	}
}

// Settings returns a copy of the runtime settings.
func (e *Executor) Settings() settings.Runtime {
	return e.settings
}

// Frame returns the characters currently on the display, row by row.
func (e *Executor) Frame() []byte {
	return e.frame.contents()[:e.frame.size()]
}

// Apply executes a decoded action. Invalid values are dropped silently, since the protocol has no way
// of reporting them. Errors are only returned for failing collaborators.
func (e *Executor) Apply(a protocol.Action) error {
	switch a := a.(type) {
	case protocol.Literal:
		return e.writeChar(a.Char)
	case protocol.RawCommand:
		e.frame.command(a.Code)
		return e.display.Command(a.Code)
	case protocol.ClearDisplay:
		e.frame.clear()
		return e.display.Clear()
	case protocol.SetWidth:
		return e.setGeometry(eeprom.Width, a.Columns, e.settings.Lines)
	case protocol.SetLines:
		return e.setGeometry(eeprom.Lines, e.settings.Width, a.Lines)
	case protocol.SoftwareReset:
		return e.softwareReset()
	case protocol.ToggleSplash:
		e.settings.Splash = !e.settings.Splash
		if err := e.persist(eeprom.SplashOnOff); err != nil {
			return err
		}
		return e.showMessage("Splash display", onOff(e.settings.Splash))
	case protocol.SaveSplash:
		if err := e.store.WriteField(eeprom.SplashContent, e.frame.contents()); err != nil {
			return errors.Wrap(err, "unable to save splash")
		}
		return e.showMessage("Splash Recorded")
	case protocol.SetBaud:
		return e.setBaud(a.Baud)
	case protocol.SetContrast:
		if a.Level == eeprom.Blank {
			// an erased cell reads back as 0xFF, so it could never be restored
			log.Debugf("Ignoring contrast 0x%02x", a.Level)
			return nil
		}
		e.settings.Contrast = a.Level
		if err := e.persist(eeprom.Contrast); err != nil {
			return err
		}
		if err := e.contrast.SetContrast(a.Level); err != nil {
			return err
		}
		return e.showMessage(fmt.Sprintf("Contrast: %d", a.Level))
	case protocol.SetTWIAddress:
		if !settings.ValidTWIAddress(a.Address) {
			log.Debugf("Ignoring invalid I2C address 0x%02x", a.Address)
			return nil
		}
		e.settings.TWIAddress = a.Address
		if err := e.persist(eeprom.TWIAddress); err != nil {
			return err
		}
		return e.showMessage(fmt.Sprintf("New TWI: 0x%02X", a.Address))
	case protocol.ToggleIgnoreRX:
		e.settings.IgnoreRX = !e.settings.IgnoreRX
		if err := e.persist(eeprom.IgnoreRX); err != nil {
			return err
		}
		return e.showMessage("Ignore RX", onOff(e.settings.IgnoreRX))
	case protocol.RecordChar:
		return e.recordChar(a.Slot, a.Bitmap)
	case protocol.DisplayChar:
		return e.displayChar(a.Slot)
	case protocol.SetBacklight:
		return e.setBrightness(a.Channel, a.Percent)
	case protocol.SetRGB:
		for c, level := range []byte{a.Red, a.Green, a.Blue} {
			percent := byte(int(level) * 100 / 255)
			if err := e.setBrightness(settings.Channel(c), percent); err != nil {
				return err
			}
		}
		return nil
	case protocol.ShowVersion:
		return e.showMessage("Firmware version", e.conf.version)
	case nil:
		return nil
	}

	log.Debugf("Unhandled action %v", a)
	return nil
}

func onOff(on bool) string {
	if on {
		return "On"
	}
	return "Off"
}

func (e *Executor) persist(f eeprom.Field) error {
	if err := settings.Persist(e.store, e.settings, f); err != nil {
		return errors.Wrapf(err, "unable to persist %v", f)
	}
	return nil
}

// writeChar puts a character at the cursor, and moves the controller to the next row when the
// current one is full.
func (e *Executor) writeChar(c byte) error {
	if err := e.display.Write(c); err != nil {
		return err
	}
	e.frame.write(c)
	if e.frame.cursor%e.frame.width == 0 {
		return e.display.Command(lcdDDRAM | e.frame.address())
	}
	return nil
}

func (e *Executor) restoreCursor() error {
	return e.display.Command(lcdDDRAM | e.frame.address())
}

// setGeometry changes the width or the number of lines, field names the one that was requested.
func (e *Executor) setGeometry(field eeprom.Field, width, lines byte) error {
	if !settings.ValidWidth(width) || !settings.ValidLines(lines) {
		log.Debugf("Ignoring invalid geometry %dx%d", width, lines)
		return nil
	}

	e.settings.Width = width
	e.settings.Lines = lines
	if err := e.persist(field); err != nil {
		return err
	}

	if err := e.reconfigure(); err != nil {
		return err
	}
	if field == eeprom.Width {
		return e.showMessage(fmt.Sprintf("Width: %d", width))
	}
	return e.showMessage(fmt.Sprintf("Lines: %d", lines))
}

func (e *Executor) reconfigure() error {
	e.frame.resize(int(e.settings.Width), int(e.settings.Lines))
	if err := e.display.Configure(int(e.settings.Width), int(e.settings.Lines)); err != nil {
		return err
	}
	return e.display.Clear()
}

func (e *Executor) setBaud(b settings.Baud) error {
	if !b.Valid() {
		return nil
	}
	e.settings.Baud = b
	if err := e.persist(eeprom.Baud); err != nil {
		return err
	}
	if err := e.showMessage(fmt.Sprintf("Baud: %d", b.Rate())); err != nil {
		return err
	}
	log.Infof("Switching to %v", b)
	return e.baud.SetBaud(b.Rate())
}

func (e *Executor) setBrightness(c settings.Channel, percent byte) error {
	e.settings.SetBrightness(c, percent)
	if err := e.backlight.SetBrightness(c, e.settings.Brightness(c)); err != nil {
		return err
	}

	fields := map[settings.Channel]eeprom.Field{
		settings.Red:   eeprom.RedBrightness,
		settings.Green: eeprom.GreenBrightness,
		settings.Blue:  eeprom.BlueBrightness,
	}
	return e.persist(fields[c])
}

func (e *Executor) recordChar(slot uint8, bitmap [8]byte) error {
	f, err := eeprom.CustomChar(slot)
	if err != nil {
		log.Debug(err)
		return nil
	}
	if err := e.store.WriteField(f, bitmap[:]); err != nil {
		return errors.Wrapf(err, "unable to record custom character %d", slot)
	}
	if err := e.display.CreateChar(slot, bitmap); err != nil {
		return err
	}
	return e.restoreCursor()
}

func (e *Executor) displayChar(slot uint8) error {
	f, err := eeprom.CustomChar(slot)
	if err != nil {
		log.Debug(err)
		return nil
	}
	stored, err := e.store.ReadField(f)
	if err != nil {
		return errors.Wrapf(err, "unable to read custom character %d", slot)
	}

	var bitmap [8]byte
	copy(bitmap[:], stored)
	if err := e.display.CreateChar(slot, bitmap); err != nil {
		return err
	}
	if err := e.restoreCursor(); err != nil {
		return err
	}
	return e.writeChar(slot)
}

// softwareReset goes back to the factory settings without touching the store.
func (e *Executor) softwareReset() error {
	log.Info("Software reset")
	e.settings = settings.Defaults()
	if err := e.Restore(); err != nil {
		return err
	}
	return e.baud.SetBaud(e.settings.Baud.Rate())
}

// Restore pushes the runtime settings to the display, backlight and contrast outputs.
func (e *Executor) Restore() error {
	if err := e.reconfigure(); err != nil {
		return err
	}
	for _, c := range []settings.Channel{settings.Red, settings.Green, settings.Blue} {
		if err := e.backlight.SetBrightness(c, e.settings.Brightness(c)); err != nil {
			return err
		}
	}
	return e.contrast.SetContrast(e.settings.Contrast)
}

// ShowMessage displays a system message, one line per row, then clears the display.
func (e *Executor) ShowMessage(lines ...string) error {
	return e.showMessage(lines...)
}

func (e *Executor) showMessage(lines ...string) error {
	if err := e.display.Clear(); err != nil {
		return err
	}
	for row, line := range lines {
		if row >= int(e.settings.Lines) {
			break
		}
		if err := e.printRow(row, []byte(line)); err != nil {
			return err
		}
	}
	return e.pause()
}

// pause holds the current screen for the message delay, then clears it.
func (e *Executor) pause() error {
	if e.conf.messageDelay > 0 {
		e.conf.sleep(e.conf.messageDelay)
	}

	e.frame.clear()
	return e.display.Clear()
}

// printRow writes text at the start of a row without touching the frame.
func (e *Executor) printRow(row int, text []byte) error {
	if err := e.display.Command(lcdDDRAM | rowOffset(int(e.settings.Width), row)); err != nil {
		return err
	}
	if len(text) > int(e.settings.Width) {
		text = text[:e.settings.Width]
	}
	for _, c := range text {
		if err := e.display.Write(c); err != nil {
			return err
		}
	}
	return nil
}

// ShowSplash shows text row by row from the top left, holds it, then clears the display.
func (e *Executor) ShowSplash(text []byte) error {
	e.frame.clear()
	if err := e.display.Clear(); err != nil {
		return err
	}
	if err := e.load(text); err != nil {
		return err
	}
	return e.pause()
}

// load writes text into the frame and onto the display, starting at the top left.
func (e *Executor) load(text []byte) error {
	for row := 0; row < int(e.settings.Lines); row++ {
		start := row * int(e.settings.Width)
		if start >= len(text) {
			break
		}
		end := start + int(e.settings.Width)
		if end > len(text) {
			end = len(text)
		}
		if err := e.printRow(row, text[start:end]); err != nil {
			return err
		}
		for _, c := range text[start:end] {
			e.frame.write(c)
		}
	}
	return nil
}

// LoadChars restores the custom characters from the store into the controller.
func (e *Executor) LoadChars() error {
	for slot := uint8(0); slot < eeprom.CustomCharSlots; slot++ {
		f, _ := eeprom.CustomChar(slot)
		stored, err := e.store.ReadField(f)
		if err != nil {
			return err
		}
		var bitmap [8]byte
		copy(bitmap[:], stored)
		if err := e.display.CreateChar(slot, bitmap); err != nil {
			return err
		}
	}
	return e.restoreCursor()
}
