package protocol

import (
	"fmt"

	"github.com/callebjorkell/openlcd/internal/settings"
)

// Action is a fully decoded byte or command. Decode returns nil when a byte was absorbed.
type Action interface {
	fmt.Stringer
	action()
}

// Literal is a character for the display.
type Literal struct{ Char byte }

// RawCommand is passed to the HD44780 controller verbatim.
type RawCommand struct{ Code byte }

type ClearDisplay struct{}

type SetWidth struct{ Columns byte }

type SetLines struct{ Lines byte }

type SoftwareReset struct{}

type ToggleSplash struct{}

// SaveSplash stores what is currently on the display as the splash screen.
type SaveSplash struct{}

type SetBaud struct{ Baud settings.Baud }

type SetContrast struct{ Level byte }

type SetTWIAddress struct{ Address byte }

type ToggleIgnoreRX struct{}

// RecordChar stores a bitmap in one of the CGRAM slots.
type RecordChar struct {
	Slot   uint8
	Bitmap [CharBitmapSize]byte
}

// DisplayChar prints the custom character stored in a slot.
type DisplayChar struct{ Slot uint8 }

// SetBacklight sets a single channel, in percent.
type SetBacklight struct {
	Channel settings.Channel
	Percent byte
}

// SetRGB sets all channels at once. Levels are 0-255.
type SetRGB struct{ Red, Green, Blue byte }

type ShowVersion struct{}

func (Literal) action()        {}
func (RawCommand) action()     {}
func (ClearDisplay) action()   {}
func (SetWidth) action()       {}
func (SetLines) action()       {}
func (SoftwareReset) action()  {}
func (ToggleSplash) action()   {}
func (SaveSplash) action()     {}
func (SetBaud) action()        {}
func (SetContrast) action()    {}
func (SetTWIAddress) action()  {}
func (ToggleIgnoreRX) action() {}
func (RecordChar) action()     {}
func (DisplayChar) action()    {}
func (SetBacklight) action()   {}
func (SetRGB) action()         {}
func (ShowVersion) action()    {}

func (a Literal) String() string       { return fmt.Sprintf("literal %q", a.Char) }
func (a RawCommand) String() string    { return fmt.Sprintf("raw command 0x%02x", a.Code) }
func (ClearDisplay) String() string    { return "clear display" }
func (a SetWidth) String() string      { return fmt.Sprintf("width %d", a.Columns) }
func (a SetLines) String() string      { return fmt.Sprintf("lines %d", a.Lines) }
func (SoftwareReset) String() string   { return "software reset" }
func (ToggleSplash) String() string    { return "toggle splash" }
func (SaveSplash) String() string      { return "save splash" }
func (a SetBaud) String() string       { return fmt.Sprintf("set %v", a.Baud) }
func (a SetContrast) String() string   { return fmt.Sprintf("contrast %d", a.Level) }
func (a SetTWIAddress) String() string { return fmt.Sprintf("i2c address 0x%02x", a.Address) }
func (ToggleIgnoreRX) String() string  { return "toggle ignore rx" }
func (a RecordChar) String() string    { return fmt.Sprintf("record char %d % x", a.Slot, a.Bitmap) }
func (a DisplayChar) String() string   { return fmt.Sprintf("display char %d", a.Slot) }
func (a SetBacklight) String() string  { return fmt.Sprintf("%v backlight %d%%", a.Channel, a.Percent) }
func (a SetRGB) String() string        { return fmt.Sprintf("rgb %d/%d/%d", a.Red, a.Green, a.Blue) }
func (ShowVersion) String() string     { return "show version" }
