package device

import "github.com/callebjorkell/openlcd/internal/settings"

// Display is the HD44780 panel driver. Positioning is done through raw controller commands.
type Display interface {
	Configure(cols, lines int) error
	Clear() error
	Write(c byte) error
	Command(code byte) error
	CreateChar(slot uint8, bitmap [8]byte) error
}

// Backlight sets the level of a backlight channel, in percent.
type Backlight interface {
	SetBrightness(c settings.Channel, percent byte) error
}

// Contrast drives the contrast output of the panel.
type Contrast interface {
	SetContrast(level byte) error
}

// BaudSwitcher changes the physical speed of the UART host interface.
type BaudSwitcher interface {
	SetBaud(rate int) error
}
