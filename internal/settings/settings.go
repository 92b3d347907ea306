// Package settings holds the runtime configuration of the display and its persisted form.
package settings

import "fmt"

// Channel is one of the backlight colors.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return "N/A"
}

const (
	DefaultTWIAddress byte = 0x72
	DefaultBaud            = Baud9600
	DefaultBrightness byte = 100
	DefaultLines      byte = 2
	DefaultWidth      byte = 16
	DefaultSplash          = true
	DefaultContrast   byte = 20

	// MaxBrightness is full backlight, in percent.
	MaxBrightness byte = 100
)

// Runtime is the live configuration. It is created at boot and only mutated by the command executor.
type Runtime struct {
	Width      byte `json:"width"`
	Lines      byte `json:"lines"`
	Baud       Baud `json:"baud"`
	TWIAddress byte `json:"twiAddress"`
	Splash     bool `json:"splash"`
	Contrast   byte `json:"contrast"`
	Red        byte `json:"red"`
	Green      byte `json:"green"`
	Blue       byte `json:"blue"`
	IgnoreRX   bool `json:"ignoreRx"`
}

// Defaults returns the hardwired factory settings.
func Defaults() Runtime {
	return Runtime{
		Width:      DefaultWidth,
		Lines:      DefaultLines,
		Baud:       DefaultBaud,
		TWIAddress: DefaultTWIAddress,
		Splash:     DefaultSplash,
		Contrast:   DefaultContrast,
		Red:        DefaultBrightness,
		Green:      DefaultBrightness,
		Blue:       DefaultBrightness,
		IgnoreRX:   false,
	}
}

// Brightness returns the level of a backlight channel in percent.
func (r Runtime) Brightness(c Channel) byte {
	switch c {
	case Red:
		return r.Red
	case Green:
		return r.Green
	case Blue:
		return r.Blue
	}
	return 0
}

// SetBrightness sets a backlight channel. Levels above 100 percent saturate.
func (r *Runtime) SetBrightness(c Channel, percent byte) {
	if percent > MaxBrightness {
		percent = MaxBrightness
	}
	switch c {
	case Red:
		r.Red = percent
	case Green:
		r.Green = percent
	case Blue:
		r.Blue = percent
	}
}

// Characters is the number of cells on the configured display.
func (r Runtime) Characters() int {
	return int(r.Width) * int(r.Lines)
}

func (r Runtime) String() string {
	return fmt.Sprintf("%dx%d %v i2c=0x%02x splash=%v contrast=%d rgb=%d/%d/%d ignore-rx=%v",
		r.Width, r.Lines, r.Baud, r.TWIAddress, r.Splash, r.Contrast, r.Red, r.Green, r.Blue, r.IgnoreRX)
}

func ValidWidth(w byte) bool {
	return w == 16 || w == 20
}

func ValidLines(l byte) bool {
	return l == 1 || l == 2 || l == 4
}

// ValidTWIAddress accepts 7-bit addresses outside the reserved I2C ranges.
func ValidTWIAddress(a byte) bool {
	return a >= 0x08 && a <= 0x77
}
