package eeprom

import "fmt"

// Size is the size of the EEPROM image in bytes.
const Size = 1024

// Blank is the value of an erased EEPROM cell.
const Blank byte = 0xFF

// Field identifies one fixed region of the EEPROM image.
type Field int

const (
	Baud Field = iota
	// TWI is the legacy I2C address location. It is reserved and never written.
	TWI
	SplashOnOff
	Lines
	Width
	RedBrightness
	GreenBrightness
	BlueBrightness
	IgnoreRX
	TWIAddress
	Contrast
	SplashContent
	CustomChar0
	CustomChar1
	CustomChar2
	CustomChar3
	CustomChar4
	CustomChar5
	CustomChar6
	CustomChar7

	fieldCount
)

// Locations of the user settings. These are shared with existing device images and MUST NOT change.
const (
	locationBaud             = 0
	locationTWI              = 1
	locationSplashOnOff      = 2
	locationLines            = 3
	locationWidth            = 4
	locationRedBrightness    = 5
	locationGreenBrightness  = 6
	locationBlueBrightness   = 7
	locationIgnoreRX         = 8
	locationTWIAddress       = 9
	locationContrast         = 10
	locationSplashContent    = 20
	locationCustomCharacters = 100
)

const (
	// SplashContentSize is 4 lines of 20 characters.
	SplashContentSize = 80

	// CustomCharSize is the number of pixel rows in one custom character.
	CustomCharSize = 8

	// CustomCharSlots is the number of CGRAM slots on the controller.
	CustomCharSlots = 8
)

type region struct {
	name   string
	offset int
	length int
}

var layout = [fieldCount]region{
	Baud:            {"baud", locationBaud, 1},
	TWI:             {"twi", locationTWI, 1},
	SplashOnOff:     {"splash", locationSplashOnOff, 1},
	Lines:           {"lines", locationLines, 1},
	Width:           {"width", locationWidth, 1},
	RedBrightness:   {"red", locationRedBrightness, 1},
	GreenBrightness: {"green", locationGreenBrightness, 1},
	BlueBrightness:  {"blue", locationBlueBrightness, 1},
	IgnoreRX:        {"ignore-rx", locationIgnoreRX, 1},
	TWIAddress:      {"twi-address", locationTWIAddress, 1},
	Contrast:        {"contrast", locationContrast, 1},
	SplashContent:   {"splash-content", locationSplashContent, SplashContentSize},
	CustomChar0:     {"char0", locationCustomCharacters + 0*CustomCharSize, CustomCharSize},
	CustomChar1:     {"char1", locationCustomCharacters + 1*CustomCharSize, CustomCharSize},
	CustomChar2:     {"char2", locationCustomCharacters + 2*CustomCharSize, CustomCharSize},
	CustomChar3:     {"char3", locationCustomCharacters + 3*CustomCharSize, CustomCharSize},
	CustomChar4:     {"char4", locationCustomCharacters + 4*CustomCharSize, CustomCharSize},
	CustomChar5:     {"char5", locationCustomCharacters + 5*CustomCharSize, CustomCharSize},
	CustomChar6:     {"char6", locationCustomCharacters + 6*CustomCharSize, CustomCharSize},
	CustomChar7:     {"char7", locationCustomCharacters + 7*CustomCharSize, CustomCharSize},
}

// CustomChar returns the field holding the bitmap of the given CGRAM slot.
func CustomChar(slot uint8) (Field, error) {
	if slot >= CustomCharSlots {
		return 0, fmt.Errorf("custom character slot %d out of range", slot)
	}
	return CustomChar0 + Field(slot), nil
}

// Fields returns all fields in layout order.
func Fields() []Field {
	fields := make([]Field, 0, fieldCount)
	for f := Field(0); f < fieldCount; f++ {
		fields = append(fields, f)
	}
	return fields
}

func (f Field) valid() bool {
	return f >= 0 && f < fieldCount
}

// Offset is the first byte of the field in the image.
func (f Field) Offset() int {
	return layout[f].offset
}

// Len is the number of bytes the field occupies.
func (f Field) Len() int {
	return layout[f].length
}

func (f Field) String() string {
	if !f.valid() {
		return fmt.Sprintf("field(%d)", int(f))
	}
	return layout[f].name
}
