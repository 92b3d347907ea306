package protocol

// Introducer bytes.
const (
	// SpecialSetting is the pipe character. The next byte selects a settings command.
	SpecialSetting byte = '|'

	// SpecialCommand passes the next byte to the HD44780 controller verbatim.
	SpecialCommand byte = 0xFE
)

// Settings command selectors, sent after SpecialSetting.
const (
	CmdWidth20          byte = 0x03
	CmdWidth16          byte = 0x04
	CmdLines4           byte = 0x05
	CmdLines2           byte = 0x06
	CmdLines1           byte = 0x07
	CmdSoftwareReset    byte = 0x08
	CmdToggleSplash     byte = 0x09
	CmdSaveSplash       byte = 0x0A
	CmdBaudFirst        byte = 0x0B // 2400
	CmdBaudLast         byte = 0x17 // 1200
	CmdContrast         byte = 0x18 // + 1 byte
	CmdTWIAddress       byte = 0x19 // + 1 byte
	CmdToggleIgnoreRX   byte = 0x1A
	CmdRecordCharFirst  byte = 0x1B // + 8 bytes
	CmdRecordCharLast   byte = 0x22
	CmdDisplayCharFirst byte = 0x23
	CmdDisplayCharLast  byte = 0x2A
	CmdSetRGB           byte = 0x2B // + 3 bytes
	CmdVersion          byte = 0x2C
	CmdClear            byte = '-'
)

// Backlight bands. Each band is 30 values wide and selects one channel.
const (
	BandWidth = 30

	RedMin   byte = 128
	GreenMin      = RedMin + BandWidth
	BlueMin       = GreenMin + BandWidth
	BlueMax       = BlueMin + BandWidth - 1
)

// CharBitmapSize is the number of pixel rows sent when recording a custom character.
const CharBitmapSize = 8

const rgbOperands = 3
