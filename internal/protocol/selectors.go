package protocol

import "github.com/callebjorkell/openlcd/internal/settings"

type selector struct {
	name   string
	lo, hi byte
	decode func(d *Decoder, b byte) Action
}

func (s selector) matches(b byte) bool {
	return b >= s.lo && b <= s.hi
}

func fixed(a Action) func(*Decoder, byte) Action {
	return func(*Decoder, byte) Action {
		return a
	}
}

func await(kind PendingKind) func(*Decoder, byte) Action {
	return func(d *Decoder, _ byte) Action {
		d.pending = PendingCommand{Kind: kind}
		return nil
	}
}

func band(c settings.Channel, start byte) func(*Decoder, byte) Action {
	return func(_ *Decoder, b byte) Action {
		return SetBacklight{Channel: c, Percent: bandPercent(b, start)}
	}
}

func bandPercent(b, start byte) byte {
	p := int(b-start) * 100 / BandWidth
	if p > 100 {
		p = 100
	}
	return byte(p)
}

// baudFor maps the selectors 0x0B..0x16 onto 2400..1000000 baud and 0x17 onto 1200 baud.
func baudFor(b byte) settings.Baud {
	n := int(CmdBaudLast-CmdBaudFirst) + 1
	return settings.Baud((int(b-CmdBaudFirst) + 1) % n)
}

// selectors is evaluated top-down, from the highest range to the lowest. Ranges are disjoint, and any
// byte matching none of them is absorbed.
var selectors = []selector{
	{"blue saturated", BlueMax + 1, 0xFF, fixed(SetBacklight{Channel: settings.Blue, Percent: settings.MaxBrightness})},
	{"blue", BlueMin, BlueMax, band(settings.Blue, BlueMin)},
	{"green", GreenMin, BlueMin - 1, band(settings.Green, GreenMin)},
	{"red", RedMin, GreenMin - 1, band(settings.Red, RedMin)},
	{"clear", CmdClear, CmdClear, fixed(ClearDisplay{})},
	{"version", CmdVersion, CmdVersion, fixed(ShowVersion{})},
	{"rgb", CmdSetRGB, CmdSetRGB, await(AwaitingRGBBytes)},
	{"display char", CmdDisplayCharFirst, CmdDisplayCharLast, func(_ *Decoder, b byte) Action {
		return DisplayChar{Slot: b - CmdDisplayCharFirst}
	}},
	{"record char", CmdRecordCharFirst, CmdRecordCharLast, func(d *Decoder, b byte) Action {
		d.pending = PendingCommand{Kind: AwaitingCustomCharByte, Slot: b - CmdRecordCharFirst}
		return nil
	}},
	{"ignore rx", CmdToggleIgnoreRX, CmdToggleIgnoreRX, fixed(ToggleIgnoreRX{})},
	{"twi address", CmdTWIAddress, CmdTWIAddress, await(AwaitingTwiAddressByte)},
	{"contrast", CmdContrast, CmdContrast, await(AwaitingContrastByte)},
	{"baud", CmdBaudFirst, CmdBaudLast, func(_ *Decoder, b byte) Action {
		return SetBaud{Baud: baudFor(b)}
	}},
	{"save splash", CmdSaveSplash, CmdSaveSplash, fixed(SaveSplash{})},
	{"toggle splash", CmdToggleSplash, CmdToggleSplash, fixed(ToggleSplash{})},
	{"reset", CmdSoftwareReset, CmdSoftwareReset, fixed(SoftwareReset{})},
	{"lines 1", CmdLines1, CmdLines1, fixed(SetLines{Lines: 1})},
	{"lines 2", CmdLines2, CmdLines2, fixed(SetLines{Lines: 2})},
	{"lines 4", CmdLines4, CmdLines4, fixed(SetLines{Lines: 4})},
	{"width 16", CmdWidth16, CmdWidth16, fixed(SetWidth{Columns: 16})},
	{"width 20", CmdWidth20, CmdWidth20, fixed(SetWidth{Columns: 20})},
}

func lookup(b byte) (selector, bool) {
	for _, s := range selectors {
		if s.matches(b) {
			return s, true
		}
	}
	return selector{}, false
}
