package protocol

import (
	"github.com/callebjorkell/openlcd/internal/settings"
	"github.com/pkg/errors"
)

// ErrNotEncodable is returned for actions that no byte sequence decodes to, such as a literal
// introducer or an operand that would abort the command it belongs to.
var ErrNotEncodable = errors.New("action can not be encoded")

func special(selector byte, operands ...byte) ([]byte, error) {
	for _, o := range operands {
		if isIntroducer(o) {
			return nil, errors.Wrapf(ErrNotEncodable, "operand 0x%02x", o)
		}
	}
	return append([]byte{SpecialSetting, selector}, operands...), nil
}

// Encode returns the bytes a host sends for an action. Backlight percentages are rounded up to the
// next band step.
func Encode(a Action) ([]byte, error) {
	switch a := a.(type) {
	case Literal:
		if isIntroducer(a.Char) {
			return nil, errors.Wrapf(ErrNotEncodable, "literal 0x%02x", a.Char)
		}
		return []byte{a.Char}, nil
	case RawCommand:
		if isIntroducer(a.Code) {
			return nil, errors.Wrapf(ErrNotEncodable, "raw command 0x%02x", a.Code)
		}
		return []byte{SpecialCommand, a.Code}, nil
	case ClearDisplay:
		return special(CmdClear)
	case SetWidth:
		switch a.Columns {
		case 16:
			return special(CmdWidth16)
		case 20:
			return special(CmdWidth20)
		}
	case SetLines:
		switch a.Lines {
		case 1:
			return special(CmdLines1)
		case 2:
			return special(CmdLines2)
		case 4:
			return special(CmdLines4)
		}
	case SoftwareReset:
		return special(CmdSoftwareReset)
	case ToggleSplash:
		return special(CmdToggleSplash)
	case SaveSplash:
		return special(CmdSaveSplash)
	case SetBaud:
		if a.Baud.Valid() {
			n := int(CmdBaudLast-CmdBaudFirst) + 1
			return special(CmdBaudFirst + byte((int(a.Baud)+n-1)%n))
		}
	case SetContrast:
		return special(CmdContrast, a.Level)
	case SetTWIAddress:
		return special(CmdTWIAddress, a.Address)
	case ToggleIgnoreRX:
		return special(CmdToggleIgnoreRX)
	case RecordChar:
		if a.Slot < CmdRecordCharLast-CmdRecordCharFirst+1 {
			return special(CmdRecordCharFirst+a.Slot, a.Bitmap[:]...)
		}
	case DisplayChar:
		if a.Slot < CmdDisplayCharLast-CmdDisplayCharFirst+1 {
			return special(CmdDisplayCharFirst + a.Slot)
		}
	case SetBacklight:
		return encodeBacklight(a)
	case SetRGB:
		return special(CmdSetRGB, a.Red, a.Green, a.Blue)
	case ShowVersion:
		return special(CmdVersion)
	}
	return nil, errors.Wrapf(ErrNotEncodable, "%v", a)
}

func encodeBacklight(a SetBacklight) ([]byte, error) {
	starts := map[settings.Channel]byte{
		settings.Red:   RedMin,
		settings.Green: GreenMin,
		settings.Blue:  BlueMin,
	}
	start, ok := starts[a.Channel]
	if !ok || a.Percent > settings.MaxBrightness {
		return nil, errors.Wrapf(ErrNotEncodable, "%v", a)
	}

	step := (int(a.Percent)*BandWidth + 99) / 100
	if step >= BandWidth {
		if a.Channel == settings.Blue {
			return special(BlueMax + 1)
		}
		step = BandWidth - 1
	}
	return special(start + byte(step))
}
