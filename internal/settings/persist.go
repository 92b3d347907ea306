package settings

import (
	"fmt"

	"github.com/callebjorkell/openlcd/internal/eeprom"
	log "github.com/sirupsen/logrus"
)

type codec struct {
	field  eeprom.Field
	load   func(r *Runtime, v byte) bool
	encode func(r Runtime) byte
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

func parseBool(v byte) (value, ok bool) {
	if v > 1 {
		return false, false
	}
	return v == 1, true
}

// codecs maps every persisted byte field onto Runtime. The legacy TWI location is not part of it.
var codecs = []codec{
	{
		field: eeprom.Baud,
		load: func(r *Runtime, v byte) bool {
			if !Baud(v).Valid() {
				return false
			}
			r.Baud = Baud(v)
			return true
		},
		encode: func(r Runtime) byte { return byte(r.Baud) },
	},
	{
		field: eeprom.TWIAddress,
		load: func(r *Runtime, v byte) bool {
			if !ValidTWIAddress(v) {
				return false
			}
			r.TWIAddress = v
			return true
		},
		encode: func(r Runtime) byte { return r.TWIAddress },
	},
	{
		field: eeprom.SplashOnOff,
		load: func(r *Runtime, v byte) bool {
			on, ok := parseBool(v)
			if ok {
				r.Splash = on
			}
			return ok
		},
		encode: func(r Runtime) byte { return boolByte(r.Splash) },
	},
	{
		field: eeprom.Lines,
		load: func(r *Runtime, v byte) bool {
			if !ValidLines(v) {
				return false
			}
			r.Lines = v
			return true
		},
		encode: func(r Runtime) byte { return r.Lines },
	},
	{
		field: eeprom.Width,
		load: func(r *Runtime, v byte) bool {
			if !ValidWidth(v) {
				return false
			}
			r.Width = v
			return true
		},
		encode: func(r Runtime) byte { return r.Width },
	},
	{
		field:  eeprom.RedBrightness,
		load:   loadBrightness(Red),
		encode: func(r Runtime) byte { return r.Red },
	},
	{
		field:  eeprom.GreenBrightness,
		load:   loadBrightness(Green),
		encode: func(r Runtime) byte { return r.Green },
	},
	{
		field:  eeprom.BlueBrightness,
		load:   loadBrightness(Blue),
		encode: func(r Runtime) byte { return r.Blue },
	},
	{
		field: eeprom.IgnoreRX,
		load: func(r *Runtime, v byte) bool {
			on, ok := parseBool(v)
			if ok {
				r.IgnoreRX = on
			}
			return ok
		},
		encode: func(r Runtime) byte { return boolByte(r.IgnoreRX) },
	},
	{
		field: eeprom.Contrast,
		load: func(r *Runtime, v byte) bool {
			if v == eeprom.Blank {
				return false
			}
			r.Contrast = v
			return true
		},
		encode: func(r Runtime) byte { return r.Contrast },
	},
}

func loadBrightness(c Channel) func(*Runtime, byte) bool {
	return func(r *Runtime, v byte) bool {
		if v > MaxBrightness {
			return false
		}
		r.SetBrightness(c, v)
		return true
	}
}

func codecFor(f eeprom.Field) (codec, bool) {
	for _, c := range codecs {
		if c.field == f {
			return c, true
		}
	}
	return codec{}, false
}

// Load reads the settings from the store. Every field holding an out of range value keeps its
// factory default, and is reported back so that the caller can log it. Nothing is written back.
func Load(s eeprom.Store) (Runtime, []eeprom.Field, error) {
	r := Defaults()
	var corrupted []eeprom.Field

	for _, c := range codecs {
		v, err := eeprom.ReadByte(s, c.field)
		if err != nil {
			return Defaults(), nil, err
		}
		if !c.load(&r, v) {
			log.Debugf("Stored %v value 0x%02x is out of range", c.field, v)
			corrupted = append(corrupted, c.field)
		}
	}

	return r, corrupted, nil
}

// Persist writes the current value of a single field.
func Persist(s eeprom.Store, r Runtime, f eeprom.Field) error {
	c, ok := codecFor(f)
	if !ok {
		return fmt.Errorf("%v is not a settings field", f)
	}
	return eeprom.WriteByte(s, f, c.encode(r))
}

// Save writes every settings field.
func Save(s eeprom.Store, r Runtime) error {
	for _, c := range codecs {
		if err := eeprom.WriteByte(s, c.field, c.encode(r)); err != nil {
			return err
		}
	}
	return nil
}
