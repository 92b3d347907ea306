package eeprom

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

var (
	ErrUnknownField = errors.New("eeprom: unknown field")
	ErrFieldSize    = errors.New("eeprom: field size mismatch")
)

// Store is a slot addressed non-volatile settings store. Every field maps to a fixed byte range, and a
// write to one field never touches the bytes of another.
//
// Writes are slow and wear the cells, so callers only write on explicit user commands.
type Store interface {
	ReadField(f Field) ([]byte, error)
	WriteField(f Field, data []byte) error
}

// Imager is implemented by stores that can hand out a copy of the whole image.
type Imager interface {
	Image() ([]byte, error)
}

// ReadByte reads a single byte field.
func ReadByte(s Store, f Field) (byte, error) {
	b, err := s.ReadField(f)
	if err != nil {
		return 0, err
	}
	if len(b) != 1 {
		return 0, errors.Wrapf(ErrFieldSize, "%v is %d bytes wide", f, len(b))
	}
	return b[0], nil
}

// WriteByte writes a single byte field.
func WriteByte(s Store, f Field, v byte) error {
	return s.WriteField(f, []byte{v})
}

// Dump renders an image as a canonical hex dump.
func Dump(s Imager) (string, error) {
	img, err := s.Image()
	if err != nil {
		return "", err
	}
	return hex.Dump(img), nil
}

func checkWrite(f Field, data []byte) error {
	if !f.valid() {
		return errors.Wrapf(ErrUnknownField, "%v", f)
	}
	if len(data) != f.Len() {
		return errors.Wrapf(ErrFieldSize, "%v takes %d bytes, got %d", f, f.Len(), len(data))
	}
	return nil
}
