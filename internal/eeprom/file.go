package eeprom

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// File keeps the image in a file on disk. Every field write is synced before it returns.
type File struct {
	mu   sync.Mutex
	f    *os.File
	path string
}

// OpenFile opens the image at path, creating a blank one if it does not exist.
func OpenFile(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open eeprom image %s", path)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.Wrap(err, "unable to stat eeprom image")
	}

	if info.Size() < Size {
		log.Infof("Erasing eeprom image %s (%d bytes)", path, Size)
		pad := bytes.Repeat([]byte{Blank}, Size-int(info.Size()))
		if _, err := f.WriteAt(pad, info.Size()); err != nil {
			f.Close()
			return nil, errors.Wrap(err, "unable to erase eeprom image")
		}
		if err := f.Sync(); err != nil {
			f.Close()
			return nil, errors.Wrap(err, "unable to sync eeprom image")
		}
	}

	return &File{f: f, path: path}, nil
}

func (e *File) ReadField(f Field) ([]byte, error) {
	if !f.valid() {
		return nil, errors.Wrapf(ErrUnknownField, "%v", f)
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]byte, f.Len())
	if _, err := e.f.ReadAt(out, int64(f.Offset())); err != nil {
		return nil, errors.Wrapf(err, "unable to read %v", f)
	}
	return out, nil
}

func (e *File) WriteField(f Field, data []byte) error {
	if err := checkWrite(f, data); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.f.WriteAt(data, int64(f.Offset())); err != nil {
		return errors.Wrapf(err, "unable to write %v", f)
	}
	if err := e.f.Sync(); err != nil {
		return errors.Wrapf(err, "unable to sync %v", f)
	}
	log.Debugf("Wrote %v to %s", f, e.path)
	return nil
}

func (e *File) Image() ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]byte, Size)
	if _, err := e.f.ReadAt(out, 0); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "unable to read eeprom image")
	}
	return out, nil
}

func (e *File) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.f.Close()
}
