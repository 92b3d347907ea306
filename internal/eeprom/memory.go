package eeprom

import (
	"sync"

	"github.com/pkg/errors"
)

// Memory is an in-process image. It is used by tests and by development builds without an image file.
type Memory struct {
	mu     sync.Mutex
	image  [Size]byte
	writes map[Field]int
}

// NewMemory returns a blank (erased) image.
func NewMemory() *Memory {
	m := &Memory{writes: make(map[Field]int)}
	for i := range m.image {
		m.image[i] = Blank
	}
	return m
}

func (m *Memory) ReadField(f Field) ([]byte, error) {
	if !f.valid() {
		return nil, errors.Wrapf(ErrUnknownField, "%v", f)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]byte, f.Len())
	copy(out, m.image[f.Offset():f.Offset()+f.Len()])
	return out, nil
}

func (m *Memory) WriteField(f Field, data []byte) error {
	if err := checkWrite(f, data); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	copy(m.image[f.Offset():f.Offset()+f.Len()], data)
	m.writes[f]++
	return nil
}

// Writes returns how many times a field has been written.
func (m *Memory) Writes(f Field) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes[f]
}

// TotalWrites returns the number of field writes across the whole image.
func (m *Memory) TotalWrites() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, w := range m.writes {
		n += w
	}
	return n
}

func (m *Memory) Image() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]byte, Size)
	copy(out, m.image[:])
	return out, nil
}
