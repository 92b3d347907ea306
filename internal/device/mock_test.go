package device

import (
	"fmt"

	"github.com/callebjorkell/openlcd/internal/settings"
)

type DisplayMock struct {
	ops      []string
	written  []byte
	commands []byte
	chars    map[uint8][8]byte
	cols     int
	lines    int
}

func NewDisplayMock() *DisplayMock {
	return &DisplayMock{chars: make(map[uint8][8]byte)}
}

func (d *DisplayMock) Configure(cols, lines int) error {
	d.cols = cols
	d.lines = lines
	d.ops = append(d.ops, fmt.Sprintf("configure %dx%d", cols, lines))
	return nil
}

func (d *DisplayMock) Clear() error {
	d.ops = append(d.ops, "clear")
	return nil
}

func (d *DisplayMock) Write(c byte) error {
	d.written = append(d.written, c)
	d.ops = append(d.ops, fmt.Sprintf("write %q", c))
	return nil
}

func (d *DisplayMock) Command(code byte) error {
	d.commands = append(d.commands, code)
	d.ops = append(d.ops, fmt.Sprintf("command 0x%02x", code))
	return nil
}

func (d *DisplayMock) CreateChar(slot uint8, bitmap [8]byte) error {
	d.chars[slot] = bitmap
	d.ops = append(d.ops, fmt.Sprintf("char %d", slot))
	return nil
}

type BacklightMock struct {
	levels map[settings.Channel]byte
}

func NewBacklightMock() *BacklightMock {
	return &BacklightMock{levels: make(map[settings.Channel]byte)}
}

func (b *BacklightMock) SetBrightness(c settings.Channel, percent byte) error {
	b.levels[c] = percent
	return nil
}

type ContrastMock struct {
	level byte
	calls int
}

func (c *ContrastMock) SetContrast(level byte) error {
	c.level = level
	c.calls++
	return nil
}

type BaudMock struct {
	rates []int
	// display operations seen when the switch happened
	opsAtSwitch int
	display     *DisplayMock
}

func (b *BaudMock) SetBaud(rate int) error {
	b.rates = append(b.rates, rate)
	if b.display != nil {
		b.opsAtSwitch = len(b.display.ops)
	}
	return nil
}
