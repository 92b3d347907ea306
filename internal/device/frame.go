package device

import "github.com/callebjorkell/openlcd/internal/eeprom"

// HD44780 instructions, identified by their highest set bit.
const (
	lcdClear       = 0x01
	lcdHome        = 0x02
	lcdEntryMode   = 0x04
	lcdDisplayCtl  = 0x08
	lcdShift       = 0x10
	lcdFunctionSet = 0x20
	lcdCGRAM       = 0x40
	lcdDDRAM       = 0x80

	lcdShiftRight = 0x04
	lcdDisplayMov = 0x08
)

// rowOffset returns the DDRAM address of the first cell of a row.
func rowOffset(width, row int) byte {
	offsets := [4]byte{0x00, 0x40, 0x10, 0x50}
	if width == 20 {
		offsets = [4]byte{0x00, 0x40, 0x14, 0x54}
	}
	return offsets[row%4]
}

// frame mirrors the characters on the panel so that they can be saved as the splash screen.
type frame struct {
	cells  [eeprom.SplashContentSize]byte
	cursor int
	width  int
	lines  int
}

func newFrame(width, lines int) *frame {
	f := &frame{width: width, lines: lines}
	f.clear()
	return f
}

func (f *frame) size() int {
	return f.width * f.lines
}

func (f *frame) clear() {
	for i := range f.cells {
		f.cells[i] = ' '
	}
	f.cursor = 0
}

func (f *frame) resize(width, lines int) {
	f.width = width
	f.lines = lines
	f.clear()
}

// write stores c at the cursor and advances it, wrapping at the end of the display.
func (f *frame) write(c byte) {
	f.cells[f.cursor] = c
	f.cursor = (f.cursor + 1) % f.size()
}

func (f *frame) row() int {
	return f.cursor / f.width
}

// address is the DDRAM address of the cursor.
func (f *frame) address() byte {
	return rowOffset(f.width, f.row()) + byte(f.cursor%f.width)
}

// seek moves the cursor to a DDRAM address. Addresses outside of the visible area are ignored.
func (f *frame) seek(addr byte) {
	for row := 0; row < f.lines; row++ {
		start := rowOffset(f.width, row)
		if addr >= start && addr < start+byte(f.width) {
			f.cursor = row*f.width + int(addr-start)
			return
		}
	}
}

// command keeps the cursor in sync with a raw controller instruction. Entry mode, display control
// and function set leave the cursor where it is.
func (f *frame) command(code byte) {
	switch {
	case code&lcdDDRAM != 0:
		f.seek(code &^ lcdDDRAM)
	case code&lcdCGRAM != 0:
	case code&lcdFunctionSet != 0:
	case code&lcdShift != 0:
		if code&lcdDisplayMov != 0 {
			return
		}
		if code&lcdShiftRight != 0 {
			f.cursor = (f.cursor + 1) % f.size()
		} else {
			f.cursor = (f.cursor + f.size() - 1) % f.size()
		}
	case code&lcdDisplayCtl != 0:
	case code&lcdEntryMode != 0:
	case code&lcdHome != 0:
		f.cursor = 0
	case code == lcdClear:
		f.clear()
	}
}

func (f *frame) contents() []byte {
	out := make([]byte, len(f.cells))
	copy(out, f.cells[:])
	return out
}
