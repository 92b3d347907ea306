package boot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/callebjorkell/openlcd/internal/device"
	"github.com/callebjorkell/openlcd/internal/eeprom"
	"github.com/callebjorkell/openlcd/internal/protocol"
	"github.com/callebjorkell/openlcd/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

type screen struct {
	text  bytes.Buffer
	chars map[uint8][8]byte
}

func (s *screen) Configure(int, int) error { return nil }
func (s *screen) Clear() error {
	s.text.WriteByte('|')
	return nil
}
func (s *screen) Write(c byte) error {
	s.text.WriteByte(c)
	return nil
}
func (s *screen) Command(byte) error { return nil }
func (s *screen) CreateChar(slot uint8, bitmap [8]byte) error {
	if s.chars == nil {
		s.chars = make(map[uint8][8]byte)
	}
	s.chars[slot] = bitmap
	return nil
}

type outputs struct {
	levels   map[settings.Channel]byte
	contrast byte
}

func (o *outputs) SetBrightness(c settings.Channel, percent byte) error {
	if o.levels == nil {
		o.levels = make(map[settings.Channel]byte)
	}
	o.levels[c] = percent
	return nil
}

func (o *outputs) SetContrast(level byte) error {
	o.contrast = level
	return nil
}

func (o *outputs) SetBaud(int) error { return nil }

func rx(level gpio.Level) *gpiotest.Pin {
	return &gpiotest.Pin{N: "RX", L: level}
}

func stored(t *testing.T, mutate func(r *settings.Runtime)) *eeprom.Memory {
	t.Helper()
	m := eeprom.NewMemory()
	r := settings.Defaults()
	r.Width = 20
	r.Lines = 4
	r.Baud = settings.Baud57600
	r.Red = 30
	mutate(&r)
	require.NoError(t, settings.Save(m, r))
	return m
}

func TestBootNormal(t *testing.T) {
	m := stored(t, func(r *settings.Runtime) {})

	r, mode, err := NewController(m, rx(gpio.High)).Boot()
	require.NoError(t, err)
	assert.Equal(t, Normal, mode)
	assert.Equal(t, byte(20), r.Width)
	assert.Equal(t, byte(4), r.Lines)
	assert.Equal(t, settings.Baud57600, r.Baud)
	assert.Equal(t, byte(30), r.Red)
}

func TestBootBlankStore(t *testing.T) {
	m := eeprom.NewMemory()

	r, mode, err := NewController(m, rx(gpio.High)).Boot()
	require.NoError(t, err)
	assert.Equal(t, Normal, mode)
	assert.Equal(t, settings.Defaults(), r)
	assert.Equal(t, 0, m.TotalWrites())
}

func TestBootEmergencyReset(t *testing.T) {
	m := stored(t, func(r *settings.Runtime) {})
	before := m.TotalWrites()

	r, mode, err := NewController(m, rx(gpio.Low)).Boot()
	require.NoError(t, err)
	assert.Equal(t, EmergencyReset, mode)
	assert.Equal(t, settings.Defaults(), r)
	assert.Equal(t, before, m.TotalWrites())

	// the next boot with the line released goes back to the stored settings
	r, mode, err = NewController(m, rx(gpio.High)).Boot()
	require.NoError(t, err)
	assert.Equal(t, Normal, mode)
	assert.Equal(t, byte(20), r.Width)
}

func TestBootIgnoresRX(t *testing.T) {
	m := stored(t, func(r *settings.Runtime) { r.IgnoreRX = true })

	r, mode, err := NewController(m, rx(gpio.Low)).Boot()
	require.NoError(t, err)
	assert.Equal(t, Normal, mode)
	assert.Equal(t, byte(20), r.Width)
	assert.True(t, r.IgnoreRX)
}

func TestBootCorruptedIgnoreFlag(t *testing.T) {
	m := stored(t, func(r *settings.Runtime) {})
	require.NoError(t, eeprom.WriteByte(m, eeprom.IgnoreRX, 0x42))

	_, mode, err := NewController(m, rx(gpio.Low)).Boot()
	require.NoError(t, err)
	assert.Equal(t, EmergencyReset, mode)
}

func TestBootFallsBackPerField(t *testing.T) {
	m := stored(t, func(r *settings.Runtime) {})
	require.NoError(t, eeprom.WriteByte(m, eeprom.Width, 18))
	before := m.TotalWrites()

	r, mode, err := NewController(m, rx(gpio.High)).Boot()
	require.NoError(t, err)
	assert.Equal(t, Normal, mode)
	assert.Equal(t, settings.DefaultWidth, r.Width)
	assert.Equal(t, byte(4), r.Lines)
	assert.Equal(t, settings.Baud57600, r.Baud)
	assert.Equal(t, before, m.TotalWrites())
}

func start(t *testing.T, m *eeprom.Memory, r settings.Runtime, mode Mode) (*screen, *outputs) {
	t.Helper()
	s := &screen{}
	o := &outputs{}
	e := device.NewExecutor(r, m, s, o, o, o, device.WithMessageDelay(0))
	require.NoError(t, NewController(m, rx(gpio.High)).Start(e, mode))
	return s, o
}

func TestStartEmergencyReset(t *testing.T) {
	s, o := start(t, eeprom.NewMemory(), settings.Defaults(), EmergencyReset)

	assert.Equal(t, "||System resetPower cycle me|", s.text.String())
	assert.Equal(t, byte(100), o.levels[settings.Blue])
	assert.Equal(t, settings.DefaultContrast, o.contrast)
	assert.Empty(t, s.chars)
}

func TestStartDefaultSplash(t *testing.T) {
	r := settings.Defaults()
	s, _ := start(t, eeprom.NewMemory(), r, Normal)

	assert.Equal(t, "||SparkFun OpenLCDBaud:9600|", s.text.String())
	assert.Len(t, s.chars, eeprom.CustomCharSlots)
}

func TestStartDefaultSplashWide(t *testing.T) {
	r := settings.Defaults()
	r.Width = 20
	r.Baud = settings.Baud115200
	s, _ := start(t, eeprom.NewMemory(), r, Normal)

	assert.Equal(t, "||SparkFun OpenLCD    Baud:115200|", s.text.String())
}

func TestStartStoredSplash(t *testing.T) {
	m := eeprom.NewMemory()
	splash := []byte(strings.Repeat(" ", eeprom.SplashContentSize))
	copy(splash, "Hello")
	copy(splash[16:], "there")
	require.NoError(t, m.WriteField(eeprom.SplashContent, splash))
	require.NoError(t, m.WriteField(eeprom.CustomChar3, []byte{1, 2, 3, 4, 5, 6, 7, 8}))

	s, _ := start(t, m, settings.Defaults(), Normal)

	assert.Equal(t, "||Hello           there           |", s.text.String())
	assert.Equal(t, [8]byte{1, 2, 3, 4, 5, 6, 7, 8}, s.chars[3])
}

func TestStartSplashDisabled(t *testing.T) {
	r := settings.Defaults()
	r.Splash = false
	s, o := start(t, eeprom.NewMemory(), r, Normal)

	assert.Equal(t, "|", s.text.String())
	assert.Equal(t, byte(100), o.levels[settings.Red])
}

func TestContrastSurvivesReboot(t *testing.T) {
	tests := []struct {
		level byte
		want  byte
	}{
		{0, 0},
		{200, 200},
		{0xFF, 200},
	}

	m := eeprom.NewMemory()
	o := &outputs{}
	e := device.NewExecutor(settings.Defaults(), m, &screen{}, o, o, o, device.WithMessageDelay(0))
	for _, tc := range tests {
		require.NoError(t, e.Apply(protocol.SetContrast{Level: tc.level}))
		assert.Equal(t, tc.want, e.Settings().Contrast, "level %d", tc.level)

		r, _, err := NewController(m, rx(gpio.High)).Boot()
		require.NoError(t, err)
		assert.Equal(t, e.Settings().Contrast, r.Contrast, "level %d", tc.level)
	}
}
