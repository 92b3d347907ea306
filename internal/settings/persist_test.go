package settings

import (
	"testing"

	"github.com/callebjorkell/openlcd/internal/eeprom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBlankImageGivesDefaults(t *testing.T) {
	r, corrupted, err := Load(eeprom.NewMemory())
	require.NoError(t, err)
	assert.Equal(t, Defaults(), r)
	assert.Len(t, corrupted, len(codecs))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	want := Runtime{
		Width:      20,
		Lines:      4,
		Baud:       Baud115200,
		TWIAddress: 0x42,
		Splash:     false,
		Contrast:   130,
		Red:        10,
		Green:      50,
		Blue:       0,
		IgnoreRX:   true,
	}

	s := eeprom.NewMemory()
	require.NoError(t, Save(s, want))

	got, corrupted, err := Load(s)
	require.NoError(t, err)
	assert.Empty(t, corrupted)
	assert.Equal(t, want, got)
}

func TestLoadFallsBackPerField(t *testing.T) {
	stored := Defaults()
	stored.Width = 20
	stored.Lines = 4
	stored.Contrast = 7

	tt := []struct {
		name  string
		field eeprom.Field
		value byte
		want  func(r *Runtime)
	}{
		{"bad width", eeprom.Width, 18, func(r *Runtime) { r.Width = DefaultWidth }},
		{"bad lines", eeprom.Lines, 3, func(r *Runtime) { r.Lines = DefaultLines }},
		{"bad baud", eeprom.Baud, 13, func(r *Runtime) { r.Baud = DefaultBaud }},
		{"bad address", eeprom.TWIAddress, 0x7C, func(r *Runtime) { r.TWIAddress = DefaultTWIAddress }},
		{"bad splash", eeprom.SplashOnOff, 2, func(r *Runtime) { r.Splash = DefaultSplash }},
		{"bad red", eeprom.RedBrightness, 101, func(r *Runtime) { r.Red = DefaultBrightness }},
		{"bad ignore", eeprom.IgnoreRX, 0xFF, func(r *Runtime) { r.IgnoreRX = false }},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			s := eeprom.NewMemory()
			require.NoError(t, Save(s, stored))
			require.NoError(t, eeprom.WriteByte(s, tc.field, tc.value))

			want := stored
			tc.want(&want)

			got, corrupted, err := Load(s)
			require.NoError(t, err)
			assert.Equal(t, []eeprom.Field{tc.field}, corrupted)
			assert.Equal(t, want, got)
		})
	}
}

func TestPersistSingleField(t *testing.T) {
	s := eeprom.NewMemory()
	r := Defaults()
	r.Width = 20

	require.NoError(t, Persist(s, r, eeprom.Width))
	v, err := eeprom.ReadByte(s, eeprom.Width)
	require.NoError(t, err)
	assert.Equal(t, byte(20), v)
	assert.Equal(t, 1, s.TotalWrites())

	assert.Error(t, Persist(s, r, eeprom.SplashContent))
}
