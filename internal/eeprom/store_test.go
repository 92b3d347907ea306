package eeprom

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryIsBlank(t *testing.T) {
	m := NewMemory()
	for _, f := range Fields() {
		b, err := m.ReadField(f)
		require.NoError(t, err)
		assert.Equal(t, bytes.Repeat([]byte{Blank}, f.Len()), b, "%v", f)
	}
}

func TestMemoryWriteIsolation(t *testing.T) {
	m := NewMemory()
	require.NoError(t, WriteByte(m, Lines, 4))
	require.NoError(t, m.WriteField(CustomChar2, []byte{1, 2, 3, 4, 5, 6, 7, 8}))

	v, err := ReadByte(m, Lines)
	require.NoError(t, err)
	assert.Equal(t, byte(4), v)

	for _, f := range []Field{Baud, Width, CustomChar1, CustomChar3} {
		b, err := m.ReadField(f)
		require.NoError(t, err)
		assert.Equal(t, bytes.Repeat([]byte{Blank}, f.Len()), b, "%v should be untouched", f)
	}

	assert.Equal(t, 1, m.Writes(Lines))
	assert.Equal(t, 2, m.TotalWrites())
}

func TestWriteRejectsWrongSize(t *testing.T) {
	m := NewMemory()
	err := m.WriteField(CustomChar0, []byte{1, 2, 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFieldSize))

	err = m.WriteField(Field(99), []byte{1})
	assert.True(t, errors.Is(err, ErrUnknownField))

	_, err = ReadByte(m, SplashContent)
	assert.True(t, errors.Is(err, ErrFieldSize))
}

func TestFilePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "openlcd.eeprom")

	f, err := OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, WriteByte(f, Width, 20))
	splash := bytes.Repeat([]byte{' '}, SplashContentSize)
	copy(splash, "Hello")
	require.NoError(t, f.WriteField(SplashContent, splash))
	require.NoError(t, f.Close())

	f, err = OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	v, err := ReadByte(f, Width)
	require.NoError(t, err)
	assert.Equal(t, byte(20), v)

	b, err := f.ReadField(SplashContent)
	require.NoError(t, err)
	assert.Equal(t, splash, b)

	v, err = ReadByte(f, Lines)
	require.NoError(t, err)
	assert.Equal(t, Blank, v)
}

func TestDump(t *testing.T) {
	m := NewMemory()
	require.NoError(t, WriteByte(m, Baud, 3))

	out, err := Dump(m)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "00000000  03 ff ff"), out)
}
