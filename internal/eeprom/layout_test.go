package eeprom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutDoesNotOverlap(t *testing.T) {
	owner := make(map[int]Field)
	for _, f := range Fields() {
		require.LessOrEqual(t, f.Offset()+f.Len(), Size, "%v runs past the image", f)
		for i := f.Offset(); i < f.Offset()+f.Len(); i++ {
			if prev, taken := owner[i]; taken {
				t.Fatalf("byte %d is used by both %v and %v", i, prev, f)
			}
			owner[i] = f
		}
	}
}

func TestLayoutOffsets(t *testing.T) {
	tt := []struct {
		field  Field
		offset int
		length int
	}{
		{Baud, 0, 1},
		{TWI, 1, 1},
		{SplashOnOff, 2, 1},
		{Lines, 3, 1},
		{Width, 4, 1},
		{RedBrightness, 5, 1},
		{GreenBrightness, 6, 1},
		{BlueBrightness, 7, 1},
		{IgnoreRX, 8, 1},
		{TWIAddress, 9, 1},
		{Contrast, 10, 1},
		{SplashContent, 20, 80},
		{CustomChar0, 100, 8},
		{CustomChar7, 156, 8},
	}

	for _, tc := range tt {
		t.Run(tc.field.String(), func(t *testing.T) {
			assert.Equal(t, tc.offset, tc.field.Offset())
			assert.Equal(t, tc.length, tc.field.Len())
		})
	}
}

func TestCustomChar(t *testing.T) {
	f, err := CustomChar(3)
	require.NoError(t, err)
	assert.Equal(t, CustomChar3, f)

	_, err = CustomChar(8)
	assert.Error(t, err)
}
