package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectorsAreDisjoint(t *testing.T) {
	for i := 0; i < 256; i++ {
		matched := 0
		for _, s := range selectors {
			if s.matches(byte(i)) {
				matched++
			}
		}
		assert.LessOrEqual(t, matched, 1, "selector 0x%02x matches %d ranges", i, matched)
	}
}

func TestSelectorsAreOrderedHighToLow(t *testing.T) {
	for i := 1; i < len(selectors); i++ {
		assert.Less(t, selectors[i].hi, selectors[i-1].lo, "%s must come after %s", selectors[i].name, selectors[i-1].name)
	}
}

func TestBandPercent(t *testing.T) {
	assert.Equal(t, byte(0), bandPercent(RedMin, RedMin))
	assert.Equal(t, byte(50), bandPercent(GreenMin+15, GreenMin))
	assert.Equal(t, byte(96), bandPercent(BlueMax, BlueMin))
}

func TestLookup(t *testing.T) {
	s, ok := lookup(0x1D)
	assert.True(t, ok)
	assert.Equal(t, "record char", s.name)

	_, ok = lookup(0x7C)
	assert.False(t, ok)
}
