// Package backlight renders the RGB backlight levels on a ws281x strip.
package backlight

import (
	"sync"

	"github.com/callebjorkell/openlcd/internal/settings"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	// DefaultLedCount matches the strip behind a 16x2 panel.
	DefaultLedCount = 8
	brightness      = 255
)

type wsEngine interface {
	Init() error
	Render() error
	Wait() error
	Fini()
	Leds(channel int) []uint32
}

var channelColors = map[settings.Channel]uint32{
	settings.Red:   0xff0000,
	settings.Green: 0x00ff00,
	settings.Blue:  0x0000ff,
}

// LedController keeps the level of each channel and renders their mix to every LED.
type LedController struct {
	mu     sync.Mutex
	ws     wsEngine
	levels map[settings.Channel]byte
}

func newLedController(ws wsEngine) *LedController {
	return &LedController{
		ws:     ws,
		levels: make(map[settings.Channel]byte),
	}
}

// SetBrightness sets one channel to a percentage and renders the strip.
func (l *LedController) SetBrightness(c settings.Channel, percent byte) error {
	if percent > settings.MaxBrightness {
		percent = settings.MaxBrightness
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.levels[c] = percent
	color := l.color()
	log.Debugf("Backlight %v at %d%%, color %06x", c, percent, color)
	return l.setColor(color)
}

func (l *LedController) color() uint32 {
	var color uint32
	for c, base := range channelColors {
		color |= withBrightness(base, uint32(l.levels[c]))
	}
	return color
}

func (l *LedController) setColor(color uint32) error {
	leds := l.ws.Leds(0)
	for i := range leds {
		leds[i] = color
	}
	if err := l.ws.Render(); err != nil {
		return errors.Wrap(err, "unable to render backlight")
	}
	return l.ws.Wait()
}

// Close turns the strip off and releases it.
func (l *LedController) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.setColor(0); err != nil {
		log.Warn("Unable to turn off backlight: ", err)
	}
	l.ws.Fini()
}

func withBrightness(color, light uint32) uint32 {
	if light >= 100 {
		return color
	}
	if light == 0 {
		return 0
	}

	r, g, b := (color>>16)&0xff, (color>>8)&0xff, color&0xff

	red := r * light / 100
	green := g * light / 100
	blue := b * light / 100

	return (red << 16) | (green << 8) | blue
}
