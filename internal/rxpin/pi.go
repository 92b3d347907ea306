//go:build pi

package rxpin

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// Open sets up the named pin as an input with the pull-up enabled, so that a disconnected host
// reads high.
func Open(name string) (*Debounced, error) {
	log.Infoln("Initializing RX pin", name)
	if _, err := host.Init(); err != nil {
		return nil, errors.Wrap(err, "unable to initialize periph")
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("no pin named %s", name)
	}
	if err := p.In(gpio.PullUp, gpio.NoEdge); err != nil {
		return nil, errors.Wrapf(err, "unable to set up %s", name)
	}
	return NewDebounced(p), nil
}
