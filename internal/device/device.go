package device

import (
	"context"
	"sync"

	"github.com/callebjorkell/openlcd/internal/protocol"
	"github.com/callebjorkell/openlcd/internal/settings"
	log "github.com/sirupsen/logrus"
)

// Device feeds received bytes through the decoder and the executor, one at a time.
type Device struct {
	mu       sync.Mutex
	decoder  *protocol.Decoder
	executor *Executor
}

// Snapshot is the observable state of the device.
type Snapshot struct {
	Settings settings.Runtime `json:"settings"`
	Pending  string           `json:"pending"`
	Frame    string           `json:"frame"`
}

func New(decoder *protocol.Decoder, executor *Executor) *Device {
	return &Device{
		decoder:  decoder,
		executor: executor,
	}
}

// Feed processes a single byte. Errors from the hardware are logged, never returned, as there is
// nobody to report them to.
func (d *Device) Feed(b byte) {
	d.mu.Lock()
	defer d.mu.Unlock()

	a := d.decoder.Decode(b)
	if a == nil {
		return
	}
	if _, literal := a.(protocol.Literal); !literal {
		log.Debugf("Applying %v", a)
	}
	if err := d.executor.Apply(a); err != nil {
		log.Warnf("Unable to apply %v: %v", a, err)
	}
}

// Run processes bytes from in until the context is cancelled or in is closed.
func (d *Device) Run(ctx context.Context, in <-chan byte) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case b, open := <-in:
			if !open {
				log.Debug("Input closed. Stopping device.")
				return nil
			}
			d.Feed(b)
		}
	}
}

func (d *Device) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	return Snapshot{
		Settings: d.executor.Settings(),
		Pending:  d.decoder.Pending().Kind.String(),
		Frame:    string(d.executor.Frame()),
	}
}
