package host

import (
	"context"
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ErrTimeout is returned by sources when no data arrived within the read deadline. The pump keeps
// reading after a timeout.
var ErrTimeout = errors.New("read timeout")

// Pump copies bytes from src into the ring until the context is done or src is exhausted.
func Pump(ctx context.Context, src io.Reader, ring *Ring) error {
	buf := make([]byte, RingSize)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		n, err := src.Read(buf)
		if n > 0 {
			_, _ = ring.Write(buf[:n])
		}
		switch {
		case err == nil:
		case errors.Is(err, ErrTimeout):
		case errors.Is(err, io.EOF):
			log.Debug("Host closed the link")
			return nil
		default:
			return errors.Wrap(err, "unable to read from host")
		}
	}
}
