package host

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// Stream is a host link without a line speed, like stdin or a pipe.
type Stream struct {
	io.Reader
}

func NewStream(r io.Reader) *Stream {
	return &Stream{Reader: r}
}

func (s *Stream) SetBaud(rate int) error {
	log.Infof("Ignoring baud change to %d on a stream", rate)
	return nil
}

func (s *Stream) Close() error {
	if c, ok := s.Reader.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
