// Package host moves bytes from the host link into the device.
package host

import (
	"sync/atomic"

	log "github.com/sirupsen/logrus"
)

// RingSize is the number of received bytes buffered ahead of the decoder.
const RingSize = 64

// Ring is a bounded receive buffer. Bytes that arrive while it is full are dropped, the way the
// UART interrupt drops bytes when the main loop falls behind.
type Ring struct {
	ch      chan byte
	dropped uint64
}

func NewRing(size int) *Ring {
	if size <= 0 {
		size = RingSize
	}
	return &Ring{ch: make(chan byte, size)}
}

// Push queues b without blocking. It reports false when the byte was dropped.
func (r *Ring) Push(b byte) bool {
	select {
	case r.ch <- b:
		return true
	default:
		n := atomic.AddUint64(&r.dropped, 1)
		log.Debugf("Receive buffer full, dropped %d bytes so far", n)
		return false
	}
}

// Write queues all of p, and never fails. Dropped bytes are only counted.
func (r *Ring) Write(p []byte) (int, error) {
	for _, b := range p {
		r.Push(b)
	}
	return len(p), nil
}

// C is the consuming end of the ring.
func (r *Ring) C() <-chan byte {
	return r.ch
}

func (r *Ring) Dropped() uint64 {
	return atomic.LoadUint64(&r.dropped)
}

// Close stops the consumer once the buffered bytes have been read. No bytes may be pushed after
// Close.
func (r *Ring) Close() {
	close(r.ch)
}
