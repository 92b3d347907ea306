package host

import (
	"sync"
	"time"

	"github.com/goburrow/serial"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const readTimeout = 100 * time.Millisecond

// UART is the serial link to the host. The line speed can be changed while it is being read.
type UART struct {
	mu      sync.Mutex
	address string
	port    serial.Port
	rate    int
}

// OpenUART opens the serial device at address with 8N1 framing.
func OpenUART(address string, rate int) (*UART, error) {
	u := &UART{address: address}
	if err := u.SetBaud(rate); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *UART) config(rate int) *serial.Config {
	return &serial.Config{
		Address:  u.address,
		BaudRate: rate,
		DataBits: 8,
		StopBits: 1,
		Parity:   "N",
		Timeout:  readTimeout,
	}
}

// SetBaud reopens the port at the given rate.
func (u *UART) SetBaud(rate int) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.port != nil && u.rate == rate {
		return nil
	}
	if u.port != nil {
		if err := u.port.Close(); err != nil {
			log.Warnf("Unable to close %s: %v", u.address, err)
		}
		u.port = nil
	}

	port, err := serial.Open(u.config(rate))
	if err != nil {
		return errors.Wrapf(err, "unable to open %s at %d baud", u.address, rate)
	}
	log.Infof("Listening on %s at %d baud", u.address, rate)
	u.port = port
	u.rate = rate
	return nil
}

func (u *UART) Rate() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.rate
}

// Read reads from the current port. Read timeouts are reported as ErrTimeout.
func (u *UART) Read(p []byte) (int, error) {
	u.mu.Lock()
	port := u.port
	u.mu.Unlock()

	if port == nil {
		time.Sleep(readTimeout)
		return 0, ErrTimeout
	}
	n, err := port.Read(p)
	if errors.Is(err, serial.ErrTimeout) {
		return n, ErrTimeout
	}
	if err != nil && u.reopened(port) {
		// the port was swapped by SetBaud while reading
		return n, ErrTimeout
	}
	return n, err
}

// Write sends bytes to the other end of the link.
func (u *UART) Write(p []byte) (int, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.port == nil {
		return 0, errors.New("port is closed")
	}
	return u.port.Write(p)
}

func (u *UART) reopened(port serial.Port) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.port != port
}

func (u *UART) Close() error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.port == nil {
		return nil
	}
	err := u.port.Close()
	u.port = nil
	return err
}
