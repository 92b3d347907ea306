package settings

import "fmt"

// Baud is the stored index of a UART rate.
type Baud byte

const (
	Baud1200 Baud = iota
	Baud2400
	Baud4800
	Baud9600
	Baud14400
	Baud19200
	Baud38400
	Baud57600
	Baud115200
	Baud230400
	Baud460800
	Baud921600
	Baud1000000
)

var baudRates = [...]int{
	Baud1200:    1200,
	Baud2400:    2400,
	Baud4800:    4800,
	Baud9600:    9600,
	Baud14400:   14400,
	Baud19200:   19200,
	Baud38400:   38400,
	Baud57600:   57600,
	Baud115200:  115200,
	Baud230400:  230400,
	Baud460800:  460800,
	Baud921600:  921600,
	Baud1000000: 1000000,
}

func (b Baud) Valid() bool {
	return int(b) < len(baudRates)
}

// Rate is the line speed in bits per second. Invalid indexes yield the default rate.
func (b Baud) Rate() int {
	if !b.Valid() {
		return baudRates[DefaultBaud]
	}
	return baudRates[b]
}

func (b Baud) String() string {
	if !b.Valid() {
		return fmt.Sprintf("baud(%d)", byte(b))
	}
	return fmt.Sprintf("%d baud", baudRates[b])
}
