// Package protocol decodes the OpenLCD byte stream.
//
// Every byte is either literal text, an introducer starting a command, or part of a pending command.
// There is no acknowledgement channel, so malformed input is absorbed without an error.
package protocol

import (
	log "github.com/sirupsen/logrus"
)

// Decoder is a byte at a time state machine. It is not safe for concurrent use; every host interface
// feeds the same decoder through a single processing loop.
type Decoder struct {
	pending PendingCommand
}

func NewDecoder() *Decoder {
	return &Decoder{}
}

// Pending returns the command the decoder is waiting to complete.
func (d *Decoder) Pending() PendingCommand {
	return d.pending
}

// Reset drops any pending command.
func (d *Decoder) Reset() {
	d.pending = PendingCommand{}
}

// Decode consumes one byte in arrival order. It returns nil when the byte did not complete anything.
// An incomplete command waits indefinitely; only a new introducer aborts it.
func (d *Decoder) Decode(b byte) Action {
	switch {
	case d.pending.Kind == None:
		return d.idle(b)
	case d.pending.Kind == AwaitingSpecialByte:
		d.pending = PendingCommand{}
		return d.selectCommand(b)
	case isIntroducer(b):
		log.Debugf("Introducer 0x%02x aborts pending command (%v)", b, d.pending.Kind)
		d.pending = PendingCommand{}
		return d.idle(b)
	default:
		return d.operand(b)
	}
}

func isIntroducer(b byte) bool {
	return b == SpecialSetting || b == SpecialCommand
}

func (d *Decoder) idle(b byte) Action {
	switch b {
	case SpecialSetting:
		d.pending = PendingCommand{Kind: AwaitingSpecialByte}
		return nil
	case SpecialCommand:
		d.pending = PendingCommand{Kind: AwaitingRawCommand}
		return nil
	}
	return Literal{Char: b}
}

func (d *Decoder) selectCommand(b byte) Action {
	if b == SpecialSetting {
		d.pending = PendingCommand{Kind: AwaitingSpecialByte}
		return nil
	}

	s, ok := lookup(b)
	if !ok {
		return nil
	}
	return s.decode(d, b)
}

func (d *Decoder) operand(b byte) Action {
	p := &d.pending
	switch p.Kind {
	case AwaitingRawCommand:
		d.Reset()
		return RawCommand{Code: b}
	case AwaitingTwiAddressByte:
		d.Reset()
		return SetTWIAddress{Address: b}
	case AwaitingContrastByte:
		d.Reset()
		return SetContrast{Level: b}
	case AwaitingCustomCharByte:
		p.Buffer[p.Received] = b
		p.Received++
		if p.Received < CharBitmapSize {
			return nil
		}
		a := RecordChar{Slot: p.Slot, Bitmap: p.Buffer}
		d.Reset()
		return a
	case AwaitingRGBBytes:
		p.Buffer[p.Received] = b
		p.Received++
		if p.Received < rgbOperands {
			return nil
		}
		a := SetRGB{Red: p.Buffer[0], Green: p.Buffer[1], Blue: p.Buffer[2]}
		d.Reset()
		return a
	}

	d.Reset()
	return nil
}
