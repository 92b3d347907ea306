package protocol

// PendingKind tags the multi-byte command the decoder is in the middle of.
type PendingKind int

const (
	None PendingKind = iota
	AwaitingSpecialByte
	AwaitingRawCommand
	AwaitingCustomCharByte
	AwaitingTwiAddressByte
	AwaitingContrastByte
	AwaitingRGBBytes
)

func (k PendingKind) String() string {
	switch k {
	case None:
		return "none"
	case AwaitingSpecialByte:
		return "awaiting special byte"
	case AwaitingRawCommand:
		return "awaiting raw command"
	case AwaitingCustomCharByte:
		return "awaiting custom char byte"
	case AwaitingTwiAddressByte:
		return "awaiting twi address byte"
	case AwaitingContrastByte:
		return "awaiting contrast byte"
	case AwaitingRGBBytes:
		return "awaiting rgb bytes"
	}
	return "N/A"
}

// PendingCommand is the decoder state between bytes. At most one is live at a time. Slot is only used
// for custom characters, Received and Buffer for commands that collect operand bytes.
type PendingCommand struct {
	Kind     PendingKind
	Slot     uint8
	Received int
	Buffer   [CharBitmapSize]byte
}
