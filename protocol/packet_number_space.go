package protocol

// A PacketNumberSpace is one of the independently numbered sequences of
// packets. Initial and Handshake packets each get their own space during
// the handshake, all application data shares a third one.
type PacketNumberSpace uint8

const (
	// PacketNumberSpaceInitial is the packet number space of Initial packets
	PacketNumberSpaceInitial PacketNumberSpace = iota
	// PacketNumberSpaceHandshake is the packet number space of Handshake packets
	PacketNumberSpaceHandshake
	// PacketNumberSpaceApplicationData is the packet number space of 0-RTT and 1-RTT packets
	PacketNumberSpaceApplicationData
)

// NumPacketNumberSpaces is the number of packet number spaces
const NumPacketNumberSpaces = 3

func (s PacketNumberSpace) String() string {
	switch s {
	case PacketNumberSpaceInitial:
		return "Initial"
	case PacketNumberSpaceHandshake:
		return "Handshake"
	case PacketNumberSpaceApplicationData:
		return "Application Data"
	}
	return "unknown"
}
