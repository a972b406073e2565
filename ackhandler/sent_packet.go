package ackhandler

import (
	"github.com/quictrack/quictrack/protocol"
	"github.com/quictrack/quictrack/wire"
)

// A SentPacket is handed to the ledger by the packet packer for every packet sent.
// The packet number must be the immediate successor of the last packet handed over.
type SentPacket struct {
	PacketNumber    protocol.PacketNumber
	Length          protocol.ByteCount
	EncryptionLevel protocol.EncryptionLevel
	// Frames are the retransmittable frames carried by this packet.
	// AddSentPacket moves them into the new transmission record.
	Frames []wire.Frame
	// RetransmissionOf is the packet number of the packet whose data this
	// packet retransmits. It is protocol.InvalidPacketNumber (or zero, since
	// packet numbers start at 1) for an original transmission.
	RetransmissionOf protocol.PacketNumber
}

// takeFrames moves the retransmittable frames out of the packet,
// leaving it empty.
func (p *SentPacket) takeFrames() []wire.Frame {
	frames := p.Frames
	p.Frames = nil
	return frames
}
