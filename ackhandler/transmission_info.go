package ackhandler

import (
	"time"

	"github.com/quictrack/quictrack/protocol"
	"github.com/quictrack/quictrack/wire"
)

// A TransmissionInfo is the ledger's record of a single sent packet.
// It is created when the packet is sent, mutated in place as the packet is
// acked, declared lost, retransmitted or neutered, and destroyed when the
// record is trimmed from the front of the ledger.
type TransmissionInfo struct {
	PacketNumber     protocol.PacketNumber
	SentTime         time.Time
	BytesSent        protocol.ByteCount
	EncryptionLevel  protocol.EncryptionLevel
	TransmissionType protocol.TransmissionType

	// InFlight is true while the packet counts towards the bytes and
	// packets in flight used by congestion control.
	InFlight bool

	// RetransmittableFrames are the frames that need to be sent again if
	// this packet is lost. Cleared once the data is resolved: acked,
	// handed to a retransmission, or neutered.
	RetransmittableFrames []wire.Frame

	// retransmission is the packet number of the most recent retransmission
	// of this packet's data, retransmissionOf the packet this one
	// retransmits. Both are protocol.InvalidPacketNumber if unset.
	// Chain members are related by packet number, not by pointer: records
	// are trimmed independently and must not dangle.
	retransmission   protocol.PacketNumber
	retransmissionOf protocol.PacketNumber

	// measureRTT is true while an ack of this packet may still produce an
	// RTT sample. It is independent of the in-flight and retransmittability
	// state and only cleared by neutering.
	measureRTT bool

	// hasCrypto is true if the packet was sent with frames carrying
	// handshake data.
	hasCrypto bool
}

// IsRetransmission says if this record was sent as a retransmission of an
// earlier packet's data.
func (info *TransmissionInfo) IsRetransmission() bool {
	return info.retransmissionOf != protocol.InvalidPacketNumber
}

// Retransmission returns the packet number of the most recent retransmission
// of this record's data, if any.
func (info *TransmissionInfo) Retransmission() (protocol.PacketNumber, bool) {
	return info.retransmission, info.retransmission != protocol.InvalidPacketNumber
}
