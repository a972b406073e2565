package protocol

// A PacketNumber in QUIC
type PacketNumber int64

// InvalidPacketNumber is a packet number that is never used.
// In QUIC, 0 is a valid packet number.
const InvalidPacketNumber PacketNumber = -1
