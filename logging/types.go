package logging

import "github.com/quictrack/quictrack/protocol"

type (
	// A ByteCount is the number of bytes
	ByteCount = protocol.ByteCount
	// A PacketNumber is the packet number of a packet
	PacketNumber = protocol.PacketNumber
	// A PacketNumberSpace is one of the independently numbered packet sequences
	PacketNumberSpace = protocol.PacketNumberSpace
	// A StreamID is a QUIC stream ID
	StreamID = protocol.StreamID
	// The EncryptionLevel is the encryption level of a packet
	EncryptionLevel = protocol.EncryptionLevel
	// The TransmissionType says why a packet was sent
	TransmissionType = protocol.TransmissionType
	// The Perspective is the role of a QUIC endpoint (client or server)
	Perspective = protocol.Perspective
)

const (
	// PerspectiveServer is used for a QUIC server
	PerspectiveServer = protocol.PerspectiveServer
	// PerspectiveClient is used for a QUIC client
	PerspectiveClient = protocol.PerspectiveClient
)

const (
	// EncryptionInitial is the Initial encryption level
	EncryptionInitial = protocol.EncryptionInitial
	// EncryptionHandshake is the Handshake encryption level
	EncryptionHandshake = protocol.EncryptionHandshake
	// Encryption0RTT is the 0-RTT encryption level
	Encryption0RTT = protocol.Encryption0RTT
	// Encryption1RTT is the 1-RTT encryption level
	Encryption1RTT = protocol.Encryption1RTT
)
