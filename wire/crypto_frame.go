package wire

import "github.com/quictrack/quictrack/protocol"

// A CryptoFrame carries handshake data.
type CryptoFrame struct {
	Offset  protocol.ByteCount
	DataLen protocol.ByteCount
}

func (f *CryptoFrame) frame() {}

// MaxOffset returns the offset of the byte following the data of this frame.
func (f *CryptoFrame) MaxOffset() protocol.ByteCount {
	return f.Offset + f.DataLen
}
