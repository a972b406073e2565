package wire

import "github.com/quictrack/quictrack/protocol"

// A StreamFrame of QUIC
type StreamFrame struct {
	StreamID protocol.StreamID
	Offset   protocol.ByteCount
	DataLen  protocol.ByteCount
	Fin      bool
}

func (f *StreamFrame) frame() {}

// MaxOffset returns the offset of the byte following the data of this frame.
func (f *StreamFrame) MaxOffset() protocol.ByteCount {
	return f.Offset + f.DataLen
}
