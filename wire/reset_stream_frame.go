package wire

import "github.com/quictrack/quictrack/protocol"

// A ResetStreamFrame is a RESET_STREAM frame in QUIC
type ResetStreamFrame struct {
	StreamID  protocol.StreamID
	ErrorCode uint64
	FinalSize protocol.ByteCount
}

func (f *ResetStreamFrame) frame() {}
