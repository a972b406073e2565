package wire

import "github.com/quictrack/quictrack/protocol"

// A MaxDataFrame carries flow control information for the connection
type MaxDataFrame struct {
	MaximumData protocol.ByteCount
}

func (f *MaxDataFrame) frame() {}
