package ackhandler

import (
	"github.com/quictrack/quictrack/protocol"
	"github.com/quictrack/quictrack/wire"
)

// The streamAckAggregator batches contiguous acked stream data, so that
// consecutive acked packets carrying adjacent frames of the same stream
// result in a single call to the session notifier.
// An empty aggregate is represented by protocol.InvalidStreamID.
type streamAckAggregator struct {
	streamID protocol.StreamID
	offset   protocol.ByteCount
	dataLen  protocol.ByteCount
	fin      bool
}

func newStreamAckAggregator() streamAckAggregator {
	return streamAckAggregator{streamID: protocol.InvalidStreamID}
}

// canAggregate says if f directly extends the buffered aggregate.
func (a *streamAckAggregator) canAggregate(f *wire.StreamFrame) bool {
	return f.StreamID == a.streamID &&
		f.Offset == a.offset+a.dataLen &&
		// the summed length must remain representable
		f.DataLen <= protocol.MaxByteCount-a.dataLen
}

// aggregate extends the buffered aggregate by f. Only valid if canAggregate(f).
func (a *streamAckAggregator) aggregate(f *wire.StreamFrame) {
	a.dataLen += f.DataLen
	a.fin = f.Fin
}

// start begins a new aggregate with f. Only valid if the aggregator is empty.
func (a *streamAckAggregator) start(f *wire.StreamFrame) {
	a.streamID = f.StreamID
	a.offset = f.Offset
	a.dataLen = f.DataLen
	a.fin = f.Fin
}

// take returns the buffered aggregate as a single stream frame and empties
// the aggregator. ok is false if nothing was buffered.
func (a *streamAckAggregator) take() (_ wire.StreamFrame, ok bool) {
	if a.streamID == protocol.InvalidStreamID {
		return wire.StreamFrame{}, false
	}
	f := wire.StreamFrame{
		StreamID: a.streamID,
		Offset:   a.offset,
		DataLen:  a.dataLen,
		Fin:      a.fin,
	}
	a.streamID = protocol.InvalidStreamID
	return f, true
}
