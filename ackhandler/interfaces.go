package ackhandler

import (
	"time"

	"github.com/quictrack/quictrack/protocol"
	"github.com/quictrack/quictrack/wire"
)

// A SessionNotifier is told about frames being acked, lost or queued for
// retransmission. It is the bridge between the sent-packet ledger and the
// components owning the frame data (streams, control frame managers).
// The notifier only observes frames during the call, it never takes
// ownership of them.
type SessionNotifier interface {
	// OnFrameAcked is called when a frame is acked.
	// It returns true if the frame was newly acked, and false if the data
	// had already been acked via an earlier transmission.
	OnFrameAcked(f wire.Frame, ackDelay time.Duration, receiveTime time.Time) bool
	// OnFrameLost is called when a frame is considered lost.
	OnFrameLost(f wire.Frame)
	// RetransmitFrames queues frames to be sent in a new packet.
	RetransmitFrames(frames []wire.Frame, t protocol.TransmissionType)
	// HasUnackedStreamData says if there is any outstanding stream data.
	HasUnackedStreamData() bool
}
