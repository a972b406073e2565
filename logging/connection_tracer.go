// Package logging defines a logging interface for quictrack.
// This package should not be considered stable.
package logging

import "time"

// A ConnectionTracer records events of a connection's sent-packet ledger.
// Only set the callbacks you're interested in, nil callbacks are skipped.
type ConnectionTracer struct {
	SentPacket         func(t time.Time, pn PacketNumber, size ByteCount, encLevel EncryptionLevel, inFlight bool)
	AcknowledgedPacket func(encLevel EncryptionLevel, pn PacketNumber)
	LostPacket         func(encLevel EncryptionLevel, pn PacketNumber)
	NeuteredPackets    func(encLevel EncryptionLevel, pns []PacketNumber)
	UpdatedMetrics     func(bytesInFlight ByteCount, packetsInFlight int)
	Close              func()
}

// NewMultiplexedConnectionTracer creates a new connection tracer that multiplexes events to multiple tracers.
func NewMultiplexedConnectionTracer(tracers ...*ConnectionTracer) *ConnectionTracer {
	if len(tracers) == 0 {
		return nil
	}
	if len(tracers) == 1 {
		return tracers[0]
	}
	return &ConnectionTracer{
		SentPacket: func(t time.Time, pn PacketNumber, size ByteCount, encLevel EncryptionLevel, inFlight bool) {
			for _, tr := range tracers {
				if tr.SentPacket != nil {
					tr.SentPacket(t, pn, size, encLevel, inFlight)
				}
			}
		},
		AcknowledgedPacket: func(encLevel EncryptionLevel, pn PacketNumber) {
			for _, tr := range tracers {
				if tr.AcknowledgedPacket != nil {
					tr.AcknowledgedPacket(encLevel, pn)
				}
			}
		},
		LostPacket: func(encLevel EncryptionLevel, pn PacketNumber) {
			for _, tr := range tracers {
				if tr.LostPacket != nil {
					tr.LostPacket(encLevel, pn)
				}
			}
		},
		NeuteredPackets: func(encLevel EncryptionLevel, pns []PacketNumber) {
			for _, tr := range tracers {
				if tr.NeuteredPackets != nil {
					tr.NeuteredPackets(encLevel, pns)
				}
			}
		},
		UpdatedMetrics: func(bytesInFlight ByteCount, packetsInFlight int) {
			for _, tr := range tracers {
				if tr.UpdatedMetrics != nil {
					tr.UpdatedMetrics(bytesInFlight, packetsInFlight)
				}
			}
		},
		Close: func() {
			for _, tr := range tracers {
				if tr.Close != nil {
					tr.Close()
				}
			}
		},
	}
}
