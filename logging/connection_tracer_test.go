package logging

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewMultiplexedConnectionTracer(t *testing.T) {
	require.Nil(t, NewMultiplexedConnectionTracer())

	tr := &ConnectionTracer{}
	require.Same(t, tr, NewMultiplexedConnectionTracer(tr))
}

func TestMultiplexingFansOut(t *testing.T) {
	var sent1, sent2, acked2 []PacketNumber
	tr1 := &ConnectionTracer{
		SentPacket: func(_ time.Time, pn PacketNumber, _ ByteCount, _ EncryptionLevel, _ bool) {
			sent1 = append(sent1, pn)
		},
		// no AcknowledgedPacket callback
	}
	var closed bool
	tr2 := &ConnectionTracer{
		SentPacket: func(_ time.Time, pn PacketNumber, _ ByteCount, _ EncryptionLevel, _ bool) {
			sent2 = append(sent2, pn)
		},
		AcknowledgedPacket: func(_ EncryptionLevel, pn PacketNumber) { acked2 = append(acked2, pn) },
		Close:              func() { closed = true },
	}

	tracer := NewMultiplexedConnectionTracer(tr1, tr2)
	tracer.SentPacket(time.Now(), 1, 1200, Encryption1RTT, true)
	tracer.SentPacket(time.Now(), 2, 1200, Encryption1RTT, true)
	tracer.AcknowledgedPacket(Encryption1RTT, 1)
	tracer.UpdatedMetrics(1200, 1)
	tracer.LostPacket(Encryption1RTT, 2)
	tracer.NeuteredPackets(EncryptionInitial, []PacketNumber{1, 2})
	tracer.Close()

	require.Equal(t, []PacketNumber{1, 2}, sent1)
	require.Equal(t, []PacketNumber{1, 2}, sent2)
	require.Equal(t, []PacketNumber{1}, acked2)
	require.True(t, closed)
}
