package metrics

import (
	"testing"
	"time"

	"github.com/quictrack/quictrack/protocol"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPacketCounters(t *testing.T) {
	tracer := NewConnectionTracerWithRegisterer(prometheus.NewPedanticRegistry())

	tracer.SentPacket(time.Now(), 1, 1280, protocol.EncryptionInitial, true)
	tracer.SentPacket(time.Now(), 2, 1280, protocol.EncryptionInitial, true)
	tracer.SentPacket(time.Now(), 3, 100, protocol.Encryption1RTT, true)
	tracer.AcknowledgedPacket(protocol.Encryption1RTT, 3)
	tracer.LostPacket(protocol.EncryptionInitial, 1)
	tracer.NeuteredPackets(protocol.EncryptionInitial, []protocol.PacketNumber{1, 2})

	require.Equal(t, float64(2), testutil.ToFloat64(packetsSent.WithLabelValues("initial")))
	require.Equal(t, float64(1), testutil.ToFloat64(packetsSent.WithLabelValues("1rtt")))
	require.Equal(t, float64(1), testutil.ToFloat64(packetsAcked.WithLabelValues("1rtt")))
	require.Equal(t, float64(1), testutil.ToFloat64(packetsLost.WithLabelValues("initial")))
	require.Equal(t, float64(2), testutil.ToFloat64(packetsNeutered.WithLabelValues("initial")))
}

func TestInFlightGauges(t *testing.T) {
	beforeBytes := testutil.ToFloat64(bytesInFlight)
	beforePackets := testutil.ToFloat64(packetsInFlight)

	tracer1 := NewConnectionTracerWithRegisterer(prometheus.NewPedanticRegistry())
	tracer2 := NewConnectionTracerWithRegisterer(prometheus.NewPedanticRegistry())

	tracer1.UpdatedMetrics(1200, 1)
	tracer2.UpdatedMetrics(600, 1)
	require.Equal(t, beforeBytes+1800, testutil.ToFloat64(bytesInFlight))
	require.Equal(t, beforePackets+2, testutil.ToFloat64(packetsInFlight))

	// a tracer only applies the delta to its previous report
	tracer1.UpdatedMetrics(600, 1)
	require.Equal(t, beforeBytes+1200, testutil.ToFloat64(bytesInFlight))

	// closing a connection removes its contribution
	tracer1.Close()
	tracer2.Close()
	require.Equal(t, beforeBytes, testutil.ToFloat64(bytesInFlight))
	require.Equal(t, beforePackets, testutil.ToFloat64(packetsInFlight))
}
