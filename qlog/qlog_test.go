package qlog

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/quictrack/quictrack/logging"
	"github.com/quictrack/quictrack/protocol"

	"github.com/stretchr/testify/require"
)

type nopWriteCloser struct {
	*bytes.Buffer
}

func (nopWriteCloser) Close() error { return nil }

func TestTraceMetadata(t *testing.T) {
	buf := &bytes.Buffer{}
	tracer := NewConnectionTracer(nopWriteCloser{buf}, protocol.PerspectiveServer)
	tracer.Close()

	var qlog map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &qlog))
	require.Equal(t, "draft-02", qlog["qlog_version"])

	traces := qlog["traces"].([]interface{})
	require.Len(t, traces, 1)
	trace := traces[0].(map[string]interface{})
	vantagePoint := trace["vantage_point"].(map[string]interface{})
	require.Equal(t, "server", vantagePoint["type"])
	commonFields := trace["common_fields"].(map[string]interface{})
	require.Equal(t, "QUIC", commonFields["protocol_type"])
	require.NotZero(t, commonFields["reference_time"])
	require.Empty(t, trace["events"])
}

// exportTrace records events through the tracer callbacks and parses the
// exported event tuples.
func exportTrace(t *testing.T, record func(tracer *logging.ConnectionTracer)) [][]interface{} {
	t.Helper()
	buf := &bytes.Buffer{}
	tracer := NewConnectionTracer(nopWriteCloser{buf}, protocol.PerspectiveClient)
	record(tracer)
	tracer.Close()

	var qlog map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &qlog))
	trace := qlog["traces"].([]interface{})[0].(map[string]interface{})
	rawEvents := trace["events"].([]interface{})
	events := make([][]interface{}, 0, len(rawEvents))
	for _, ev := range rawEvents {
		events = append(events, ev.([]interface{}))
	}
	return events
}

func TestPacketSentEvent(t *testing.T) {
	events := exportTrace(t, func(tr *logging.ConnectionTracer) {
		tr.SentPacket(time.Now(), 1, 1280, protocol.EncryptionInitial, true)
	})
	require.Len(t, events, 1)
	require.Equal(t, "transport", events[0][1])
	require.Equal(t, "packet_sent", events[0][2])
	data := events[0][3].(map[string]interface{})
	require.Equal(t, "initial", data["packet_type"])
	require.Equal(t, float64(1), data["packet_number"])
	require.Equal(t, float64(1280), data["packet_size"])
	require.Equal(t, true, data["in_flight"])
}

func TestPacketAckedAndLostEvents(t *testing.T) {
	events := exportTrace(t, func(tr *logging.ConnectionTracer) {
		tr.AcknowledgedPacket(protocol.Encryption1RTT, 10)
		tr.LostPacket(protocol.EncryptionHandshake, 11)
	})
	require.Len(t, events, 2)
	require.Equal(t, "recovery", events[0][1])
	require.Equal(t, "packet_acked", events[0][2])
	require.Equal(t, "1RTT", events[0][3].(map[string]interface{})["packet_type"])
	require.Equal(t, "packet_lost", events[1][2])
	require.Equal(t, "handshake", events[1][3].(map[string]interface{})["packet_type"])
	require.Equal(t, float64(11), events[1][3].(map[string]interface{})["packet_number"])
}

func TestPacketsNeuteredEvent(t *testing.T) {
	events := exportTrace(t, func(tr *logging.ConnectionTracer) {
		tr.NeuteredPackets(protocol.EncryptionInitial, []protocol.PacketNumber{1, 2, 3})
	})
	require.Len(t, events, 1)
	require.Equal(t, "packets_neutered", events[0][2])
	data := events[0][3].(map[string]interface{})
	require.Equal(t, []interface{}{float64(1), float64(2), float64(3)}, data["packet_numbers"])
}

func TestMetricsUpdatedEvent(t *testing.T) {
	events := exportTrace(t, func(tr *logging.ConnectionTracer) {
		tr.UpdatedMetrics(4321, 7)
	})
	require.Len(t, events, 1)
	require.Equal(t, "metrics_updated", events[0][2])
	data := events[0][3].(map[string]interface{})
	require.Equal(t, float64(4321), data["bytes_in_flight"])
	require.Equal(t, float64(7), data["packets_in_flight"])
}
