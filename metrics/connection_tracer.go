// Package metrics exposes Prometheus metrics for sent-packet tracking.
package metrics

import (
	"errors"
	"time"

	"github.com/quictrack/quictrack/logging"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	packetsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "packets_sent_total",
			Help:      "Packets Sent",
		},
		[]string{"encryption_level"},
	)
	packetsAcked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "packets_acked_total",
			Help:      "Packets Acknowledged",
		},
		[]string{"encryption_level"},
	)
	packetsLost = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "packets_lost_total",
			Help:      "Packets Declared Lost",
		},
		[]string{"encryption_level"},
	)
	packetsNeutered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "packets_neutered_total",
			Help:      "Packets Neutered on Key Discard",
		},
		[]string{"encryption_level"},
	)
	bytesInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: metricNamespace,
			Name:      "bytes_in_flight",
			Help:      "Bytes in Flight, summed over all connections",
		},
	)
	packetsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: metricNamespace,
			Name:      "packets_in_flight",
			Help:      "Packets in Flight, summed over all connections",
		},
	)
)

// NewConnectionTracer creates a new tracer that counts packet events in the
// default Prometheus registerer. One tracer is created per connection, the
// underlying metrics are shared.
func NewConnectionTracer() *logging.ConnectionTracer {
	return NewConnectionTracerWithRegisterer(prometheus.DefaultRegisterer)
}

// NewConnectionTracerWithRegisterer creates a new tracer that counts packet
// events using a given Prometheus registerer.
func NewConnectionTracerWithRegisterer(registerer prometheus.Registerer) *logging.ConnectionTracer {
	for _, c := range [...]prometheus.Collector{
		packetsSent,
		packetsAcked,
		packetsLost,
		packetsNeutered,
		bytesInFlight,
		packetsInFlight,
	} {
		if err := registerer.Register(c); err != nil {
			if ok := errors.As(err, &prometheus.AlreadyRegisteredError{}); !ok {
				panic(err)
			}
		}
	}

	// The in-flight gauges are shared between connections. Every tracer
	// remembers its own last report and applies the delta.
	var (
		lastBytesInFlight   logging.ByteCount
		lastPacketsInFlight int
	)
	return &logging.ConnectionTracer{
		SentPacket: func(_ time.Time, _ logging.PacketNumber, _ logging.ByteCount, encLevel logging.EncryptionLevel, _ bool) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, encryptionLevel(encLevel).String())
			packetsSent.WithLabelValues(*tags...).Inc()
		},
		AcknowledgedPacket: func(encLevel logging.EncryptionLevel, _ logging.PacketNumber) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, encryptionLevel(encLevel).String())
			packetsAcked.WithLabelValues(*tags...).Inc()
		},
		LostPacket: func(encLevel logging.EncryptionLevel, _ logging.PacketNumber) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, encryptionLevel(encLevel).String())
			packetsLost.WithLabelValues(*tags...).Inc()
		},
		NeuteredPackets: func(encLevel logging.EncryptionLevel, pns []logging.PacketNumber) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, encryptionLevel(encLevel).String())
			packetsNeutered.WithLabelValues(*tags...).Add(float64(len(pns)))
		},
		UpdatedMetrics: func(bif logging.ByteCount, pif int) {
			bytesInFlight.Add(float64(bif - lastBytesInFlight))
			packetsInFlight.Add(float64(pif - lastPacketsInFlight))
			lastBytesInFlight = bif
			lastPacketsInFlight = pif
		},
		Close: func() {
			bytesInFlight.Sub(float64(lastBytesInFlight))
			packetsInFlight.Sub(float64(lastPacketsInFlight))
			lastBytesInFlight = 0
			lastPacketsInFlight = 0
		},
	}
}
