package qlog

import (
	"time"

	"github.com/quictrack/quictrack/protocol"

	"github.com/francoispqt/gojay"
)

var eventFields = [4]string{"relative_time", "category", "event", "data"}

type events []event

var _ gojay.MarshalerJSONArray = events{}

func (e events) IsNil() bool { return e == nil }
func (e events) MarshalJSONArray(enc *gojay.Encoder) {
	for _, ev := range e {
		enc.Array(ev)
	}
}

type eventDetails interface {
	Category() category
	Name() string
	gojay.MarshalerJSONObject
}

type event struct {
	RelativeTime time.Duration
	eventDetails
}

var _ gojay.MarshalerJSONArray = event{}

func (e event) IsNil() bool { return false }
func (e event) MarshalJSONArray(enc *gojay.Encoder) {
	enc.Float64(milliseconds(e.RelativeTime))
	enc.String(e.Category().String())
	enc.String(e.Name())
	enc.Object(e.eventDetails)
}

func milliseconds(dur time.Duration) float64 { return float64(dur.Nanoseconds()) / 1e6 }

type eventPacketSent struct {
	PacketNumber protocol.PacketNumber
	PacketSize   protocol.ByteCount
	EncLevel     protocol.EncryptionLevel
	InFlight     bool
}

var _ eventDetails = eventPacketSent{}

func (e eventPacketSent) Category() category { return categoryTransport }
func (e eventPacketSent) Name() string       { return "packet_sent" }
func (e eventPacketSent) IsNil() bool        { return false }

func (e eventPacketSent) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("packet_type", encLevelName(e.EncLevel))
	enc.Int64Key("packet_number", int64(e.PacketNumber))
	enc.Uint64Key("packet_size", uint64(e.PacketSize))
	enc.BoolKeyOmitEmpty("in_flight", e.InFlight)
}

type eventPacketAcked struct {
	PacketNumber protocol.PacketNumber
	EncLevel     protocol.EncryptionLevel
}

var _ eventDetails = eventPacketAcked{}

func (e eventPacketAcked) Category() category { return categoryRecovery }
func (e eventPacketAcked) Name() string       { return "packet_acked" }
func (e eventPacketAcked) IsNil() bool        { return false }

func (e eventPacketAcked) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("packet_type", encLevelName(e.EncLevel))
	enc.Int64Key("packet_number", int64(e.PacketNumber))
}

type eventPacketLost struct {
	PacketNumber protocol.PacketNumber
	EncLevel     protocol.EncryptionLevel
}

var _ eventDetails = eventPacketLost{}

func (e eventPacketLost) Category() category { return categoryRecovery }
func (e eventPacketLost) Name() string       { return "packet_lost" }
func (e eventPacketLost) IsNil() bool        { return false }

func (e eventPacketLost) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("packet_type", encLevelName(e.EncLevel))
	enc.Int64Key("packet_number", int64(e.PacketNumber))
}

type packetNumbers []protocol.PacketNumber

var _ gojay.MarshalerJSONArray = packetNumbers{}

func (p packetNumbers) IsNil() bool { return p == nil }
func (p packetNumbers) MarshalJSONArray(enc *gojay.Encoder) {
	for _, pn := range p {
		enc.Int64(int64(pn))
	}
}

type eventPacketsNeutered struct {
	PacketNumbers packetNumbers
	EncLevel      protocol.EncryptionLevel
}

var _ eventDetails = eventPacketsNeutered{}

func (e eventPacketsNeutered) Category() category { return categoryRecovery }
func (e eventPacketsNeutered) Name() string       { return "packets_neutered" }
func (e eventPacketsNeutered) IsNil() bool        { return false }

func (e eventPacketsNeutered) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("packet_type", encLevelName(e.EncLevel))
	enc.ArrayKey("packet_numbers", e.PacketNumbers)
}

type eventMetricsUpdated struct {
	BytesInFlight   protocol.ByteCount
	PacketsInFlight int
}

var _ eventDetails = eventMetricsUpdated{}

func (e eventMetricsUpdated) Category() category { return categoryRecovery }
func (e eventMetricsUpdated) Name() string       { return "metrics_updated" }
func (e eventMetricsUpdated) IsNil() bool        { return false }

func (e eventMetricsUpdated) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Uint64Key("bytes_in_flight", uint64(e.BytesInFlight))
	enc.Uint64KeyOmitEmpty("packets_in_flight", uint64(e.PacketsInFlight))
}
