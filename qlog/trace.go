package qlog

import (
	"time"

	"github.com/francoispqt/gojay"
)

type topLevel struct {
	traces traces
}

var _ gojay.MarshalerJSONObject = topLevel{}

func (topLevel) IsNil() bool { return false }
func (l topLevel) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("qlog_version", "draft-02")
	enc.StringKeyOmitEmpty("title", "quictrack qlog")
	enc.ArrayKey("traces", l.traces)
}

type traces []trace

var _ gojay.MarshalerJSONArray = traces{}

func (t traces) IsNil() bool { return t == nil }
func (t traces) MarshalJSONArray(enc *gojay.Encoder) {
	for _, tr := range t {
		enc.Object(tr)
	}
}

type commonFields struct {
	ReferenceTime time.Time
}

func (f commonFields) IsNil() bool { return false }
func (f commonFields) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("protocol_type", "QUIC")
	enc.Float64Key("reference_time", float64(f.ReferenceTime.UnixNano())/1e6)
}

type trace struct {
	VantagePoint vantagePoint
	CommonFields commonFields
	EventFields  []string
}

var _ gojay.MarshalerJSONObject = trace{}

func (trace) IsNil() bool { return false }
func (t trace) MarshalJSONObject(enc *gojay.Encoder) {
	enc.ObjectKey("vantage_point", t.VantagePoint)
	enc.ObjectKey("common_fields", t.CommonFields)
	enc.SliceStringKey("event_fields", t.EventFields)
	enc.ArrayKey("events", events{})
}
