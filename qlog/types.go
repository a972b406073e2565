package qlog

import (
	"github.com/quictrack/quictrack/protocol"

	"github.com/francoispqt/gojay"
)

type category uint8

const (
	categoryTransport category = iota
	categoryRecovery
)

func (c category) String() string {
	switch c {
	case categoryTransport:
		return "transport"
	case categoryRecovery:
		return "recovery"
	default:
		panic("unknown category")
	}
}

func encLevelName(encLevel protocol.EncryptionLevel) string {
	switch encLevel {
	case protocol.EncryptionInitial:
		return "initial"
	case protocol.EncryptionHandshake:
		return "handshake"
	case protocol.Encryption0RTT:
		return "0RTT"
	case protocol.Encryption1RTT:
		return "1RTT"
	default:
		panic("unknown encryption level")
	}
}

type vantagePoint struct {
	Name string
	Type protocol.Perspective
}

var _ gojay.MarshalerJSONObject = vantagePoint{}

func (p vantagePoint) IsNil() bool { return false }
func (p vantagePoint) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKeyOmitEmpty("name", p.Name)
	switch p.Type {
	case protocol.PerspectiveClient:
		enc.StringKey("type", "client")
	case protocol.PerspectiveServer:
		enc.StringKey("type", "server")
	}
}
