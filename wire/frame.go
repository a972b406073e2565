// Package wire contains the QUIC frames carried in sent packets.
// The sent-packet ledger only tracks frame values; encoding and decoding
// of frames happens elsewhere.
package wire

// A Frame in QUIC
type Frame interface {
	frame()
}
