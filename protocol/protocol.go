// Package protocol defines the shared scalar types of the transport:
// packet numbers, packet number spaces, encryption levels and byte counts.
package protocol

// A ByteCount in QUIC
type ByteCount int64

// MaxByteCount is the maximum value of a ByteCount
const MaxByteCount = ByteCount(1<<62 - 1)

// InvalidByteCount is an invalid byte count
const InvalidByteCount ByteCount = -1
