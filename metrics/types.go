package metrics

import "github.com/quictrack/quictrack/logging"

const metricNamespace = "quictrack"

type encryptionLevel logging.EncryptionLevel

func (e encryptionLevel) String() string {
	switch logging.EncryptionLevel(e) {
	case logging.EncryptionInitial:
		return "initial"
	case logging.EncryptionHandshake:
		return "handshake"
	case logging.Encryption0RTT:
		return "0rtt"
	case logging.Encryption1RTT:
		return "1rtt"
	default:
		panic("unknown encryption level")
	}
}
