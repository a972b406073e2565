package protocol

// A StreamID in QUIC
type StreamID int64

// InvalidStreamID is never used as an ID of a stream.
// It signals the absence of a stream, e.g. an empty stream frame aggregate.
const InvalidStreamID StreamID = -1

// InitiatedBy says if the stream was initiated by the client or by the server
func (s StreamID) InitiatedBy() Perspective {
	if s%2 == 0 {
		return PerspectiveClient
	}
	return PerspectiveServer
}

// IsUniDirectional says if this is a unidirectional stream (true) or not (false)
func (s StreamID) IsUniDirectional() bool {
	return s%4 >= 2
}
