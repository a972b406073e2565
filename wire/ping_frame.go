package wire

// A PingFrame is a PING frame
type PingFrame struct{}

func (f *PingFrame) frame() {}
