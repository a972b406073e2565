package protocol

// TransmissionType says why a packet was sent.
type TransmissionType uint8

const (
	// TransmissionTypeNotRetransmission is an original transmission
	TransmissionTypeNotRetransmission TransmissionType = iota
	// TransmissionTypeHandshake is a retransmission of handshake data
	TransmissionTypeHandshake
	// TransmissionTypeLoss is a retransmission triggered by loss detection
	TransmissionTypeLoss
	// TransmissionTypePTO is a retransmission triggered by a probe timeout
	TransmissionTypePTO
	// TransmissionTypeProbing is a retransmission sent for path probing
	TransmissionTypeProbing
)

// IsRetransmission says if packets of this type carry data that was sent before.
func (t TransmissionType) IsRetransmission() bool {
	return t != TransmissionTypeNotRetransmission
}

func (t TransmissionType) String() string {
	switch t {
	case TransmissionTypeNotRetransmission:
		return "not a retransmission"
	case TransmissionTypeHandshake:
		return "handshake retransmission"
	case TransmissionTypeLoss:
		return "loss retransmission"
	case TransmissionTypePTO:
		return "PTO retransmission"
	case TransmissionTypeProbing:
		return "probing retransmission"
	}
	return "unknown"
}
