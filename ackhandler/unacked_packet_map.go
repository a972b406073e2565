// Package ackhandler tracks the sent packets of a QUIC connection that have
// not been fully resolved yet.
package ackhandler

import (
	"fmt"
	"time"

	"github.com/quictrack/quictrack/internal/utils"
	"github.com/quictrack/quictrack/logging"
	"github.com/quictrack/quictrack/protocol"
	"github.com/quictrack/quictrack/wire"
)

// firstSendingPacketNumber is the packet number of the first packet sent on
// a connection.
const firstSendingPacketNumber protocol.PacketNumber = 1

// The UnackedPacketMap is the authoritative record of every sent packet that
// was not yet acked, discarded or neutered. It tracks:
//  1. retransmittable data, including multiple transmissions of the same frames
//  2. packets and bytes in flight, for congestion control
//  3. sent times of packets, to provide RTT measurements from acks
//
// It is owned and used by a single connection goroutine and does no locking.
// Acks must be processed in increasing packet number order within one ACK frame.
type UnackedPacketMap struct {
	perspective protocol.Perspective

	// fixed at construction time
	supportsMultiplePacketNumberSpaces bool

	// packets holds one record per sent packet, ordered by packet number.
	// The record of packet number pn lives at index pn - leastUnacked.
	// Records are appended at the tail and trimmed from the front only.
	packets []*TransmissionInfo

	// leastUnacked is the packet number of the record at index 0.
	// It only ever increases.
	leastUnacked protocol.PacketNumber

	largestSentPacket protocol.PacketNumber
	// the largest received largest acked of an ACK frame
	largestAcked protocol.PacketNumber

	largestSentPackets                [protocol.NumPacketNumberSpaces]protocol.PacketNumber
	largestSentRetransmittablePackets [protocol.NumPacketNumberSpaces]protocol.PacketNumber
	largestAckedPackets               [protocol.NumPacketNumberSpaces]protocol.PacketNumber

	bytesInFlight   protocol.ByteCount
	packetsInFlight int

	bytesInFlightPerSpace   [protocol.NumPacketNumberSpaces]protocol.ByteCount
	packetsInFlightPerSpace [protocol.NumPacketNumberSpaces]int

	lastInFlightPacketSentTime         time.Time
	lastInFlightPacketSentTimePerSpace [protocol.NumPacketNumberSpaces]time.Time

	lastCryptoPacketSentTime time.Time

	// number of tracked records that still own handshake data
	pendingCryptoPacketCount int

	// aggregates acked contiguous stream data across packets, reducing the
	// number of calls to the session notifier
	aggregator streamAckAggregator

	notifier SessionNotifier

	tracer *logging.ConnectionTracer
	logger utils.Logger
}

// NewUnackedPacketMap creates a new sent-packet ledger.
// Support for multiple packet number spaces is fixed for the lifetime of the map.
func NewUnackedPacketMap(
	perspective protocol.Perspective,
	supportsMultiplePacketNumberSpaces bool,
	notifier SessionNotifier,
	tracer *logging.ConnectionTracer,
	logger utils.Logger,
) *UnackedPacketMap {
	m := &UnackedPacketMap{
		perspective:                        perspective,
		supportsMultiplePacketNumberSpaces: supportsMultiplePacketNumberSpaces,
		packets:                            make([]*TransmissionInfo, 0, 32),
		leastUnacked:                       protocol.InvalidPacketNumber,
		largestSentPacket:                  protocol.InvalidPacketNumber,
		largestAcked:                       protocol.InvalidPacketNumber,
		aggregator:                         newStreamAckAggregator(),
		notifier:                           notifier,
		tracer:                             tracer,
		logger:                             logger,
	}
	for i := 0; i < protocol.NumPacketNumberSpaces; i++ {
		m.largestSentPackets[i] = protocol.InvalidPacketNumber
		m.largestSentRetransmittablePackets[i] = protocol.InvalidPacketNumber
		m.largestAckedPackets[i] = protocol.InvalidPacketNumber
	}
	return m
}

// AddSentPacket appends a new transmission record at the tail of the ledger.
// Ownership of the packet's retransmittable frames moves into the record,
// the packet is handed back without frames.
// If the packet is a retransmission, the record it retransmits gives up its
// frames and is linked into the retransmission chain.
func (m *UnackedPacketMap) AddSentPacket(
	packet *SentPacket,
	transmissionType protocol.TransmissionType,
	sentTime time.Time,
	setInFlight bool,
	measureRTT bool,
) {
	pn := packet.PacketNumber
	if m.largestSentPacket == protocol.InvalidPacketNumber {
		if pn < firstSendingPacketNumber {
			panic(fmt.Sprintf("ackhandler: invalid first packet number %d", pn))
		}
	} else if pn != m.largestSentPacket+1 {
		panic(fmt.Sprintf("ackhandler: packet %d sent out of order, largest sent is %d", pn, m.largestSentPacket))
	}

	frames := packet.takeFrames()
	info := &TransmissionInfo{
		PacketNumber:          pn,
		SentTime:              sentTime,
		BytesSent:             packet.Length,
		EncryptionLevel:       packet.EncryptionLevel,
		TransmissionType:      transmissionType,
		RetransmittableFrames: frames,
		retransmission:        protocol.InvalidPacketNumber,
		retransmissionOf:      protocol.InvalidPacketNumber,
		measureRTT:            measureRTT,
		hasCrypto:             hasCryptoFrame(frames),
	}

	if len(m.packets) == 0 {
		m.leastUnacked = pn
	}

	// Link the record this packet retransmits, if it is still tracked.
	// The old record gives up its frames: the data now travels in this packet.
	if old := packet.RetransmissionOf; old >= firstSendingPacketNumber && m.IsUnacked(old) {
		oldInfo := m.getInfo(old)
		m.clearFrames(oldInfo)
		oldInfo.retransmission = pn
		info.retransmissionOf = old
	}

	m.largestSentPacket = pn
	space := m.GetPacketNumberSpaceFromEncryptionLevel(packet.EncryptionLevel)
	if m.supportsMultiplePacketNumberSpaces {
		m.largestSentPackets[space] = pn
	}

	if len(frames) > 0 {
		if m.supportsMultiplePacketNumberSpaces {
			m.largestSentRetransmittablePackets[space] = pn
		}
		if info.hasCrypto {
			m.pendingCryptoPacketCount++
			if packet.EncryptionLevel == protocol.EncryptionInitial || packet.EncryptionLevel == protocol.EncryptionHandshake {
				m.lastCryptoPacketSentTime = sentTime
			}
		}
	}

	if setInFlight {
		info.InFlight = true
		m.bytesInFlight += info.BytesSent
		m.packetsInFlight++
		m.lastInFlightPacketSentTime = sentTime
		if m.supportsMultiplePacketNumberSpaces {
			m.bytesInFlightPerSpace[space] += info.BytesSent
			m.packetsInFlightPerSpace[space]++
			m.lastInFlightPacketSentTimePerSpace[space] = sentTime
		}
	}

	m.packets = append(m.packets, info)

	if m.logger.Debug() {
		m.logger.Debugf("Tracking sent packet %d (%d bytes, %s, in flight: %t)", pn, info.BytesSent, info.EncryptionLevel, info.InFlight)
	}
	if m.tracer != nil {
		if m.tracer.SentPacket != nil {
			m.tracer.SentPacket(sentTime, pn, info.BytesSent, info.EncryptionLevel, info.InFlight)
		}
		if setInFlight && m.tracer.UpdatedMetrics != nil {
			m.tracer.UpdatedMetrics(m.bytesInFlight, m.packetsInFlight)
		}
	}
}

// IsUnacked says if the packet is still tracked by the ledger.
func (m *UnackedPacketMap) IsUnacked(pn protocol.PacketNumber) bool {
	return len(m.packets) > 0 && pn >= m.leastUnacked && pn <= m.largestSentPacket
}

func (m *UnackedPacketMap) getInfo(pn protocol.PacketNumber) *TransmissionInfo {
	if !m.IsUnacked(pn) {
		panic(fmt.Sprintf("ackhandler: packet %d is not tracked (least unacked %d, largest sent %d)", pn, m.leastUnacked, m.largestSentPacket))
	}
	return m.packets[pn-m.leastUnacked]
}

// GetTransmissionInfo returns the record of the given packet number,
// which must still be tracked (see IsUnacked). The record may be mutated
// through the ledger's methods only.
func (m *UnackedPacketMap) GetTransmissionInfo(pn protocol.PacketNumber) *TransmissionInfo {
	return m.getInfo(pn)
}

// clearFrames drops the record's frame ownership and keeps the pending
// crypto packet count in sync.
func (m *UnackedPacketMap) clearFrames(info *TransmissionInfo) {
	if info.hasCrypto && len(info.RetransmittableFrames) > 0 {
		m.pendingCryptoPacketCount--
	}
	info.RetransmittableFrames = nil
}

// NotifyFramesAcked notifies the session notifier that the frames of this
// record were acked. Contiguous stream frames are batched in the aggregator,
// all other frames are reported right away.
// It reports true if any frame was newly acked.
func (m *UnackedPacketMap) NotifyFramesAcked(info *TransmissionInfo, ackDelay time.Duration, receiveTime time.Time) bool {
	if m.notifier == nil {
		return false
	}
	newDataAcked := m.notifyAndAggregateAckedFrames(info, ackDelay, receiveTime)
	if m.tracer != nil && m.tracer.AcknowledgedPacket != nil {
		m.tracer.AcknowledgedPacket(info.EncryptionLevel, info.PacketNumber)
	}
	return newDataAcked
}

// MaybeAggregateAckedStreamFrame aggregates the acked stream frames of this
// record with previously acked contiguous stream data. Non-contiguous stream
// frames and control frames are reported to the session notifier immediately,
// flushing the aggregate first.
func (m *UnackedPacketMap) MaybeAggregateAckedStreamFrame(info *TransmissionInfo, ackDelay time.Duration, receiveTime time.Time) {
	if m.notifier == nil {
		return
	}
	m.notifyAndAggregateAckedFrames(info, ackDelay, receiveTime)
}

func (m *UnackedPacketMap) notifyAndAggregateAckedFrames(info *TransmissionInfo, ackDelay time.Duration, receiveTime time.Time) bool {
	var newDataAcked bool
	for _, f := range info.RetransmittableFrames {
		sf, isStreamFrame := f.(*wire.StreamFrame)
		if isStreamFrame && m.aggregator.canAggregate(sf) {
			m.aggregator.aggregate(sf)
			newDataAcked = true
			// If the FIN is acked, the stream is done: flush right away.
			if sf.Fin {
				m.NotifyAggregatedStreamFrameAcked(ackDelay)
			}
			continue
		}

		m.NotifyAggregatedStreamFrameAcked(ackDelay)
		if !isStreamFrame || sf.Fin {
			if m.notifier.OnFrameAcked(f, ackDelay, receiveTime) {
				newDataAcked = true
			}
			continue
		}

		// Delay notifying the session notifier, the frame may be extended
		// by stream frames of packets acked later in this pass.
		m.aggregator.start(sf)
		newDataAcked = true
	}
	return newDataAcked
}

// NotifyAggregatedStreamFrameAcked notifies the session notifier of the
// buffered aggregated stream data. No-op if the aggregate is empty.
func (m *UnackedPacketMap) NotifyAggregatedStreamFrameAcked(ackDelay time.Duration) {
	if m.notifier == nil {
		return
	}
	f, ok := m.aggregator.take()
	if !ok {
		return
	}
	// There is no receive time for an aggregated stream frame. The frames
	// it covers may have been acked by different packets.
	m.notifier.OnFrameAcked(&f, ackDelay, time.Time{})
}

// NotifyFramesLost notifies the session notifier that the frames of this
// record are considered lost. It does not remove the record from the ledger.
func (m *UnackedPacketMap) NotifyFramesLost(info *TransmissionInfo, _ protocol.TransmissionType) {
	if m.notifier != nil {
		for _, f := range info.RetransmittableFrames {
			m.notifier.OnFrameLost(f)
		}
	}
	if m.tracer != nil && m.tracer.LostPacket != nil {
		m.tracer.LostPacket(info.EncryptionLevel, info.PacketNumber)
	}
}

// RetransmitFrames asks the session notifier to queue the frames of this
// record for sending under a new transmission. The new transmission record
// is created by a subsequent AddSentPacket call, once the packet is sent.
func (m *UnackedPacketMap) RetransmitFrames(info *TransmissionInfo, t protocol.TransmissionType) {
	if m.notifier == nil || len(info.RetransmittableFrames) == 0 {
		return
	}
	m.notifier.RetransmitFrames(info.RetransmittableFrames, t)
}

// RemoveRetransmittability resolves the retransmission chain of this record:
// frame ownership is cleared and the chain links severed on every member,
// older and newer transmissions alike. No member needs to be sent again
// afterwards. Members may remain tracked for congestion control or RTT
// measurement purposes.
func (m *UnackedPacketMap) RemoveRetransmittability(info *TransmissionInfo) {
	for older := info.retransmissionOf; older != protocol.InvalidPacketNumber; {
		prev := m.getInfo(older)
		older = prev.retransmissionOf
		prev.retransmissionOf = protocol.InvalidPacketNumber
		prev.retransmission = protocol.InvalidPacketNumber
		m.clearFrames(prev)
	}
	for newer := info.retransmission; newer != protocol.InvalidPacketNumber; {
		next := m.getInfo(newer)
		newer = next.retransmission
		next.retransmissionOf = protocol.InvalidPacketNumber
		next.retransmission = protocol.InvalidPacketNumber
		m.clearFrames(next)
	}
	info.retransmission = protocol.InvalidPacketNumber
	info.retransmissionOf = protocol.InvalidPacketNumber
	m.clearFrames(info)
}

// RemoveRetransmittabilityByNumber looks up the record of the given packet
// number and resolves its retransmission chain, see RemoveRetransmittability.
func (m *UnackedPacketMap) RemoveRetransmittabilityByNumber(pn protocol.PacketNumber) {
	m.RemoveRetransmittability(m.getInfo(pn))
}

// RemoveFromInFlight marks the record as no longer in flight and removes its
// bytes from the congestion accounting. The record must be in flight.
func (m *UnackedPacketMap) RemoveFromInFlight(info *TransmissionInfo) {
	if !info.InFlight {
		panic(fmt.Sprintf("ackhandler: packet %d is not in flight", info.PacketNumber))
	}
	info.InFlight = false
	m.bytesInFlight -= info.BytesSent
	m.packetsInFlight--
	if m.supportsMultiplePacketNumberSpaces {
		space := m.GetPacketNumberSpaceFromEncryptionLevel(info.EncryptionLevel)
		m.bytesInFlightPerSpace[space] -= info.BytesSent
		m.packetsInFlightPerSpace[space]--
	}
	if m.tracer != nil && m.tracer.UpdatedMetrics != nil {
		m.tracer.UpdatedMetrics(m.bytesInFlight, m.packetsInFlight)
	}
}

// RemoveFromInFlightByNumber looks up the record of the given packet number
// and removes it from in-flight accounting, see RemoveFromInFlight.
func (m *UnackedPacketMap) RemoveFromInFlightByNumber(pn protocol.PacketNumber) {
	m.RemoveFromInFlight(m.getInfo(pn))
}

// IncreaseLargestAcked advances the largest received largest acked of an ACK
// frame. Packets at or below it that are only tracked for RTT purposes become
// eligible for trimming. Calls with a smaller or equal value are no-ops.
func (m *UnackedPacketMap) IncreaseLargestAcked(largestAcked protocol.PacketNumber) {
	m.largestAcked = utils.Max(m.largestAcked, largestAcked)
}

// MaybeUpdateLargestAckedOfPacketNumberSpace advances the largest acked of
// the given packet number space. It never regresses.
func (m *UnackedPacketMap) MaybeUpdateLargestAckedOfPacketNumberSpace(space protocol.PacketNumberSpace, pn protocol.PacketNumber) {
	if !m.supportsMultiplePacketNumberSpaces {
		panic("ackhandler: multiple packet number spaces are not enabled")
	}
	m.largestAckedPackets[space] = utils.Max(m.largestAckedPackets[space], pn)
}

// IsPacketUseless says if a record no longer serves any purpose in the ledger:
// it is not in flight, carries no retransmittable data (directly or through
// its retransmission chain) and cannot produce an RTT sample anymore.
func (m *UnackedPacketMap) IsPacketUseless(pn protocol.PacketNumber, info *TransmissionInfo) bool {
	return !m.isUsefulForMeasuringRTT(pn, info) &&
		!m.isUsefulForCongestionControl(info) &&
		!m.isUsefulForRetransmittableData(info)
}

// A packet is useful for RTT measurement while it may yet be acked as the
// largest observed packet by the receiver.
func (m *UnackedPacketMap) isUsefulForMeasuringRTT(pn protocol.PacketNumber, info *TransmissionInfo) bool {
	if !info.measureRTT {
		return false
	}
	largestAcked := m.largestAcked
	if m.supportsMultiplePacketNumberSpaces {
		largestAcked = m.largestAckedPackets[m.GetPacketNumberSpaceFromEncryptionLevel(info.EncryptionLevel)]
	}
	return largestAcked == protocol.InvalidPacketNumber || pn > largestAcked
}

func (m *UnackedPacketMap) isUsefulForCongestionControl(info *TransmissionInfo) bool {
	return info.InFlight
}

// A packet is associated with retransmittable data while it owns frames or
// is a member of an unresolved retransmission chain.
func (m *UnackedPacketMap) isUsefulForRetransmittableData(info *TransmissionInfo) bool {
	return len(info.RetransmittableFrames) > 0 ||
		info.retransmission != protocol.InvalidPacketNumber ||
		info.retransmissionOf != protocol.InvalidPacketNumber
}

// RemoveObsoletePackets trims records from the front of the ledger that no
// longer serve any purpose. It never removes records from the middle or the
// tail, keeping packet numbers contiguous from GetLeastUnacked to
// LargestSentPacket. Call it after every ack processing pass.
func (m *UnackedPacketMap) RemoveObsoletePackets() {
	for len(m.packets) > 0 {
		if !m.IsPacketUseless(m.leastUnacked, m.packets[0]) {
			break
		}
		m.packets[0] = nil // don't keep the record alive in the backing array
		m.packets = m.packets[1:]
		m.leastUnacked++
	}
}

// NeuterUnencryptedPackets neuters all Initial packets: their frames are
// dropped, their retransmission chains resolved and they are removed from
// in-flight accounting, without going through the regular ack path. Used
// when Initial keys are discarded.
// It returns the numbers of the affected packets, so the caller can cancel
// loss timers referencing them.
func (m *UnackedPacketMap) NeuterUnencryptedPackets() []protocol.PacketNumber {
	neutered := m.neuterPackets(func(info *TransmissionInfo) bool {
		return info.EncryptionLevel == protocol.EncryptionInitial
	})
	if m.tracer != nil && m.tracer.NeuteredPackets != nil && len(neutered) > 0 {
		m.tracer.NeuteredPackets(protocol.EncryptionInitial, neutered)
	}
	return neutered
}

// NeuterHandshakePackets neuters all packets in the handshake packet number
// space, see NeuterUnencryptedPackets. Used when handshake keys are discarded.
func (m *UnackedPacketMap) NeuterHandshakePackets() []protocol.PacketNumber {
	neutered := m.neuterPackets(func(info *TransmissionInfo) bool {
		return m.GetPacketNumberSpaceFromEncryptionLevel(info.EncryptionLevel) == protocol.PacketNumberSpaceHandshake
	})
	if m.tracer != nil && m.tracer.NeuteredPackets != nil && len(neutered) > 0 {
		m.tracer.NeuteredPackets(protocol.EncryptionHandshake, neutered)
	}
	return neutered
}

func (m *UnackedPacketMap) neuterPackets(shouldNeuter func(*TransmissionInfo) bool) []protocol.PacketNumber {
	var neutered []protocol.PacketNumber
	for _, info := range m.packets {
		if !shouldNeuter(info) {
			continue
		}
		if len(info.RetransmittableFrames) == 0 && !info.InFlight {
			continue
		}
		if m.logger.Debug() {
			m.logger.Debugf("Neutering packet %d (%s)", info.PacketNumber, info.EncryptionLevel)
		}
		// Callers cancel loss timers for the returned packets, so the list
		// contains exactly the packets taken out of flight.
		if info.InFlight {
			neutered = append(neutered, info.PacketNumber)
			m.RemoveFromInFlight(info)
		}
		m.RemoveRetransmittability(info)
		// An ack of an abandoned packet must not produce an RTT sample.
		info.measureRTT = false
	}
	return neutered
}

// GetPacketNumberSpace returns the packet number space of a tracked packet.
func (m *UnackedPacketMap) GetPacketNumberSpace(pn protocol.PacketNumber) protocol.PacketNumberSpace {
	return m.GetPacketNumberSpaceFromEncryptionLevel(m.getInfo(pn).EncryptionLevel)
}

// GetPacketNumberSpaceFromEncryptionLevel maps an encryption level to its
// packet number space. When multiple packet number spaces are disabled,
// packets are consolidated into the handshake and application data spaces.
// Which levels count as handshake then depends on the perspective: a client
// only treats Initial packets as handshake data.
func (m *UnackedPacketMap) GetPacketNumberSpaceFromEncryptionLevel(encLevel protocol.EncryptionLevel) protocol.PacketNumberSpace {
	if m.supportsMultiplePacketNumberSpaces {
		switch encLevel {
		case protocol.EncryptionInitial:
			return protocol.PacketNumberSpaceInitial
		case protocol.EncryptionHandshake:
			return protocol.PacketNumberSpaceHandshake
		case protocol.Encryption0RTT, protocol.Encryption1RTT:
			return protocol.PacketNumberSpaceApplicationData
		default:
			panic(fmt.Sprintf("ackhandler: invalid encryption level: %d", encLevel))
		}
	}
	if m.perspective == protocol.PerspectiveClient {
		if encLevel == protocol.EncryptionInitial {
			return protocol.PacketNumberSpaceHandshake
		}
		return protocol.PacketNumberSpaceApplicationData
	}
	if encLevel <= protocol.EncryptionHandshake {
		return protocol.PacketNumberSpaceHandshake
	}
	return protocol.PacketNumberSpaceApplicationData
}

// GetLargestAckedOfPacketNumberSpace returns the largest acked packet number
// of the given packet number space.
func (m *UnackedPacketMap) GetLargestAckedOfPacketNumberSpace(space protocol.PacketNumberSpace) protocol.PacketNumber {
	if !m.supportsMultiplePacketNumberSpaces {
		panic("ackhandler: multiple packet number spaces are not enabled")
	}
	return m.largestAckedPackets[space]
}

// GetLargestSentRetransmittableOfPacketNumberSpace returns the largest packet
// number sent with retransmittable frames in the given packet number space.
func (m *UnackedPacketMap) GetLargestSentRetransmittableOfPacketNumberSpace(space protocol.PacketNumberSpace) protocol.PacketNumber {
	if !m.supportsMultiplePacketNumberSpaces {
		panic("ackhandler: multiple packet number spaces are not enabled")
	}
	return m.largestSentRetransmittablePackets[space]
}

// GetLargestSentPacketOfPacketNumberSpace returns the largest packet number
// sent at the given encryption level's packet number space.
func (m *UnackedPacketMap) GetLargestSentPacketOfPacketNumberSpace(encLevel protocol.EncryptionLevel) protocol.PacketNumber {
	if !m.supportsMultiplePacketNumberSpaces {
		panic("ackhandler: multiple packet number spaces are not enabled")
	}
	return m.largestSentPackets[m.GetPacketNumberSpaceFromEncryptionLevel(encLevel)]
}

// BytesInFlightOfPacketNumberSpace returns the bytes in flight of the given
// packet number space.
func (m *UnackedPacketMap) BytesInFlightOfPacketNumberSpace(space protocol.PacketNumberSpace) protocol.ByteCount {
	if !m.supportsMultiplePacketNumberSpaces {
		panic("ackhandler: multiple packet number spaces are not enabled")
	}
	return m.bytesInFlightPerSpace[space]
}

// PacketsInFlightOfPacketNumberSpace returns the number of packets in flight
// of the given packet number space.
func (m *UnackedPacketMap) PacketsInFlightOfPacketNumberSpace(space protocol.PacketNumberSpace) int {
	if !m.supportsMultiplePacketNumberSpaces {
		panic("ackhandler: multiple packet number spaces are not enabled")
	}
	return m.packetsInFlightPerSpace[space]
}

// GetLastInFlightPacketSentTimeOfPacketNumberSpace returns the time the last
// in-flight packet of the given packet number space was sent.
func (m *UnackedPacketMap) GetLastInFlightPacketSentTimeOfPacketNumberSpace(space protocol.PacketNumberSpace) time.Time {
	if !m.supportsMultiplePacketNumberSpaces {
		panic("ackhandler: multiple packet number spaces are not enabled")
	}
	return m.lastInFlightPacketSentTimePerSpace[space]
}

// GetFirstInFlightTransmissionInfo returns the record of the first packet
// that is still in flight, or nil if no packet is in flight.
func (m *UnackedPacketMap) GetFirstInFlightTransmissionInfo() *TransmissionInfo {
	if m.packetsInFlight == 0 {
		return nil
	}
	for _, info := range m.packets {
		if info.InFlight {
			return info
		}
	}
	return nil
}

// GetFirstInFlightTransmissionInfoOfSpace returns the record of the first
// in-flight packet of the given packet number space, or nil.
func (m *UnackedPacketMap) GetFirstInFlightTransmissionInfoOfSpace(space protocol.PacketNumberSpace) *TransmissionInfo {
	if !m.supportsMultiplePacketNumberSpaces {
		panic("ackhandler: multiple packet number spaces are not enabled")
	}
	if m.packetsInFlightPerSpace[space] == 0 {
		return nil
	}
	for _, info := range m.packets {
		if info.InFlight && m.GetPacketNumberSpaceFromEncryptionLevel(info.EncryptionLevel) == space {
			return info
		}
	}
	return nil
}

// HasRetransmittableFrames says if the record still owns frames that would
// need to be resent if the packet was lost.
func (m *UnackedPacketMap) HasRetransmittableFrames(info *TransmissionInfo) bool {
	return len(info.RetransmittableFrames) > 0
}

// HasRetransmittableFramesByNumber looks up the record of the given packet
// number, see HasRetransmittableFrames.
func (m *UnackedPacketMap) HasRetransmittableFramesByNumber(pn protocol.PacketNumber) bool {
	return m.HasRetransmittableFrames(m.getInfo(pn))
}

// HasUnackedRetransmittableFrames says if any in-flight packet still owns
// retransmittable frames.
func (m *UnackedPacketMap) HasUnackedRetransmittableFrames() bool {
	for i := len(m.packets) - 1; i >= 0; i-- {
		if m.packets[i].InFlight && m.HasRetransmittableFrames(m.packets[i]) {
			return true
		}
	}
	return false
}

// HasUnackedStreamData says if there is any outstanding stream data.
func (m *UnackedPacketMap) HasUnackedStreamData() bool {
	return m.notifier != nil && m.notifier.HasUnackedStreamData()
}

// HasInFlightPackets says if any tracked packet is in flight.
func (m *UnackedPacketMap) HasInFlightPackets() bool {
	return m.packetsInFlight > 0
}

// HasMultipleInFlightPackets says if more than one packet is in flight.
func (m *UnackedPacketMap) HasMultipleInFlightPackets() bool {
	return m.packetsInFlight > 1
}

// HasPendingCryptoPackets says if any tracked packet still owns handshake data.
func (m *UnackedPacketMap) HasPendingCryptoPackets() bool {
	return m.pendingCryptoPacketCount > 0
}

// GetLeastUnacked returns the smallest packet number that is still tracked.
// Once the ledger has been emptied by trimming, it returns the number the
// next sent packet will get.
func (m *UnackedPacketMap) GetLeastUnacked() protocol.PacketNumber {
	return m.leastUnacked
}

// LargestSentPacket returns the largest packet number that was sent.
func (m *UnackedPacketMap) LargestSentPacket() protocol.PacketNumber {
	return m.largestSentPacket
}

// LargestAcked returns the largest received largest acked of an ACK frame.
func (m *UnackedPacketMap) LargestAcked() protocol.PacketNumber {
	return m.largestAcked
}

// BytesInFlight returns the sum of bytes of all packets in flight.
func (m *UnackedPacketMap) BytesInFlight() protocol.ByteCount {
	return m.bytesInFlight
}

// PacketsInFlight returns the number of packets in flight.
func (m *UnackedPacketMap) PacketsInFlight() int {
	return m.packetsInFlight
}

// GetLastInFlightPacketSentTime returns the time the last in-flight packet
// was sent.
func (m *UnackedPacketMap) GetLastInFlightPacketSentTime() time.Time {
	return m.lastInFlightPacketSentTime
}

// GetLastCryptoPacketSentTime returns the time the last packet carrying
// handshake data was sent.
func (m *UnackedPacketMap) GetLastCryptoPacketSentTime() time.Time {
	return m.lastCryptoPacketSentTime
}

// Len returns the number of tracked records.
func (m *UnackedPacketMap) Len() int { return len(m.packets) }

// Empty says if the ledger tracks no records.
func (m *UnackedPacketMap) Empty() bool { return len(m.packets) == 0 }

// Perspective returns the perspective the map was created with.
func (m *UnackedPacketMap) Perspective() protocol.Perspective { return m.perspective }

// SupportsMultiplePacketNumberSpaces says if per-space tracking is enabled.
func (m *UnackedPacketMap) SupportsMultiplePacketNumberSpaces() bool {
	return m.supportsMultiplePacketNumberSpaces
}

// ReserveInitialCapacity preallocates space for the given number of records.
func (m *UnackedPacketMap) ReserveInitialCapacity(n int) {
	if cap(m.packets) >= n {
		return
	}
	packets := make([]*TransmissionInfo, len(m.packets), n)
	copy(packets, m.packets)
	m.packets = packets
}

func hasCryptoFrame(frames []wire.Frame) bool {
	for _, f := range frames {
		if _, ok := f.(*wire.CryptoFrame); ok {
			return true
		}
	}
	return false
}
