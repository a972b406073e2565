// Package qlog serializes packet tracking events into the qlog format.
package qlog

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/quictrack/quictrack/logging"
	"github.com/quictrack/quictrack/protocol"

	"github.com/francoispqt/gojay"
)

const eventChanSize = 50

type connectionTracer struct {
	mutex sync.Mutex

	w             io.WriteCloser
	perspective   protocol.Perspective
	referenceTime time.Time

	suffix     []byte
	events     chan event
	encodeErr  error
	runStopped chan struct{}
}

// NewConnectionTracer creates a new tracer that writes a qlog to w.
// The qlog is completed and w closed when the tracer's Close callback is
// invoked.
func NewConnectionTracer(w io.WriteCloser, p protocol.Perspective) *logging.ConnectionTracer {
	t := &connectionTracer{
		w:             w,
		perspective:   p,
		runStopped:    make(chan struct{}),
		events:        make(chan event, eventChanSize),
		referenceTime: time.Now(),
	}
	go t.run()
	return &logging.ConnectionTracer{
		SentPacket: func(_ time.Time, pn logging.PacketNumber, size logging.ByteCount, encLevel logging.EncryptionLevel, inFlight bool) {
			t.recordEvent(time.Now(), eventPacketSent{
				PacketNumber: pn,
				PacketSize:   size,
				EncLevel:     encLevel,
				InFlight:     inFlight,
			})
		},
		AcknowledgedPacket: func(encLevel logging.EncryptionLevel, pn logging.PacketNumber) {
			t.recordEvent(time.Now(), eventPacketAcked{PacketNumber: pn, EncLevel: encLevel})
		},
		LostPacket: func(encLevel logging.EncryptionLevel, pn logging.PacketNumber) {
			t.recordEvent(time.Now(), eventPacketLost{PacketNumber: pn, EncLevel: encLevel})
		},
		NeuteredPackets: func(encLevel logging.EncryptionLevel, pns []logging.PacketNumber) {
			t.recordEvent(time.Now(), eventPacketsNeutered{PacketNumbers: packetNumbers(pns), EncLevel: encLevel})
		},
		UpdatedMetrics: func(bytesInFlight logging.ByteCount, packetsInFlight int) {
			t.recordEvent(time.Now(), eventMetricsUpdated{
				BytesInFlight:   bytesInFlight,
				PacketsInFlight: packetsInFlight,
			})
		},
		Close: func() { t.close() },
	}
}

func (t *connectionTracer) run() {
	defer close(t.runStopped)
	buf := &bytes.Buffer{}
	enc := gojay.NewEncoder(buf)
	tl := &topLevel{
		traces: traces{
			{
				VantagePoint: vantagePoint{Type: t.perspective},
				CommonFields: commonFields{ReferenceTime: t.referenceTime},
				EventFields:  eventFields[:],
			},
		}}
	if err := enc.Encode(tl); err != nil {
		panic(fmt.Sprintf("qlog encoding into a bytes.Buffer failed: %s", err))
	}
	data := buf.Bytes()
	t.suffix = data[buf.Len()-4:]
	if _, err := t.w.Write(data[:buf.Len()-4]); err != nil {
		t.encodeErr = err
	}
	enc = gojay.NewEncoder(t.w)
	isFirst := true
	for ev := range t.events {
		if t.encodeErr != nil { // if encoding failed, just continue draining the event channel
			continue
		}
		if !isFirst {
			t.w.Write([]byte(","))
		}
		if err := enc.Encode(ev); err != nil {
			t.encodeErr = err
		}
		isFirst = false
	}
}

func (t *connectionTracer) recordEvent(eventTime time.Time, details eventDetails) {
	t.mutex.Lock()
	t.events <- event{
		RelativeTime: eventTime.Sub(t.referenceTime),
		eventDetails: details,
	}
	t.mutex.Unlock()
}

func (t *connectionTracer) close() {
	if err := t.export(); err != nil {
		log.Printf("exporting qlog failed: %s\n", err)
	}
}

// export writes the qlog suffix and closes the writer.
func (t *connectionTracer) export() error {
	close(t.events)
	<-t.runStopped
	if t.encodeErr != nil {
		return t.encodeErr
	}
	if _, err := t.w.Write(t.suffix); err != nil {
		return err
	}
	return t.w.Close()
}
