package source

import (
	"github.com/pion/rtp"
	"github.com/sirupsen/logrus"
)

// frameAssembler reassembles packed frame payloads fragmented across RTP
// packets. Packets sharing a timestamp belong to one frame; the marker bit
// flags the final packet. A timestamp change before the marker discards the
// partial frame, so a lost tail packet costs exactly one frame.
//
// Only the track read loop touches an assembler; it needs no locking.
type frameAssembler struct {
	timestamp  uint32
	buf        []byte
	assembling bool

	droppedIncomplete uint64
}

// push appends one packet. It returns the completed payload when the packet
// carries the marker bit, or nil while the frame is still assembling. The
// returned slice is only valid until the next push.
func (a *frameAssembler) push(pkt *rtp.Packet) []byte {
	if a.assembling && pkt.Timestamp != a.timestamp {
		a.droppedIncomplete++
		logrus.WithFields(logrus.Fields{
			"function":           "frameAssembler.push",
			"expected_timestamp": a.timestamp,
			"packet_timestamp":   pkt.Timestamp,
			"dropped_incomplete": a.droppedIncomplete,
		}).Debug("Discarding incomplete frame on timestamp change")
		a.buf = a.buf[:0]
		a.assembling = false
	}

	if !a.assembling {
		a.timestamp = pkt.Timestamp
		a.buf = a.buf[:0]
		a.assembling = true
	}

	a.buf = append(a.buf, pkt.Payload...)

	if pkt.Marker {
		a.assembling = false
		return a.buf
	}
	return nil
}
