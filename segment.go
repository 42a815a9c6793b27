package rudp

// Header is the 1-byte segment header: 6 bits of seqno, the ack bit, and
// the last bit, packed big-endian as (seqno&0x3F) | (ack<<6) | (last<<7).
type Header struct {
	Seqno uint8
	Ack   bool
	Last  bool
}

func (h Header) pack() byte {
	b := h.Seqno & 0x3F
	if h.Ack {
		b |= 1 << 6
	}
	if h.Last {
		b |= 1 << 7
	}
	return b
}

func unpackHeader(b byte) Header {
	return Header{
		Seqno: b & 0x3F,
		Ack:   b&(1<<6) != 0,
		Last:  b&(1<<7) != 0,
	}
}

// Segment is one protocol data unit: a header plus, for data segments, up
// to MaxPayload bytes. ACK segments carry no payload.
type Segment struct {
	Header
	Payload []byte
}

// encode serializes a segment to its wire form. Payload length is implied
// by datagram length, never carried in the header.
func (s Segment) encode() []byte {
	out := make([]byte, 1+len(s.Payload))
	out[0] = s.Header.pack()
	copy(out[1:], s.Payload)
	return out
}

// decodeSegment parses a received datagram into a segment. A 1-byte
// datagram decodes to a header-only segment with a nil payload: an ACK, or
// the zero-payload Last data segment of an empty send, as its ack bit says.
func decodeSegment(raw []byte) (Segment, bool) {
	if len(raw) < 1 {
		return Segment{}, false
	}
	seg := Segment{Header: unpackHeader(raw[0])}
	if len(raw) > 1 {
		seg.Payload = append([]byte(nil), raw[1:]...)
	}
	return seg, true
}

// ackSegment builds the 1-byte ACK datagram for a given seqno/last pair.
func ackSegment(seqno uint8, last bool) Segment {
	return Segment{Header: Header{Seqno: seqno, Ack: true, Last: last}}
}
