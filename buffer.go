package rudp

// segBuffer is the fixed-size array of segments indexed [0, BufferSize)
// that the teacher's Fifo served for byte streams; here the unit of
// storage is a whole segment and access is by index, not by a read/write
// cursor, because the window needs random access to slot idx = seqno
// lookups rather than ordered streaming (see window.go). That is also why
// the teacher's circular Fifo is not reused as-is: this buffer never wraps
// past BufferSize within a single call.
type segBuffer struct {
	segments []Segment
}

func newSegBuffer(size int) *segBuffer {
	return &segBuffer{segments: make([]Segment, size)}
}

// fillSend populates the buffer with noOfSegments data segments chunked
// MaxPayload bytes at a time from data; the final segment carries the
// remainder and Last=true. Seqnos are assigned i mod SeqSpace.
func (b *segBuffer) fillSend(data []byte, noOfSegments int) {
	for i := 0; i < noOfSegments; i++ {
		start := i * MaxPayload
		end := start + MaxPayload
		if end > len(data) {
			end = len(data)
		}
		payload := append([]byte(nil), data[start:end]...)
		b.segments[i] = Segment{
			Header: Header{
				Seqno: uint8(i % SeqSpace),
				Last:  i == noOfSegments-1,
			},
			Payload: payload,
		}
	}
}

// seedRecv pre-seeds the buffer with sequential, ack=0 segments so the
// seqno->index lookup in window.go has something to scan before any data
// has arrived.
func (b *segBuffer) seedRecv() {
	for i := range b.segments {
		b.segments[i] = Segment{Header: Header{Seqno: uint8(i % SeqSpace)}}
	}
}

// reassemble copies the first noOfSegments slots into a single buffer of
// bytesReceived bytes, the last slot contributing only its remainder.
func (b *segBuffer) reassemble(bytesReceived int, noOfSegments int) []byte {
	out := make([]byte, bytesReceived)
	for i := 0; i < noOfSegments; i++ {
		start := i * MaxPayload
		n := MaxPayload
		if i == noOfSegments-1 {
			n = bytesReceived - start
		}
		copy(out[start:start+n], b.segments[i].Payload)
	}
	return out
}
