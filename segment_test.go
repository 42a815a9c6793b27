package rudp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderPackUnpack(t *testing.T) {
	cases := []Header{
		{Seqno: 0, Ack: false, Last: false},
		{Seqno: 63, Ack: false, Last: false},
		{Seqno: 5, Ack: true, Last: false},
		{Seqno: 5, Ack: false, Last: true},
		{Seqno: 5, Ack: true, Last: true},
	}
	for _, h := range cases {
		got := unpackHeader(h.pack())
		assert.Equal(t, h, got)
	}
}

func TestDataDatagramLength(t *testing.T) {
	seg := Segment{Header: Header{Seqno: 1, Last: true}, Payload: make([]byte, 500)}
	raw := seg.encode()
	assert.Len(t, raw, 501)

	decoded, ok := decodeSegment(raw)
	assert.True(t, ok)
	assert.Equal(t, seg.Header, decoded.Header)
	assert.Len(t, decoded.Payload, 500)
}

func TestAckDatagramLength(t *testing.T) {
	ack := ackSegment(7, true)
	raw := ack.encode()
	assert.Len(t, raw, 1)

	decoded, ok := decodeSegment(raw)
	assert.True(t, ok)
	assert.True(t, decoded.Ack)
	assert.True(t, decoded.Last)
	assert.EqualValues(t, 7, decoded.Seqno)
	assert.Empty(t, decoded.Payload)
}
