package rudp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillSendChunking(t *testing.T) {
	data := bytes.Repeat([]byte{0xAB}, 500)
	buf := newSegBuffer(BufferSize)
	buf.fillSend(data, 1)

	assert.EqualValues(t, 0, buf.segments[0].Seqno)
	assert.True(t, buf.segments[0].Last)
	assert.Equal(t, data, buf.segments[0].Payload)
}

func TestFillSendWindowRollover(t *testing.T) {
	data := bytes.Repeat([]byte{0x01}, 5000)
	noOfSegments := ceilDiv(len(data), MaxPayload)
	assert.Equal(t, 10, noOfSegments)

	buf := newSegBuffer(BufferSize)
	buf.fillSend(data, noOfSegments)

	for i := 0; i < noOfSegments; i++ {
		assert.EqualValues(t, i%SeqSpace, buf.segments[i].Seqno)
		assert.Equal(t, i == noOfSegments-1, buf.segments[i].Last)
	}
	assert.Len(t, buf.segments[9].Payload, 500)
}

func TestSeedRecv(t *testing.T) {
	buf := newSegBuffer(BufferSize)
	buf.seedRecv()
	for i, seg := range buf.segments {
		assert.EqualValues(t, i%SeqSpace, seg.Seqno)
		assert.False(t, seg.Ack)
		assert.Nil(t, seg.Payload)
	}
}

func TestReassemble(t *testing.T) {
	data := bytes.Repeat([]byte{0x42}, 1200)
	buf := newSegBuffer(BufferSize)
	buf.fillSend(data, ceilDiv(len(data), MaxPayload))

	got := buf.reassemble(len(data), ceilDiv(len(data), MaxPayload))
	assert.Equal(t, data, got)
}
