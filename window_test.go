package rudp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexOfCurrentWindow(t *testing.T) {
	buf := newSegBuffer(BufferSize)
	buf.seedRecv()
	w := newWindow(buf, BufferSize)

	idx, ok := w.indexOf(3)
	assert.True(t, ok)
	assert.Equal(t, 3, idx)
	assert.True(t, w.inCurrentWindow(idx))
}

func TestIndexOfPreviousWindow(t *testing.T) {
	buf := newSegBuffer(BufferSize)
	buf.seedRecv()
	w := newWindow(buf, BufferSize)
	w.base = WindowSize // pretend a full window has already been retired

	// Seqno WindowSize-1 (e.g. 7) lived at index WindowSize-1, which is
	// now one slot behind base.
	idx, ok := w.indexOf(uint8(WindowSize - 1))
	assert.True(t, ok)
	assert.True(t, w.inPreviousWindow(idx))
	assert.False(t, w.inCurrentWindow(idx))
}

func TestDuplicateAckOutsideWindowIgnored(t *testing.T) {
	buf := newSegBuffer(BufferSize)
	buf.fillSend(make([]byte, 10*MaxPayload), 10)
	w := newWindow(buf, 10)
	w.base = 2
	w.next = 8

	// Seqno 0 belonged to index 0, two slots behind base and so already
	// retired from the window; it must not resolve into the current window.
	idx, ok := w.indexOf(0)
	if ok {
		assert.False(t, w.inCurrentWindow(idx))
	}
}

func TestAdvanceBaseBoundedByNoOfSegments(t *testing.T) {
	buf := newSegBuffer(BufferSize)
	buf.fillSend(make([]byte, MaxPayload), 1)
	buf.segments[0].Ack = true
	w := newWindow(buf, 1)

	w.advanceBase()
	assert.Equal(t, 1, w.base)

	// A further call must not walk base past noOfSegments even though
	// the rest of the buffer is still zero-valued (Ack=false).
	w.advanceBase()
	assert.Equal(t, 1, w.base)
}
