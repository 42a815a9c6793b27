package rudp

import (
	"errors"
	"fmt"
	"net"
)

// receiverLoop is C5: a single background activity shared by sender and
// receiver modes. It distinguishes by inspecting each incoming datagram's
// ack bit -- the same function runs whether Sendto spawned it (where it
// will only ever see ACK datagrams) or Recvfrom spawned it (where it will
// only ever see DATA datagrams), exactly as spec.md §4.5 describes.
func receiverLoop(c *callState) {
	buf := make([]byte, 1+MaxPayload)
	for {
		n, from, err := c.sock.RecvFrom(buf)
		if err != nil {
			c.mu.Lock()
			c.bytesReceived = ErrorCode
			if c.deadlineExceeded() {
				c.signalStop(ErrDeadlineExceeded)
			} else if errors.Is(err, net.ErrClosed) {
				c.signalStop(fmt.Errorf("%w: %v", ErrClosed, err))
			} else {
				c.signalStop(fmt.Errorf("%w: %v", ErrTransport, err))
			}
			c.mu.Unlock()
			return
		}
		seg, ok := decodeSegment(buf[:n])
		if !ok {
			continue
		}

		c.mu.Lock()
		if c.peer == nil {
			c.peer = from
		}
		if seg.Ack {
			handleAck(c, seg)
		} else {
			handleData(c, seg)
		}
		if terminated(c) {
			c.stopped = true
		}
		stop := c.stopped
		c.mu.Unlock()

		if stop {
			return
		}
	}
}

// handleAck is the ACK path of spec.md §4.5: mutates the sender's window
// and timer set in response to an acknowledgement. Caller holds c.mu.
func handleAck(c *callState, seg Segment) {
	idx, ok := c.win.indexOf(seg.Seqno)
	if !ok || !c.win.inCurrentWindow(idx) {
		return // outside current window: ignore (boundary scenario 5)
	}
	c.timers.stopByIndex(idx)
	c.buf.segments[idx].Ack = true
	c.win.advanceBase()
	c.trace("ack received: seqno=%d index=%d base=%d", seg.Seqno, idx, c.win.base)
}

// handleData is the DATA path of spec.md §4.5: reassembles into the
// receive buffer and emits ACKs, including for already-delivered
// retransmissions (boundary scenario 6). Caller holds c.mu.
func handleData(c *callState, seg Segment) {
	idx, ok := c.win.indexOf(seg.Seqno)
	if !ok {
		return // silently drop
	}
	switch {
	case c.win.inCurrentWindow(idx):
		if c.buf.segments[idx].Ack {
			// Already delivered (a gap below idx kept base from advancing
			// past it yet): re-ack but do not re-deliver or re-account.
			c.trace("duplicate data: seqno=%d index=%d, re-acking", seg.Seqno, idx)
			sendAck(c, seg.Seqno, c.buf.segments[idx].Last)
			return
		}
		c.buf.segments[idx] = Segment{
			Header:  Header{Seqno: seg.Seqno, Ack: true, Last: seg.Last},
			Payload: seg.Payload,
		}
		c.bytesReceived += len(seg.Payload)
		c.trace("data received: seqno=%d index=%d bytes=%d", seg.Seqno, idx, len(seg.Payload))
		sendAck(c, seg.Seqno, seg.Last)
		c.win.advanceBase()
	case c.win.inPreviousWindow(idx):
		// Already delivered: re-ack using the stored segment's Last, do
		// not deliver (account) again.
		c.trace("duplicate data: seqno=%d index=%d, re-acking", seg.Seqno, idx)
		sendAck(c, seg.Seqno, c.buf.segments[idx].Last)
	default:
		// silently drop
	}
}

func sendAck(c *callState, seqno uint8, last bool) {
	ack := ackSegment(seqno, last)
	_, _ = c.sock.SendTo(ack.encode(), c.peer)
}

// terminated reports whether the segment immediately behind base has been
// delivered/acked and flagged Last, per spec.md §4.5 Termination. Bounded
// by noOfSegments so it never inspects a slot outside the call's transfer
// region (Open Question 2).
func terminated(c *callState) bool {
	if c.win.base <= 0 || c.win.base > c.noOfSegments {
		return false
	}
	prev := c.buf.segments[c.win.base-1]
	return prev.Ack && prev.Last
}
