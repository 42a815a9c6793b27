package rudp

import (
	"net"
	"time"
)

// sendLoopYield is the sub-millisecond sleep the foreground send loop
// takes between passes so it does not busy-spin while the receiver
// services ACKs (spec.md §5 Suspension points).
const sendLoopYield = 200 * time.Microsecond

// runSendLoop is C6: fills the window from the outgoing buffer, polls
// timers, retransmits on expiry, and returns once the receiver goroutine
// signals completion (or fails). It runs in the foreground, concurrently
// with receiverLoop in ACK-path mode.
func runSendLoop(c *callState, dest *net.UDPAddr) {
	for {
		c.mu.Lock()
		fillWindow(c, dest)
		scanTimers(c, dest)
		stop := c.stopped
		c.mu.Unlock()
		if stop {
			return
		}
		time.Sleep(sendLoopYield)
	}
}

// fillWindow transmits newly-eligible segments and starts their timers.
// Caller holds c.mu.
func fillWindow(c *callState, dest *net.UDPAddr) {
	for c.win.next-c.win.base < WindowSize && c.win.next < c.noOfSegments {
		idx := c.win.next
		seg := c.buf.segments[idx]
		c.sock.SendTo(seg.encode(), dest) //nolint:errcheck // loss is handled by retransmission
		c.trace("send: seqno=%d last=%v index=%d", seg.Seqno, seg.Last, idx)
		c.payloadBytesSent += len(seg.Payload)
		c.timers.alloc(idx)
		c.win.next++
	}
}

// scanTimers retransmits any expired segment and restarts its timer
// in place, without allocating a new one (spec.md §4.6). Caller holds
// c.mu.
func scanTimers(c *callState, dest *net.UDPAddr) {
	for i := range c.timers.timers {
		if !c.timers.expired(i) {
			continue
		}
		idx := c.timers.timers[i].index
		c.buf.segments[idx].Ack = false
		c.trace("retransmit: seqno=%d index=%d", c.buf.segments[idx].Seqno, idx)
		c.sock.SendTo(c.buf.segments[idx].encode(), dest) //nolint:errcheck
		c.timers.restart(i)
	}
}
