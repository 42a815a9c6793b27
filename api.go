package rudp

import (
	"net"
	"sync"
	"time"
)

// Sendto is C7: orchestrates C3-C6 for one call. It rejects oversize
// buffers, segments the caller's data, initializes window/timers/buffer,
// spawns the receiver goroutine in ACK-path mode, runs the send loop in
// the foreground, joins, and reports payload bytes sent.
func (r *RUDP) Sendto(data []byte, dest *net.UDPAddr) (int, error) {
	if len(data) > MaxCallBytes {
		return ErrorCode, ErrOversizeBuffer
	}

	noOfSegments := ceilDiv(len(data), MaxPayload)
	if len(data) == 0 {
		noOfSegments = 1 // boundary scenario 1: still send one Last segment
	}

	buf := newSegBuffer(BufferSize)
	buf.fillSend(data, noOfSegments)

	c := &callState{
		win:          newWindow(buf, noOfSegments),
		timers:       newTimerSet(),
		buf:          buf,
		sock:         r.sock,
		peer:         dest,
		noOfSegments: noOfSegments,
		logs:         r.logs,
		logger:       r.logger,
	}
	if err := r.armDeadline(c); err != nil {
		return ErrorCode, err
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		receiverLoop(c)
	}()

	runSendLoop(c, dest)
	wg.Wait()

	c.mu.Lock()
	err := c.err
	sent := c.payloadBytesSent
	c.mu.Unlock()

	if err != nil {
		r.tracef("sendto: receiver error: %v", err)
		return ErrorCode, err
	}
	return sent, nil
}

// Recvfrom is C7: initializes window/receiver state, seeds the buffer's
// seqnos, spawns the receiver goroutine in DATA-path mode, joins
// immediately, then reassembles the delivered segments into buf. It
// returns the number of bytes copied into buf and the peer's address.
func (r *RUDP) Recvfrom(buf []byte) (int, *net.UDPAddr, error) {
	segbuf := newSegBuffer(BufferSize)
	segbuf.seedRecv()

	c := &callState{
		win:          newWindow(segbuf, BufferSize),
		timers:       newTimerSet(),
		buf:          segbuf,
		sock:         r.sock,
		noOfSegments: BufferSize,
		logs:         r.logs,
		logger:       r.logger,
	}
	if err := r.armDeadline(c); err != nil {
		return ErrorCode, nil, err
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		receiverLoop(c)
	}()
	wg.Wait()

	c.mu.Lock()
	bytesReceived := c.bytesReceived
	err := c.err
	peer := c.peer
	c.mu.Unlock()

	if err != nil || bytesReceived == ErrorCode {
		r.tracef("recvfrom: receiver error: %v", err)
		return ErrorCode, peer, err
	}

	noOfSegments := ceilDiv(bytesReceived, MaxPayload)
	if bytesReceived == 0 {
		noOfSegments = 1
	}
	data := segbuf.reassemble(bytesReceived, noOfSegments)
	n := copy(buf, data)
	return n, peer, nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// armDeadline is a no-op when r.Deadline is zero (reference behavior:
// retransmit/wait forever). Otherwise it requires the socket to implement
// DeadlineSocket and arms it so the receiver goroutine's blocking
// RecvFrom returns a timeout once the deadline passes, which receiverLoop
// turns into ErrDeadlineExceeded (see call.go/receiver.go).
func (r *RUDP) armDeadline(c *callState) error {
	if r.Deadline <= 0 {
		return nil
	}
	ds, ok := r.sock.(DeadlineSocket)
	if !ok {
		return ErrDeadlineUnsupported
	}
	c.deadlineAt = time.Now().Add(r.Deadline)
	return ds.SetReadDeadline(c.deadlineAt)
}
