package rudp

import "errors"

// Sentinel errors returned by the public primitives. Every primitive also
// returns the reference -1 byte count on failure (see ErrorCode), but
// callers that want a cause can check against these with errors.Is.
var (
	ErrOversizeBuffer = errors.New("rudp: buffer exceeds BUFFER_SIZE*MAX_PAYLOAD for a single call")
	ErrTransport      = errors.New("rudp: datagram transport failed")
	ErrClosed         = errors.New("rudp: socket is closed")

	// ErrDeadlineExceeded is returned when RUDP.Deadline is nonzero and a
	// call's per-segment wait/retransmission loop runs past it without the
	// peer completing the transfer (spec.md §9 Open Question 4). The
	// reference has no such bound and would spin forever instead.
	ErrDeadlineExceeded = errors.New("rudp: call deadline exceeded")

	// ErrDeadlineUnsupported is returned when RUDP.Deadline is nonzero but
	// the underlying Socket does not implement DeadlineSocket, so the
	// receiver's blocking RecvFrom cannot be bounded.
	ErrDeadlineUnsupported = errors.New("rudp: socket does not support deadlines")
)

// ErrorCode mirrors the reference implementation's convention of signaling
// every failure as a byte count of -1 from Sendto/Recvfrom.
const ErrorCode = -1
