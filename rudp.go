package rudp

import (
	"net"
	"time"

	log "github.com/sirupsen/logrus"
)

// RUDP is the persistent handle across calls: it owns the socket and a
// logger, both set once at construction. Per-call protocol state (window,
// timers, buffer) is never stored here -- see callState in call.go.
type RUDP struct {
	sock   Socket
	logger *log.Logger
	logs   bool

	// Deadline bounds a single Sendto/Recvfrom call's wall-clock runtime
	// when nonzero. The reference design (spec.md §9 Open Question 4) has
	// no such bound and retransmits indefinitely against a vanished peer;
	// this is purely additive and defaults to that same unbounded
	// behavior. Like logs, it is meant to be set once after New and not
	// mutated concurrently with an in-flight call (Open Question 5's
	// set-once discipline applied to a second field).
	Deadline time.Duration
}

// New wraps an already-constructed Socket (typically a *UDPSocket, or an
// internal/lossysock endpoint in tests) in a handle. logs enables a trace
// line per sent/received segment and ACK; it has no functional effect and
// is intended to be set once before any call and not mutated concurrently
// with one.
func New(sock Socket, logs bool) *RUDP {
	logger := log.New()
	if logs {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return &RUDP{sock: sock, logger: logger, logs: logs}
}

// Bind binds the underlying socket to a local address.
func (r *RUDP) Bind(local string) error {
	return r.sock.Bind(local)
}

// Close releases the underlying socket.
func (r *RUDP) Close() error {
	return r.sock.Close()
}

// LocalAddr reports the bound local address.
func (r *RUDP) LocalAddr() net.Addr {
	return r.sock.LocalAddr()
}

func (r *RUDP) tracef(format string, args ...any) {
	if r.logs {
		r.logger.Debugf(format, args...)
	}
}
