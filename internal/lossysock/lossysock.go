// Package lossysock provides an in-process, lossy datagram transport used
// by the rudp protocol tests to exercise retransmission, duplicate
// suppression, and reordering without a real network.
//
// It is adapted from the teacher's virtual CAN bus (pkg/can/virtual),
// which relays frames between two processes over a TCP loopback. Here the
// relay is collapsed to an in-memory channel pair within the same process,
// and a Lossy wrapper is added in front of it to inject drops and
// duplicates deterministically, which a real socket cannot do. Datagrams
// are not reordered: each endpoint's inbox delivers them in send order.
package lossysock

import (
	"errors"
	"math/rand"
	"net"
	"sync"
	"time"
)

var errClosed = errors.New("lossysock: closed")

// timeoutErr satisfies net.Error with Timeout()==true, matching what
// net.UDPConn.ReadFromUDP returns past a SetReadDeadline.
type timeoutErr struct{}

func (timeoutErr) Error() string   { return "lossysock: i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

type datagram struct {
	b    []byte
	from *net.UDPAddr
}

// Endpoint is one side of an in-memory datagram pair.
type Endpoint struct {
	addr *net.UDPAddr
	peer *Endpoint

	mu       sync.Mutex
	closed   bool
	inbox    chan datagram
	deadline time.Time
}

// NewPair returns two endpoints wired to each other, addressed by the
// given host:port-style names (used only for bookkeeping; nothing is
// actually bound to a NIC).
func NewPair(addrA, addrB string) (*Endpoint, *Endpoint) {
	a := &Endpoint{addr: mustAddr(addrA), inbox: make(chan datagram, 4096)}
	b := &Endpoint{addr: mustAddr(addrB), inbox: make(chan datagram, 4096)}
	a.peer, b.peer = b, a
	return a, b
}

func mustAddr(s string) *net.UDPAddr {
	addr, err := net.ResolveUDPAddr("udp", s)
	if err != nil {
		// Test-only helper; a malformed literal is a programmer error.
		panic(err)
	}
	return addr
}

func (e *Endpoint) Bind(string) error { return nil }

// SendTo ignores dest: an Endpoint is wired to exactly one peer at
// construction, matching rudp's single-in-flight-peer design (spec.md
// Non-goals).
func (e *Endpoint) SendTo(b []byte, dest *net.UDPAddr) (int, error) {
	e.mu.Lock()
	closed := e.closed
	e.mu.Unlock()
	if closed {
		return 0, errClosed
	}
	cp := append([]byte(nil), b...)
	select {
	case e.peer.inbox <- datagram{b: cp, from: e.addr}:
	default:
		// Peer inbox full: treat as a dropped datagram rather than blocking
		// the sender, matching a real best-effort UDP socket under load.
	}
	return len(b), nil
}

func (e *Endpoint) RecvFrom(buf []byte) (int, *net.UDPAddr, error) {
	e.mu.Lock()
	deadline := e.deadline
	e.mu.Unlock()

	if deadline.IsZero() {
		dg, ok := <-e.inbox
		if !ok {
			return 0, nil, errClosed
		}
		n := copy(buf, dg.b)
		return n, dg.from, nil
	}

	remaining := time.Until(deadline)
	if remaining <= 0 {
		return 0, nil, timeoutErr{}
	}
	timer := time.NewTimer(remaining)
	defer timer.Stop()
	select {
	case dg, ok := <-e.inbox:
		if !ok {
			return 0, nil, errClosed
		}
		n := copy(buf, dg.b)
		return n, dg.from, nil
	case <-timer.C:
		return 0, nil, timeoutErr{}
	}
}

// SetReadDeadline implements rudp.DeadlineSocket. The zero Time clears any
// deadline, matching net.Conn.SetReadDeadline semantics.
func (e *Endpoint) SetReadDeadline(t time.Time) error {
	e.mu.Lock()
	e.deadline = t
	e.mu.Unlock()
	return nil
}

func (e *Endpoint) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil
	}
	e.closed = true
	close(e.inbox)
	return nil
}

func (e *Endpoint) LocalAddr() net.Addr { return e.addr }

// Lossy wraps an Endpoint and perturbs outbound sends: dropProb datagrams
// are dropped outright and dupProb are sent twice. It does not reorder:
// surviving datagrams (and duplicates, right after their original) reach
// the peer in send order.
type Lossy struct {
	inner    *Endpoint
	dropProb float64
	dupProb  float64
	rng      *rand.Rand
	mu       sync.Mutex
}

// NewLossy wraps inner with the given independent per-datagram drop and
// duplicate probabilities, seeded deterministically for reproducible
// tests.
func NewLossy(inner *Endpoint, dropProb, dupProb float64, seed int64) *Lossy {
	return &Lossy{inner: inner, dropProb: dropProb, dupProb: dupProb, rng: rand.New(rand.NewSource(seed))}
}

func (l *Lossy) Bind(local string) error { return l.inner.Bind(local) }

func (l *Lossy) SendTo(b []byte, dest *net.UDPAddr) (int, error) {
	l.mu.Lock()
	drop := l.rng.Float64() < l.dropProb
	dup := l.rng.Float64() < l.dupProb
	l.mu.Unlock()
	if drop {
		return len(b), nil
	}
	n, err := l.inner.SendTo(b, dest)
	if err == nil && dup {
		_, _ = l.inner.SendTo(b, dest)
	}
	return n, err
}

func (l *Lossy) RecvFrom(buf []byte) (int, *net.UDPAddr, error) {
	return l.inner.RecvFrom(buf)
}

func (l *Lossy) Close() error        { return l.inner.Close() }
func (l *Lossy) LocalAddr() net.Addr { return l.inner.LocalAddr() }

// SetReadDeadline implements rudp.DeadlineSocket by delegating to the
// wrapped Endpoint; loss/duplication only apply to outbound SendTo, so
// there is nothing to perturb here.
func (l *Lossy) SetReadDeadline(t time.Time) error { return l.inner.SetReadDeadline(t) }
