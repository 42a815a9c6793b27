package rudp

import (
	"net"
	"time"
)

// Socket generalizes "the datagram socket itself" into a swappable
// collaborator, the way the teacher generalizes the CAN transport behind a
// Bus interface with multiple backends (socketcan, virtual, kvaser). The
// core protocol engine (C2-C7) consumes only this interface.
type Socket interface {
	// Bind binds the socket to a local address; local may be "" to let
	// the OS pick an ephemeral port.
	Bind(local string) error
	// SendTo sends one datagram to dest.
	SendTo(b []byte, dest *net.UDPAddr) (int, error)
	// RecvFrom blocks for one datagram, returning its sender.
	RecvFrom(buf []byte) (int, *net.UDPAddr, error)
	// Close releases the socket.
	Close() error
	// LocalAddr reports the bound local address.
	LocalAddr() net.Addr
}

// DeadlineSocket is an optional capability a Socket implementation may
// provide to unblock a pending RecvFrom once a wall-clock deadline passes.
// Per spec.md §9 Open Question 4, the reference has no per-call deadline
// and retransmits forever against a vanished peer; this is the additive
// hook a caller can opt into via RUDP.Deadline without changing that
// default (a zero Deadline never calls SetReadDeadline). A Socket that
// does not implement this interface simply cannot be deadline-bounded --
// callers asking for a Deadline against one get ErrDeadlineUnsupported.
type DeadlineSocket interface {
	Socket
	// SetReadDeadline arranges for a pending or future RecvFrom to fail
	// with an error satisfying net.Error.Timeout() once t passes. The
	// zero Time clears any deadline.
	SetReadDeadline(t time.Time) error
}

// UDPSocket is the real Socket implementation, a thin wrapper over
// net.UDPConn.
type UDPSocket struct {
	conn *net.UDPConn
}

// NewUDPSocket opens an unbound UDP socket (the "open()" capability of
// spec.md §6); call Bind to bind it.
func NewUDPSocket() *UDPSocket {
	return &UDPSocket{}
}

func (s *UDPSocket) Bind(local string) error {
	addr, err := net.ResolveUDPAddr("udp", local)
	if err != nil {
		return err
	}
	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		return err
	}
	s.conn = conn
	return nil
}

func (s *UDPSocket) SendTo(b []byte, dest *net.UDPAddr) (int, error) {
	return s.conn.WriteToUDP(b, dest)
}

func (s *UDPSocket) RecvFrom(buf []byte) (int, *net.UDPAddr, error) {
	return s.conn.ReadFromUDP(buf)
}

// SetReadDeadline implements DeadlineSocket by delegating to the
// underlying net.UDPConn.
func (s *UDPSocket) SetReadDeadline(t time.Time) error {
	return s.conn.SetReadDeadline(t)
}

func (s *UDPSocket) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *UDPSocket) LocalAddr() net.Addr {
	if s.conn == nil {
		return nil
	}
	return s.conn.LocalAddr()
}
