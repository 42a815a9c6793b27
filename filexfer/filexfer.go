// Package filexfer is the trivial file-transfer helper of spec.md §6: a
// loop that slices a file into FileBuffer-sized chunks and sends them via
// the core rudp primitives, terminated by an in-band "EOF" sentinel. It
// contains no protocol logic of its own -- that is entirely rudp's job --
// only the outer loop, file I/O, and CLI-adjacent plumbing the spec
// treats as an external collaborator.
package filexfer

import (
	"bytes"
	"io"
	"net"
	"os"

	"github.com/samsamfire/rudp"
)

const eof = "EOF"

// SendFile reads path in rudp.FileBuffer-sized chunks and sends each via
// r.Sendto, followed by one final Sendto carrying the literal 3-byte
// payload "EOF". It returns the total payload bytes sent across all
// chunks (not counting the sentinel).
//
// The sentinel is in-band and unescaped, exactly as spec.md §9 Open
// Question 3 describes: a file whose contents begin a FileBuffer-aligned
// chunk with "EOF" will be misinterpreted as end-of-stream. This behavior
// is preserved deliberately, not hardened.
func SendFile(r *rudp.RUDP, path string, dest *net.UDPAddr) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	total := 0
	chunk := make([]byte, rudp.FileBuffer)
	for {
		n, err := f.Read(chunk)
		if n > 0 {
			sent, sendErr := r.Sendto(chunk[:n], dest)
			if sendErr != nil {
				return total, sendErr
			}
			total += sent
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return total, err
		}
	}

	if _, err := r.Sendto([]byte(eof), dest); err != nil {
		return total, err
	}
	return total, nil
}

// RecvFile calls r.Recvfrom in a loop, writing each received chunk to
// path until a chunk's first 3 bytes equal the literal "EOF" sentinel. It
// returns the sender's address and the total bytes written.
func RecvFile(r *rudp.RUDP, path string) (*net.UDPAddr, int, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	var peer *net.UDPAddr
	total := 0
	buf := make([]byte, rudp.FileBuffer)
	for {
		n, from, err := r.Recvfrom(buf)
		if err != nil {
			return peer, total, err
		}
		if peer == nil {
			peer = from
		}
		if n >= 3 && bytes.Equal(buf[:3], []byte(eof)) {
			break
		}
		if _, err := f.Write(buf[:n]); err != nil {
			return peer, total, err
		}
		total += n
	}
	return peer, total, nil
}
