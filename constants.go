package rudp

import "time"

// Wire and window constants, fixed at build time. Two endpoints must agree
// on all of these; unlike the Tunables read by config.go, they are not
// runtime-tunable because changing them changes on-wire semantics.
const (
	// MaxPayload is the largest number of payload bytes a single segment
	// may carry.
	MaxPayload = 500

	// SeqSpace is the modular range of the 6-bit seqno field.
	SeqSpace = 64

	// WindowSize is the number of segments that may be in flight
	// unacknowledged at once.
	WindowSize = 8

	// BufferSize is the maximum number of segments a single Sendto or
	// Recvfrom call may exchange.
	BufferSize = 256

	// MaxCallBytes is the largest payload a single Sendto call accepts.
	MaxCallBytes = BufferSize * MaxPayload

	// Timeout is the per-segment retransmission timeout.
	Timeout = 3 * time.Second

	// FileBuffer is the chunk size used by the file-transfer helper.
	FileBuffer = 102400
)

// eofSentinel is the file-transfer helper's in-band end-of-stream marker.
// Spoofable by design -- see DESIGN.md Open Question 3.
const eofSentinel = "EOF"

// Open Question 1: WINDOW_SIZE*2 <= SEQ_SPACE must hold so that a window's
// worth of in-flight seqnos never wraps onto itself. The reference only
// asserts this in a comment; here it is enforced at compile time: the
// untyped constant below cannot be represented as uint if the invariant is
// violated, which fails the build.
const _ uint = SeqSpace - WindowSize*2
