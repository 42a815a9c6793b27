package rudp

import (
	"time"

	"gopkg.in/ini.v1"
)

// Tunables are the runtime-adjustable knobs read from an optional INI
// file, grounded on the teacher's use of gopkg.in/ini.v1 to load
// EDS-adjacent configuration. Unlike the teacher's object dictionary,
// these never reach the wire: WindowSize/Timeout/BufferSize stay fixed at
// build time (constants.go) because two endpoints disagreeing on them
// would violate the seqno-space safety invariant (spec.md §3). Tunables
// only affect the handle's own diagnostics, bind address, and the
// additive per-call Deadline described in spec.md §9 Open Question 4.
type Tunables struct {
	Logs bool
	Bind string

	// Deadline is read into RUDP.Deadline by callers that construct a
	// handle from Tunables. Zero means no deadline (reference behavior).
	Deadline time.Duration
}

// DefaultTunables mirrors the reference's implicit defaults: logging off,
// no fixed bind address (ephemeral port), no call deadline.
func DefaultTunables() Tunables {
	return Tunables{Logs: false, Bind: "", Deadline: 0}
}

// LoadTunables reads a "[rudp]" section from an INI file such as:
//
//	[rudp]
//	logs = true
//	bind = 0.0.0.0:9000
//	deadline_seconds = 30
//
// Missing keys keep their DefaultTunables value. A missing or unreadable
// file is an error; callers that want defaults on a missing path should
// check os.IsNotExist and fall back to DefaultTunables themselves.
func LoadTunables(path string) (Tunables, error) {
	t := DefaultTunables()
	cfg, err := ini.Load(path)
	if err != nil {
		return t, err
	}
	section := cfg.Section("rudp")
	t.Logs = section.Key("logs").MustBool(t.Logs)
	t.Bind = section.Key("bind").MustString(t.Bind)
	seconds := section.Key("deadline_seconds").MustInt(0)
	if seconds > 0 {
		t.Deadline = time.Duration(seconds) * time.Second
	}
	return t, nil
}
