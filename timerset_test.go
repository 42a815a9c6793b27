package rudp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimerAllocAndExpire(t *testing.T) {
	ts := newTimerSet()
	ts.alloc(3)

	assert.False(t, ts.expired(findTimerIndex(ts, 3)))

	i := findTimerIndex(ts, 3)
	ts.timers[i].start = time.Now().Add(-Timeout - time.Millisecond)
	assert.True(t, ts.expired(i))
}

func TestTimerStopByIndex(t *testing.T) {
	ts := newTimerSet()
	ts.alloc(5)
	ts.stopByIndex(5)

	i := findTimerIndex(ts, 5)
	assert.Equal(t, -1, i)
}

func TestTimerRestartDoesNotReallocate(t *testing.T) {
	ts := newTimerSet()
	ts.alloc(1)
	i := findTimerIndex(ts, 1)
	ts.timers[i].start = time.Now().Add(-Timeout - time.Millisecond)
	assert.True(t, ts.expired(i))

	ts.restart(i)
	assert.False(t, ts.expired(i))
	assert.Equal(t, 1, ts.timers[i].index)
}

func TestTimerSetNeverExceedsWindowSize(t *testing.T) {
	ts := newTimerSet()
	for i := 0; i < WindowSize; i++ {
		ts.alloc(i)
	}
	assert.Panics(t, func() { ts.alloc(WindowSize) })
}

// findTimerIndex returns the slot bound to buffer index idx, or -1.
func findTimerIndex(ts *timerSet, idx int) int {
	for i, tm := range ts.timers {
		if tm.active && tm.index == idx {
			return i
		}
	}
	return -1
}
