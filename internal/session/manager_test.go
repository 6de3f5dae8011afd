package session

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock drives the manager deterministically. Advance fires every
// timer whose deadline has passed, in order.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *fakeClock
	at      time.Time
	fn      func()
	stopped bool
	fired   bool
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (fc *fakeClock) Now() time.Time {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.now
}

func (fc *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	t := &fakeTimer{clock: fc, at: fc.now.Add(d), fn: f}
	fc.timers = append(fc.timers, t)
	return t
}

func (ft *fakeTimer) Stop() bool {
	ft.clock.mu.Lock()
	defer ft.clock.mu.Unlock()
	was := !ft.stopped && !ft.fired
	ft.stopped = true
	return was
}

// advance moves time forward, firing due timers one at a time so timers
// scheduled by callbacks (the countdown rearm) are honored.
func (fc *fakeClock) advance(d time.Duration) {
	fc.mu.Lock()
	target := fc.now.Add(d)
	fc.mu.Unlock()

	for {
		fc.mu.Lock()
		var due *fakeTimer
		for _, t := range fc.timers {
			if t.stopped || t.fired || t.at.After(target) {
				continue
			}
			if due == nil || t.at.Before(due.at) {
				due = t
			}
		}
		if due == nil {
			fc.now = target
			fc.mu.Unlock()
			return
		}
		if due.at.After(fc.now) {
			fc.now = due.at
		}
		due.fired = true
		fn := due.fn
		fc.mu.Unlock()
		fn()
	}
}

type events struct {
	mu         sync.Mutex
	warnings   []time.Duration
	countdowns []time.Duration
	logouts    []LogoutReason
}

func (ev *events) callbacks() Callbacks {
	return Callbacks{
		OnWarning: func(r time.Duration) {
			ev.mu.Lock()
			ev.warnings = append(ev.warnings, r)
			ev.mu.Unlock()
		},
		OnCountdown: func(r time.Duration) {
			ev.mu.Lock()
			ev.countdowns = append(ev.countdowns, r)
			ev.mu.Unlock()
		},
		OnLogout: func(reason LogoutReason) {
			ev.mu.Lock()
			ev.logouts = append(ev.logouts, reason)
			ev.mu.Unlock()
		},
	}
}

func testConfig() Config {
	return Config{Timeout: 30 * time.Minute, Warning: 5 * time.Minute}
}

func TestWarningFiresBeforeTimeout(t *testing.T) {
	clock := newFakeClock()
	ev := &events{}
	m := NewManager(testConfig(), clock, ev.callbacks())

	m.Start()
	require.Equal(t, Active, m.State())

	clock.advance(24 * time.Minute)
	assert.Equal(t, Active, m.State())
	assert.Empty(t, ev.warnings)

	clock.advance(1 * time.Minute) // 25m mark: warning lead reached
	assert.Equal(t, Warned, m.State())
	require.Len(t, ev.warnings, 1)
	assert.Equal(t, 5*time.Minute, ev.warnings[0])
}

func TestInactivityLogoutAtTimeout(t *testing.T) {
	clock := newFakeClock()
	ev := &events{}
	m := NewManager(testConfig(), clock, ev.callbacks())

	m.Start()
	clock.advance(30 * time.Minute)

	assert.Equal(t, LoggedOut, m.State())
	require.Len(t, ev.logouts, 1)
	assert.Equal(t, ReasonInactivity, ev.logouts[0])
}

func TestCountdownTicksEverySecond(t *testing.T) {
	clock := newFakeClock()
	ev := &events{}
	m := NewManager(testConfig(), clock, ev.callbacks())

	m.Start()
	clock.advance(25*time.Minute + 3*time.Second)

	assert.Equal(t, Warned, m.State())
	ev.mu.Lock()
	defer ev.mu.Unlock()
	require.Len(t, ev.countdowns, 3)
	assert.True(t, sort.SliceIsSorted(ev.countdowns, func(i, j int) bool {
		return ev.countdowns[i] > ev.countdowns[j]
	}))
}

func TestActivityResetsDeadline(t *testing.T) {
	clock := newFakeClock()
	ev := &events{}
	m := NewManager(testConfig(), clock, ev.callbacks())

	m.Start()
	clock.advance(20 * time.Minute)
	m.Activity()

	// Old deadline passes with no warning or logout.
	clock.advance(10 * time.Minute)
	assert.Equal(t, Active, m.State())
	assert.Empty(t, ev.warnings)
	assert.Empty(t, ev.logouts)

	// The reset deadline still applies.
	clock.advance(20 * time.Minute)
	assert.Equal(t, LoggedOut, m.State())
}

func TestStayLoggedInCancelsWarning(t *testing.T) {
	clock := newFakeClock()
	ev := &events{}
	m := NewManager(testConfig(), clock, ev.callbacks())

	m.Start()
	clock.advance(26 * time.Minute)
	require.Equal(t, Warned, m.State())

	m.StayLoggedIn()
	assert.Equal(t, Active, m.State())

	// A fresh full window applies after confirming.
	clock.advance(24 * time.Minute)
	assert.Equal(t, Active, m.State())
	clock.advance(6 * time.Minute)
	assert.Equal(t, LoggedOut, m.State())
}

func TestStayLoggedInOutsideWarningIsNoOp(t *testing.T) {
	clock := newFakeClock()
	m := NewManager(testConfig(), clock, Callbacks{})

	m.Start()
	m.StayLoggedIn()
	assert.Equal(t, Active, m.State())
}

func TestManualLogout(t *testing.T) {
	clock := newFakeClock()
	ev := &events{}
	m := NewManager(testConfig(), clock, ev.callbacks())

	m.Start()
	m.Logout()

	assert.Equal(t, LoggedOut, m.State())
	require.Len(t, ev.logouts, 1)
	assert.Equal(t, ReasonManual, ev.logouts[0])

	// No timer fires after the terminal transition.
	clock.advance(time.Hour)
	assert.Len(t, ev.logouts, 1)
	assert.Empty(t, ev.warnings)
}

func TestLogoutFiresOnce(t *testing.T) {
	clock := newFakeClock()
	ev := &events{}
	m := NewManager(testConfig(), clock, ev.callbacks())

	m.Start()
	m.Logout()
	m.Logout()
	m.Activity() // ignored after logout

	assert.Len(t, ev.logouts, 1)
	assert.Equal(t, LoggedOut, m.State())
}

func TestRemaining(t *testing.T) {
	clock := newFakeClock()
	m := NewManager(testConfig(), clock, Callbacks{})

	assert.Equal(t, time.Duration(0), m.Remaining())

	m.Start()
	assert.Equal(t, 30*time.Minute, m.Remaining())

	clock.advance(10 * time.Minute)
	assert.Equal(t, 20*time.Minute, m.Remaining())
}
