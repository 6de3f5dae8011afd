// Package session implements the inactivity lifecycle for an
// authenticated admin session: a fixed idle timeout, a warning window
// before it expires, and a per-second countdown while warned. The
// manager is a small state machine driven by timers; callers feed it
// activity and it fires callbacks when the state changes.
package session

import (
	"sync"
	"time"
)

// State of a managed session.
type State int

const (
	Unauthenticated State = iota
	Active
	Warned
	LoggedOut
)

func (s State) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case Active:
		return "active"
	case Warned:
		return "warned"
	case LoggedOut:
		return "logged_out"
	}
	return "unknown"
}

// LogoutReason distinguishes an expired session from a deliberate one.
type LogoutReason string

const (
	ReasonInactivity LogoutReason = "inactivity"
	ReasonManual     LogoutReason = "manual"
)

// Config controls the timeout geometry. Warning must be shorter than
// Timeout; the warning fires Timeout-Warning after the last activity.
type Config struct {
	Timeout time.Duration // idle time until forced logout
	Warning time.Duration // window before logout during which the user is warned
}

// DefaultConfig matches the admin panel: 30 minutes idle, warned for
// the final 5.
func DefaultConfig() Config {
	return Config{Timeout: 30 * time.Minute, Warning: 5 * time.Minute}
}

// Callbacks are invoked outside the manager's lock. Any field may be
// nil. OnCountdown fires once per second while in the Warned state with
// the time remaining; OnWarning fires on entry to Warned; OnLogout
// fires exactly once per session.
type Callbacks struct {
	OnWarning   func(remaining time.Duration)
	OnCountdown func(remaining time.Duration)
	OnLogout    func(reason LogoutReason)
}

// Manager runs the state machine for a single session. All methods are
// safe for concurrent use.
type Manager struct {
	cfg   Config
	clock Clock
	cb    Callbacks

	mu        sync.Mutex
	state     State
	deadline  time.Time
	warnTimer Timer
	tick      Timer
}

// NewManager builds a manager in the Unauthenticated state. A nil
// clock uses the system clock.
func NewManager(cfg Config, clock Clock, cb Callbacks) *Manager {
	if clock == nil {
		clock = SystemClock()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if cfg.Warning <= 0 || cfg.Warning >= cfg.Timeout {
		cfg.Warning = DefaultConfig().Warning
	}
	return &Manager{cfg: cfg, clock: clock, cb: cb, state: Unauthenticated}
}

// State returns the current state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Remaining reports how long until forced logout. Zero when not
// authenticated.
func (m *Manager) Remaining() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != Active && m.state != Warned {
		return 0
	}
	d := m.deadline.Sub(m.clock.Now())
	if d < 0 {
		d = 0
	}
	return d
}

// Start begins a session after a successful login. Starting an already
// running session resets it as if activity occurred.
func (m *Manager) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = Active
	m.rearmLocked()
}

// Activity records user interaction. In Active it pushes the deadline
// out; in Warned it cancels the warning and returns to Active. After
// logout it is a no-op: the session is over.
func (m *Manager) Activity() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != Active && m.state != Warned {
		return
	}
	m.state = Active
	m.rearmLocked()
}

// StayLoggedIn is the warning dialog's confirm action. Identical to
// Activity but only meaningful while warned.
func (m *Manager) StayLoggedIn() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != Warned {
		return
	}
	m.state = Active
	m.rearmLocked()
}

// Logout ends the session deliberately.
func (m *Manager) Logout() {
	m.endSession(ReasonManual)
}

// rearmLocked resets the deadline and schedules the warning timer.
// Caller holds mu.
func (m *Manager) rearmLocked() {
	m.stopTimersLocked()
	m.deadline = m.clock.Now().Add(m.cfg.Timeout)
	m.warnTimer = m.clock.AfterFunc(m.cfg.Timeout-m.cfg.Warning, m.enterWarned)
}

func (m *Manager) stopTimersLocked() {
	if m.warnTimer != nil {
		m.warnTimer.Stop()
		m.warnTimer = nil
	}
	if m.tick != nil {
		m.tick.Stop()
		m.tick = nil
	}
}

func (m *Manager) enterWarned() {
	m.mu.Lock()
	if m.state != Active {
		m.mu.Unlock()
		return
	}
	m.state = Warned
	remaining := m.deadline.Sub(m.clock.Now())
	m.tick = m.clock.AfterFunc(time.Second, m.countdown)
	cb := m.cb.OnWarning
	m.mu.Unlock()

	if cb != nil {
		cb(remaining)
	}
}

func (m *Manager) countdown() {
	m.mu.Lock()
	if m.state != Warned {
		m.mu.Unlock()
		return
	}
	remaining := m.deadline.Sub(m.clock.Now())
	if remaining <= 0 {
		m.mu.Unlock()
		m.endSession(ReasonInactivity)
		return
	}
	m.tick = m.clock.AfterFunc(time.Second, m.countdown)
	cb := m.cb.OnCountdown
	m.mu.Unlock()

	if cb != nil {
		cb(remaining)
	}
}

// endSession transitions to LoggedOut exactly once.
func (m *Manager) endSession(reason LogoutReason) {
	m.mu.Lock()
	if m.state != Active && m.state != Warned {
		m.mu.Unlock()
		return
	}
	m.state = LoggedOut
	m.stopTimersLocked()
	cb := m.cb.OnLogout
	m.mu.Unlock()

	if cb != nil {
		cb(reason)
	}
}
