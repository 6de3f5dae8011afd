package session

import "time"

// Timer is the subset of time.Timer the manager needs. Stop reports
// whether the timer was still pending.
type Timer interface {
	Stop() bool
}

// Clock abstracts wall time and timer scheduling so tests can drive
// the manager deterministically.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// SystemClock returns a Clock backed by the time package.
func SystemClock() Clock { return realClock{} }
