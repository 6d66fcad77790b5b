package countdown

import "time"

// Clock abstracts wall-clock sampling and timer scheduling so trackers can be
// tested without real waits.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
	AfterFunc(d time.Duration, f func()) Timer
}

// Ticker delivers periodic ticks until stopped.
type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}

// Timer is a cancellable one-shot.
type Timer interface {
	Stop() bool
}

type realClock struct{}

type realTicker struct{ t *time.Ticker }

func (r realTicker) Chan() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()                  { r.t.Stop() }

func (realClock) Now() time.Time { return time.Now() }

func (realClock) NewTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// SystemClock returns the wall-clock backed Clock.
func SystemClock() Clock { return realClock{} }
