package service

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/manas360/booking-service/internal/config"
	"github.com/manas360/booking-service/internal/countdown"
)

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:           "test",
		TherapistName:    "Dr. Emily Chen",
		GroupRate:        499,
		VRRate:           2499,
		IndividualRate:   1499,
		PayoutFraction:   0.6,
		TickInterval:     time.Second,
		JoinConfirmDelay: 2 * time.Second,
		WaitlistInitial:  8,
		WaitlistCap:      15,
		WaitlistProb:     0.2,
		GroupCapacity:    15,
		DropInMinutes:    90,
		QuickVRMinutes:   45,
	}
}

// testClock implements countdown.Clock with manual control.
type testClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*testTimer
}

func newTestClock(now time.Time) *testClock { return &testClock{now: now} }

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func (c *testClock) NewTicker(d time.Duration) countdown.Ticker {
	return &testTicker{ch: make(chan time.Time)}
}

func (c *testClock) AfterFunc(d time.Duration, f func()) countdown.Timer {
	t := &testTimer{f: f}
	c.mu.Lock()
	c.timers = append(c.timers, t)
	c.mu.Unlock()
	return t
}

func (c *testClock) fireTimers() {
	c.mu.Lock()
	timers := c.timers
	c.timers = nil
	c.mu.Unlock()
	for _, t := range timers {
		t.fire()
	}
}

type testTimer struct {
	mu      sync.Mutex
	f       func()
	stopped bool
}

func (t *testTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	was := t.stopped
	t.stopped = true
	return !was
}

func (t *testTimer) fire() {
	t.mu.Lock()
	stopped := t.stopped
	f := t.f
	t.mu.Unlock()
	if !stopped && f != nil {
		f()
	}
}

type testTicker struct {
	ch chan time.Time
}

func (t *testTicker) Chan() <-chan time.Time { return t.ch }
func (t *testTicker) Stop()                  {}

type constRand struct{ v float64 }

func (r constRand) Float64() float64 { return r.v }

func newTestPortal(clock countdown.Clock) *Portal {
	return NewPortal(NewRegistry(), testConfig(), clock, constRand{v: 0.5}, zap.NewNop())
}
