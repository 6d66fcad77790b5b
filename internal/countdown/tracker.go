package countdown

import (
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/manas360/booking-service/internal/model"
)

// Rand is the pseudo-random source behind the waiting-count heuristic.
// *math/rand.Rand satisfies it; tests plug in a deterministic source.
type Rand interface {
	Float64() float64
}

// Config configures a Tracker. Zero fields fall back to the defaults used by
// the live indicator.
type Config struct {
	SessionID string
	StartTime time.Time

	Clock Clock
	Rand  Rand

	TickInterval time.Duration // countdown cadence, default 1s
	ConfirmDelay time.Duration // join confirmation delay, default 2s

	InitialWaiting int     // seed value of the waiting counter
	WaitingCap     int     // default 15
	WaitingProb    float64 // chance of +1 per tick, default 0.2

	// OnSnapshot receives a tick-consistent snapshot once per tick.
	OnSnapshot func(model.CountdownSnapshot)
	// OnJoined fires exactly once per completed join.
	OnJoined func(userID string)

	Logger *zap.Logger
}

// Tracker owns the countdown timers of a single session: the periodic tick
// that drives tier classification and the waiting heuristic, and the one-shot
// join confirmation. All timers die with Stop; nothing fires afterwards.
type Tracker struct {
	cfg Config

	mu          sync.Mutex
	closed      bool // latched once remaining <= 0 is observed
	pending     bool
	pendingUser string
	waiting     int
	ticker      Ticker
	confirm     Timer
	stopped     bool
	stop        chan struct{}
}

// NewTracker creates a tracker for the session. Call Start to begin ticking.
func NewTracker(cfg Config) *Tracker {
	if cfg.Clock == nil {
		cfg.Clock = SystemClock()
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(cfg.Clock.Now().UnixNano()))
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = time.Second
	}
	if cfg.ConfirmDelay <= 0 {
		cfg.ConfirmDelay = 2 * time.Second
	}
	if cfg.WaitingCap <= 0 {
		cfg.WaitingCap = 15
	}
	if cfg.WaitingProb <= 0 {
		cfg.WaitingProb = 0.2
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Tracker{
		cfg:     cfg,
		waiting: cfg.InitialWaiting,
		stop:    make(chan struct{}),
	}
}

// Start emits an immediate snapshot and begins the periodic tick loop.
// Starting twice is a no-op.
func (t *Tracker) Start() {
	t.mu.Lock()
	if t.stopped || t.ticker != nil {
		t.mu.Unlock()
		return
	}
	t.ticker = t.cfg.Clock.NewTicker(t.cfg.TickInterval)
	t.mu.Unlock()

	if snap, ok := t.step(t.cfg.Clock.Now()); ok {
		t.emit(snap)
	}
	go t.loop()
}

func (t *Tracker) loop() {
	for {
		select {
		case <-t.stop:
			return
		case now := <-t.ticker.Chan():
			snap, ok := t.step(now)
			if !ok {
				return
			}
			t.emit(snap)
		}
	}
}

// step advances one tick using a single now sample for every derived field.
func (t *Tracker) step(now time.Time) (model.CountdownSnapshot, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return model.CountdownSnapshot{}, false
	}

	remaining := RemainingSeconds(t.cfg.StartTime, now)
	tier := Classify(remaining)
	if t.closed {
		// Closure is sticky; a non-monotonic clock must not reopen the room.
		tier = TierRoomClosed
	} else if tier == TierRoomClosed {
		t.closed = true
		t.cfg.Logger.Debug("room closed",
			zap.String("session_id", t.cfg.SessionID),
			zap.Int64("remaining", remaining))
	}

	if !t.closed && tier != TierLiveNow {
		if t.waiting < t.cfg.WaitingCap && t.cfg.Rand.Float64() < t.cfg.WaitingProb {
			t.waiting++
		}
	}

	return t.renderLocked(remaining, tier), true
}

// Snapshot derives the current view without advancing the waiting heuristic
// or the closed latch.
func (t *Tracker) Snapshot() model.CountdownSnapshot {
	now := t.cfg.Clock.Now()
	t.mu.Lock()
	defer t.mu.Unlock()
	remaining := RemainingSeconds(t.cfg.StartTime, now)
	tier := Classify(remaining)
	if t.closed {
		tier = TierRoomClosed
	}
	return t.renderLocked(remaining, tier)
}

func (t *Tracker) renderLocked(remaining int64, tier Tier) model.CountdownSnapshot {
	d := tier.Directive(remaining)
	display := remaining
	if tier == TierRoomClosed {
		display = 0
	}
	return model.CountdownSnapshot{
		SessionID:        t.cfg.SessionID,
		RemainingSeconds: remaining,
		Display:          FormatClock(display),
		Tier:             string(tier),
		Label:            d.Label,
		CTA:              d.CTA,
		Urgency:          d.Urgency,
		Color:            d.Color,
		JoinEnabled:      tier.JoinEnabled() && !t.closed,
		WaitingCount:     t.waiting,
		Pending:          t.pending,
		Closed:           t.closed,
	}
}

// Join requests to join the session. It is a no-op when the room is closed,
// when a prior join is still pending, or after Stop. On acceptance the
// confirmation one-shot is scheduled and OnJoined fires exactly once after
// the configured delay.
func (t *Tracker) Join(userID string) bool {
	now := t.cfg.Clock.Now()
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return false
	}
	if RemainingSeconds(t.cfg.StartTime, now) <= 0 {
		t.closed = true
	}
	if t.closed || t.pending {
		t.mu.Unlock()
		return false
	}
	t.pending = true
	t.pendingUser = userID
	t.confirm = t.cfg.Clock.AfterFunc(t.cfg.ConfirmDelay, t.confirmJoin)
	t.mu.Unlock()

	t.cfg.Logger.Info("join pending",
		zap.String("session_id", t.cfg.SessionID),
		zap.String("user_id", userID))
	return true
}

func (t *Tracker) confirmJoin() {
	t.mu.Lock()
	if t.stopped || !t.pending {
		// Stale one-shot; the tracker was torn down or the join cancelled.
		t.mu.Unlock()
		return
	}
	t.pending = false
	user := t.pendingUser
	t.pendingUser = ""
	t.confirm = nil
	cb := t.cfg.OnJoined
	t.mu.Unlock()

	t.cfg.Logger.Info("join confirmed",
		zap.String("session_id", t.cfg.SessionID),
		zap.String("user_id", user))
	if cb != nil {
		cb(user)
	}
}

// Stop tears the tracker down: the ticker and any pending confirmation are
// cancelled and no callback fires afterwards. Idempotent.
func (t *Tracker) Stop() {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	t.stopped = true
	if t.ticker != nil {
		t.ticker.Stop()
	}
	if t.confirm != nil {
		t.confirm.Stop()
		t.confirm = nil
	}
	t.pending = false
	t.pendingUser = ""
	close(t.stop)
	t.mu.Unlock()
}

func (t *Tracker) emit(snap model.CountdownSnapshot) {
	t.mu.Lock()
	stopped := t.stopped
	cb := t.cfg.OnSnapshot
	t.mu.Unlock()
	if stopped || cb == nil {
		return
	}
	cb(snap)
}
