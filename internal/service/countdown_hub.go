package service

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/manas360/booking-service/internal/config"
	"github.com/manas360/booking-service/internal/countdown"
	"github.com/manas360/booking-service/internal/model"
)

// Peer represents a WebSocket subscriber of a session's countdown feed.
type Peer struct {
	SessionID string
	UserID    string
	Conn      *websocket.Conn
	Send      chan []byte
}

// CountdownHub manages WebSocket subscribers and the countdown tracker of
// each watched session. A tracker is started when the first subscriber
// arrives and stopped when the last one leaves, so no timer outlives its
// audience.
type CountdownHub struct {
	mu       sync.RWMutex
	peers    map[string]map[*Peer]struct{} // sessionID -> set of peers
	trackers map[string]*countdown.Tracker

	reg      *Registry
	cfg      *config.Config
	clock    countdown.Clock
	rnd      countdown.Rand
	upgrader websocket.Upgrader
	log      *zap.Logger
}

// NewCountdownHub creates the hub. clock and rnd may be nil for the system
// defaults.
func NewCountdownHub(reg *Registry, cfg *config.Config, clock countdown.Clock, rnd countdown.Rand, log *zap.Logger) *CountdownHub {
	if clock == nil {
		clock = countdown.SystemClock()
	}
	return &CountdownHub{
		peers:    make(map[string]map[*Peer]struct{}),
		trackers: make(map[string]*countdown.Tracker),
		reg:      reg,
		cfg:      cfg,
		clock:    clock,
		rnd:      rnd,
		log:      log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.WSReadBufferSize,
			WriteBufferSize: cfg.WSWriteBufferSize,
			// Allow all origins for dev; in prod set CheckOrigin.
		},
	}
}

// Register subscribes a connection to a session's countdown and returns the
// peer plus a cleanup function. The session's tracker is started lazily.
func (h *CountdownHub) Register(sessionID, userID string, conn *websocket.Conn) (*Peer, func(), error) {
	sess, err := h.reg.Get(sessionID)
	if err != nil {
		return nil, nil, err
	}

	p := &Peer{
		SessionID: sessionID,
		UserID:    userID,
		Conn:      conn,
		Send:      make(chan []byte, 64),
	}

	h.mu.Lock()
	if h.peers[sessionID] == nil {
		h.peers[sessionID] = make(map[*Peer]struct{})
	}
	h.peers[sessionID][p] = struct{}{}

	var started *countdown.Tracker
	if h.trackers[sessionID] == nil {
		t := countdown.NewTracker(countdown.Config{
			SessionID:      sessionID,
			StartTime:      sess.StartTime,
			Clock:          h.clock,
			Rand:           h.rnd,
			TickInterval:   h.cfg.TickInterval,
			ConfirmDelay:   h.cfg.JoinConfirmDelay,
			InitialWaiting: h.cfg.WaitlistInitial,
			WaitingCap:     h.cfg.WaitlistCap,
			WaitingProb:    h.cfg.WaitlistProb,
			Logger:         h.log,
			OnSnapshot: func(snap model.CountdownSnapshot) {
				h.broadcastSnapshot(snap)
			},
			OnJoined: func(joinedUser string) {
				h.broadcastJoined(sessionID, joinedUser)
			},
		})
		h.trackers[sessionID] = t
		started = t
	}
	h.mu.Unlock()

	if started != nil {
		started.Start()
	}

	h.log.Info("countdown subscriber registered",
		zap.String("session_id", sessionID),
		zap.String("user_id", userID))

	cleanup := func() { h.unregister(sessionID, p) }
	return p, cleanup, nil
}

func (h *CountdownHub) unregister(sessionID string, p *Peer) {
	h.mu.Lock()
	var orphaned *countdown.Tracker
	if m, ok := h.peers[sessionID]; ok {
		delete(m, p)
		if len(m) == 0 {
			delete(h.peers, sessionID)
			orphaned = h.trackers[sessionID]
			delete(h.trackers, sessionID)
		}
	}
	close(p.Send)
	h.mu.Unlock()

	if orphaned != nil {
		orphaned.Stop()
	}
	h.log.Info("countdown subscriber unregistered",
		zap.String("session_id", sessionID),
		zap.String("user_id", p.UserID))
}

// Join forwards a join request to the session's tracker. Returns false when
// the room is closed, a join is already pending, or nobody is watching.
func (h *CountdownHub) Join(sessionID, userID string) bool {
	h.mu.RLock()
	t := h.trackers[sessionID]
	h.mu.RUnlock()
	if t == nil {
		return false
	}
	return t.Join(userID)
}

// Snapshot returns the current countdown view of a watched session. ok is
// false when no tracker is running for it.
func (h *CountdownHub) Snapshot(sessionID string) (model.CountdownSnapshot, bool) {
	h.mu.RLock()
	t := h.trackers[sessionID]
	h.mu.RUnlock()
	if t == nil {
		return model.CountdownSnapshot{}, false
	}
	return t.Snapshot(), true
}

func (h *CountdownHub) broadcastSnapshot(snap model.CountdownSnapshot) {
	raw, err := json.Marshal(snap)
	if err != nil {
		return
	}
	h.broadcast(snap.SessionID, raw)
}

func (h *CountdownHub) broadcastJoined(sessionID, userID string) {
	raw, _ := json.Marshal(model.JoinedEvent{
		Event:     "joined",
		SessionID: sessionID,
		UserID:    userID,
	})
	h.broadcast(sessionID, raw)
}

func (h *CountdownHub) broadcast(sessionID string, data []byte) {
	h.mu.RLock()
	m, ok := h.peers[sessionID]
	if !ok {
		h.mu.RUnlock()
		return
	}
	// Copy peers so we don't hold the lock while writing.
	peers := make([]*Peer, 0, len(m))
	for p := range m {
		peers = append(peers, p)
	}
	h.mu.RUnlock()

	for _, p := range peers {
		select {
		case p.Send <- data:
		default:
			h.log.Warn("subscriber send buffer full", zap.String("user_id", p.UserID))
		}
	}
}

// Shutdown stops every tracker and closes every connection.
func (h *CountdownHub) Shutdown() {
	h.mu.Lock()
	trackers := h.trackers
	peers := h.peers
	h.trackers = make(map[string]*countdown.Tracker)
	h.peers = make(map[string]map[*Peer]struct{})
	h.mu.Unlock()

	for _, t := range trackers {
		t.Stop()
	}
	for sessionID, m := range peers {
		raw, _ := json.Marshal(map[string]string{"event": "feed_closed", "session_id": sessionID})
		for p := range m {
			_ = p.Conn.WriteMessage(websocket.TextMessage, raw)
			close(p.Send)
			_ = p.Conn.Close()
		}
	}
	h.log.Info("countdown hub shut down")
}

// Upgrader returns the WebSocket upgrader for HTTP handlers.
func (h *CountdownHub) Upgrader() *websocket.Upgrader {
	return &h.upgrader
}

// SubscriberCount returns the number of subscribers of a session.
func (h *CountdownHub) SubscriberCount(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.peers[sessionID])
}
