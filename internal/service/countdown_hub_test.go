package service

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/manas360/booking-service/internal/errs"
	"github.com/manas360/booking-service/internal/model"
)

func newTestHub(clock *testClock) (*CountdownHub, *Registry) {
	reg := NewRegistry()
	hub := NewCountdownHub(reg, testConfig(), clock, constRand{v: 0.99}, zap.NewNop())
	return hub, reg
}

// TestHubRegisterStreamsInitialSnapshot: the first subscriber starts the
// tracker and immediately receives a tick-consistent snapshot.
func TestHubRegisterStreamsInitialSnapshot(t *testing.T) {
	clock := newTestClock(portalT0)
	hub, reg := newTestHub(clock)
	reg.Insert(&model.Session{ID: "sess-1", Kind: model.KindGroup, StartTime: portalT0.Add(700 * time.Second)})

	peer, cleanup, err := hub.Register("sess-1", "pt-1", nil)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	defer cleanup()

	select {
	case raw := <-peer.Send:
		var snap model.CountdownSnapshot
		if err := json.Unmarshal(raw, &snap); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if snap.Tier != "COMING_SOON" {
			t.Fatalf("tier = %s, want COMING_SOON", snap.Tier)
		}
		if snap.RemainingSeconds != 700 {
			t.Fatalf("remaining = %d, want 700", snap.RemainingSeconds)
		}
		if !snap.JoinEnabled {
			t.Fatal("join disabled for an open room")
		}
	default:
		t.Fatal("no initial snapshot broadcast")
	}
}

func TestHubRegisterUnknownSession(t *testing.T) {
	hub, _ := newTestHub(newTestClock(portalT0))
	if _, _, err := hub.Register("missing", "pt-1", nil); !errors.Is(err, errs.ErrSessionNotFound) {
		t.Fatalf("err = %v, want ErrSessionNotFound", err)
	}
}

// TestHubJoinBroadcastsOnce: a join request confirms after the delay and the
// joined event reaches every subscriber exactly once.
func TestHubJoinBroadcastsOnce(t *testing.T) {
	clock := newTestClock(portalT0)
	hub, reg := newTestHub(clock)
	reg.Insert(&model.Session{ID: "sess-1", Kind: model.KindGroup, StartTime: portalT0.Add(10 * time.Minute)})

	peer, cleanup, err := hub.Register("sess-1", "pt-1", nil)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	defer cleanup()
	<-peer.Send // initial snapshot

	if !hub.Join("sess-1", "pt-1") {
		t.Fatal("join rejected for an open room")
	}
	if hub.Join("sess-1", "pt-2") {
		t.Fatal("second join accepted while pending")
	}

	clock.fireTimers()

	select {
	case raw := <-peer.Send:
		var ev model.JoinedEvent
		if err := json.Unmarshal(raw, &ev); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if ev.Event != "joined" || ev.UserID != "pt-1" {
			t.Fatalf("event = %+v", ev)
		}
	default:
		t.Fatal("joined event not broadcast")
	}

	select {
	case raw := <-peer.Send:
		t.Fatalf("unexpected extra frame: %s", raw)
	default:
	}
}

// TestHubJoinWithoutSubscribers: no tracker is running, so the join cannot
// be accepted.
func TestHubJoinWithoutSubscribers(t *testing.T) {
	clock := newTestClock(portalT0)
	hub, reg := newTestHub(clock)
	reg.Insert(&model.Session{ID: "sess-1", Kind: model.KindGroup, StartTime: portalT0.Add(10 * time.Minute)})
	if hub.Join("sess-1", "pt-1") {
		t.Fatal("join accepted with no running tracker")
	}
}

// TestHubTeardownStopsTracker: when the last subscriber leaves, the tracker
// stops and a pending join confirmation never fires.
func TestHubTeardownStopsTracker(t *testing.T) {
	clock := newTestClock(portalT0)
	hub, reg := newTestHub(clock)
	reg.Insert(&model.Session{ID: "sess-1", Kind: model.KindGroup, StartTime: portalT0.Add(10 * time.Minute)})

	peer, cleanup, err := hub.Register("sess-1", "pt-1", nil)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	<-peer.Send

	if !hub.Join("sess-1", "pt-1") {
		t.Fatal("join rejected")
	}
	cleanup()

	if n := hub.SubscriberCount("sess-1"); n != 0 {
		t.Fatalf("subscribers = %d, want 0", n)
	}
	if _, ok := hub.Snapshot("sess-1"); ok {
		t.Fatal("tracker survived the last unsubscribe")
	}

	// The armed confirmation is stale now and must be suppressed.
	clock.fireTimers()
	select {
	case raw, open := <-peer.Send:
		if open {
			t.Fatalf("frame after teardown: %s", raw)
		}
	default:
	}
}

// TestHubSharedTracker: a second subscriber attaches to the same tracker
// rather than starting a new one.
func TestHubSharedTracker(t *testing.T) {
	clock := newTestClock(portalT0)
	hub, reg := newTestHub(clock)
	reg.Insert(&model.Session{ID: "sess-1", Kind: model.KindGroup, StartTime: portalT0.Add(10 * time.Minute)})

	p1, cleanup1, err := hub.Register("sess-1", "pt-1", nil)
	if err != nil {
		t.Fatalf("Register pt-1: %v", err)
	}
	defer cleanup1()
	<-p1.Send

	p2, cleanup2, err := hub.Register("sess-1", "pt-2", nil)
	if err != nil {
		t.Fatalf("Register pt-2: %v", err)
	}
	defer cleanup2()

	if n := hub.SubscriberCount("sess-1"); n != 2 {
		t.Fatalf("subscribers = %d, want 2", n)
	}

	// A confirmed join reaches both.
	if !hub.Join("sess-1", "pt-2") {
		t.Fatal("join rejected")
	}
	clock.fireTimers()
	for _, p := range []*Peer{p1, p2} {
		select {
		case <-p.Send:
		default:
			t.Fatalf("subscriber %s missed the joined event", p.UserID)
		}
	}
}
