// Package countdown derives live urgency tiers from a session's start time
// and drives the tick/join timers behind the patient-facing live indicator.
package countdown

import (
	"fmt"
	"time"
)

// Tier is the discrete urgency classification of a session.
type Tier string

const (
	TierRoomClosed   Tier = "ROOM_CLOSED"
	TierLiveNow      Tier = "LIVE_NOW"
	TierFinalMinutes Tier = "FINAL_MINUTES"
	TierGoingLive    Tier = "GOING_LIVE"
	TierComingSoon   Tier = "COMING_SOON"
)

// Tier band bounds, in seconds of remaining time. First match wins.
const (
	liveNowBound      = 120
	finalMinutesBound = 360
	goingLiveBound    = 600
)

// Classify maps remaining seconds to a tier. Pure; closure latching is the
// Tracker's job.
func Classify(remaining int64) Tier {
	switch {
	case remaining <= 0:
		return TierRoomClosed
	case remaining <= liveNowBound:
		return TierLiveNow
	case remaining <= finalMinutesBound:
		return TierFinalMinutes
	case remaining <= goingLiveBound:
		return TierGoingLive
	default:
		return TierComingSoon
	}
}

// JoinEnabled reports whether the join action is available in this tier.
func (t Tier) JoinEnabled() bool { return t != TierRoomClosed }

// Directive carries the rendering hints attached to a tier. The engine treats
// every field except the tier identity as opaque.
type Directive struct {
	Label   string
	Color   string
	Glow    string
	Anim    string
	CTA     string
	Urgency string
}

// Directive returns the rendering directive for the tier. remaining feeds the
// minutes-remaining copy of the GOING_LIVE band.
func (t Tier) Directive(remaining int64) Directive {
	switch t {
	case TierRoomClosed:
		return Directive{
			Label:   "🏁 ROOM CLOSED",
			Color:   "#64748b",
			Glow:    "rgba(100, 116, 139, 0.2)",
			Anim:    "none",
			CTA:     "SESSION COMPLETED",
			Urgency: "Room is now closed",
		}
	case TierLiveNow:
		return Directive{
			Label:   "🔴 LIVE NOW",
			Color:   "#FF1744",
			Glow:    "rgba(255, 23, 108, 0.8)",
			Anim:    "urgentFlash 0.5s ease-in-out infinite",
			CTA:     "JOIN NOW!",
			Urgency: "STARTING NOW!",
		}
	case TierFinalMinutes:
		return Directive{
			Label:   "⚡ FINAL MINUTES",
			Color:   "#00D9FF",
			Glow:    "rgba(0, 217, 255, 0.6)",
			Anim:    "neonPulse 1s ease-in-out infinite",
			CTA:     "TAP TO JOIN",
			Urgency: "Only a few mins left!",
		}
	case TierGoingLive:
		mins := (remaining + 59) / 60
		return Directive{
			Label:   "✨ GOING LIVE",
			Color:   "#39FF14",
			Glow:    "rgba(57, 255, 20, 0.6)",
			Anim:    "neonPulse 1.5s ease-in-out infinite",
			CTA:     "TAP TO JOIN",
			Urgency: fmt.Sprintf("%d mins remain", mins),
		}
	default:
		return Directive{
			Label:   "📅 COMING SOON",
			Color:   "#00D9FF",
			Glow:    "rgba(0, 217, 255, 0.4)",
			Anim:    "neonPulse 3s ease-in-out infinite",
			CTA:     "JOIN WAITLIST",
			Urgency: "Starting shortly",
		}
	}
}

// RemainingSeconds returns floor((start-now)/1s). Floor, not truncation, so
// that a start time 0.5s in the past already reads as -1 rather than 0.
func RemainingSeconds(start, now time.Time) int64 {
	d := start.Sub(now)
	sec := int64(d / time.Second)
	if d < 0 && d%time.Second != 0 {
		sec--
	}
	return sec
}

// FormatClock renders remaining seconds as mm:ss, clamped at 00:00.
func FormatClock(remaining int64) string {
	if remaining < 0 {
		remaining = 0
	}
	return fmt.Sprintf("%02d:%02d", remaining/60, remaining%60)
}
