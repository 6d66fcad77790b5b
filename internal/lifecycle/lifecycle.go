// Package lifecycle implements the per-actor view-state machine. Transitions
// are pure functions over a State value; callers own where states live.
package lifecycle

import (
	"fmt"

	"github.com/manas360/booking-service/internal/errs"
	"github.com/manas360/booking-service/internal/model"
)

// State is the acting user's portal context: role, current view and the
// session being acted on. The zero View is not valid; use NewState.
type State struct {
	Role   model.Role
	View   model.ViewState
	Active *model.Session
}

// NewState returns the initial state: dashboard, no active session.
func NewState(role model.Role) State {
	return State{Role: role, View: model.ViewDashboard}
}

// Join sets the active session and routes to the next view. VR sessions go
// through the launcher regardless of role. For plain video sessions only the
// therapist passes through the waiting room; the patient enters the room
// directly.
func Join(s State, sess *model.Session) (State, error) {
	if sess == nil {
		return s, errs.ErrNoActiveSession
	}
	s.Active = sess
	switch {
	case sess.IsVR():
		s.View = model.ViewVRLauncher
	case s.Role == model.RolePatient:
		s.View = model.ViewVideoRoom
	default:
		s.View = model.ViewWaitingRoom
	}
	return s, nil
}

// LaunchVR attaches the chosen access tier to the active VR session and
// enters the video room. Valid only from the launcher.
func LaunchVR(s State, tier model.VRAccessTier) (State, error) {
	if s.View != model.ViewVRLauncher {
		return s, fmt.Errorf("launch vr from %s: %w", s.View, errs.ErrInvalidTransition)
	}
	if s.Active == nil || s.Active.VR == nil {
		return s, errs.ErrNoActiveSession
	}
	s.Active.VR.Tier = tier
	s.View = model.ViewVideoRoom
	return s, nil
}

// Admit lets the remote participant in. Valid only from the waiting room;
// session data is untouched.
func Admit(s State) (State, error) {
	if s.View != model.ViewWaitingRoom {
		return s, fmt.Errorf("admit from %s: %w", s.View, errs.ErrInvalidTransition)
	}
	s.View = model.ViewVideoRoom
	return s, nil
}

// Leave exits the video room into the feedback screen.
func Leave(s State) (State, error) {
	if s.View != model.ViewVideoRoom {
		return s, fmt.Errorf("leave from %s: %w", s.View, errs.ErrInvalidTransition)
	}
	s.View = model.ViewFeedback
	return s, nil
}

// AcknowledgeFeedback closes the loop back to the dashboard and clears the
// active session.
func AcknowledgeFeedback(s State) (State, error) {
	if s.View != model.ViewFeedback {
		return s, fmt.Errorf("acknowledge feedback from %s: %w", s.View, errs.ErrInvalidTransition)
	}
	s.View = model.ViewDashboard
	s.Active = nil
	return s, nil
}

// SwitchRole is a hard reset: back to the dashboard with no active session,
// whatever the current view. It never fails.
func SwitchRole(s State, role model.Role) State {
	return NewState(role)
}
