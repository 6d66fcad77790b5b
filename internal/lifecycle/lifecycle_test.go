package lifecycle

import (
	"errors"
	"testing"

	"github.com/manas360/booking-service/internal/errs"
	"github.com/manas360/booking-service/internal/model"
)

func vrSession() *model.Session {
	return &model.Session{
		ID:   "sess-vr",
		Kind: model.KindVR,
		VR:   &model.VRDetails{PatientName: "Sarah J."},
	}
}

func videoSession() *model.Session {
	return &model.Session{
		ID:         "sess-1",
		Kind:       model.KindIndividual,
		Individual: &model.IndividualDetails{PatientName: "Sarah J."},
	}
}

// TestJoinRouting: VR goes through the launcher for everyone; plain video
// routes patients straight into the room and therapists into the waiting room.
func TestJoinRouting(t *testing.T) {
	cases := []struct {
		role model.Role
		sess *model.Session
		want model.ViewState
	}{
		{model.RolePatient, vrSession(), model.ViewVRLauncher},
		{model.RoleTherapist, vrSession(), model.ViewVRLauncher},
		{model.RolePatient, videoSession(), model.ViewVideoRoom},
		{model.RoleTherapist, videoSession(), model.ViewWaitingRoom},
	}
	for _, c := range cases {
		st, err := Join(NewState(c.role), c.sess)
		if err != nil {
			t.Fatalf("Join(%s, %s): %v", c.role, c.sess.Kind, err)
		}
		if st.View != c.want {
			t.Fatalf("Join(%s, %s) view = %s, want %s", c.role, c.sess.Kind, st.View, c.want)
		}
		if st.Active == nil || st.Active.ID != c.sess.ID {
			t.Fatalf("Join did not set the active session")
		}
	}
}

// TestVRPrecedence: a session flagged VR routes through the launcher even if
// it somehow also carries group data.
func TestVRPrecedence(t *testing.T) {
	sess := vrSession()
	sess.Group = &model.GroupDetails{CurrentParticipants: 3, MaxParticipants: 15}
	st, err := Join(NewState(model.RolePatient), sess)
	if err != nil {
		t.Fatalf("Join: %v", err)
	}
	if st.View != model.ViewVRLauncher {
		t.Fatalf("view = %s, want %s", st.View, model.ViewVRLauncher)
	}
}

func TestJoinNilSession(t *testing.T) {
	if _, err := Join(NewState(model.RolePatient), nil); !errors.Is(err, errs.ErrNoActiveSession) {
		t.Fatalf("err = %v, want ErrNoActiveSession", err)
	}
}

// TestLaunchVR attaches the tier and enters the video room.
func TestLaunchVR(t *testing.T) {
	st, err := Join(NewState(model.RolePatient), vrSession())
	if err != nil {
		t.Fatalf("Join: %v", err)
	}
	st, err = LaunchVR(st, model.VRTierImmersive)
	if err != nil {
		t.Fatalf("LaunchVR: %v", err)
	}
	if st.View != model.ViewVideoRoom {
		t.Fatalf("view = %s, want %s", st.View, model.ViewVideoRoom)
	}
	if st.Active.VR.Tier != model.VRTierImmersive {
		t.Fatalf("tier = %s, want %s", st.Active.VR.Tier, model.VRTierImmersive)
	}
}

// TestLaunchVRGuards: launching outside the launcher, or with no active
// session, is rejected without corrupting the state.
func TestLaunchVRGuards(t *testing.T) {
	st := NewState(model.RolePatient)
	got, err := LaunchVR(st, model.VRTierStandard)
	if !errors.Is(err, errs.ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
	if got.View != st.View {
		t.Fatalf("view changed on rejected transition: %s", got.View)
	}

	// Forced into the launcher view with no active session.
	st.View = model.ViewVRLauncher
	if _, err := LaunchVR(st, model.VRTierStandard); !errors.Is(err, errs.ErrNoActiveSession) {
		t.Fatalf("err = %v, want ErrNoActiveSession", err)
	}
}

// TestFullTherapistLoop drives the cyclic machine end to end:
// DASHBOARD -> WAITING_ROOM -> VIDEO_ROOM -> FEEDBACK -> DASHBOARD.
func TestFullTherapistLoop(t *testing.T) {
	st, err := Join(NewState(model.RoleTherapist), videoSession())
	if err != nil {
		t.Fatalf("Join: %v", err)
	}
	if st, err = Admit(st); err != nil {
		t.Fatalf("Admit: %v", err)
	}
	if st.View != model.ViewVideoRoom {
		t.Fatalf("view = %s, want %s", st.View, model.ViewVideoRoom)
	}
	if st, err = Leave(st); err != nil {
		t.Fatalf("Leave: %v", err)
	}
	if st.View != model.ViewFeedback {
		t.Fatalf("view = %s, want %s", st.View, model.ViewFeedback)
	}
	if st, err = AcknowledgeFeedback(st); err != nil {
		t.Fatalf("AcknowledgeFeedback: %v", err)
	}
	if st.View != model.ViewDashboard {
		t.Fatalf("view = %s, want %s", st.View, model.ViewDashboard)
	}
	if st.Active != nil {
		t.Fatal("active session not cleared after feedback")
	}
}

// TestInvalidTransitions: each guarded transition rejects wrong source views.
func TestInvalidTransitions(t *testing.T) {
	st := NewState(model.RolePatient)
	if _, err := Admit(st); !errors.Is(err, errs.ErrInvalidTransition) {
		t.Fatalf("Admit from dashboard: %v", err)
	}
	if _, err := Leave(st); !errors.Is(err, errs.ErrInvalidTransition) {
		t.Fatalf("Leave from dashboard: %v", err)
	}
	if _, err := AcknowledgeFeedback(st); !errors.Is(err, errs.ErrInvalidTransition) {
		t.Fatalf("AcknowledgeFeedback from dashboard: %v", err)
	}
}

// TestSwitchRoleHardReset: switching roles resets mid-session, no matter the
// current view.
func TestSwitchRoleHardReset(t *testing.T) {
	st, err := Join(NewState(model.RolePatient), videoSession())
	if err != nil {
		t.Fatalf("Join: %v", err)
	}
	st = SwitchRole(st, model.RoleTherapist)
	if st.Role != model.RoleTherapist {
		t.Fatalf("role = %s, want therapist", st.Role)
	}
	if st.View != model.ViewDashboard {
		t.Fatalf("view = %s, want %s", st.View, model.ViewDashboard)
	}
	if st.Active != nil {
		t.Fatal("active session survived the role switch")
	}
}
