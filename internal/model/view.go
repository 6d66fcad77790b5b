package model

// Role is the acting user's side of the portal.
type Role string

const (
	RoleTherapist Role = "therapist"
	RolePatient   Role = "patient"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool { return r == RoleTherapist || r == RolePatient }

// ViewState marks what the acting user is currently looking at. It is derived
// per actor and never stored on a session.
type ViewState string

const (
	ViewDashboard   ViewState = "DASHBOARD"
	ViewVRLauncher  ViewState = "VR_LAUNCHER"
	ViewWaitingRoom ViewState = "WAITING_ROOM"
	ViewVideoRoom   ViewState = "VIDEO_ROOM"
	ViewFeedback    ViewState = "FEEDBACK"
)
