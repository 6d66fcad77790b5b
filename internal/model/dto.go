package model

import "time"

// CreateSessionRequest is the request body for POST /sessions. Kind selects
// which of the optional fields are required.
type CreateSessionRequest struct {
	Kind            SessionKind `json:"kind" binding:"required"`
	PatientName     string      `json:"patient_name,omitempty"`
	ThemeSlug       string      `json:"theme_slug,omitempty"`
	EnvironmentID   string      `json:"environment_id,omitempty"`
	PlannedModules  []string    `json:"planned_modules,omitempty"`
	StartTime       time.Time   `json:"start_time"`
	DurationMinutes int         `json:"duration_minutes"`
	Notes           string      `json:"notes,omitempty"`
}

// CreateSessionResponse is the response for POST /sessions.
type CreateSessionResponse struct {
	Session *Session `json:"session"`
	WSURL   string   `json:"ws_url"`
}

// JoinRequest is the request body for POST /portal/:user_id/join.
type JoinRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

// LaunchVRRequest is the request body for POST /portal/:user_id/launch-vr.
type LaunchVRRequest struct {
	Tier VRAccessTier `json:"tier" binding:"required"`
}

// SwitchRoleRequest is the request body for POST /portal/:user_id/role.
type SwitchRoleRequest struct {
	Role Role `json:"role" binding:"required"`
}

// DropInRequest is the request body for POST /portal/:user_id/drop-in.
type DropInRequest struct {
	ThemeSlug string `json:"theme_slug" binding:"required"`
}

// QuickVRRequest is the request body for POST /portal/:user_id/quick-vr.
type QuickVRRequest struct {
	EnvironmentID string `json:"environment_id" binding:"required"`
}

// PortalStateResponse is the (role, viewState, activeSession) triple consumed
// by the rendering layer after every transition.
type PortalStateResponse struct {
	UserID        string    `json:"user_id"`
	Role          Role      `json:"role"`
	View          ViewState `json:"view"`
	ActiveSession *Session  `json:"active_session,omitempty"`
}

// YieldReport is the bookable-revenue projection over the whole registry.
type YieldReport struct {
	TotalRevenue    int64 `json:"total_revenue"`
	TherapistPayout int64 `json:"therapist_payout"`
	PlatformShare   int64 `json:"platform_share"`

	IndividualSessions int `json:"individual_sessions"`
	GroupSessions      int `json:"group_sessions"`
	VRSessions         int `json:"vr_sessions"`
}

// CountdownSnapshot is pushed to websocket subscribers once per tick.
type CountdownSnapshot struct {
	SessionID        string `json:"session_id"`
	RemainingSeconds int64  `json:"remaining_seconds"`
	Display          string `json:"display"` // mm:ss, clamped at 00:00
	Tier             string `json:"tier"`
	Label            string `json:"label"`
	CTA              string `json:"cta"`
	Urgency          string `json:"urgency"`
	Color            string `json:"color"`
	JoinEnabled      bool   `json:"join_enabled"`
	WaitingCount     int    `json:"waiting_count"`
	Pending          bool   `json:"pending"`
	Closed           bool   `json:"closed"`
}

// JoinedEvent is pushed exactly once per completed join.
type JoinedEvent struct {
	Event     string `json:"event"` // always "joined"
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
}
