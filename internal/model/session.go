package model

import "time"

// SessionKind discriminates the three session shapes. Routing code must check
// KindVR before KindGroup; VR always takes precedence.
type SessionKind string

const (
	KindIndividual SessionKind = "individual"
	KindGroup      SessionKind = "group"
	KindVR         SessionKind = "vr"
)

// SessionStatus represents booking session state.
type SessionStatus string

const (
	SessionStatusScheduled SessionStatus = "scheduled"
	SessionStatusLive      SessionStatus = "live"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusCancelled SessionStatus = "cancelled"
)

// VRAccessTier is the access tier chosen in the VR launcher.
type VRAccessTier string

const (
	VRTierStandard  VRAccessTier = "standard"
	VRTierImmersive VRAccessTier = "immersive"
	VRTierClinical  VRAccessTier = "clinical"
)

// Session is a therapy session owned by the in-memory registry. Exactly one
// of Individual, Group or VR is set, selected by Kind.
type Session struct {
	ID              string        `json:"id"`
	Kind            SessionKind   `json:"kind"`
	TherapistName   string        `json:"therapist_name"`
	StartTime       time.Time     `json:"start_time"`
	DurationMinutes int           `json:"duration_minutes"`
	Status          SessionStatus `json:"status"`
	Encrypted       bool          `json:"encrypted"`
	Notes           string        `json:"notes,omitempty"`

	Individual *IndividualDetails `json:"individual,omitempty"`
	Group      *GroupDetails      `json:"group,omitempty"`
	VR         *VRDetails         `json:"vr,omitempty"`
}

// IndividualDetails is the payload of a one-on-one video session.
type IndividualDetails struct {
	PatientName string `json:"patient_name"`
}

// GroupDetails is the payload of a capacity-bounded drop-in session.
type GroupDetails struct {
	Theme               GroupTheme `json:"theme"`
	CurrentParticipants int        `json:"current_participants"`
	MaxParticipants     int        `json:"max_participants"`
}

// GroupTheme is a room vibe with its social-proof copy.
type GroupTheme struct {
	Slug            string `json:"slug"`
	Name            string `json:"name"`
	Emoji           string `json:"emoji"`
	SocialProofStat string `json:"social_proof_stat"`
	SocialProofIcon string `json:"social_proof_icon"`
}

// VRDetails is the payload of an immersive CBT session.
type VRDetails struct {
	PatientName    string        `json:"patient_name"`
	Environment    VREnvironment `json:"environment"`
	Tier           VRAccessTier  `json:"tier,omitempty"` // empty until launch
	PlannedModules []string      `json:"planned_modules"`
}

// VREnvironment is a catalog reference carried on the session.
type VREnvironment struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	NameHindi        string   `json:"name_hi"`
	Icon             string   `json:"icon"`
	Thumbnail        string   `json:"thumbnail"`
	TherapyType      string   `json:"therapy_type"`
	TargetConditions []string `json:"target_conditions"`
}

// IsVR reports whether the session routes through the VR launcher.
func (s *Session) IsVR() bool { return s.Kind == KindVR }

// IsGroup reports whether the session is a drop-in group room.
func (s *Session) IsGroup() bool { return s.Kind == KindGroup }

// SpotsLeft returns remaining group capacity, or 0 for non-group sessions.
func (s *Session) SpotsLeft() int {
	if s.Group == nil {
		return 0
	}
	n := s.Group.MaxParticipants - s.Group.CurrentParticipants
	if n < 0 {
		return 0
	}
	return n
}
