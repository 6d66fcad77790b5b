// Package catalog holds the static reference data supplied to the session
// engine: group themes, VR environments and CBT modules. Entries are looked
// up by slug or id and never mutated.
package catalog

import "github.com/manas360/booking-service/internal/model"

// GroupThemes are the drop-in room vibes, first entry is the featured room.
var GroupThemes = []model.GroupTheme{
	{Slug: "student-stress", Name: "Student Stress Circle", Emoji: "🎓", SocialProofStat: "78% found new direction within 3 months", SocialProofIcon: "💚"},
	{Slug: "career-crossroads", Name: "Career Crossroads", Emoji: "💼", SocialProofStat: "78% found new direction within 3 months", SocialProofIcon: "💚"},
	{Slug: "anxiety-unwind", Name: "Anxiety Unwind", Emoji: "🌊", SocialProofStat: "82% report calmer weeks", SocialProofIcon: "💙"},
	{Slug: "grief-support", Name: "Grief Support", Emoji: "🕊️", SocialProofStat: "Safe space, moderated daily", SocialProofIcon: "🤍"},
	{Slug: "new-parents", Name: "New Parents Room", Emoji: "🍼", SocialProofStat: "Join 900+ parents this month", SocialProofIcon: "💛"},
	{Slug: "late-night-vent", Name: "Late Night Vent", Emoji: "🌙", SocialProofStat: "Most active 11 PM - 2 AM", SocialProofIcon: "🧡"},
}

// VREnvironments are the pre-built immersive scenes.
var VREnvironments = []model.VREnvironment{
	{
		ID: "therapy_forest", Name: "Therapy Forest", NameHindi: "चिकित्सा वन",
		Icon: "🌲", Thumbnail: "/assets/vr/therapy_forest.jpg",
		TherapyType: "Grounding", TargetConditions: []string{"anxiety", "stress"},
	},
	{
		ID: "calm_beach", Name: "Calm Beach", NameHindi: "शांत समुद्र तट",
		Icon: "🏖️", Thumbnail: "/assets/vr/calm_beach.jpg",
		TherapyType: "Relaxation", TargetConditions: []string{"stress", "insomnia"},
	},
	{
		ID: "mountain_peak", Name: "Mountain Peak", NameHindi: "पर्वत शिखर",
		Icon: "⛰️", Thumbnail: "/assets/vr/mountain_peak.jpg",
		TherapyType: "Exposure", TargetConditions: []string{"acrophobia", "panic"},
	},
	{
		ID: "city_square", Name: "City Square", NameHindi: "नगर चौक",
		Icon: "🏙️", Thumbnail: "/assets/vr/city_square.jpg",
		TherapyType: "Exposure", TargetConditions: []string{"social anxiety", "agoraphobia"},
	},
}

// CBTModule is an interactive exercise attachable to a VR session.
type CBTModule struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// CBTModules are the interactive CBT exercises.
var CBTModules = []CBTModule{
	{ID: "thought_record", Name: "Thought Record", Icon: "💭", Description: "Capture and reframe automatic thoughts as floating 3D cards."},
	{ID: "grounding", Name: "5-4-3-2-1 Grounding", Icon: "🌱", Description: "Sensory grounding walk through the active environment."},
	{ID: "exposure", Name: "Graded Exposure", Icon: "🪜", Description: "Stepwise real-world exposure simulation with therapist pacing."},
	{ID: "breathing", Name: "Paced Breathing", Icon: "🫁", Description: "Visual breathing pacer synced to the environment's ambience."},
	{ID: "behavioral_activation", Name: "Behavioral Activation", Icon: "⚡", Description: "Plan and rehearse valued activities inside the scene."},
}

// DefaultModules is the module set attached to quick-launched VR sessions.
var DefaultModules = []string{"thought_record", "exposure", "grounding"}

// ThemeBySlug looks up a group theme. ok is false for unknown slugs.
func ThemeBySlug(slug string) (model.GroupTheme, bool) {
	for _, t := range GroupThemes {
		if t.Slug == slug {
			return t, true
		}
	}
	return model.GroupTheme{}, false
}

// EnvironmentByID looks up a VR environment. ok is false for unknown ids.
func EnvironmentByID(id string) (model.VREnvironment, bool) {
	for _, e := range VREnvironments {
		if e.ID == id {
			return e, true
		}
	}
	return model.VREnvironment{}, false
}

// ModuleByID looks up a CBT module. ok is false for unknown ids.
func ModuleByID(id string) (CBTModule, bool) {
	for _, m := range CBTModules {
		if m.ID == id {
			return m, true
		}
	}
	return CBTModule{}, false
}
