package service

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/manas360/booking-service/internal/catalog"
	"github.com/manas360/booking-service/internal/config"
	"github.com/manas360/booking-service/internal/countdown"
	"github.com/manas360/booking-service/internal/errs"
	"github.com/manas360/booking-service/internal/lifecycle"
	"github.com/manas360/booking-service/internal/model"
)

// Portal owns the session registry and the per-actor view states, and applies
// lifecycle transitions on behalf of portal users.
type Portal struct {
	reg   *Registry
	cfg   *config.Config
	clock countdown.Clock
	rnd   countdown.Rand
	log   *zap.Logger

	mu     sync.Mutex
	actors map[string]lifecycle.State
}

// NewPortal creates the portal service. clock and rnd may be nil for the
// system defaults.
func NewPortal(reg *Registry, cfg *config.Config, clock countdown.Clock, rnd countdown.Rand, log *zap.Logger) *Portal {
	if clock == nil {
		clock = countdown.SystemClock()
	}
	p := &Portal{
		reg:    reg,
		cfg:    cfg,
		clock:  clock,
		rnd:    rnd,
		log:    log,
		actors: make(map[string]lifecycle.State),
	}
	return p
}

// Registry exposes the session registry for read-side collaborators.
func (p *Portal) Registry() *Registry { return p.reg }

func (p *Portal) actorLocked(userID string) lifecycle.State {
	st, ok := p.actors[userID]
	if !ok {
		st = lifecycle.NewState(model.RolePatient)
	}
	return st
}

func (p *Portal) stateResponse(userID string, st lifecycle.State) model.PortalStateResponse {
	return model.PortalStateResponse{
		UserID:        userID,
		Role:          st.Role,
		View:          st.View,
		ActiveSession: st.Active,
	}
}

// Create validates the descriptor and inserts a fully-formed session into the
// registry. The registry is untouched on validation failure.
func (p *Portal) Create(req model.CreateSessionRequest) (*model.Session, error) {
	if req.DurationMinutes <= 0 {
		return nil, &errs.ValidationError{Field: "duration_minutes", Reason: "must be positive"}
	}

	start := req.StartTime
	if start.IsZero() {
		start = p.clock.Now()
	}

	sess := &model.Session{
		ID:              uuid.New().String(),
		Kind:            req.Kind,
		TherapistName:   p.cfg.TherapistName,
		StartTime:       start,
		DurationMinutes: req.DurationMinutes,
		Status:          model.SessionStatusScheduled,
		Encrypted:       true,
		Notes:           req.Notes,
	}

	switch req.Kind {
	case model.KindIndividual:
		if req.PatientName == "" {
			return nil, &errs.ValidationError{Field: "patient_name", Reason: "is required for individual sessions"}
		}
		sess.Individual = &model.IndividualDetails{PatientName: req.PatientName}

	case model.KindGroup:
		if req.ThemeSlug == "" {
			return nil, &errs.ValidationError{Field: "theme_slug", Reason: "is required for group sessions"}
		}
		theme, ok := catalog.ThemeBySlug(req.ThemeSlug)
		if !ok {
			return nil, &errs.ValidationError{Field: "theme_slug", Reason: "does not match a known theme"}
		}
		sess.Group = &model.GroupDetails{
			Theme:               theme,
			CurrentParticipants: 1,
			MaxParticipants:     p.cfg.GroupCapacity,
		}

	case model.KindVR:
		if req.PatientName == "" {
			return nil, &errs.ValidationError{Field: "patient_name", Reason: "is required for vr sessions"}
		}
		env, ok := catalog.EnvironmentByID(req.EnvironmentID)
		if !ok {
			return nil, &errs.ValidationError{Field: "environment_id", Reason: "does not match a known environment"}
		}
		modules := req.PlannedModules
		if len(modules) == 0 {
			modules = catalog.DefaultModules
		}
		for _, id := range modules {
			if _, ok := catalog.ModuleByID(id); !ok {
				return nil, &errs.ValidationError{Field: "planned_modules", Reason: "contains an unknown module"}
			}
		}
		sess.VR = &model.VRDetails{
			PatientName:    req.PatientName,
			Environment:    env,
			PlannedModules: modules,
		}

	default:
		return nil, &errs.ValidationError{Field: "kind", Reason: "must be individual, group or vr"}
	}

	p.reg.Insert(sess)
	p.log.Info("session created",
		zap.String("session_id", sess.ID),
		zap.String("kind", string(sess.Kind)),
		zap.Time("start_time", sess.StartTime))
	return sess, nil
}

// Join applies the join transition for the user against a registered session.
func (p *Portal) Join(userID, sessionID string) (model.PortalStateResponse, error) {
	sess, err := p.reg.Get(sessionID)
	if err != nil {
		return model.PortalStateResponse{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	st, err := lifecycle.Join(p.actorLocked(userID), sess)
	if err != nil {
		return model.PortalStateResponse{}, err
	}
	p.actors[userID] = st
	p.log.Info("session joined",
		zap.String("session_id", sessionID),
		zap.String("user_id", userID),
		zap.String("view", string(st.View)))
	return p.stateResponse(userID, st), nil
}

// LaunchVR attaches the chosen access tier and enters the video room.
func (p *Portal) LaunchVR(userID string, tier model.VRAccessTier) (model.PortalStateResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	st, err := lifecycle.LaunchVR(p.actorLocked(userID), tier)
	if err != nil {
		return model.PortalStateResponse{}, err
	}
	p.actors[userID] = st
	return p.stateResponse(userID, st), nil
}

// Admit moves the therapist from the waiting room into the video room.
func (p *Portal) Admit(userID string) (model.PortalStateResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	st, err := lifecycle.Admit(p.actorLocked(userID))
	if err != nil {
		return model.PortalStateResponse{}, err
	}
	p.actors[userID] = st
	return p.stateResponse(userID, st), nil
}

// Leave exits the video room into the feedback screen.
func (p *Portal) Leave(userID string) (model.PortalStateResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	st, err := lifecycle.Leave(p.actorLocked(userID))
	if err != nil {
		return model.PortalStateResponse{}, err
	}
	p.actors[userID] = st
	return p.stateResponse(userID, st), nil
}

// AcknowledgeFeedback returns the user to the dashboard.
func (p *Portal) AcknowledgeFeedback(userID string) (model.PortalStateResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	st, err := lifecycle.AcknowledgeFeedback(p.actorLocked(userID))
	if err != nil {
		return model.PortalStateResponse{}, err
	}
	p.actors[userID] = st
	return p.stateResponse(userID, st), nil
}

// SwitchRole hard-resets the user's portal context under the new role.
func (p *Portal) SwitchRole(userID string, role model.Role) (model.PortalStateResponse, error) {
	if !role.Valid() {
		return model.PortalStateResponse{}, &errs.ValidationError{Field: "role", Reason: "must be therapist or patient"}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	st := lifecycle.SwitchRole(p.actorLocked(userID), role)
	p.actors[userID] = st
	return p.stateResponse(userID, st), nil
}

// State returns the user's current portal context.
func (p *Portal) State(userID string) model.PortalStateResponse {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stateResponse(userID, p.actorLocked(userID))
}

// DropIn synthesizes a live group session from a theme and joins the user
// into it.
func (p *Portal) DropIn(userID, themeSlug string) (model.PortalStateResponse, error) {
	theme, ok := catalog.ThemeBySlug(themeSlug)
	if !ok {
		return model.PortalStateResponse{}, errs.ErrUnknownTheme
	}
	theme.SocialProofStat = "Active Session"
	theme.SocialProofIcon = "🔥"

	participants := 4
	if p.rnd != nil {
		participants += int(p.rnd.Float64() * 8)
	}
	if participants > p.cfg.GroupCapacity {
		participants = p.cfg.GroupCapacity
	}

	sess := &model.Session{
		ID:              uuid.New().String(),
		Kind:            model.KindGroup,
		TherapistName:   "Certified Moderator",
		StartTime:       p.clock.Now(),
		DurationMinutes: p.cfg.DropInMinutes,
		Status:          model.SessionStatusLive,
		Encrypted:       true,
		Group: &model.GroupDetails{
			Theme:               theme,
			CurrentParticipants: participants,
			MaxParticipants:     p.cfg.GroupCapacity,
		},
	}
	p.reg.Insert(sess)

	p.mu.Lock()
	defer p.mu.Unlock()
	st, err := lifecycle.Join(p.actorLocked(userID), sess)
	if err != nil {
		return model.PortalStateResponse{}, err
	}
	p.actors[userID] = st
	return p.stateResponse(userID, st), nil
}

// QuickVR synthesizes a live VR session in the given environment and routes
// the user through the launcher.
func (p *Portal) QuickVR(userID, environmentID string) (model.PortalStateResponse, error) {
	env, ok := catalog.EnvironmentByID(environmentID)
	if !ok {
		return model.PortalStateResponse{}, errs.ErrUnknownEnvironment
	}

	sess := &model.Session{
		ID:              uuid.New().String(),
		Kind:            model.KindVR,
		TherapistName:   p.cfg.TherapistName,
		StartTime:       p.clock.Now(),
		DurationMinutes: p.cfg.QuickVRMinutes,
		Status:          model.SessionStatusLive,
		Encrypted:       true,
		VR: &model.VRDetails{
			PatientName:    "Anonymous User",
			Environment:    env,
			PlannedModules: catalog.DefaultModules,
		},
	}
	p.reg.Insert(sess)

	p.mu.Lock()
	defer p.mu.Unlock()
	st, err := lifecycle.Join(p.actorLocked(userID), sess)
	if err != nil {
		return model.PortalStateResponse{}, err
	}
	p.actors[userID] = st
	return p.stateResponse(userID, st), nil
}

// Yield recomputes the bookable-revenue projection over the whole registry.
func (p *Portal) Yield() model.YieldReport {
	rates := YieldRates{
		Group:      p.cfg.GroupRate,
		VR:         p.cfg.VRRate,
		Individual: p.cfg.IndividualRate,
	}
	return ComputeYield(p.reg.List(""), rates, p.cfg.PayoutFraction)
}
