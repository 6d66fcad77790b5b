package service

import (
	"sort"
	"sync"

	"github.com/manas360/booking-service/internal/errs"
	"github.com/manas360/booking-service/internal/model"
)

// Registry is the in-memory session store. Sessions live for the process
// lifetime; there is no deletion path. The slice is kept sorted ascending by
// start time, which the rendering layer depends on for "next session" views.
type Registry struct {
	mu       sync.RWMutex
	sessions []*model.Session
	byID     map[string]*model.Session
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]*model.Session)}
}

// Insert adds a session, preserving start-time order.
func (r *Registry) Insert(s *model.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := sort.Search(len(r.sessions), func(i int) bool {
		return r.sessions[i].StartTime.After(s.StartTime)
	})
	r.sessions = append(r.sessions, nil)
	copy(r.sessions[i+1:], r.sessions[i:])
	r.sessions[i] = s
	r.byID[s.ID] = s
}

// Get returns the session with the given id.
func (r *Registry) Get(id string) (*model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byID[id]
	if !ok {
		return nil, errs.ErrSessionNotFound
	}
	return s, nil
}

// List returns a copy of the registry in start-time order. kind filters when
// non-empty.
func (r *Registry) List(kind model.SessionKind) []*model.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		if kind != "" && s.Kind != kind {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Len returns the number of registered sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
