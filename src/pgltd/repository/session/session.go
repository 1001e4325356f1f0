// Package session holds the sessions that are currently live.
package session

import (
	"context"
	"sync"

	"github.com/supabase-community/pgltd/src/pgltd/entity"
	"github.com/supabase-community/pgltd/src/pgltd/internal/errors"
	tally "github.com/uber-go/tally/v4"
	"go.uber.org/fx"
)

const _activeSessionsGauge = "active_sessions"

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// Repository is the registry of live sessions: at most one global session plus one session per project.
type Repository interface {
	// GetByProject returns the session registered for the project, or nil.
	GetByProject(ctx context.Context, key entity.ProjectKey) entity.Session
	// Global returns the global session, or nil.
	Global(ctx context.Context) entity.Session
	// Set registers a session under its project, or as the global session when it has no project.
	Set(ctx context.Context, s entity.Session) error
	// ProjectSessions returns the project sessions in registration order.
	ProjectSessions(ctx context.Context) []entity.Session
	SessionCount(ctx context.Context) int
	// Clear empties the registry.
	Clear(ctx context.Context)
}

type repository struct {
	mu       sync.Mutex
	global   entity.Session
	projects map[entity.ProjectKey]entity.Session
	order    []entity.ProjectKey
	stats    tally.Scope
}

// New returns an empty session registry.
func New(stats tally.Scope) Repository {
	return &repository{
		projects: make(map[entity.ProjectKey]entity.Session),
		stats:    stats,
	}
}

func (r *repository) GetByProject(ctx context.Context, key entity.ProjectKey) entity.Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.projects[key]
}

func (r *repository) Global(ctx context.Context) entity.Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.global
}

// Set rejects a session whose slot is already occupied.
func (r *repository) Set(ctx context.Context, s entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s == nil {
		return errors.ErrNilSession
	}

	project := s.Project()
	if project == nil {
		if r.global != nil {
			return &errors.DuplicateSessionError{}
		}
		r.global = s
		r.updateGauge()
		return nil
	}

	key := project.Key()
	if _, ok := r.projects[key]; ok {
		return &errors.DuplicateSessionError{Root: project.Root}
	}
	r.projects[key] = s
	r.order = append(r.order, key)
	r.updateGauge()
	return nil
}

func (r *repository) ProjectSessions(ctx context.Context) []entity.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := make([]entity.Session, 0, len(r.order))
	for _, key := range r.order {
		found = append(found, r.projects[key])
	}
	return found
}

// SessionCount returns the number of live sessions, the global session included.
func (r *repository) SessionCount(ctx context.Context) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count()
}

func (r *repository) Clear(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.global = nil
	r.projects = make(map[entity.ProjectKey]entity.Session)
	r.order = nil
	r.updateGauge()
}

func (r *repository) count() int {
	n := len(r.projects)
	if r.global != nil {
		n++
	}
	return n
}

func (r *repository) updateGauge() {
	r.stats.Gauge(_activeSessionsGauge).Update(float64(r.count()))
}
