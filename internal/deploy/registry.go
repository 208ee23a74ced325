package deploy

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/errors"
)

// Project associates a deployed launcher with its run metadata.
type Project struct {
	ID          string
	Requirement string
	CreatedAt   time.Time
	Launcher    *Launcher
}

// Registry is the process-wide mapping of project identifiers to their
// launchers. It supports concurrent insertion and removal from multiple
// in-flight pipeline runs; entries are removed eagerly on stop. The raw map
// is never exposed to callers.
type Registry struct {
	mu       sync.RWMutex
	projects map[string]*Project
	logger   zerolog.Logger
}

// NewRegistry creates an empty project registry.
func NewRegistry(logger zerolog.Logger) *Registry {
	return &Registry{
		projects: make(map[string]*Project),
		logger:   logger,
	}
}

// Register adds a project. Returns ErrProjectExists on an ID collision.
func (r *Registry) Register(p *Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[p.ID]; ok {
		return fmt.Errorf("%w: %s", apperrors.ErrProjectExists, p.ID)
	}
	r.projects[p.ID] = p
	r.logger.Debug().Str("project_id", p.ID).Msg("project registered")
	return nil
}

// Lookup retrieves a project by ID.
// Returns ErrProjectNotFound if no such project is registered.
func (r *Registry) Lookup(id string) (*Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.projects[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrProjectNotFound, id)
	}
	return p, nil
}

// List returns all registered projects, oldest first.
func (r *Registry) List() []*Project {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// Len returns the number of registered projects.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.projects)
}

// Stop terminates a project's process, removes its working directory, and
// deregisters it. Returns ErrProjectNotFound for unknown IDs.
func (r *Registry) Stop(id string) error {
	r.mu.Lock()
	p, ok := r.projects[id]
	if ok {
		delete(r.projects, id)
	}
	r.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", apperrors.ErrProjectNotFound, id)
	}

	p.Launcher.Stop()
	r.logger.Info().Str("project_id", id).Msg("project stopped")
	return nil
}

// StopAll stops every registered project concurrently. Used during shutdown
// so no generated backend outlives the service.
func (r *Registry) StopAll(ctx context.Context) error {
	projects := r.List()

	g, _ := errgroup.WithContext(ctx)
	for _, p := range projects {
		g.Go(func() error {
			return r.Stop(p.ID)
		})
	}
	return g.Wait()
}
