package theme

import (
	"context"
	"sync"

	"plan-visualizer/internal/visualizer/models"
)

// Resolver holds the process-wide current theme. Derivation never reads it directly:
// callers take Current() and pass the descriptor down.
type Resolver struct {
	mu       sync.RWMutex
	registry Registry
	current  models.ThemeDescriptor
}

// NewResolver selects initial as the current theme.
func NewResolver(ctx context.Context, registry Registry, initial string) (*Resolver, error) {
	t, err := registry.Lookup(ctx, initial)
	if err != nil {
		return nil, err
	}
	return &Resolver{registry: registry, current: t}, nil
}

func (r *Resolver) Current() models.ThemeDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// SetCurrent switches the active palette for subsequent derivation passes.
func (r *Resolver) SetCurrent(ctx context.Context, name string) (models.ThemeDescriptor, error) {
	t, err := r.registry.Lookup(ctx, name)
	if err != nil {
		return models.ThemeDescriptor{}, err
	}

	r.mu.Lock()
	r.current = t
	r.mu.Unlock()
	return t, nil
}

// Resolve returns the named theme, or the current one when name is empty.
func (r *Resolver) Resolve(ctx context.Context, name string) (models.ThemeDescriptor, error) {
	if name == "" {
		return r.Current(), nil
	}
	return r.registry.Lookup(ctx, name)
}

func (r *Resolver) List(ctx context.Context) ([]models.ThemeDescriptor, error) {
	return r.registry.List(ctx)
}
