package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"plan-visualizer/internal/visualizer/models"
	"plan-visualizer/internal/visualizer/parser"
	"plan-visualizer/internal/visualizer/plan"
	"plan-visualizer/internal/visualizer/scene"

	"github.com/google/uuid"
)

// ============================================================
// View sessions
// ============================================================

var ErrNotFound = errors.New("session not found")

// ThemeSource resolves a theme name, falling back to the current theme when empty.
type ThemeSource interface {
	Resolve(ctx context.Context, name string) (models.ThemeDescriptor, error)
}

// EnvironmentSource reports the environment asset state without blocking.
type EnvironmentSource interface {
	Snapshot() models.Environment
}

// Session is one viewer's render state. Layout and furniture are fixed at creation;
// parameters and camera are owned by the viewer.
type Session struct {
	ID        string              `json:"id"`
	Layout    models.Layout       `json:"layout"`
	Furniture models.FurnitureMap `json:"furniture"`
	Theme     string              `json:"theme,omitempty"`
	Params    models.RenderParams `json:"params"`
	Camera    *models.Camera      `json:"camera,omitempty"`
	Revision  int                 `json:"revision"`
	UpdatedAt time.Time           `json:"updatedAt"`

	Scene models.Scene `json:"-"`
	Plan  models.Plan  `json:"-"`

	// ticket of the update the stored scene and plan were derived from
	derived int
}

type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	tickets  map[string]int
	themes   ThemeSource
	env      EnvironmentSource
}

func NewManager(themes ThemeSource, env EnvironmentSource) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		tickets:  make(map[string]int),
		themes:   themes,
		env:      env,
	}
}

// Create derives the first scene and plan and registers the session.
func (m *Manager) Create(ctx context.Context, layout models.Layout, furniture models.FurnitureMap, params models.RenderParams, themeName string) (Session, error) {
	s := &Session{
		ID:        uuid.NewString(),
		Layout:    layout,
		Furniture: furniture,
		Theme:     themeName,
		Params:    parser.NormalizeParams(params),
		Revision:  1,
	}
	if err := m.derive(ctx, s); err != nil {
		return Session{}, err
	}

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return *s, nil
}

// Get returns the session, re-deriving first when the environment asset changed state or
// the current theme it follows was switched.
func (m *Manager) Get(ctx context.Context, id string) (Session, error) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if !ok {
		m.mu.Unlock()
		return Session{}, ErrNotFound
	}
	snapshot := *s
	behind := s.derived != m.tickets[id]
	m.mu.Unlock()

	if !behind && !m.stale(ctx, snapshot) {
		return snapshot, nil
	}
	return m.rederive(ctx, id, func(*Session) error { return nil })
}

// UpdateParams applies a partial parameter change and re-derives everything. The camera
// is left untouched.
func (m *Manager) UpdateParams(ctx context.Context, id string, doc parser.ParamsDoc) (Session, error) {
	return m.rederive(ctx, id, func(s *Session) error {
		params, err := doc.Apply(s.Params)
		if err != nil {
			return err
		}
		s.Params = params
		return nil
	})
}

// SetTheme pins the session to a named theme. An empty name follows the current theme.
func (m *Manager) SetTheme(ctx context.Context, id, name string) (Session, error) {
	if name != "" {
		if _, err := m.themes.Resolve(ctx, name); err != nil {
			return Session{}, err
		}
	}
	return m.rederive(ctx, id, func(s *Session) error {
		s.Theme = name
		return nil
	})
}

// UpdateCamera stores the viewer's camera. Derived output is not affected.
func (m *Manager) UpdateCamera(id string, camera models.Camera) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	s.Camera = &camera
	s.UpdatedAt = time.Now()
	return *s, nil
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	delete(m.tickets, id)
	return nil
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// ============================================================
// Derivation
// ============================================================

// rederive commits mutate to the stored session under the lock, then derives outside it.
// The derived scene and plan replace the stored ones only when no newer update was issued
// in between; the newer update already carries this change.
func (m *Manager) rederive(ctx context.Context, id string, mutate func(*Session) error) (Session, error) {
	m.mu.Lock()
	current, ok := m.sessions[id]
	if !ok {
		m.mu.Unlock()
		return Session{}, ErrNotFound
	}
	next := *current
	if err := mutate(&next); err != nil {
		m.mu.Unlock()
		return Session{}, err
	}
	current.Params = next.Params
	current.Theme = next.Theme
	m.tickets[id]++
	ticket := m.tickets[id]
	m.mu.Unlock()

	if err := m.derive(ctx, &next); err != nil {
		return Session{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok = m.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	if ticket != m.tickets[id] {
		return *current, nil
	}
	current.Scene = next.Scene
	current.Plan = next.Plan
	current.UpdatedAt = next.UpdatedAt
	current.derived = ticket
	current.Revision++
	return *current, nil
}

func (m *Manager) stale(ctx context.Context, s Session) bool {
	if m.env != nil && s.Scene.Environment.Status != m.env.Snapshot().Status {
		return true
	}
	if s.Theme != "" {
		return false
	}
	t, err := m.themes.Resolve(ctx, "")
	return err == nil && t.Name != s.Scene.Theme
}

func (m *Manager) derive(ctx context.Context, s *Session) error {
	t, err := m.themes.Resolve(ctx, s.Theme)
	if err != nil {
		return err
	}

	var env models.Environment
	if m.env != nil {
		env = m.env.Snapshot()
	}

	s.Scene = scene.Compose(scene.Input{
		Layout:      s.Layout,
		Furniture:   s.Furniture,
		Theme:       t,
		Params:      s.Params,
		Environment: env,
	})
	s.Plan = plan.Project(s.Layout, t, s.Params)
	s.UpdatedAt = time.Now()
	return nil
}
