package session

import (
	"context"
	"sync"
	"testing"

	"plan-visualizer/internal/visualizer/lighting"
	"plan-visualizer/internal/visualizer/models"
	"plan-visualizer/internal/visualizer/parser"
	"plan-visualizer/internal/visualizer/theme"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEnv struct {
	mu     sync.Mutex
	status models.AssetStatus
}

func (f *fakeEnv) Snapshot() models.Environment {
	f.mu.Lock()
	defer f.mu.Unlock()
	return models.Environment{Preset: "city", Status: f.status, Flat: f.status != models.AssetReady}
}

func (f *fakeEnv) set(status models.AssetStatus) {
	f.mu.Lock()
	f.status = status
	f.mu.Unlock()
}

func layout() models.Layout {
	return models.Layout{
		Width:  30,
		Length: 30,
		Rooms: []models.Room{
			{ID: "living", Name: "Living", Width: 15, Length: 12},
			{ID: "bed", Name: "Bedroom", Width: 12, Length: 12, Floor: 1},
		},
	}
}

func newManager(t *testing.T) (*Manager, *theme.Resolver, *fakeEnv) {
	t.Helper()
	resolver, err := theme.NewResolver(context.Background(), theme.NewStaticRegistry(theme.Builtin()), theme.DefaultName)
	require.NoError(t, err)
	env := &fakeEnv{status: models.AssetPending}
	return NewManager(resolver, env), resolver, env
}

func TestManager_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newManager(t)

	s, err := m.Create(ctx, layout(), nil, models.DefaultRenderParams(), "")
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, 1, s.Revision)
	assert.Equal(t, "Modern", s.Scene.Theme)
	assert.Len(t, s.Scene.Rooms, 2)
	assert.Len(t, s.Plan.Rooms, 1)
	assert.Nil(t, s.Camera)

	got, err := m.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, 1, got.Revision)
	assert.Equal(t, 1, m.Len())
}

func TestManager_CreateUnknownTheme(t *testing.T) {
	m, _, _ := newManager(t)

	_, err := m.Create(context.Background(), layout(), nil, models.DefaultRenderParams(), "Gothic")
	assert.ErrorIs(t, err, theme.ErrUnknownTheme)
	assert.Equal(t, 0, m.Len())
}

func TestManager_UpdateParamsKeepsCamera(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newManager(t)

	s, err := m.Create(ctx, layout(), nil, models.DefaultRenderParams(), "")
	require.NoError(t, err)

	camera := models.Camera{Position: models.Vec3{X: 1, Y: 2, Z: 3}, Zoom: 1.5, Fov: 50}
	_, err = m.UpdateCamera(s.ID, camera)
	require.NoError(t, err)

	floor := 1
	view := "interior"
	updated, err := m.UpdateParams(ctx, s.ID, parser.ParamsDoc{CurrentFloor: &floor, ViewType: &view})
	require.NoError(t, err)

	assert.Equal(t, 2, updated.Revision)
	require.NotNil(t, updated.Camera)
	assert.Equal(t, camera, *updated.Camera)
	assert.Equal(t, models.ViewInterior, updated.Scene.ViewType)
	assert.Nil(t, updated.Scene.Roof)
	require.Len(t, updated.Plan.Rooms, 1)
	assert.Equal(t, "bed", updated.Plan.Rooms[0].RoomID)
	assert.Equal(t, 12.0, updated.Params.TimeOfDay)
}

func TestManager_UpdateCameraDoesNotRederive(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newManager(t)

	s, err := m.Create(ctx, layout(), nil, models.DefaultRenderParams(), "")
	require.NoError(t, err)

	updated, err := m.UpdateCamera(s.ID, models.Camera{Zoom: 2})
	require.NoError(t, err)
	assert.Equal(t, s.Revision, updated.Revision)
	assert.Equal(t, s.Scene, updated.Scene)
}

func TestManager_UpdateParamsInvalid(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newManager(t)

	s, err := m.Create(ctx, layout(), nil, models.DefaultRenderParams(), "")
	require.NoError(t, err)

	view := "isometric"
	_, err = m.UpdateParams(ctx, s.ID, parser.ParamsDoc{ViewType: &view})
	assert.ErrorIs(t, err, parser.ErrInvalidViewType)

	got, err := m.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Revision)
}

func TestManager_FollowsCurrentTheme(t *testing.T) {
	ctx := context.Background()
	m, resolver, _ := newManager(t)

	following, err := m.Create(ctx, layout(), nil, models.DefaultRenderParams(), "")
	require.NoError(t, err)
	pinned, err := m.Create(ctx, layout(), nil, models.DefaultRenderParams(), "Minimalist")
	require.NoError(t, err)

	_, err = resolver.SetCurrent(ctx, "Luxury")
	require.NoError(t, err)

	got, err := m.Get(ctx, following.ID)
	require.NoError(t, err)
	assert.Equal(t, "Luxury", got.Scene.Theme)
	assert.Equal(t, 2, got.Revision)

	got, err = m.Get(ctx, pinned.ID)
	require.NoError(t, err)
	assert.Equal(t, "Minimalist", got.Scene.Theme)
	assert.Equal(t, 1, got.Revision)
}

func TestManager_EnvironmentBecomesReady(t *testing.T) {
	ctx := context.Background()
	m, _, env := newManager(t)

	s, err := m.Create(ctx, layout(), nil, models.DefaultRenderParams(), "")
	require.NoError(t, err)
	assert.True(t, s.Scene.Environment.Flat)

	env.set(models.AssetReady)

	got, err := m.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.False(t, got.Scene.Environment.Flat)
}

func TestManager_SetTheme(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newManager(t)

	s, err := m.Create(ctx, layout(), nil, models.DefaultRenderParams(), "")
	require.NoError(t, err)

	updated, err := m.SetTheme(ctx, s.ID, "Traditional")
	require.NoError(t, err)
	assert.Equal(t, "Traditional", updated.Scene.Theme)
	assert.Equal(t, "#C8A27A", updated.Plan.Rooms[0].Fill)

	_, err = m.SetTheme(ctx, s.ID, "Unknown")
	assert.ErrorIs(t, err, theme.ErrUnknownTheme)
}

func TestManager_NotFound(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newManager(t)

	_, err := m.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = m.UpdateParams(ctx, "missing", parser.ParamsDoc{})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = m.UpdateCamera("missing", models.Camera{})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, m.Delete("missing"), ErrNotFound)
}

func TestManager_Delete(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newManager(t)

	s, err := m.Create(ctx, layout(), nil, models.DefaultRenderParams(), "")
	require.NoError(t, err)

	require.NoError(t, m.Delete(s.ID))
	_, err = m.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestManager_ConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	m, _, _ := newManager(t)

	s, err := m.Create(ctx, layout(), nil, models.DefaultRenderParams(), "")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 24; i++ {
		wg.Add(1)
		go func(hour float64) {
			defer wg.Done()
			_, err := m.UpdateParams(ctx, s.ID, parser.ParamsDoc{TimeOfDay: &hour})
			assert.NoError(t, err)
		}(float64(i))
	}
	wg.Wait()

	got, err := m.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, got.Revision, 2)
	assert.Equal(t, lighting.SunPosition(got.Params.TimeOfDay), got.Scene.Lighting.Sun.Position)
}

// gatedThemes parks the next Resolve call until release is closed.
type gatedThemes struct {
	next    ThemeSource
	mu      sync.Mutex
	hold    chan struct{}
	entered chan struct{}
}

func (g *gatedThemes) arm() (entered, release chan struct{}) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.hold = make(chan struct{})
	g.entered = make(chan struct{})
	return g.entered, g.hold
}

func (g *gatedThemes) Resolve(ctx context.Context, name string) (models.ThemeDescriptor, error) {
	g.mu.Lock()
	hold, entered := g.hold, g.entered
	g.hold, g.entered = nil, nil
	g.mu.Unlock()

	if hold != nil {
		close(entered)
		<-hold
	}
	return g.next.Resolve(ctx, name)
}

func TestManager_OverlappingUpdatesKeepBothChanges(t *testing.T) {
	ctx := context.Background()
	_, resolver, env := newManager(t)
	gate := &gatedThemes{next: resolver}
	m := NewManager(gate, env)

	s, err := m.Create(ctx, layout(), nil, models.DefaultRenderParams(), "")
	require.NoError(t, err)

	entered, release := gate.arm()
	slow := make(chan Session, 1)
	go func() {
		hide := false
		got, err := m.UpdateParams(ctx, s.ID, parser.ParamsDoc{ShowFurniture: &hide})
		assert.NoError(t, err)
		slow <- got
	}()
	<-entered

	floor := 1
	fast, err := m.UpdateParams(ctx, s.ID, parser.ParamsDoc{CurrentFloor: &floor})
	require.NoError(t, err)
	assert.False(t, fast.Params.ShowFurniture)
	assert.Equal(t, 1, fast.Params.CurrentFloor)

	close(release)
	first := <-slow
	assert.False(t, first.Params.ShowFurniture)

	got, err := m.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.False(t, got.Params.ShowFurniture)
	assert.Equal(t, 1, got.Params.CurrentFloor)
	assert.Equal(t, 1, got.Plan.Floor)
	assert.Equal(t, 2, got.Revision)
}
