package theme

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"plan-visualizer/internal/visualizer/models"
)

// ============================================================
// Registry
// ============================================================

var ErrUnknownTheme = errors.New("unknown theme")

// Registry resolves a theme name to its palette.
type Registry interface {
	Lookup(ctx context.Context, name string) (models.ThemeDescriptor, error)
	List(ctx context.Context) ([]models.ThemeDescriptor, error)
}

const DefaultName = "Modern"

// Builtin returns the palettes shipped with the service, one per interior style.
func Builtin() []models.ThemeDescriptor {
	return []models.ThemeDescriptor{
		{Name: "Modern", WallColor: "#E2E8F0", FloorColor: "#CBD5E1", FurnitureColor: "#64748B", CeilingStyle: "Flat"},
		{Name: "Luxury", WallColor: "#F5F0E6", FloorColor: "#E7DCC8", FurnitureColor: "#8B6B3E", CeilingStyle: "Coffered"},
		{Name: "Minimalist", WallColor: "#FFFFFF", FloorColor: "#F1F5F9", FurnitureColor: "#94A3B8", CeilingStyle: "Open"},
		{Name: "Traditional", WallColor: "#FDF6E3", FloorColor: "#C8A27A", FurnitureColor: "#7C4A2D", CeilingStyle: "Beamed"},
	}
}

// StaticRegistry is an in-memory registry.
type StaticRegistry struct {
	themes map[string]models.ThemeDescriptor
}

func NewStaticRegistry(themes []models.ThemeDescriptor) *StaticRegistry {
	r := &StaticRegistry{themes: make(map[string]models.ThemeDescriptor, len(themes))}
	for _, t := range themes {
		r.themes[t.Name] = t
	}
	return r
}

func (r *StaticRegistry) Lookup(_ context.Context, name string) (models.ThemeDescriptor, error) {
	t, ok := r.themes[name]
	if !ok {
		return models.ThemeDescriptor{}, fmt.Errorf("theme %q: %w", name, ErrUnknownTheme)
	}
	return t, nil
}

func (r *StaticRegistry) List(_ context.Context) ([]models.ThemeDescriptor, error) {
	out := make([]models.ThemeDescriptor, 0, len(r.themes))
	for _, t := range r.themes {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ============================================================
// Color resolution
// ============================================================

// RoomColor is the fill shared by the 2D rectangle and the 3D floor plane.
func RoomColor(room models.Room, t models.ThemeDescriptor) string {
	if room.Color != "" {
		return room.Color
	}
	return t.FloorColor
}
