package plan

import (
	"strconv"

	"plan-visualizer/internal/visualizer/geometry"
	"plan-visualizer/internal/visualizer/models"
	"plan-visualizer/internal/visualizer/theme"
)

// ============================================================
// 2D projection
// ============================================================

// Scale is pixels per foot.
const Scale = 5.0

const (
	backgroundColor = "#F8FAFC"
	outlineColor    = "#CBD5E1"
	roomStroke      = "#94A3B8"

	overlayInset         = 4.0
	overlayFill          = "#94A3B8"
	overlayFillOpacity   = 0.05
	overlayStroke        = "#0F172A"
	overlayStrokeOpacity = 0.1
)

// Project flattens the rooms of one floor into scaled rectangles inside the plot outline.
// Other floors are dropped, never overlaid.
func Project(layout models.Layout, t models.ThemeDescriptor, params models.RenderParams) models.Plan {
	plan := models.Plan{
		Floor: params.CurrentFloor,
		Scale: Scale,
		Outline: models.Rect{
			Width:  clampZero(layout.Width) * Scale,
			Height: clampZero(layout.Length) * Scale,
		},
		Background: backgroundColor,
		Border:     outlineColor,
		Rooms:      []models.PlanRoom{},
	}

	for _, room := range layout.Rooms {
		if !geometry.OnFloor(room, params.CurrentFloor) {
			continue
		}
		plan.Rooms = append(plan.Rooms, projectRoom(room, t, params.ShowFurniture))
	}

	return plan
}

func projectRoom(room models.Room, t models.ThemeDescriptor, showFurniture bool) models.PlanRoom {
	rect := models.Rect{
		X:      room.Position.X * Scale,
		Y:      room.Position.Y * Scale,
		Width:  clampZero(room.Width) * Scale,
		Height: clampZero(room.Length) * Scale,
	}

	out := models.PlanRoom{
		RoomID:     room.ID,
		Rect:       rect,
		Fill:       theme.RoomColor(room, t),
		Stroke:     roomStroke,
		Name:       room.Name,
		Dimensions: DimensionLabel(room.Width, room.Length),
	}

	// One coarse marker per room, not per item.
	if showFurniture {
		out.Overlay = &models.Overlay{
			Rect:          inset(rect, overlayInset),
			Fill:          overlayFill,
			FillOpacity:   overlayFillOpacity,
			Stroke:        overlayStroke,
			StrokeOpacity: overlayStrokeOpacity,
		}
	}

	return out
}

// DimensionLabel formats "<width>' x <length>'" with the shortest decimal form.
func DimensionLabel(width, length float64) string {
	return formatFloat(width) + "' x " + formatFloat(length) + "'"
}

func inset(r models.Rect, by float64) models.Rect {
	w := r.Width - 2*by
	h := r.Height - 2*by
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return models.Rect{X: r.X + by, Y: r.Y + by, Width: w, Height: h}
}

func clampZero(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	return v
}

func formatFloat(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}
