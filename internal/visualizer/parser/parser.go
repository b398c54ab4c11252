package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"plan-visualizer/internal/visualizer/models"
)

// ============================================================
// Wire documents
// ============================================================

var ErrInvalidViewType = errors.New("invalid view type")

type pointDoc struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

type roomDoc struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Type     string    `json:"type"`
	Width    *float64  `json:"width"`
	Length   *float64  `json:"length"`
	Position *pointDoc `json:"position"`
	Floor    *float64  `json:"floor"`
	Color    string    `json:"color"`
}

type layoutDoc struct {
	Width  *float64  `json:"width"`
	Length *float64  `json:"length"`
	Rooms  []roomDoc `json:"rooms"`
}

type furnitureDoc struct {
	ID       string    `json:"id"`
	Type     string    `json:"type"`
	Width    *float64  `json:"width"`
	Length   *float64  `json:"length"`
	Position *pointDoc `json:"position"`
	Rotation *float64  `json:"rotation"`
}

type roomFurnitureDoc struct {
	Furniture []furnitureDoc `json:"furniture"`
}

// ParamsDoc is the partial form of render parameters; nil fields keep their current value.
type ParamsDoc struct {
	TimeOfDay     *float64 `json:"timeOfDay"`
	ShowFurniture *bool    `json:"showFurniture"`
	CurrentFloor  *int     `json:"currentFloor"`
	ViewType      *string  `json:"viewType"`
}

// RenderRequest is the body shared by the stateless render endpoints.
type RenderRequest struct {
	Layout    models.Layout
	Furniture models.FurnitureMap
	Params    models.RenderParams
	Theme     string
}

type renderRequestDoc struct {
	Layout    *layoutDoc                  `json:"layout"`
	Furniture map[string]roomFurnitureDoc `json:"furniture"`
	Params    *ParamsDoc                  `json:"params"`
	Theme     string                      `json:"theme"`
}

// ============================================================
// Decoding
// ============================================================

// ParseLayout decodes and validates a layout document.
func ParseLayout(data []byte) (models.Layout, error) {
	var doc layoutDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.Layout{}, fmt.Errorf("decode layout: %w", err)
	}
	return doc.toModel(), nil
}

func DecodeLayout(r io.Reader) (models.Layout, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return models.Layout{}, err
	}
	return ParseLayout(data)
}

// ParseFurniture decodes a furniture map keyed by room id.
func ParseFurniture(data []byte) (models.FurnitureMap, error) {
	var doc map[string]roomFurnitureDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode furniture: %w", err)
	}
	return furnitureToModel(doc), nil
}

// ParseRenderParams decodes parameters on top of the defaults.
func ParseRenderParams(data []byte) (models.RenderParams, error) {
	var doc ParamsDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.RenderParams{}, fmt.Errorf("decode params: %w", err)
	}
	return doc.Apply(models.DefaultRenderParams())
}

// ParseRenderRequest decodes a {layout, furniture, params, theme} body.
func ParseRenderRequest(data []byte) (RenderRequest, error) {
	var doc renderRequestDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return RenderRequest{}, fmt.Errorf("decode request: %w", err)
	}

	req := RenderRequest{
		Furniture: furnitureToModel(doc.Furniture),
		Params:    models.DefaultRenderParams(),
		Theme:     doc.Theme,
	}
	if doc.Layout != nil {
		req.Layout = doc.Layout.toModel()
	} else {
		req.Layout = models.Layout{Rooms: []models.Room{}}
	}
	if doc.Params != nil {
		params, err := doc.Params.Apply(req.Params)
		if err != nil {
			return RenderRequest{}, err
		}
		req.Params = params
	}
	return req, nil
}

// Apply overlays the set fields on base and normalizes the result.
func (d ParamsDoc) Apply(base models.RenderParams) (models.RenderParams, error) {
	p := base
	if d.TimeOfDay != nil {
		p.TimeOfDay = *d.TimeOfDay
	}
	if d.ShowFurniture != nil {
		p.ShowFurniture = *d.ShowFurniture
	}
	if d.CurrentFloor != nil {
		p.CurrentFloor = *d.CurrentFloor
	}
	if d.ViewType != nil {
		vt, err := ParseViewType(*d.ViewType)
		if err != nil {
			return models.RenderParams{}, err
		}
		p.ViewType = vt
	}
	return NormalizeParams(p), nil
}

func ParseViewType(s string) (models.ViewType, error) {
	switch models.ViewType(s) {
	case models.ViewInterior:
		return models.ViewInterior, nil
	case models.ViewExterior, "":
		return models.ViewExterior, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrInvalidViewType)
}

// NormalizeParams wraps the hour into [0,24) and clamps the floor at zero.
func NormalizeParams(p models.RenderParams) models.RenderParams {
	p.TimeOfDay = WrapHour(p.TimeOfDay)
	if p.CurrentFloor < 0 {
		p.CurrentFloor = 0
	}
	if p.ViewType != models.ViewInterior {
		p.ViewType = models.ViewExterior
	}
	return p
}

func WrapHour(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 12
	}
	h = math.Mod(h, 24)
	if h < 0 {
		h += 24
	}
	return h
}

// ============================================================
// Normalization
// ============================================================

func (d layoutDoc) toModel() models.Layout {
	layout := models.Layout{
		Width:  dimension(d.Width),
		Length: dimension(d.Length),
		Rooms:  make([]models.Room, 0, len(d.Rooms)),
	}
	for i, r := range d.Rooms {
		id := r.ID
		if id == "" {
			id = fmt.Sprintf("room-%d", i)
		}
		layout.Rooms = append(layout.Rooms, models.Room{
			ID:       id,
			Name:     r.Name,
			Type:     r.Type,
			Width:    dimension(r.Width),
			Length:   dimension(r.Length),
			Position: r.Position.toModel(),
			Floor:    floorNumber(r.Floor),
			Color:    r.Color,
		})
	}
	return layout
}

func furnitureToModel(doc map[string]roomFurnitureDoc) models.FurnitureMap {
	out := make(models.FurnitureMap, len(doc))
	for roomID, rf := range doc {
		items := make([]models.FurnitureItem, 0, len(rf.Furniture))
		for i, f := range rf.Furniture {
			id := f.ID
			if id == "" {
				id = fmt.Sprintf("%s-item-%d", roomID, i)
			}
			items = append(items, models.FurnitureItem{
				ID:       id,
				Type:     models.FurnitureType(f.Type),
				Width:    dimension(f.Width),
				Length:   dimension(f.Length),
				Position: f.Position.toModel(),
				Rotation: finite(f.Rotation),
			})
		}
		out[roomID] = models.RoomFurniture{Furniture: items}
	}
	return out
}

func (p *pointDoc) toModel() models.Point {
	if p == nil {
		return models.Point{}
	}
	return models.Point{X: finite(p.X), Y: finite(p.Y)}
}

// dimension maps missing, NaN and negative values to zero.
func dimension(v *float64) float64 {
	if v == nil || !(*v > 0) || math.IsInf(*v, 1) {
		return 0
	}
	return *v
}

// floorNumber truncates toward ground; missing, negative and non-finite values are floor 0.
func floorNumber(v *float64) int {
	if v == nil || !(*v > 0) || math.IsInf(*v, 1) {
		return 0
	}
	if *v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(*v)
}

func finite(v *float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0
	}
	return *v
}
