package mock

import (
	"math"

	"plan-visualizer/internal/visualizer/models"

	"github.com/google/uuid"
)

// ============================================================
// Sample layout
// ============================================================

type roomSpec struct {
	name, kind    string
	width, length float64
	x, y          float64
	floor         int
	furniture     []models.FurnitureItem
}

var sampleRooms = []roomSpec{
	{name: "Living Room", kind: "Living", width: 16, length: 14, x: 0, y: 0, furniture: []models.FurnitureItem{
		{Type: models.FurnitureSofa, Width: 7, Length: 3, Position: models.Point{X: 1, Y: 1}},
	}},
	{name: "Kitchen", kind: "Kitchen", width: 12, length: 10, x: 16, y: 0},
	{name: "Dining", kind: "Dining", width: 12, length: 10, x: 16, y: 10},
	{name: "Bathroom", kind: "Bathroom", width: 8, length: 6, x: 0, y: 14},
	{name: "Master Bedroom", kind: "Bedroom", width: 14, length: 12, x: 0, y: 0, floor: 1, furniture: []models.FurnitureItem{
		{Type: models.FurnitureBed, Width: 6, Length: 7, Position: models.Point{X: 4, Y: 2}},
		{Type: models.FurnitureSofa, Width: 5, Length: 2.5, Position: models.Point{X: 8, Y: 9}, Rotation: math.Pi / 2},
	}},
	{name: "Bedroom 2", kind: "Bedroom", width: 12, length: 12, x: 14, y: 0, floor: 1, furniture: []models.FurnitureItem{
		{Type: models.FurnitureBed, Width: 5, Length: 6.5, Position: models.Point{X: 3, Y: 2}},
	}},
	{name: "Study", kind: "Study", width: 10, length: 8, x: 14, y: 12, floor: 1},
}

// SampleLayout returns a two-storey placeholder plan with fresh room ids. It stands in
// for the external generator during development.
func SampleLayout() (models.Layout, models.FurnitureMap) {
	layout := models.Layout{Width: 30, Length: 40, Rooms: make([]models.Room, 0, len(sampleRooms))}
	furniture := make(models.FurnitureMap)

	for _, spec := range sampleRooms {
		id := uuid.NewString()
		layout.Rooms = append(layout.Rooms, models.Room{
			ID:       id,
			Name:     spec.name,
			Type:     spec.kind,
			Width:    spec.width,
			Length:   spec.length,
			Position: models.Point{X: spec.x, Y: spec.y},
			Floor:    spec.floor,
		})

		if len(spec.furniture) == 0 {
			continue
		}
		items := make([]models.FurnitureItem, 0, len(spec.furniture))
		for _, item := range spec.furniture {
			item.ID = uuid.NewString()
			items = append(items, item)
		}
		furniture[id] = models.RoomFurniture{Furniture: items}
	}

	return layout, furniture
}
