package geometry

import (
	"math"

	"plan-visualizer/internal/visualizer/models"
	"plan-visualizer/internal/visualizer/theme"
)

// ============================================================
// Room derivation
// ============================================================

const (
	floorRoughness = 0.7
	labelFontSize  = 1.0
	labelColor     = "white"
)

// Wall names, in emission order.
const (
	WallBack  = "wall:back"
	WallFront = "wall:front"
	WallLeft  = "wall:left"
	WallRight = "wall:right"
)

// DeriveRoom turns one room into a group of primitives. It never fails: degenerate
// dimensions produce zero-area meshes.
func DeriveRoom(room models.Room, furniture []models.FurnitureItem, t models.ThemeDescriptor, policy Policy) models.RoomGroup {
	width := nonNegative(room.Width)
	length := nonNegative(room.Length)
	floor := floorIndex(room)

	group := models.RoomGroup{
		RoomID: room.ID,
		Floor:  floor,
		Origin: models.Vec3{
			X: room.Position.X + width/2,
			Y: FloorOffset(floor) + FloorEpsilon,
			Z: room.Position.Y + length/2,
		},
		FloorMesh: models.Primitive{
			Name:          "floor",
			Kind:          models.KindPlane,
			Rotation:      models.Vec3{X: -math.Pi / 2},
			Size:          models.Vec3{X: width, Y: length},
			Material:      models.Material{Color: theme.RoomColor(room, t), Opacity: 1, Roughness: floorRoughness},
			ReceiveShadow: true,
		},
		Walls:     deriveWalls(width, length, t.WallColor, policy),
		Furniture: []models.Primitive{},
	}

	if policy.ShowLabels {
		group.Label = &models.Label{
			Text:     room.Name,
			Position: models.Vec3{Y: StoryHeight + 1},
			FontSize: labelFontSize,
			Color:    labelColor,
		}
	}

	if policy.ShowFurniture {
		for _, item := range furniture {
			group.Furniture = append(group.Furniture, furnitureMesh(item, width, length, t))
		}
	}

	return group
}

func deriveWalls(width, length float64, color string, policy Policy) []models.Primitive {
	half := StoryHeight / 2

	wall := func(name string, pos, size models.Vec3, opacity float64) models.Primitive {
		return models.Primitive{
			Name:          name,
			Kind:          models.KindBox,
			Position:      pos,
			Size:          size,
			Material:      models.Material{Color: color, Opacity: opacity, Transparent: true},
			CastShadow:    true,
			ReceiveShadow: true,
		}
	}

	return []models.Primitive{
		wall(WallBack, models.Vec3{Y: half, Z: -length / 2}, models.Vec3{X: width, Y: StoryHeight, Z: WallThickness}, policy.NearOpacity),
		wall(WallFront, models.Vec3{Y: half, Z: length / 2}, models.Vec3{X: width, Y: StoryHeight, Z: WallThickness}, policy.FarOpacity),
		wall(WallLeft, models.Vec3{X: -width / 2, Y: half}, models.Vec3{X: WallThickness, Y: StoryHeight, Z: length}, policy.NearOpacity),
		wall(WallRight, models.Vec3{X: width / 2, Y: half}, models.Vec3{X: WallThickness, Y: StoryHeight, Z: length}, policy.FarOpacity),
	}
}

// nonNegative clamps negative and NaN values to zero.
func nonNegative(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	return v
}
