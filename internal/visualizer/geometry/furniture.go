package geometry

import "plan-visualizer/internal/visualizer/models"

// Appearance is the look of one furniture type. An empty Color means the theme's
// furniture color.
type Appearance struct {
	Color  string
	Height float64
}

const defaultFurnitureHeight = 2.0

var appearances = map[models.FurnitureType]Appearance{
	models.FurnitureBed:  {Color: "#E2E8F0", Height: 1.5},
	models.FurnitureSofa: {Color: "#475569", Height: 2.5},
}

// AppearanceFor resolves the color and height of a furniture type against a theme.
// Type-specific colors win over the theme.
func AppearanceFor(kind models.FurnitureType, t models.ThemeDescriptor) Appearance {
	a, ok := appearances[kind]
	if !ok {
		a = Appearance{Height: defaultFurnitureHeight}
	}
	if a.Color == "" {
		a.Color = t.FurnitureColor
	}
	return a
}

// furnitureMesh places an item inside a room group whose origin is the room center.
func furnitureMesh(item models.FurnitureItem, roomWidth, roomLength float64, t models.ThemeDescriptor) models.Primitive {
	look := AppearanceFor(item.Type, t)
	width := nonNegative(item.Width)
	length := nonNegative(item.Length)

	localX := item.Position.X - roomWidth/2 + width/2
	localZ := item.Position.Y - roomLength/2 + length/2

	return models.Primitive{
		Name:     "furniture:" + item.ID,
		Kind:     models.KindBox,
		Position: models.Vec3{X: localX, Y: look.Height / 2, Z: localZ},
		Rotation: models.Vec3{Y: item.Rotation},
		Size:     models.Vec3{X: width, Y: look.Height, Z: length},
		Material: models.Material{Color: look.Color, Opacity: 1},
	}
}
