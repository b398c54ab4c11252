package scene

import (
	"fmt"
	"math"
	"strings"

	"plan-visualizer/internal/visualizer/geometry"
	"plan-visualizer/internal/visualizer/lighting"
	"plan-visualizer/internal/visualizer/models"
)

// ============================================================
// Scene composition
// ============================================================

const (
	groundSize   = 500.0
	groundOffset = -0.1
	groundColor  = "#f8fafc"

	gridDivisions  = 20
	gridCenterLine = "#cbd5e1"
	gridLine       = "#f1f5f9"

	roofCapHeight   = 3.0
	roofCapSegments = 4
	roofCapSpread   = 0.7
	roofCapColor    = "#475569"
	roofSlabHeight  = 0.5
	roofSlabOffset  = 0.1
	roofSlabColor   = "#cbd5e1"

	cameraFov    = 50.0
	cameraSpread = 1.5
)

// EnvironmentPreset names the reflection map used when the loader supplies none.
const EnvironmentPreset = "city"

// Input is everything one derivation pass depends on.
type Input struct {
	Layout      models.Layout
	Furniture   models.FurnitureMap
	Theme       models.ThemeDescriptor
	Params      models.RenderParams
	Environment models.Environment
}

// Compose builds the full 3D scene. It is pure: the same input always yields the same scene.
func Compose(in Input) models.Scene {
	policy := geometry.PolicyFor(in.Params)
	layout := in.Layout
	width := nonNegative(layout.Width)
	length := nonNegative(layout.Length)
	height := geometry.BuildingHeight(layout.Rooms)

	s := models.Scene{
		ViewType:       viewTypeOf(policy),
		Theme:          in.Theme.Name,
		Caption:        fmt.Sprintf("%s | %s VIEW", in.Theme.Name, strings.ToUpper(string(viewTypeOf(policy)))),
		NumFloors:      geometry.NumFloors(layout.Rooms),
		BuildingHeight: height,
		Rooms:          make([]models.RoomGroup, 0, len(layout.Rooms)),
		Ground: models.Primitive{
			Name:          "ground",
			Kind:          models.KindPlane,
			Position:      models.Vec3{X: width / 2, Y: groundOffset, Z: length / 2},
			Rotation:      models.Vec3{X: -math.Pi / 2},
			Size:          models.Vec3{X: groundSize, Y: groundSize},
			Material:      models.Material{Color: groundColor, Opacity: 1},
			ReceiveShadow: true,
		},
		Grid: models.Grid{
			Position:    models.Vec3{X: width / 2, Z: length / 2},
			Size:        math.Max(width, length) * 2,
			Divisions:   gridDivisions,
			CenterColor: gridCenterLine,
			LineColor:   gridLine,
		},
		Lighting:    lighting.Rig(in.Params.TimeOfDay),
		Sky:         models.Sky{SunPosition: lighting.SunPosition(in.Params.TimeOfDay)},
		Environment: environmentOf(in.Environment),
		Shadows: models.ContactShadows{
			Resolution: 1024,
			Scale:      100,
			Blur:       2,
			Opacity:    0.5,
			Far:        10,
			Color:      "#000000",
		},
		Camera: models.CameraFraming{
			Position:      models.Vec3{X: width * cameraSpread, Y: math.Max(width, height), Z: length * cameraSpread},
			Target:        models.Vec3{X: width / 2, Z: length / 2},
			Fov:           cameraFov,
			MaxPolarAngle: math.Pi / 2.1,
		},
	}

	for _, room := range layout.Rooms {
		group := geometry.DeriveRoom(room, in.Furniture.ItemsFor(room.ID), in.Theme, policy)
		group.Active = geometry.OnFloor(room, in.Params.CurrentFloor)
		s.Rooms = append(s.Rooms, group)
	}

	if policy.ShowRoof {
		s.Roof = roof(width, length, height)
	}

	return s
}

func roof(width, length, buildingHeight float64) *models.Roof {
	return &models.Roof{
		Origin: models.Vec3{X: width / 2, Y: buildingHeight, Z: length / 2},
		Cap: models.Primitive{
			Name:       "roof:cap",
			Kind:       models.KindCone,
			Position:   models.Vec3{Y: roofCapHeight / 2},
			Size:       models.Vec3{X: width * roofCapSpread, Y: roofCapHeight, Z: roofCapSegments},
			Material:   models.Material{Color: roofCapColor, Opacity: 1},
			CastShadow: true,
		},
		Slab: models.Primitive{
			Name:     "roof:slab",
			Kind:     models.KindBox,
			Position: models.Vec3{Y: roofSlabOffset},
			Size:     models.Vec3{X: width, Y: roofSlabHeight, Z: length},
			Material: models.Material{Color: roofSlabColor, Opacity: 1},
		},
	}
}

// environmentOf fills in the preset and degrades to flat lighting until the asset is ready.
func environmentOf(env models.Environment) models.Environment {
	if env.Preset == "" {
		env.Preset = EnvironmentPreset
	}
	if env.Status == "" {
		env.Status = models.AssetDisabled
	}
	env.Flat = env.Status != models.AssetReady
	return env
}

func viewTypeOf(p geometry.Policy) models.ViewType {
	if p.Interior {
		return models.ViewInterior
	}
	return models.ViewExterior
}

func nonNegative(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	return v
}
