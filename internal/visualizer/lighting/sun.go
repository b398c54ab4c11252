package lighting

import (
	"math"

	"plan-visualizer/internal/visualizer/models"
)

// ============================================================
// Sun model
// ============================================================

const (
	LightRadius      = 100.0
	LightDepth       = 50.0
	SunIntensity     = 1.5
	AmbientIntensity = 0.5
	ShadowMapSize    = 2048
)

// SunAngle maps hours to radians: midnight points straight down, noon straight up.
func SunAngle(timeOfDay float64) float64 {
	return (timeOfDay/24)*2*math.Pi - math.Pi/2
}

// SunPosition places the sun on a circle of LightRadius in the X/Y plane, pushed
// LightDepth along Z.
func SunPosition(timeOfDay float64) models.Vec3 {
	angle := SunAngle(timeOfDay)
	return models.Vec3{
		X: math.Cos(angle) * LightRadius,
		Y: math.Sin(angle) * LightRadius,
		Z: LightDepth,
	}
}

// Rig returns the scene lights. Intensity does not dim below the horizon.
func Rig(timeOfDay float64) models.Lighting {
	return models.Lighting{
		AmbientIntensity: AmbientIntensity,
		Sun: models.DirectionalLight{
			Position:      SunPosition(timeOfDay),
			Intensity:     SunIntensity,
			CastShadow:    true,
			ShadowMapSize: ShadowMapSize,
		},
	}
}
