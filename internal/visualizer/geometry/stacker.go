package geometry

import "plan-visualizer/internal/visualizer/models"

// ============================================================
// Constants
// ============================================================

const (
	StoryHeight   = 10.0
	WallThickness = 0.5
	// FloorEpsilon lifts room groups off the ground plane to avoid z-fighting.
	FloorEpsilon = 0.1
)

// ============================================================
// Multi-floor stacking
// ============================================================

// NumFloors is the highest floor index plus one, and 1 for an empty building.
func NumFloors(rooms []models.Room) int {
	if len(rooms) == 0 {
		return 1
	}
	highest := 0
	for _, r := range rooms {
		if f := floorIndex(r); f > highest {
			highest = f
		}
	}
	return highest + 1
}

func BuildingHeight(rooms []models.Room) float64 {
	return float64(NumFloors(rooms)) * StoryHeight
}

// FloorOffset is the vertical offset of a floor's slab.
func FloorOffset(floor int) float64 {
	if floor < 0 {
		floor = 0
	}
	return float64(floor) * StoryHeight
}

// OnFloor is the single floor predicate used by both the plan and the scene.
func OnFloor(room models.Room, floor int) bool {
	return floorIndex(room) == floor
}

func floorIndex(r models.Room) int {
	if r.Floor < 0 {
		return 0
	}
	return r.Floor
}
