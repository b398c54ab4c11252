package models

// ============================================================
// Plan inputs
// ============================================================

// Point is a plan-space coordinate in feet. Y grows away from the street.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Plot struct {
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
}

// Room is a validated rectangle on one floor. Position is the corner nearest the plot origin.
type Room struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type,omitempty"`
	Width    float64 `json:"width"`
	Length   float64 `json:"length"`
	Position Point   `json:"position"`
	Floor    int     `json:"floor"`
	Color    string  `json:"color,omitempty"`
}

// FurnitureItem is placed in room-local feet; Rotation is radians about the vertical axis.
type FurnitureItem struct {
	ID       string        `json:"id"`
	Type     FurnitureType `json:"type"`
	Width    float64       `json:"width"`
	Length   float64       `json:"length"`
	Position Point         `json:"position"`
	Rotation float64       `json:"rotation"`
}

type FurnitureType string

const (
	FurnitureBed  FurnitureType = "Bed"
	FurnitureSofa FurnitureType = "Sofa"
)

// Layout is an immutable snapshot of one generated plan.
type Layout struct {
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
	Rooms  []Room  `json:"rooms"`
}

func (l Layout) Plot() Plot {
	return Plot{Width: l.Width, Length: l.Length}
}

type RoomFurniture struct {
	Furniture []FurnitureItem `json:"furniture"`
}

// FurnitureMap is keyed by room id.
type FurnitureMap map[string]RoomFurniture

// ItemsFor returns the furniture of a room, nil when the room has none.
func (m FurnitureMap) ItemsFor(roomID string) []FurnitureItem {
	if m == nil {
		return nil
	}
	return m[roomID].Furniture
}

// ThemeDescriptor is a named material palette.
type ThemeDescriptor struct {
	Name           string `json:"name" yaml:"name"`
	WallColor      string `json:"wallColor" yaml:"wallColor"`
	FloorColor     string `json:"floorColor" yaml:"floorColor"`
	FurnitureColor string `json:"furnitureColor" yaml:"furnitureColor"`
	CeilingStyle   string `json:"ceilingStyle" yaml:"ceilingStyle"`
}

// ============================================================
// Render parameters
// ============================================================

type ViewType string

const (
	ViewInterior ViewType = "interior"
	ViewExterior ViewType = "exterior"
)

// RenderParams is the externally owned view state. Every field is independently valid.
type RenderParams struct {
	TimeOfDay     float64  `json:"timeOfDay"`
	ShowFurniture bool     `json:"showFurniture"`
	CurrentFloor  int      `json:"currentFloor"`
	ViewType      ViewType `json:"viewType"`
}

func DefaultRenderParams() RenderParams {
	return RenderParams{
		TimeOfDay:     12,
		ShowFurniture: true,
		CurrentFloor:  0,
		ViewType:      ViewExterior,
	}
}

// Camera is orbit-camera state owned by the viewer, never by derivation.
type Camera struct {
	Position Vec3    `json:"position"`
	Target   Vec3    `json:"target"`
	Zoom     float64 `json:"zoom"`
	Fov      float64 `json:"fov"`
}
