package models

// ============================================================
// Geometry primitives
// ============================================================

type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type Material struct {
	Color       string  `json:"color"`
	Opacity     float64 `json:"opacity"`
	Transparent bool    `json:"transparent"`
	Roughness   float64 `json:"roughness,omitempty"`
}

type PrimitiveKind string

const (
	KindPlane PrimitiveKind = "plane"
	KindBox   PrimitiveKind = "box"
	KindCone  PrimitiveKind = "cone"
)

// Primitive is a mesh placed relative to its parent group.
// Size holds (width, height, depth) for boxes, (width, length, 0) for planes and
// (radius, height, segments) for cones.
type Primitive struct {
	Name          string        `json:"name"`
	Kind          PrimitiveKind `json:"kind"`
	Position      Vec3          `json:"position"`
	Rotation      Vec3          `json:"rotation"`
	Size          Vec3          `json:"size"`
	Material      Material      `json:"material"`
	CastShadow    bool          `json:"castShadow"`
	ReceiveShadow bool          `json:"receiveShadow"`
}

// Label is billboard text placed relative to its parent group.
type Label struct {
	Text     string  `json:"text"`
	Position Vec3    `json:"position"`
	FontSize float64 `json:"fontSize"`
	Color    string  `json:"color"`
}

// RoomGroup is one derived room: a floor plane, four walls, optional label and furniture.
type RoomGroup struct {
	RoomID    string      `json:"roomId"`
	Floor     int         `json:"floor"`
	Active    bool        `json:"active"`
	Origin    Vec3        `json:"origin"`
	FloorMesh Primitive   `json:"floorMesh"`
	Walls     []Primitive `json:"walls"`
	Label     *Label      `json:"label,omitempty"`
	Furniture []Primitive `json:"furniture"`
}

// ============================================================
// Scene
// ============================================================

type Roof struct {
	Origin Vec3      `json:"origin"`
	Cap    Primitive `json:"cap"`
	Slab   Primitive `json:"slab"`
}

type Grid struct {
	Position    Vec3    `json:"position"`
	Size        float64 `json:"size"`
	Divisions   int     `json:"divisions"`
	CenterColor string  `json:"centerColor"`
	LineColor   string  `json:"lineColor"`
}

type DirectionalLight struct {
	Position      Vec3    `json:"position"`
	Intensity     float64 `json:"intensity"`
	CastShadow    bool    `json:"castShadow"`
	ShadowMapSize int     `json:"shadowMapSize"`
}

type Lighting struct {
	AmbientIntensity float64          `json:"ambientIntensity"`
	Sun              DirectionalLight `json:"sun"`
}

type Sky struct {
	SunPosition Vec3 `json:"sunPosition"`
}

type AssetStatus string

const (
	AssetDisabled AssetStatus = "disabled"
	AssetPending  AssetStatus = "pending"
	AssetReady    AssetStatus = "ready"
	AssetFailed   AssetStatus = "failed"
)

// Environment describes reflection lighting. Flat is set whenever the asset is not ready.
type Environment struct {
	Preset string      `json:"preset"`
	URL    string      `json:"url,omitempty"`
	Status AssetStatus `json:"status"`
	Flat   bool        `json:"flat"`
}

type ContactShadows struct {
	Resolution int     `json:"resolution"`
	Scale      float64 `json:"scale"`
	Blur       float64 `json:"blur"`
	Opacity    float64 `json:"opacity"`
	Far        float64 `json:"far"`
	Color      string  `json:"color"`
}

// CameraFraming is the initial view suggested for a freshly loaded layout.
type CameraFraming struct {
	Position      Vec3    `json:"position"`
	Target        Vec3    `json:"target"`
	Fov           float64 `json:"fov"`
	MaxPolarAngle float64 `json:"maxPolarAngle"`
}

type Scene struct {
	ViewType       ViewType       `json:"viewType"`
	Theme          string         `json:"theme"`
	Caption        string         `json:"caption"`
	NumFloors      int            `json:"numFloors"`
	BuildingHeight float64        `json:"buildingHeight"`
	Rooms          []RoomGroup    `json:"rooms"`
	Roof           *Roof          `json:"roof,omitempty"`
	Ground         Primitive      `json:"ground"`
	Grid           Grid           `json:"grid"`
	Lighting       Lighting       `json:"lighting"`
	Sky            Sky            `json:"sky"`
	Environment    Environment    `json:"environment"`
	Shadows        ContactShadows `json:"shadows"`
	Camera         CameraFraming  `json:"camera"`
}

// ============================================================
// 2D plan
// ============================================================

type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Overlay struct {
	Rect          Rect    `json:"rect"`
	Fill          string  `json:"fill"`
	FillOpacity   float64 `json:"fillOpacity"`
	Stroke        string  `json:"stroke"`
	StrokeOpacity float64 `json:"strokeOpacity"`
}

type PlanRoom struct {
	RoomID     string   `json:"roomId"`
	Rect       Rect     `json:"rect"`
	Fill       string   `json:"fill"`
	Stroke     string   `json:"stroke"`
	Name       string   `json:"name"`
	Dimensions string   `json:"dimensions"`
	Overlay    *Overlay `json:"overlay,omitempty"`
}

type Plan struct {
	Floor      int        `json:"floor"`
	Scale      float64    `json:"scale"`
	Outline    Rect       `json:"outline"`
	Background string     `json:"background"`
	Border     string     `json:"border"`
	Rooms      []PlanRoom `json:"rooms"`
}
