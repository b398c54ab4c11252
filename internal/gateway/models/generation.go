package models

// ============================================================
// Layout generation wizard
// ============================================================

type Direction string

const (
	North Direction = "N"
	South Direction = "S"
	East  Direction = "E"
	West  Direction = "W"
)

// GenerationRequest is the wizard draft sent to the external layout generator.
type GenerationRequest struct {
	PlotLength      float64    `json:"plot_length"`
	PlotWidth       float64    `json:"plot_width"`
	Floors          int        `json:"floors"`
	Budget          float64    `json:"budget"`
	Facing          *Direction `json:"facing,omitempty"`
	Bedrooms        int        `json:"bedrooms"`
	Bathrooms       int        `json:"bathrooms"`
	KitchenType     string     `json:"kitchen_type"`
	LivingRoomSize  string     `json:"living_room_size"`
	Dining          string     `json:"dining"`
	StudyRoom       bool       `json:"study_room"`
	PoojaRoom       bool       `json:"pooja_room"`
	UtilityRoom     bool       `json:"utility_room"`
	StoreRoom       bool       `json:"store_room"`
	VastuCompliance string     `json:"vastu_compliance"`
	Parking         string     `json:"parking"`
	Balcony         string     `json:"balcony"`
}
