package geometry

import "plan-visualizer/internal/visualizer/models"

// Policy is the set of derivation flags implied by a view type.
type Policy struct {
	Interior      bool
	ShowLabels    bool
	ShowRoof      bool
	ShowFurniture bool
	// NearOpacity applies to the back and left walls, FarOpacity to front and right.
	NearOpacity float64
	FarOpacity  float64
}

const (
	interiorBackOpacity  = 0.7
	interiorFrontOpacity = 0.3
)

// PolicyFor maps render parameters to derivation flags. Anything other than
// interior is treated as exterior.
func PolicyFor(params models.RenderParams) Policy {
	if params.ViewType == models.ViewInterior {
		return Policy{
			Interior:      true,
			ShowLabels:    true,
			ShowFurniture: params.ShowFurniture,
			NearOpacity:   interiorBackOpacity,
			FarOpacity:    interiorFrontOpacity,
		}
	}
	return Policy{
		ShowRoof:      true,
		ShowFurniture: params.ShowFurniture,
		NearOpacity:   1,
		FarOpacity:    1,
	}
}
