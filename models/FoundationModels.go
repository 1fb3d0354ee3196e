package models

// FoundationInput describes a full perimeter foundation. All eight numeric
// dimensions must be set before the calculator will run.
type FoundationInput struct {
	Length        *float64 `json:"length" example:"40"`          // feet
	Width         *float64 `json:"width" example:"30"`           // feet
	FootingWidth  *float64 `json:"footing_width" example:"16"`   // inches
	FootingDepth  *float64 `json:"footing_depth" example:"8"`    // inches
	WallHeight    *float64 `json:"wall_height" example:"4"`      // feet
	WallThickness *float64 `json:"wall_thickness" example:"8"`   // inches
	SlabThickness *float64 `json:"slab_thickness" example:"4"`   // inches
	GravelDepth   *float64 `json:"gravel_depth" example:"4"`     // inches

	FoundationType   string `json:"foundation_type" example:"stem_wall"` // stem_wall, basement or crawlspace
	ConcreteStrength string `json:"concrete_strength" example:"3000"`    // 2500, 3000, 3500 or 4000 psi
	UseICF           bool   `json:"use_icf"`
}
