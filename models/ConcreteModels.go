package models

// ConcreteInput holds the measurements and options for a concrete pour.
// Required fields depend on ConcreteType: "slab" needs Length, Width and
// Depth; "wall" needs Length, Height and Thickness. Nil means the user has
// not entered the field yet.
type ConcreteInput struct {
	ConcreteType string   `json:"concrete_type" example:"slab"` // "slab" or "wall"
	Length       *float64 `json:"length" example:"10"`          // feet
	Width        *float64 `json:"width" example:"10"`           // feet, slab only
	Depth        *float64 `json:"depth" example:"4"`            // inches, slab only
	Height       *float64 `json:"height" example:"8"`           // feet, wall only
	Thickness    *float64 `json:"thickness" example:"8"`        // inches, wall only

	DeliveryType string `json:"delivery_type" example:"truck"` // "truck" or "bags"
	BagSize      int    `json:"bag_size" example:"80"`         // 60 or 80, bags only

	IncludeColor bool `json:"include_color"`
	IncludeFiber bool `json:"include_fiber"`

	IncludeRebar bool    `json:"include_rebar"`
	RebarSpacing float64 `json:"rebar_spacing" example:"12"` // inches on center
	IncludeMesh  bool    `json:"include_mesh"`
}
