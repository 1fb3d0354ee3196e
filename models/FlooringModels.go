package models

// FlooringInput describes a flooring installation area.
type FlooringInput struct {
	FlooringType string   `json:"flooring_type" example:"hardwood"` // hardwood, laminate, vinyl or carpet
	Length       *float64 `json:"length" example:"15"`              // feet
	Width        *float64 `json:"width" example:"12"`               // feet
	Pattern      string   `json:"pattern" example:"standard"`       // standard, diagonal or herringbone
	WastePercent float64  `json:"waste_percent" example:"10"`

	IncludeUnderlayment bool `json:"include_underlayment"`
	IncludeTransitions  bool `json:"include_transitions"`
	TransitionCount     int  `json:"transition_count" example:"2"`
}
