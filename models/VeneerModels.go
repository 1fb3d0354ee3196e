package models

// VeneerInput describes a stone or brick veneer application.
type VeneerInput struct {
	VeneerType   string   `json:"veneer_type" example:"stone"` // stone or brick
	Length       *float64 `json:"length" example:"30"`         // feet
	Height       *float64 `json:"height" example:"4"`          // feet
	CornerLength *float64 `json:"corner_length" example:"8"`   // linear feet of outside corners
	WastePercent float64  `json:"waste_percent" example:"10"`

	IncludeSealer bool `json:"include_sealer"`
}
