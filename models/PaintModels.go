package models

// PaintInput describes interior wall painting.
type PaintInput struct {
	Walls   []Wall `json:"walls"`
	Doors   int    `json:"doors" example:"2"`
	Windows int    `json:"windows" example:"3"`

	Coats         int    `json:"coats" example:"2"`
	PaintQuality  string `json:"paint_quality" example:"standard"` // economy, standard or premium
	IncludePrimer bool   `json:"include_primer"`
	IncludeSupplies bool `json:"include_supplies"`
}
