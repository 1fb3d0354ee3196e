package models

// TileInput describes a tile installation area.
type TileInput struct {
	TileSize     string   `json:"tile_size" example:"12x12"` // 12x12, 18x18, 24x24 or subway
	Length       *float64 `json:"length" example:"10"`       // feet
	Width        *float64 `json:"width" example:"8"`         // feet
	Pattern      string   `json:"pattern" example:"standard"` // standard, diagonal or herringbone
	WastePercent float64  `json:"waste_percent" example:"10"`

	IncludeBackerBoard bool `json:"include_backer_board"`
	IncludeMembrane    bool `json:"include_membrane"`
}
