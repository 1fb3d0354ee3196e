package models

// SidingInput describes the exterior walls to side.
type SidingInput struct {
	SidingType   string  `json:"siding_type" example:"vinyl"` // vinyl, fiber_cement, wood_lap or board_batten
	Walls        []Wall  `json:"walls"`
	Doors        int     `json:"doors" example:"2"`
	Windows      int     `json:"windows" example:"8"`
	Corners      int     `json:"corners" example:"4"` // outside corner posts
	WastePercent float64 `json:"waste_percent" example:"10"`

	IncludeHouseWrap bool `json:"include_house_wrap"`
}
