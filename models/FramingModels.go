package models

// FramingInput describes a stud wall run with its framed openings.
type FramingInput struct {
	WallLength  *float64  `json:"wall_length" example:"24"` // feet
	WallHeight  *float64  `json:"wall_height" example:"8"`  // feet
	StudSpacing float64   `json:"stud_spacing" example:"16"` // inches on center, 16 or 24
	Openings    []Opening `json:"openings"`
}
