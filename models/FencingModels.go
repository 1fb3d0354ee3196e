package models

// FencingInput describes a fence line. Mode "standard" runs the full
// geometry; mode "custom" bypasses it and prices a manual linear footage.
type FencingInput struct {
	Mode      string `json:"mode" example:"standard"` // "standard" or "custom"
	FenceType string `json:"fence_type" example:"privacy"` // privacy, picket, chain_link, ranch or panel

	Length      *float64 `json:"length" example:"120"`      // feet
	Height      *float64 `json:"height" example:"6"`        // feet
	PostSpacing float64  `json:"post_spacing" example:"8"`  // feet between posts
	PostDepth   float64  `json:"post_depth" example:"2"`    // feet below grade
	Corners     int      `json:"corners" example:"2"`
	Gates       []Gate   `json:"gates"`

	// Custom mode only.
	CustomLinearFeet  *float64 `json:"custom_linear_feet" example:"120"`
	CustomPricePerFoot *float64 `json:"custom_price_per_foot" example:"22.5"`
}
