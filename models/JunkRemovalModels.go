package models

// JunkRemovalInput describes a junk hauling job. Base cost is the larger of
// the volume charge and the weight charge; access and floor multipliers
// apply to the whole accumulated total.
type JunkRemovalInput struct {
	Items []JunkItem `json:"items"`

	DistanceMiles *float64 `json:"distance_miles" example:"10"`
	Access        string   `json:"access" example:"moderate"` // easy, moderate or difficult
	Floors        int      `json:"floors" example:"2"`        // 1 = ground level
}
